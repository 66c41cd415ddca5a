package service

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/svc"

	"go.uber.org/zap"
)

// ListNFT escrows a token and opens a listing.
func ListNFT(ctx context.Context, serverCtx *svc.ServerCtx, param entity.ListParam) (*entity.MarketOpRes, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindList, param)
	if err != nil {
		return nil, err
	}
	listing, opErr := serverCtx.Market.List(ctx, param.Caller, param.CollectionAddress, param.TokenID, param.Price)
	finalizeTx(ctx, serverCtx, txID, opErr, listing)
	if opErr != nil {
		return nil, opErr
	}
	zap.L().Info("listing created",
		zap.String("collection", param.CollectionAddress),
		zap.Uint64("token_id", param.TokenID),
		zap.String("seller", param.Caller),
		zap.String("price", param.Price.String()))
	return &entity.MarketOpRes{TxID: txID}, nil
}

// CancelListing closes a listing and returns the token to the seller.
func CancelListing(ctx context.Context, serverCtx *svc.ServerCtx, param entity.CancelParam) (*entity.MarketOpRes, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindCancel, param)
	if err != nil {
		return nil, err
	}
	opErr := serverCtx.Market.Cancel(ctx, param.Caller, param.CollectionAddress, param.TokenID)
	finalizeTx(ctx, serverCtx, txID, opErr, nil)
	if opErr != nil {
		return nil, opErr
	}
	zap.L().Info("listing cancelled",
		zap.String("collection", param.CollectionAddress),
		zap.Uint64("token_id", param.TokenID),
		zap.String("seller", param.Caller))
	return &entity.MarketOpRes{TxID: txID}, nil
}

// BuyNFT settles a listing for the caller.
func BuyNFT(ctx context.Context, serverCtx *svc.ServerCtx, param entity.BuyParam) (*entity.MarketOpRes, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindBuy, param)
	if err != nil {
		return nil, err
	}
	settlement, opErr := serverCtx.Market.Buy(ctx, param.Caller, param.CollectionAddress, param.TokenID, param.Paid)
	finalizeTx(ctx, serverCtx, txID, opErr, settlement)
	if opErr != nil {
		return nil, opErr
	}
	zap.L().Info("listing purchased",
		zap.String("collection", param.CollectionAddress),
		zap.Uint64("token_id", param.TokenID),
		zap.String("buyer", param.Caller),
		zap.String("seller", settlement.Seller),
		zap.String("price", settlement.Price.String()),
		zap.String("royalty", settlement.RoyaltyAmount.String()),
		zap.String("fee", settlement.MarketplaceFee.String()))
	return &entity.MarketOpRes{TxID: txID, Settlement: settlement}, nil
}

func GetListing(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenID uint64) (*entity.Listing, error) {
	return serverCtx.Market.Listing(ctx, collectionAddr, tokenID)
}

func GetCollectionListings(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string) ([]entity.Listing, error) {
	return serverCtx.Market.ListingsByCollection(ctx, collectionAddr)
}

func GetSellerListings(ctx context.Context, serverCtx *svc.ServerCtx, seller string) ([]entity.Listing, error) {
	return serverCtx.Market.ListingsBySeller(ctx, seller)
}

// GetListingsPage caps the page size at the configured maximum.
func GetListingsPage(ctx context.Context, serverCtx *svc.ServerCtx, offset, limit int) ([]entity.Listing, int64, error) {
	if limit > serverCtx.C.Api.MaxNum {
		limit = serverCtx.C.Api.MaxNum
	}
	listings, err := serverCtx.Market.ListingsPage(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := serverCtx.Market.ActiveCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return listings, count, nil
}

func GetActiveListingCount(ctx context.Context, serverCtx *svc.ServerCtx) (int64, error) {
	return serverCtx.Market.ActiveCount(ctx)
}
