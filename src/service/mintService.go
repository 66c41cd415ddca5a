package service

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/svc"

	"github.com/shopspring/decimal"
)

func MintSingle(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, param entity.MintSingleParam) (*entity.MintRes, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindMint, param)
	if err != nil {
		return nil, err
	}
	tokenID, opErr := serverCtx.Issuer.MintSingle(ctx, collectionAddr, param.Caller, param.Recipient, param.TokenURI)
	res := &entity.MintRes{TokenIDs: []uint64{tokenID}, TxID: txID}
	finalizeTx(ctx, serverCtx, txID, opErr, res)
	if opErr != nil {
		return nil, opErr
	}
	return res, nil
}

func MintBatch(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, param entity.MintBatchParam) (*entity.MintRes, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindMint, param)
	if err != nil {
		return nil, err
	}
	tokenIDs, opErr := serverCtx.Issuer.MintBatch(ctx, collectionAddr, param.Caller, param.Recipient, param.Quantity)
	res := &entity.MintRes{TokenIDs: tokenIDs, TxID: txID}
	finalizeTx(ctx, serverCtx, txID, opErr, res)
	if opErr != nil {
		return nil, opErr
	}
	return res, nil
}

func PublicMint(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, param entity.PublicMintParam) (*entity.MintRes, error) {
	paid, err := decimal.NewFromString(param.Paid)
	if err != nil || paid.IsNegative() {
		return nil, errcode.ErrInvalidParams
	}
	txID, err := beginTx(ctx, serverCtx, entity.TxKindMint, param)
	if err != nil {
		return nil, err
	}
	tokenIDs, opErr := serverCtx.Issuer.PublicMint(ctx, collectionAddr, param.Caller, param.Quantity, paid)
	res := &entity.MintRes{TokenIDs: tokenIDs, TxID: txID}
	finalizeTx(ctx, serverCtx, txID, opErr, res)
	if opErr != nil {
		return nil, opErr
	}
	return res, nil
}

func ReserveMint(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, param entity.ReserveMintParam) (*entity.MintRes, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindMint, param)
	if err != nil {
		return nil, err
	}
	tokenIDs, opErr := serverCtx.Issuer.ReserveMint(ctx, collectionAddr, param.Caller, param.Recipient, param.Quantity)
	res := &entity.MintRes{TokenIDs: tokenIDs, TxID: txID}
	finalizeTx(ctx, serverCtx, txID, opErr, res)
	if opErr != nil {
		return nil, opErr
	}
	return res, nil
}

func SetTokenURIs(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, param entity.SetTokenURIsParam) (string, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindSetTokenURIs, param)
	if err != nil {
		return "", err
	}
	opErr := serverCtx.Issuer.SetTokenURIs(ctx, collectionAddr, param.Caller, param.TokenIDs, param.URIs)
	finalizeTx(ctx, serverCtx, txID, opErr, nil)
	return txID, opErr
}

func SetSaleActive(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, param entity.SetSaleActiveParam) (string, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindSetSaleActive, param)
	if err != nil {
		return "", err
	}
	opErr := serverCtx.Issuer.SetSaleActive(ctx, collectionAddr, param.Caller, param.Active)
	finalizeTx(ctx, serverCtx, txID, opErr, nil)
	return txID, opErr
}

func Approve(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, param entity.ApproveParam) (string, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindApprove, param)
	if err != nil {
		return "", err
	}
	opErr := serverCtx.Issuer.Approve(ctx, collectionAddr, param.Caller, param.Operator, param.TokenID)
	finalizeTx(ctx, serverCtx, txID, opErr, nil)
	return txID, opErr
}

func SetApprovalForAll(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, param entity.ApprovalForAllParam) (string, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindApprove, param)
	if err != nil {
		return "", err
	}
	opErr := serverCtx.Issuer.SetApprovalForAll(ctx, collectionAddr, param.Caller, param.Operator, param.Approved)
	finalizeTx(ctx, serverCtx, txID, opErr, nil)
	return txID, opErr
}

func GetRoyaltyInfo(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenID uint64, salePrice decimal.Decimal) (*entity.RoyaltyInfoRes, error) {
	receiver, amount, err := serverCtx.Issuer.RoyaltyInfo(ctx, collectionAddr, tokenID, salePrice)
	if err != nil {
		return nil, err
	}
	return &entity.RoyaltyInfoRes{Receiver: receiver, Amount: amount.String()}, nil
}

func GetTokenURI(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenID uint64) (*entity.TokenURIRes, error) {
	uri, err := serverCtx.Issuer.TokenURI(ctx, collectionAddr, tokenID)
	if err != nil {
		return nil, err
	}
	return &entity.TokenURIRes{TokenURI: uri}, nil
}

// GetTokenMetadata resolves the token URI and fetches the document behind it.
func GetTokenMetadata(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenID uint64, refresh bool) (map[string]interface{}, error) {
	uri, err := serverCtx.Issuer.TokenURI(ctx, collectionAddr, tokenID)
	if err != nil {
		return nil, err
	}
	if uri == "" {
		return nil, errcode.ErrInvalidMetadata
	}
	doc, err := serverCtx.Metadata.Fetch(ctx, uri, refresh)
	if err != nil {
		return nil, errcode.NewCustomErr("metadata fetch failed")
	}
	return doc, nil
}

func GetOwner(ctx context.Context, serverCtx *svc.ServerCtx, collectionAddr string, tokenID uint64) (string, error) {
	return serverCtx.Issuer.OwnerOf(ctx, collectionAddr, tokenID)
}
