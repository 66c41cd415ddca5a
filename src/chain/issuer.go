package chain

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"NFTMarketBackend/src/dao"
	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Issuer owns the supply counter and token-id sequence of every collection.
// Mutating operations are serialized and run inside one database transaction
// each, so a batch either mints entirely or not at all.
type Issuer struct {
	db     *gorm.DB
	ledger LedgerFactory
	mu     sync.Mutex
}

func NewIssuer(db *gorm.DB, ledger LedgerFactory) *Issuer {
	return &Issuer{db: db, ledger: ledger}
}

// Resolve returns a contract handle for a collection, bound to the given
// dao scope. It is the marketplace's Resolver.
func (i *Issuer) Resolve(ctx context.Context, d *dao.Dao, address string) (AssetContract, error) {
	col, err := d.GetCollection(ctx, address)
	if err != nil {
		return nil, err
	}
	return &boundContract{d: d, col: col}, nil
}

// MintSingle mints one token with its own metadata URI. Owner-only,
// single-metadata variant only.
func (i *Issuer) MintSingle(ctx context.Context, collectionAddr, caller, recipient, tokenURI string) (uint64, error) {
	if tokenURI == "" {
		return 0, errcode.ErrInvalidMetadata
	}
	var tokenID uint64
	err := i.runTx(ctx, func(d *dao.Dao) error {
		col, err := i.ownedSingleVariant(ctx, d, collectionAddr, caller)
		if err != nil {
			return err
		}
		ids, err := allocate(ctx, d, col, recipient, 1, []string{tokenURI})
		if err != nil {
			return err
		}
		tokenID = ids[0]
		return nil
	})
	return tokenID, err
}

// MintBatch mints quantity tokens with deferred metadata URIs, atomically.
func (i *Issuer) MintBatch(ctx context.Context, collectionAddr, caller, recipient string, quantity uint64) ([]uint64, error) {
	if quantity == 0 {
		return nil, errcode.ErrInvalidQuantity
	}
	var tokenIDs []uint64
	err := i.runTx(ctx, func(d *dao.Dao) error {
		col, err := i.ownedSingleVariant(ctx, d, collectionAddr, caller)
		if err != nil {
			return err
		}
		tokenIDs, err = allocate(ctx, d, col, recipient, quantity, nil)
		return err
	})
	return tokenIDs, err
}

// PublicMint is the sale-gated path of the shared-base-URI variant. Payment
// must match mint_price * quantity exactly; overpayment is rejected like
// underpayment.
func (i *Issuer) PublicMint(ctx context.Context, collectionAddr, caller string, quantity uint64, paid decimal.Decimal) ([]uint64, error) {
	if quantity == 0 {
		return nil, errcode.ErrInvalidQuantity
	}
	var tokenIDs []uint64
	err := i.runTx(ctx, func(d *dao.Dao) error {
		col, err := d.GetCollection(ctx, collectionAddr)
		if err != nil {
			return err
		}
		if col.Variant != entity.VariantCollection {
			return errcode.ErrUnauthorizedAccess
		}
		if !col.SaleActive {
			return errcode.ErrSaleNotActive
		}
		due := col.MintPrice.Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(quantity), 0))
		if !paid.Equal(due) {
			return errcode.ErrInsufficientPayment
		}
		// Caps are checked in subtraction form so an absurd quantity cannot
		// wrap the sums in uint64 and slip past the guards.
		if col.MaxPerWallet > 0 {
			owned, err := d.CountOwned(ctx, collectionAddr, caller)
			if err != nil {
				return err
			}
			if uint64(owned) >= col.MaxPerWallet || quantity > col.MaxPerWallet-uint64(owned) {
				return errcode.ErrWalletCapExceeded
			}
		}
		// The owner reserve stays carved out of the public supply.
		remaining := col.MaxSupply - col.MintedCount
		if col.OwnerReserve > remaining || quantity > remaining-col.OwnerReserve {
			return errcode.ErrSupplyExceeded
		}
		if due.IsPositive() {
			if err := i.ledger(d).Transfer(ctx, caller, col.Owner, due); err != nil {
				return err
			}
		}
		tokenIDs, err = allocate(ctx, d, col, caller, quantity, nil)
		return err
	})
	return tokenIDs, err
}

// ReserveMint draws from the owner reserve. Exempt from the sale switch,
// payment and per-wallet checks, still bounded by max supply.
func (i *Issuer) ReserveMint(ctx context.Context, collectionAddr, caller, recipient string, quantity uint64) ([]uint64, error) {
	if quantity == 0 {
		return nil, errcode.ErrInvalidQuantity
	}
	var tokenIDs []uint64
	err := i.runTx(ctx, func(d *dao.Dao) error {
		col, err := d.GetCollection(ctx, collectionAddr)
		if err != nil {
			return err
		}
		if col.Owner != caller {
			return errcode.ErrNotContractOwner
		}
		if quantity > col.OwnerReserve {
			return errcode.ErrReserveExceeded
		}
		col.OwnerReserve -= quantity
		tokenIDs, err = allocate(ctx, d, col, recipient, quantity, nil)
		return err
	})
	return tokenIDs, err
}

// SetTokenURIs backfills metadata after a deferred-URI batch mint.
func (i *Issuer) SetTokenURIs(ctx context.Context, collectionAddr, caller string, tokenIDs []uint64, uris []string) error {
	if len(tokenIDs) != len(uris) {
		return errcode.ErrLengthMismatch
	}
	if len(tokenIDs) == 0 {
		return errcode.ErrInvalidQuantity
	}
	for _, uri := range uris {
		if uri == "" {
			return errcode.ErrInvalidMetadata
		}
	}
	return i.runTx(ctx, func(d *dao.Dao) error {
		if _, err := i.ownedSingleVariant(ctx, d, collectionAddr, caller); err != nil {
			return err
		}
		for idx, tokenID := range tokenIDs {
			asset, err := d.GetAsset(ctx, collectionAddr, tokenID)
			if err != nil {
				return err
			}
			asset.TokenURI = uris[idx]
			if err := d.UpdateAsset(ctx, asset); err != nil {
				return err
			}
		}
		return nil
	})
}

func (i *Issuer) SetSaleActive(ctx context.Context, collectionAddr, caller string, active bool) error {
	return i.runTx(ctx, func(d *dao.Dao) error {
		col, err := d.GetCollection(ctx, collectionAddr)
		if err != nil {
			return err
		}
		if col.Owner != caller {
			return errcode.ErrNotContractOwner
		}
		col.SaleActive = active
		return d.UpdateCollection(ctx, col)
	})
}

// Approve grants a per-token transfer approval. Only the token owner may
// grant it.
func (i *Issuer) Approve(ctx context.Context, collectionAddr, caller, operator string, tokenID uint64) error {
	return i.runTx(ctx, func(d *dao.Dao) error {
		asset, err := d.GetAsset(ctx, collectionAddr, tokenID)
		if err != nil {
			return err
		}
		if asset.Owner != caller {
			return errcode.ErrNotTokenOwner
		}
		asset.Approved = operator
		return d.UpdateAsset(ctx, asset)
	})
}

func (i *Issuer) SetApprovalForAll(ctx context.Context, collectionAddr, caller, operator string, approved bool) error {
	return i.runTx(ctx, func(d *dao.Dao) error {
		if _, err := d.GetCollection(ctx, collectionAddr); err != nil {
			return err
		}
		return d.UpsertOperatorApproval(ctx, &entity.OperatorApproval{
			CollectionAddress: collectionAddr,
			Owner:             caller,
			Operator:          operator,
			Approved:          approved,
		})
	})
}

// RoyaltyInfo computes the collection-wide royalty split for a sale price,
// floor rounded.
func (i *Issuer) RoyaltyInfo(ctx context.Context, collectionAddr string, tokenID uint64, salePrice decimal.Decimal) (string, decimal.Decimal, error) {
	d := dao.New(ctx, i.db)
	col, err := d.GetCollection(ctx, collectionAddr)
	if err != nil {
		return "", decimal.Zero, err
	}
	c := &boundContract{d: d, col: col}
	return c.RoyaltyInfo(ctx, tokenID, salePrice)
}

// TokenURI serves the metadata reference for a minted token. The shared
// base-URI variant derives it; an unset base URI yields an empty string.
func (i *Issuer) TokenURI(ctx context.Context, collectionAddr string, tokenID uint64) (string, error) {
	d := dao.New(ctx, i.db)
	col, err := d.GetCollection(ctx, collectionAddr)
	if err != nil {
		return "", err
	}
	asset, err := d.GetAsset(ctx, collectionAddr, tokenID)
	if err != nil {
		return "", err
	}
	if col.Variant == entity.VariantCollection {
		if col.BaseURI == "" {
			return "", nil
		}
		return fmt.Sprintf("%s%d.json", col.BaseURI, tokenID), nil
	}
	return asset.TokenURI, nil
}

func (i *Issuer) OwnerOf(ctx context.Context, collectionAddr string, tokenID uint64) (string, error) {
	asset, err := dao.New(ctx, i.db).GetAsset(ctx, collectionAddr, tokenID)
	if err != nil {
		return "", err
	}
	return asset.Owner, nil
}

func (i *Issuer) BalanceOf(ctx context.Context, collectionAddr, owner string) (int64, error) {
	return dao.New(ctx, i.db).CountOwned(ctx, collectionAddr, owner)
}

func (i *Issuer) runTx(ctx context.Context, fn func(d *dao.Dao) error) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.db.Transaction(func(tx *gorm.DB) error {
		return fn(dao.New(ctx, tx))
	})
}

func (i *Issuer) ownedSingleVariant(ctx context.Context, d *dao.Dao, collectionAddr, caller string) (*entity.Collection, error) {
	col, err := d.GetCollection(ctx, collectionAddr)
	if err != nil {
		return nil, err
	}
	if col.Variant != entity.VariantSingle {
		return nil, errors.Wrap(errcode.ErrUnauthorizedAccess, "operation requires the single-metadata variant")
	}
	if col.Owner != caller {
		return nil, errcode.ErrNotContractOwner
	}
	return col, nil
}

// allocate assigns quantity sequential ids starting at minted_count+1,
// checks the supply cap for the whole batch and advances the counter. The cap
// check is in subtraction form; minted_count never exceeds max_supply, so the
// difference cannot underflow and an oversized quantity cannot wrap the sum.
func allocate(ctx context.Context, d *dao.Dao, col *entity.Collection, recipient string, quantity uint64, uris []string) ([]uint64, error) {
	if quantity > col.MaxSupply-col.MintedCount {
		return nil, errcode.ErrSupplyExceeded
	}
	now := time.Now()
	assets := make([]entity.Asset, 0, quantity)
	tokenIDs := make([]uint64, 0, quantity)
	for n := uint64(0); n < quantity; n++ {
		tokenID := col.MintedCount + n + 1
		uri := ""
		if uris != nil {
			uri = uris[n]
		}
		assets = append(assets, entity.Asset{
			CollectionAddress: col.Address,
			TokenID:           tokenID,
			Owner:             recipient,
			TokenURI:          uri,
			MintedAt:          now,
		})
		tokenIDs = append(tokenIDs, tokenID)
	}
	if err := d.CreateAssets(ctx, assets); err != nil {
		return nil, err
	}
	col.MintedCount += quantity
	if err := d.UpdateCollection(ctx, col); err != nil {
		return nil, err
	}
	for _, tokenID := range tokenIDs {
		err := d.CreateActivity(ctx, &entity.Activity{
			Type:              entity.ActivityMinted,
			CollectionAddress: col.Address,
			TokenID:           tokenID,
			Maker:             recipient,
			EventTime:         now,
		})
		if err != nil {
			return nil, err
		}
	}
	return tokenIDs, nil
}
