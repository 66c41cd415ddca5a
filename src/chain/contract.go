package chain

import (
	"context"

	"NFTMarketBackend/src/dao"
	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AssetContract is the minimal ownership/transfer surface the marketplace
// requires of any asset contract, not just collections minted here.
type AssetContract interface {
	Address() string
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)
	TransferFrom(ctx context.Context, from, to string, tokenID uint64) error
	GetApproved(ctx context.Context, tokenID uint64) (string, error)
	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)
}

// RoyaltyProvider is an optional capability. The marketplace probes for it
// with a type assertion; a contract without it settles with zero royalty.
type RoyaltyProvider interface {
	RoyaltyInfo(ctx context.Context, tokenID uint64, salePrice decimal.Decimal) (receiver string, amount decimal.Decimal, err error)
}

// Ledger is the value-transfer primitive. Every payout checks the returned
// error and the surrounding transaction aborts on failure.
type Ledger interface {
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error
}

// Resolver turns a contract address into a handle bound to the caller's
// transaction scope.
type Resolver func(ctx context.Context, d *dao.Dao, address string) (AssetContract, error)

// LedgerFactory binds the funds ledger to the caller's transaction scope.
type LedgerFactory func(d *dao.Dao) Ledger

// bpsShare computes amount * bps / 10000 with floor rounding.
func bpsShare(amount decimal.Decimal, bps int64) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(bps)).Div(decimal.NewFromInt(10000)).Floor()
}

// boundContract is the handle for collections issued by this service,
// bound to one dao scope. It implements both AssetContract and
// RoyaltyProvider.
type boundContract struct {
	d   *dao.Dao
	col *entity.Collection
}

func (c *boundContract) Address() string { return c.col.Address }

func (c *boundContract) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	asset, err := c.d.GetAsset(ctx, c.col.Address, tokenID)
	if err != nil {
		return "", err
	}
	return asset.Owner, nil
}

func (c *boundContract) TransferFrom(ctx context.Context, from, to string, tokenID uint64) error {
	asset, err := c.d.GetAsset(ctx, c.col.Address, tokenID)
	if err != nil {
		return err
	}
	if asset.Owner != from {
		return errors.Wrap(errcode.ErrNotTokenOwner, "transfer from non-owner")
	}
	asset.Owner = to
	asset.Approved = ""
	return c.d.UpdateAsset(ctx, asset)
}

func (c *boundContract) GetApproved(ctx context.Context, tokenID uint64) (string, error) {
	asset, err := c.d.GetAsset(ctx, c.col.Address, tokenID)
	if err != nil {
		return "", err
	}
	return asset.Approved, nil
}

func (c *boundContract) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	return c.d.GetOperatorApproval(ctx, c.col.Address, owner, operator)
}

func (c *boundContract) RoyaltyInfo(ctx context.Context, tokenID uint64, salePrice decimal.Decimal) (string, decimal.Decimal, error) {
	if c.col.RoyaltyReceiver == "" || c.col.RoyaltyBps == 0 {
		return "", decimal.Zero, nil
	}
	return c.col.RoyaltyReceiver, bpsShare(salePrice, c.col.RoyaltyBps), nil
}
