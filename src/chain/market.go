package chain

import (
	"context"
	"time"

	"NFTMarketBackend/src/dao"
	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeeBps is the fixed platform fee, 2.5% of the sale price.
const FeeBps = 250

// EscrowAddress is the marketplace's own account: custodian of every escrowed
// asset and pass-through for settlement funds.
const EscrowAddress = "0x000000000000000000000000000000000e5c4001"

// Marketplace is the escrow ledger and settlement engine. Each listing key
// moves Unlisted -> Listed -> {Sold | Cancelled}; terminal records stay in
// their slot with active=false until a re-list supersedes them.
//
// Every state transition runs inside one database transaction with the active
// flag flipped before any asset or value transfer, so a failure anywhere
// rolls the whole operation back and a reentrant observer never sees an open
// listing mid-settlement.
type Marketplace struct {
	db           *gorm.DB
	resolve      Resolver
	ledger       LedgerFactory
	feeRecipient string
	guard        guard
}

func NewMarketplace(db *gorm.DB, resolve Resolver, ledger LedgerFactory, feeRecipient string) *Marketplace {
	return &Marketplace{
		db:           db,
		resolve:      resolve,
		ledger:       ledger,
		feeRecipient: feeRecipient,
	}
}

func (m *Marketplace) Address() string { return EscrowAddress }

// List escrows the caller's token and opens a listing at a fixed price.
func (m *Marketplace) List(ctx context.Context, caller, collectionAddr string, tokenID uint64, price decimal.Decimal) (*entity.Listing, error) {
	if !price.IsPositive() {
		return nil, errcode.ErrInvalidPrice
	}
	ctx, release, err := m.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var listing *entity.Listing
	err = m.db.Transaction(func(tx *gorm.DB) error {
		d := dao.New(ctx, tx)
		// A still-active record in the slot is rejected outright instead of
		// relying on the ownership check to catch it (the escrowed token is
		// no longer owned by the caller, but that is a side effect, not a
		// guard).
		existing, err := d.GetListing(ctx, collectionAddr, tokenID)
		if err != nil {
			return err
		}
		if existing != nil && existing.Active {
			return errcode.ErrListingActive
		}

		c, err := m.resolve(ctx, d, collectionAddr)
		if err != nil {
			return err
		}
		owner, err := c.OwnerOf(ctx, tokenID)
		if err != nil {
			return err
		}
		if owner != caller {
			return errcode.ErrNotTokenOwner
		}
		approved, err := c.GetApproved(ctx, tokenID)
		if err != nil {
			return err
		}
		if approved != EscrowAddress {
			all, err := c.IsApprovedForAll(ctx, caller, EscrowAddress)
			if err != nil {
				return err
			}
			if !all {
				return errcode.ErrNotApproved
			}
		}

		if err := c.TransferFrom(ctx, caller, EscrowAddress, tokenID); err != nil {
			return err
		}

		now := time.Now()
		listing = &entity.Listing{
			CollectionAddress: collectionAddr,
			TokenID:           tokenID,
			Seller:            caller,
			Price:             price,
			Active:            true,
			CreatedAt:         now,
		}
		if err := d.UpsertListing(ctx, listing); err != nil {
			return err
		}
		return d.CreateActivity(ctx, &entity.Activity{
			Type:              entity.ActivityListed,
			CollectionAddress: collectionAddr,
			TokenID:           tokenID,
			Maker:             caller,
			Price:             price,
			EventTime:         now,
		})
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// Cancel closes an active listing and returns the asset to its seller. Only
// the recorded seller may cancel.
func (m *Marketplace) Cancel(ctx context.Context, caller, collectionAddr string, tokenID uint64) error {
	ctx, release, err := m.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	return m.db.Transaction(func(tx *gorm.DB) error {
		d := dao.New(ctx, tx)
		listing, err := d.GetListing(ctx, collectionAddr, tokenID)
		if err != nil {
			return err
		}
		if listing == nil || !listing.Active {
			return errcode.ErrListingNotActive
		}
		if listing.Seller != caller {
			return errcode.ErrUnauthorizedAccess
		}

		// State flips before the asset moves.
		if err := d.DeactivateListing(ctx, listing.ID); err != nil {
			return err
		}
		c, err := m.resolve(ctx, d, collectionAddr)
		if err != nil {
			return err
		}
		if err := c.TransferFrom(ctx, EscrowAddress, listing.Seller, tokenID); err != nil {
			return err
		}
		return d.CreateActivity(ctx, &entity.Activity{
			Type:              entity.ActivityCancelled,
			CollectionAddress: collectionAddr,
			TokenID:           tokenID,
			Maker:             caller,
			Price:             listing.Price,
			EventTime:         time.Now(),
		})
	})
}

// Buy settles an active listing: the buyer pays at least the asking price,
// the asset leaves escrow and the price splits into royalty, platform fee
// and seller proceeds, all floor-rounded basis-point shares. Overpayment is
// refunded. Any failed transfer aborts the whole settlement.
func (m *Marketplace) Buy(ctx context.Context, caller, collectionAddr string, tokenID uint64, paid decimal.Decimal) (*entity.Settlement, error) {
	ctx, release, err := m.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var settlement *entity.Settlement
	err = m.db.Transaction(func(tx *gorm.DB) error {
		d := dao.New(ctx, tx)
		listing, err := d.GetListing(ctx, collectionAddr, tokenID)
		if err != nil {
			return err
		}
		if listing == nil || !listing.Active {
			return errcode.ErrListingNotActive
		}
		price, seller := listing.Price, listing.Seller
		if paid.LessThan(price) {
			return errcode.ErrInsufficientPayment
		}

		// Terminal state first; every transfer below sees the listing closed.
		if err := d.DeactivateListing(ctx, listing.ID); err != nil {
			return err
		}

		c, err := m.resolve(ctx, d, collectionAddr)
		if err != nil {
			return err
		}

		// Royalty support is optional; its absence is a normal branch.
		royaltyReceiver, royaltyAmount := "", decimal.Zero
		if rp, ok := c.(RoyaltyProvider); ok {
			royaltyReceiver, royaltyAmount, err = rp.RoyaltyInfo(ctx, tokenID, price)
			if err != nil {
				return errors.Wrap(err, "failed on query royalty info")
			}
		}

		fee := bpsShare(price, FeeBps)
		proceeds := price.Sub(royaltyAmount).Sub(fee)
		// The royalty provider is pluggable; never trust it to stay within
		// its cap.
		if royaltyAmount.IsNegative() || proceeds.IsNegative() {
			return errors.Wrap(errcode.ErrExternalCallFailed, "royalty amount out of bounds")
		}

		ledger := m.ledger(d)
		if err := ledger.Transfer(ctx, caller, EscrowAddress, paid); err != nil {
			return err
		}
		if err := c.TransferFrom(ctx, EscrowAddress, caller, tokenID); err != nil {
			return err
		}
		if royaltyAmount.IsPositive() && royaltyReceiver != "" {
			if err := ledger.Transfer(ctx, EscrowAddress, royaltyReceiver, royaltyAmount); err != nil {
				return err
			}
		}
		if fee.IsPositive() && m.feeRecipient != "" {
			if err := ledger.Transfer(ctx, EscrowAddress, m.feeRecipient, fee); err != nil {
				return err
			}
		}
		if proceeds.IsPositive() {
			if err := ledger.Transfer(ctx, EscrowAddress, seller, proceeds); err != nil {
				return err
			}
		}
		refund := paid.Sub(price)
		if refund.IsPositive() {
			if err := ledger.Transfer(ctx, EscrowAddress, caller, refund); err != nil {
				return err
			}
		}

		settlement = &entity.Settlement{
			Buyer:           caller,
			Seller:          seller,
			Price:           price,
			RoyaltyReceiver: royaltyReceiver,
			RoyaltyAmount:   royaltyAmount,
			MarketplaceFee:  fee,
			SellerProceeds:  proceeds,
			Refund:          refund,
		}
		return d.CreateActivity(ctx, &entity.Activity{
			Type:              entity.ActivityPurchased,
			CollectionAddress: collectionAddr,
			TokenID:           tokenID,
			Maker:             seller,
			Taker:             caller,
			Price:             price,
			RoyaltyAmount:     royaltyAmount,
			MarketplaceFee:    fee,
			EventTime:         time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return settlement, nil
}

// Listing returns the record in a slot regardless of state, nil when the
// slot was never written.
func (m *Marketplace) Listing(ctx context.Context, collectionAddr string, tokenID uint64) (*entity.Listing, error) {
	return dao.New(ctx, m.db).GetListing(ctx, collectionAddr, tokenID)
}

func (m *Marketplace) ListingsByCollection(ctx context.Context, collectionAddr string) ([]entity.Listing, error) {
	return dao.New(ctx, m.db).QueryActiveListingsByCollection(ctx, collectionAddr)
}

func (m *Marketplace) ListingsBySeller(ctx context.Context, seller string) ([]entity.Listing, error) {
	return dao.New(ctx, m.db).QueryActiveListingsBySeller(ctx, seller)
}

// ListingsPage pages active listings in ascending listing-id order. An
// out-of-range offset yields an empty page.
func (m *Marketplace) ListingsPage(ctx context.Context, offset, limit int) ([]entity.Listing, error) {
	if offset < 0 || limit <= 0 {
		return nil, errcode.ErrInvalidParams
	}
	return dao.New(ctx, m.db).QueryActiveListingsPage(ctx, offset, limit)
}

func (m *Marketplace) ActiveCount(ctx context.Context) (int64, error) {
	return dao.New(ctx, m.db).CountActiveListings(ctx)
}
