package dao

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetListing returns the record in the (collection, token) slot, active or
// not, or nil when the slot was never written.
func (dao *Dao) GetListing(ctx context.Context, collectionAddr string, tokenID uint64) (*entity.Listing, error) {
	var listing entity.Listing
	err := dao.DB.WithContext(ctx).
		Where("collection_address = ? and token_id = ?", collectionAddr, tokenID).
		First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on query listing")
	}
	return &listing, nil
}

// UpsertListing writes a fresh listing into its slot. A superseded terminal
// record is overwritten in place; the row id advances so pagination order
// reflects listing recency.
func (dao *Dao) UpsertListing(ctx context.Context, listing *entity.Listing) error {
	existing, err := dao.GetListing(ctx, listing.CollectionAddress, listing.TokenID)
	if err != nil {
		return err
	}
	if existing != nil {
		if err := dao.DB.WithContext(ctx).Delete(&entity.Listing{}, existing.ID).Error; err != nil {
			return errors.Wrap(err, "failed on supersede listing")
		}
	}
	if err := dao.DB.WithContext(ctx).Create(listing).Error; err != nil {
		return errors.Wrap(err, "failed on create listing")
	}
	return nil
}

// DeactivateListing flips active to false. It refuses to touch a row that is
// already terminal so the true -> false transition happens exactly once.
func (dao *Dao) DeactivateListing(ctx context.Context, id int64) error {
	res := dao.DB.WithContext(ctx).Model(&entity.Listing{}).
		Where("id = ? and active = ?", id, true).
		Update("active", false)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed on deactivate listing")
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(errcode.ErrListingNotActive, "listing already terminal")
	}
	return nil
}

func (dao *Dao) QueryActiveListingsByCollection(ctx context.Context, collectionAddr string) ([]entity.Listing, error) {
	var listings []entity.Listing
	err := dao.DB.WithContext(ctx).
		Where("collection_address = ? and active = ?", collectionAddr, true).
		Order("id asc").
		Find(&listings).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on query listings by collection")
	}
	return listings, nil
}

func (dao *Dao) QueryActiveListingsBySeller(ctx context.Context, seller string) ([]entity.Listing, error) {
	var listings []entity.Listing
	err := dao.DB.WithContext(ctx).
		Where("seller = ? and active = ?", seller, true).
		Order("id asc").
		Find(&listings).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on query listings by seller")
	}
	return listings, nil
}

// QueryActiveListingsPage pages over active records in ascending id order.
// Offsets beyond the end return an empty page, never an error.
func (dao *Dao) QueryActiveListingsPage(ctx context.Context, offset, limit int) ([]entity.Listing, error) {
	var listings []entity.Listing
	err := dao.DB.WithContext(ctx).
		Where("active = ?", true).
		Order("id asc").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on query listings page")
	}
	return listings, nil
}

func (dao *Dao) CountActiveListings(ctx context.Context) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Model(&entity.Listing{}).
		Where("active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed on count active listings")
	}
	return count, nil
}
