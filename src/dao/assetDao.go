package dao

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (dao *Dao) GetAsset(ctx context.Context, collectionAddr string, tokenID uint64) (*entity.Asset, error) {
	var asset entity.Asset
	err := dao.DB.WithContext(ctx).
		Where("collection_address = ? and token_id = ?", collectionAddr, tokenID).
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcode.ErrNonexistentToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on query asset")
	}
	return &asset, nil
}

func (dao *Dao) CreateAssets(ctx context.Context, assets []entity.Asset) error {
	if err := dao.DB.WithContext(ctx).Create(&assets).Error; err != nil {
		return errors.Wrap(err, "failed on create assets")
	}
	return nil
}

func (dao *Dao) UpdateAsset(ctx context.Context, asset *entity.Asset) error {
	if err := dao.DB.WithContext(ctx).Save(asset).Error; err != nil {
		return errors.Wrap(err, "failed on update asset")
	}
	return nil
}

// CountOwned counts tokens of one collection held by owner; the per-wallet
// public-sale cap reads this.
func (dao *Dao) CountOwned(ctx context.Context, collectionAddr, owner string) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Model(&entity.Asset{}).
		Where("collection_address = ? and owner = ?", collectionAddr, owner).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed on count owned assets")
	}
	return count, nil
}

func (dao *Dao) QueryAssetsByOwner(ctx context.Context, collectionAddr, owner string) ([]entity.Asset, error) {
	var assets []entity.Asset
	err := dao.DB.WithContext(ctx).
		Where("collection_address = ? and owner = ?", collectionAddr, owner).
		Order("token_id asc").
		Find(&assets).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on query assets by owner")
	}
	return assets, nil
}

// UpsertOperatorApproval records or flips a blanket approval.
func (dao *Dao) UpsertOperatorApproval(ctx context.Context, approval *entity.OperatorApproval) error {
	err := dao.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_address"}, {Name: "owner"}, {Name: "operator"}},
		DoUpdates: clause.AssignmentColumns([]string{"approved"}),
	}).Create(approval).Error
	if err != nil {
		return errors.Wrap(err, "failed on upsert operator approval")
	}
	return nil
}

func (dao *Dao) GetOperatorApproval(ctx context.Context, collectionAddr, owner, operator string) (bool, error) {
	var approval entity.OperatorApproval
	err := dao.DB.WithContext(ctx).
		Where("collection_address = ? and owner = ? and operator = ?", collectionAddr, owner, operator).
		First(&approval).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed on query operator approval")
	}
	return approval.Approved, nil
}
