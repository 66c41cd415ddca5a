package dao

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetCollection looks up one collection by address. Returns
// ErrNonexistentCollection when the address is unknown.
func (dao *Dao) GetCollection(ctx context.Context, address string) (*entity.Collection, error) {
	var col entity.Collection
	err := dao.DB.WithContext(ctx).Where("address = ?", address).First(&col).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcode.ErrNonexistentCollection
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on query collection")
	}
	return &col, nil
}

func (dao *Dao) CreateCollection(ctx context.Context, col *entity.Collection) error {
	if err := dao.DB.WithContext(ctx).Create(col).Error; err != nil {
		return errors.Wrap(err, "failed on create collection")
	}
	return nil
}

func (dao *Dao) UpdateCollection(ctx context.Context, col *entity.Collection) error {
	if err := dao.DB.WithContext(ctx).Save(col).Error; err != nil {
		return errors.Wrap(err, "failed on update collection")
	}
	return nil
}

// QueryCollections returns registry rows in insertion order, template rows
// excluded. An empty creator matches every collection.
func (dao *Dao) QueryCollections(ctx context.Context, creator string, page, pageSize int) ([]entity.Collection, int64, error) {
	tx := dao.DB.WithContext(ctx).Model(&entity.Collection{}).Where("is_template = ?", false)
	if creator != "" {
		tx = tx.Where("owner = ?", creator)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed on count collections")
	}

	var cols []entity.Collection
	err := tx.Order("id asc").
		Limit(pageSize).
		Offset(pageSize * (page - 1)).
		Find(&cols).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed on query collections")
	}
	return cols, count, nil
}

func (dao *Dao) CountCollections(ctx context.Context, creator string) (int64, error) {
	tx := dao.DB.WithContext(ctx).Model(&entity.Collection{}).Where("is_template = ?", false)
	if creator != "" {
		tx = tx.Where("owner = ?", creator)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed on count collections")
	}
	return count, nil
}

// GetTemplate fetches the clone template row, if one was seeded.
func (dao *Dao) GetTemplate(ctx context.Context) (*entity.Collection, error) {
	var col entity.Collection
	err := dao.DB.WithContext(ctx).Where("is_template = ?", true).First(&col).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on query template collection")
	}
	return &col, nil
}
