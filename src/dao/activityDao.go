package dao

import (
	"context"

	"NFTMarketBackend/src/entity"

	"github.com/pkg/errors"
)

func (dao *Dao) CreateActivity(ctx context.Context, activity *entity.Activity) error {
	if err := dao.DB.WithContext(ctx).Create(activity).Error; err != nil {
		return errors.Wrap(err, "failed on create activity")
	}
	return nil
}

// QueryActivities pages over the event log, newest first.
func (dao *Dao) QueryActivities(ctx context.Context, filter entity.ActivityFilterParam) ([]entity.Activity, int64, error) {
	tx := dao.DB.WithContext(ctx).Model(&entity.Activity{})
	if filter.CollectionAddress != "" {
		tx = tx.Where("collection_address = ?", filter.CollectionAddress)
	}
	if len(filter.Types) > 0 {
		tx = tx.Where("type in ?", filter.Types)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed on count activities")
	}

	var activities []entity.Activity
	err := tx.Order("id desc").
		Limit(filter.PageSize).
		Offset(filter.PageSize * (filter.Page - 1)).
		Find(&activities).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed on query activities")
	}
	return activities, count, nil
}
