package dao

import (
	"context"
	"time"

	"NFTMarketBackend/src/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (dao *Dao) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	if err := dao.DB.WithContext(ctx).Create(tx).Error; err != nil {
		return errors.Wrap(err, "failed on create transaction record")
	}
	return nil
}

func (dao *Dao) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := dao.DB.WithContext(ctx).Where("id = ?", id).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on query transaction record")
	}
	return &tx, nil
}

// FinalizeTransaction moves a pending record to its terminal status.
func (dao *Dao) FinalizeTransaction(ctx context.Context, id, status string, errCode int, errMsg, result string) error {
	now := time.Now()
	err := dao.DB.WithContext(ctx).Model(&entity.Transaction{}).
		Where("id = ? and status = ?", id, entity.TxStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"err_code":     errCode,
			"err_msg":      errMsg,
			"result":       result,
			"finalized_at": &now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on finalize transaction record")
	}
	return nil
}
