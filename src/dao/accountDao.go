package dao

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (dao *Dao) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var account entity.Account
	err := dao.DB.WithContext(ctx).Where("address = ?", address).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed on query account")
	}
	return account.Balance, nil
}

// Credit adds amount to an account, creating the row on first touch.
func (dao *Dao) Credit(ctx context.Context, address string, amount decimal.Decimal) error {
	var account entity.Account
	err := dao.DB.WithContext(ctx).Where("address = ?", address).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = entity.Account{Address: address, Balance: amount}
		if err := dao.DB.WithContext(ctx).Create(&account).Error; err != nil {
			return errors.Wrap(err, "failed on create account")
		}
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed on query account")
	}
	account.Balance = account.Balance.Add(amount)
	if err := dao.DB.WithContext(ctx).Save(&account).Error; err != nil {
		return errors.Wrap(err, "failed on credit account")
	}
	return nil
}

// Debit removes amount from an account; ErrInsufficientFunds when the
// balance does not cover it.
func (dao *Dao) Debit(ctx context.Context, address string, amount decimal.Decimal) error {
	var account entity.Account
	err := dao.DB.WithContext(ctx).Where("address = ?", address).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errcode.ErrInsufficientFunds
	}
	if err != nil {
		return errors.Wrap(err, "failed on query account")
	}
	if account.Balance.LessThan(amount) {
		return errcode.ErrInsufficientFunds
	}
	account.Balance = account.Balance.Sub(amount)
	if err := dao.DB.WithContext(ctx).Save(&account).Error; err != nil {
		return errors.Wrap(err, "failed on debit account")
	}
	return nil
}
