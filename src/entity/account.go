package entity

import "github.com/shopspring/decimal"

// Account is a funds-ledger balance in base units.
type Account struct {
	ID      int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	Address string          `gorm:"column:address;uniqueIndex;size:64" json:"address"`
	Balance decimal.Decimal `gorm:"column:balance;type:decimal(65,0)" json:"balance"`
}

func (Account) TableName() string { return "accounts" }

type DepositParam struct {
	Amount decimal.Decimal `json:"amount"`
}

type BalanceRes struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}
