package entity

import "time"

// Transaction finality states surfaced to polling callers.
const (
	TxStatusPending   = "pending"
	TxStatusConfirmed = "confirmed"
	TxStatusFailed    = "failed"
)

// Transaction kinds.
const (
	TxKindCreateCollection = "create_collection"
	TxKindMint             = "mint"
	TxKindSetTokenURIs     = "set_token_uris"
	TxKindSetSaleActive    = "set_sale_active"
	TxKindApprove          = "approve"
	TxKindList             = "list"
	TxKindCancel           = "cancel"
	TxKindBuy              = "buy"
	TxKindDeposit          = "deposit"
)

// Transaction records one state-changing operation. Status moves
// pending -> confirmed | failed and never back.
type Transaction struct {
	ID          string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	Kind        string     `gorm:"column:kind;size:32" json:"kind"`
	Status      string     `gorm:"column:status;size:16" json:"status"`
	ErrCode     int        `gorm:"column:err_code" json:"err_code,omitempty"`
	ErrMsg      string     `gorm:"column:err_msg;size:256" json:"err_msg,omitempty"`
	Payload     string     `gorm:"column:payload;type:text" json:"payload,omitempty"`
	Result      string     `gorm:"column:result;type:text" json:"result,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	FinalizedAt *time.Time `gorm:"column:finalized_at" json:"finalized_at,omitempty"`
}

func (Transaction) TableName() string { return "transactions" }
