package entity

import "time"

// Asset is one minted token. Token ids are dense per collection, starting
// at 1, and never reused.
type Asset struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	CollectionAddress string    `gorm:"column:collection_address;size:64;uniqueIndex:idx_asset_key,priority:1" json:"collection_address"`
	TokenID           uint64    `gorm:"column:token_id;uniqueIndex:idx_asset_key,priority:2" json:"token_id"`
	Owner             string    `gorm:"column:owner;index;size:64" json:"owner"`
	TokenURI          string    `gorm:"column:token_uri;size:512" json:"token_uri"`
	Approved          string    `gorm:"column:approved;size:64" json:"approved"`
	MintedAt          time.Time `gorm:"column:minted_at" json:"minted_at"`
}

func (Asset) TableName() string { return "assets" }

// OperatorApproval is a blanket approval from an owner to an operator,
// scoped to one collection.
type OperatorApproval struct {
	ID                int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	CollectionAddress string `gorm:"column:collection_address;size:64;uniqueIndex:idx_approval_key,priority:1" json:"collection_address"`
	Owner             string `gorm:"column:owner;size:64;uniqueIndex:idx_approval_key,priority:2" json:"owner"`
	Operator          string `gorm:"column:operator;size:64;uniqueIndex:idx_approval_key,priority:3" json:"operator"`
	Approved          bool   `gorm:"column:approved" json:"approved"`
}

func (OperatorApproval) TableName() string { return "operator_approvals" }

type MintSingleParam struct {
	Caller    string `json:"caller"`
	Recipient string `json:"recipient"`
	TokenURI  string `json:"token_uri"`
}

type MintBatchParam struct {
	Caller    string `json:"caller"`
	Recipient string `json:"recipient"`
	Quantity  uint64 `json:"quantity"`
}

type PublicMintParam struct {
	Caller   string `json:"caller"`
	Quantity uint64 `json:"quantity"`
	Paid     string `json:"paid"`
}

type ReserveMintParam struct {
	Caller    string `json:"caller"`
	Recipient string `json:"recipient"`
	Quantity  uint64 `json:"quantity"`
}

type SetTokenURIsParam struct {
	Caller   string   `json:"caller"`
	TokenIDs []uint64 `json:"token_ids"`
	URIs     []string `json:"uris"`
}

type SetSaleActiveParam struct {
	Caller string `json:"caller"`
	Active bool   `json:"active"`
}

type ApproveParam struct {
	Caller   string `json:"caller"`
	Operator string `json:"operator"`
	TokenID  uint64 `json:"token_id"`
}

type ApprovalForAllParam struct {
	Caller   string `json:"caller"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

type MintRes struct {
	TokenIDs []uint64 `json:"token_ids"`
	TxID     string   `json:"tx_id"`
}

type RoyaltyInfoRes struct {
	Receiver string `json:"receiver"`
	Amount   string `json:"amount"`
}

type TokenURIRes struct {
	TokenURI string `json:"token_uri"`
}
