package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity event types.
const (
	ActivityCollectionCreated = "collection_created"
	ActivityMinted            = "minted"
	ActivityListed            = "listed"
	ActivityCancelled         = "cancelled"
	ActivityPurchased         = "purchased"
)

// Activity is the append-only event log. Purchased rows carry the full
// settlement split so the history is auditable without replaying state.
type Activity struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Type              string          `gorm:"column:type;index;size:32" json:"type"`
	CollectionAddress string          `gorm:"column:collection_address;index;size:64" json:"collection_address"`
	TokenID           uint64          `gorm:"column:token_id" json:"token_id"`
	Maker             string          `gorm:"column:maker;index;size:64" json:"maker"`
	Taker             string          `gorm:"column:taker;size:64" json:"taker,omitempty"`
	Price             decimal.Decimal `gorm:"column:price;type:decimal(65,0)" json:"price"`
	RoyaltyAmount     decimal.Decimal `gorm:"column:royalty_amount;type:decimal(65,0)" json:"royalty_amount"`
	MarketplaceFee    decimal.Decimal `gorm:"column:marketplace_fee;type:decimal(65,0)" json:"marketplace_fee"`
	EventTime         time.Time       `gorm:"column:event_time;index" json:"event_time"`
}

func (Activity) TableName() string { return "activities" }

type ActivityFilterParam struct {
	CollectionAddress string   `json:"collection_address"`
	Types             []string `json:"types"`
	Page              int      `json:"page"`
	PageSize          int      `json:"page_size"`
}

type ActivityListRes struct {
	Result interface{} `json:"result"`
	Count  int64       `json:"count"`
}
