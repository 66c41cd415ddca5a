package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing is the escrow record for one (collection, token) key. Rows are
// never deleted: a terminal listing stays in place with Active=false until a
// re-list overwrites the slot. ID ordering is the pagination order.
type Listing struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"listing_id"`
	CollectionAddress string          `gorm:"column:collection_address;size:64;uniqueIndex:idx_listing_key,priority:1;index:idx_listing_collection" json:"collection_address"`
	TokenID           uint64          `gorm:"column:token_id;uniqueIndex:idx_listing_key,priority:2" json:"token_id"`
	Seller            string          `gorm:"column:seller;index;size:64" json:"seller"`
	Price             decimal.Decimal `gorm:"column:price;type:decimal(65,0)" json:"price"`
	Active            bool            `gorm:"column:active;index" json:"active"`
	CreatedAt         time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Listing) TableName() string { return "listings" }

type ListParam struct {
	Caller            string          `json:"caller"`
	CollectionAddress string          `json:"collection_address"`
	TokenID           uint64          `json:"token_id"`
	Price             decimal.Decimal `json:"price"`
}

type CancelParam struct {
	Caller            string `json:"caller"`
	CollectionAddress string `json:"collection_address"`
	TokenID           uint64 `json:"token_id"`
}

type BuyParam struct {
	Caller            string          `json:"caller"`
	CollectionAddress string          `json:"collection_address"`
	TokenID           uint64          `json:"token_id"`
	Paid              decimal.Decimal `json:"paid"`
}

// Settlement is the value split of one completed purchase.
type Settlement struct {
	Buyer           string          `json:"buyer"`
	Seller          string          `json:"seller"`
	Price           decimal.Decimal `json:"price"`
	RoyaltyReceiver string          `json:"royalty_receiver,omitempty"`
	RoyaltyAmount   decimal.Decimal `json:"royalty_amount"`
	MarketplaceFee  decimal.Decimal `json:"marketplace_fee"`
	SellerProceeds  decimal.Decimal `json:"seller_proceeds"`
	Refund          decimal.Decimal `json:"refund"`
}

type MarketOpRes struct {
	TxID       string      `json:"tx_id"`
	Settlement *Settlement `json:"settlement,omitempty"`
}

type ListingRes struct {
	Result interface{} `json:"result"`
}

type ListingPageRes struct {
	Result interface{} `json:"result"`
	Count  int64       `json:"count"`
}
