package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection variants. The single variant stores one metadata URI per token
// and only the owner mints; the collection variant derives URIs from a shared
// base URI and sells through the public mint path.
const (
	VariantSingle     = "single"
	VariantCollection = "collection"
)

// MaxRoyaltyBps caps configurable royalties at 10%.
const MaxRoyaltyBps = 1000

// Collection is one deployed asset-issuer instance. Rows are append-only;
// the registry is a projection of this table.
type Collection struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	Address         string          `gorm:"column:address;uniqueIndex;size:64" json:"address"`
	Name            string          `gorm:"column:name;size:128" json:"name"`
	Symbol          string          `gorm:"column:symbol;size:32" json:"symbol"`
	Owner           string          `gorm:"column:owner;index;size:64" json:"owner"`
	Variant         string          `gorm:"column:variant;size:16" json:"variant"`
	BaseURI         string          `gorm:"column:base_uri;size:512" json:"base_uri"`
	MaxSupply       uint64          `gorm:"column:max_supply" json:"max_supply"`
	MintedCount     uint64          `gorm:"column:minted_count" json:"minted_count"`
	RoyaltyReceiver string          `gorm:"column:royalty_receiver;size:64" json:"royalty_receiver"`
	RoyaltyBps      int64           `gorm:"column:royalty_bps" json:"royalty_bps"`
	SaleActive      bool            `gorm:"column:sale_active" json:"sale_active"`
	MintPrice       decimal.Decimal `gorm:"column:mint_price;type:decimal(65,0)" json:"mint_price"`
	MaxPerWallet    uint64          `gorm:"column:max_per_wallet" json:"max_per_wallet"`
	OwnerReserve    uint64          `gorm:"column:owner_reserve" json:"owner_reserve"`
	IsTemplate      bool            `gorm:"column:is_template" json:"-"`
	CreatedAt       time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Collection) TableName() string { return "collections" }

// CreateCollectionParam is the request body for deploying a new collection.
type CreateCollectionParam struct {
	Creator      string          `json:"creator"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	BaseURI      string          `json:"base_uri"`
	MaxSupply    uint64          `json:"max_supply"`
	RoyaltyBps   int64           `json:"royalty_bps"`
	MintPrice    decimal.Decimal `json:"mint_price"`
	MaxPerWallet uint64          `json:"max_per_wallet"`
	OwnerReserve uint64          `json:"owner_reserve"`
}

type CreateCollectionRes struct {
	Address string `json:"address"`
	TxID    string `json:"tx_id"`
}

type CollectionListRes struct {
	Result interface{} `json:"result"`
	Count  int64       `json:"count"`
}
