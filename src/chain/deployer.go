package chain

import (
	"context"
	"sync"
	"time"

	"NFTMarketBackend/src/dao"
	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Deployer stamps out independently owned collections of the shared-base-URI
// variant and indexes them by creator. The registry is append-only.
type Deployer struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewDeployer(db *gorm.DB) *Deployer {
	return &Deployer{db: db}
}

// EnsureTemplate seeds the canonical clone template once. It is never a
// usable collection (supply cap 1, zero royalty) and every enumeration
// excludes it.
func (dep *Deployer) EnsureTemplate(ctx context.Context) error {
	dep.mu.Lock()
	defer dep.mu.Unlock()
	d := dao.New(ctx, dep.db)
	template, err := d.GetTemplate(ctx)
	if err != nil {
		return err
	}
	if template != nil {
		return nil
	}
	return d.CreateCollection(ctx, &entity.Collection{
		Address:    utils.NewAddress(),
		Name:       "__template__",
		Symbol:     "TPL",
		Owner:      EscrowAddress,
		Variant:    entity.VariantCollection,
		MaxSupply:  1,
		MintPrice:  decimal.Zero,
		IsTemplate: true,
		CreatedAt:  time.Now(),
	})
}

// CreateCollection validates and deploys a new collection owned by the
// creator, appending it to the registry.
func (dep *Deployer) CreateCollection(ctx context.Context, param entity.CreateCollectionParam) (*entity.Collection, error) {
	if param.Creator == "" || param.Name == "" || param.Symbol == "" {
		return nil, errcode.ErrInvalidParams
	}
	if param.RoyaltyBps < 0 || param.RoyaltyBps > entity.MaxRoyaltyBps {
		return nil, errcode.ErrInvalidRoyaltyPercentage
	}
	if param.MaxSupply == 0 {
		return nil, errcode.ErrInvalidMaxSupply
	}
	if param.MintPrice.IsNegative() {
		return nil, errcode.ErrInvalidPrice
	}
	if param.OwnerReserve > param.MaxSupply {
		return nil, errcode.ErrInvalidMaxSupply
	}

	col := &entity.Collection{
		Address:         utils.NewAddress(),
		Name:            param.Name,
		Symbol:          param.Symbol,
		Owner:           param.Creator,
		Variant:         entity.VariantCollection,
		BaseURI:         param.BaseURI,
		MaxSupply:       param.MaxSupply,
		RoyaltyReceiver: param.Creator,
		RoyaltyBps:      param.RoyaltyBps,
		MintPrice:       param.MintPrice,
		MaxPerWallet:    param.MaxPerWallet,
		OwnerReserve:    param.OwnerReserve,
		CreatedAt:       time.Now(),
	}

	dep.mu.Lock()
	defer dep.mu.Unlock()
	err := dep.db.Transaction(func(tx *gorm.DB) error {
		return dao.New(ctx, tx).CreateCollection(ctx, col)
	})
	if err != nil {
		return nil, err
	}
	return col, nil
}

// CreateSingleCollection deploys a single-metadata-variant collection. Those
// are not produced by the clone factory but share the registry.
func (dep *Deployer) CreateSingleCollection(ctx context.Context, creator, name, symbol string, maxSupply uint64, royaltyBps int64) (*entity.Collection, error) {
	if creator == "" || name == "" || symbol == "" {
		return nil, errcode.ErrInvalidParams
	}
	if royaltyBps < 0 || royaltyBps > entity.MaxRoyaltyBps {
		return nil, errcode.ErrInvalidRoyaltyPercentage
	}
	if maxSupply == 0 {
		return nil, errcode.ErrInvalidMaxSupply
	}

	col := &entity.Collection{
		Address:         utils.NewAddress(),
		Name:            name,
		Symbol:          symbol,
		Owner:           creator,
		Variant:         entity.VariantSingle,
		MaxSupply:       maxSupply,
		RoyaltyReceiver: creator,
		RoyaltyBps:      royaltyBps,
		MintPrice:       decimal.Zero,
		CreatedAt:       time.Now(),
	}

	dep.mu.Lock()
	defer dep.mu.Unlock()
	err := dep.db.Transaction(func(tx *gorm.DB) error {
		return dao.New(ctx, tx).CreateCollection(ctx, col)
	})
	if err != nil {
		return nil, err
	}
	return col, nil
}

// Collections lists registry rows in insertion order; creator may be empty
// for the global view. The template never appears.
func (dep *Deployer) Collections(ctx context.Context, creator string, page, pageSize int) ([]entity.Collection, int64, error) {
	return dao.New(ctx, dep.db).QueryCollections(ctx, creator, page, pageSize)
}

func (dep *Deployer) Count(ctx context.Context, creator string) (int64, error) {
	return dao.New(ctx, dep.db).CountCollections(ctx, creator)
}
