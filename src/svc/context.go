package svc

import (
	"context"

	"NFTMarketBackend/src/chain"
	"NFTMarketBackend/src/config"
	"NFTMarketBackend/src/dao"
	"NFTMarketBackend/src/db"
	"NFTMarketBackend/src/log"
	"NFTMarketBackend/src/metadata"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/kv"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"gorm.io/gorm"
)

type ServerCtx struct {
	C        *config.Config
	DB       *gorm.DB
	Dao      *dao.Dao
	KvStore  kv.Store
	Issuer   *chain.Issuer
	Deployer *chain.Deployer
	Market   *chain.Marketplace
	Metadata *metadata.Fetcher
}

func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	log.NewLogger(c.Log.Path, c.Log.Debug)

	var store kv.Store
	if c.Kv != nil && len(c.Kv.Redis) > 0 {
		var kvConf kv.KvConf
		for _, con := range c.Kv.Redis {
			kvConf = append(kvConf, cache.NodeConf{
				RedisConf: redis.RedisConf{
					Host: con.Host,
					Type: con.Type,
					Pass: con.Pass,
				},
				Weight: 1,
			})
		}
		store = kv.NewStore(kvConf)
	}

	gdb, err := db.NewDB(&c.DB)
	if err != nil {
		return nil, err
	}

	serverCtx := New(c, gdb)
	serverCtx.KvStore = store
	if err := serverCtx.Deployer.EnsureTemplate(context.Background()); err != nil {
		return nil, err
	}
	return serverCtx, nil
}

// New wires the ledger components onto one database handle. Split out from
// NewServiceContext so tests can inject their own db.
func New(c *config.Config, gdb *gorm.DB) *ServerCtx {
	d := dao.New(context.Background(), gdb)
	issuer := chain.NewIssuer(gdb, chain.AccountLedger)
	deployer := chain.NewDeployer(gdb)
	market := chain.NewMarketplace(gdb, issuer.Resolve, chain.AccountLedger, c.Market.FeeRecipient)

	return &ServerCtx{
		C:        c,
		DB:       gdb,
		Dao:      d,
		Issuer:   issuer,
		Deployer: deployer,
		Market:   market,
		Metadata: metadata.NewFetcher(c.Metadata),
	}
}
