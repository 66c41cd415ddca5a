package main

import (
	"flag"

	"NFTMarketBackend/src/app"
	"NFTMarketBackend/src/config"
	"NFTMarketBackend/src/router"
	"NFTMarketBackend/src/svc"
)

const (
	defaultConfigPath = "./config/config.toml"
)

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()
	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	if c.Market.FeeRecipient == "" {
		panic("invalid market config: fee_recipient is required")
	}

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	r := router.NewRouter(serverCtx)
	platform := app.NewPlatform(c, r, serverCtx)
	platform.Start()
}
