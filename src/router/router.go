package router

import (
	"NFTMarketBackend/src/middleware"
	"NFTMarketBackend/src/svc"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func NewRouter(serverCtx *svc.ServerCtx) *gin.Engine {
	gin.ForceConsoleColor()
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.RLog())
	router.Use(middleware.Cors())
	if serverCtx.C.Api.Debug {
		pprof.Register(router)
	}
	initV1Route(router, serverCtx)
	return router
}
