package router

import (
	"NFTMarketBackend/src/controller"
	"NFTMarketBackend/src/middleware"
	"NFTMarketBackend/src/svc"

	"github.com/gin-gonic/gin"
)

func initV1Route(router *gin.Engine, serverCtx *svc.ServerCtx) {
	apiV1 := router.Group("/api/v1")

	collections := apiV1.Group("/collections")
	collections.POST("", controller.CreateCollectionHandler(serverCtx))                        // deploy a collection
	collections.GET("", controller.CollectionsHandler(serverCtx))                              // registry, optionally by creator
	collections.GET("/count", controller.CollectionCountHandler(serverCtx))                    // registry size
	collections.GET("/:address", controller.CollectionDetailHandler(serverCtx))                // collection detail
	collections.POST("/:address/mint", controller.MintSingleHandler(serverCtx))                // owner mint, per-token URI
	collections.POST("/:address/mint-batch", controller.MintBatchHandler(serverCtx))           // owner batch mint
	collections.POST("/:address/public-mint", controller.PublicMintHandler(serverCtx))         // sale-gated mint
	collections.POST("/:address/reserve-mint", controller.ReserveMintHandler(serverCtx))       // owner reserve mint
	collections.POST("/:address/token-uris", controller.SetTokenURIsHandler(serverCtx))        // bulk URI backfill
	collections.POST("/:address/sale", controller.SetSaleActiveHandler(serverCtx))             // sale switch
	collections.POST("/:address/approve", controller.ApproveHandler(serverCtx))                // per-token approval
	collections.POST("/:address/approve-all", controller.SetApprovalForAllHandler(serverCtx))  // blanket approval
	collections.GET("/:address/listings", controller.CollectionListingsHandler(serverCtx))     // active listings of a collection
	collections.GET("/:address/:token_id", controller.ListingDetailHandler(serverCtx))         // listing slot by key
	collections.GET("/:address/:token_id/owner", controller.TokenOwnerHandler(serverCtx))      // current holder
	collections.GET("/:address/:token_id/uri", controller.TokenURIHandler(serverCtx))          // metadata reference
	collections.GET("/:address/:token_id/royalty", controller.RoyaltyInfoHandler(serverCtx))   // royalty split preview
	collections.GET("/:address/:token_id/metadata", middleware.CacheApi(serverCtx.KvStore, 60),
		controller.TokenMetadataHandler(serverCtx)) // fetched metadata document

	market := apiV1.Group("/market")
	market.POST("/list", controller.ListNFTHandler(serverCtx))            // escrow + open listing
	market.POST("/cancel", controller.CancelListingHandler(serverCtx))    // close listing, return asset
	market.POST("/buy", controller.BuyNFTHandler(serverCtx))              // settle listing
	market.GET("/listings", controller.ListingsPageHandler(serverCtx))    // active listings, paginated
	market.GET("/listings/count", controller.ListingCountHandler(serverCtx))
	market.GET("/sellers/:seller/listings", controller.SellerListingsHandler(serverCtx))

	accounts := apiV1.Group("/accounts")
	accounts.POST("/:address/deposit", controller.DepositHandler(serverCtx))
	accounts.GET("/:address/balance", controller.BalanceHandler(serverCtx))

	activities := apiV1.Group("/activities")
	activities.GET("", controller.ActivitiesHandler(serverCtx))

	apiV1.GET("/tx/:id", controller.TransactionStatusHandler(serverCtx))
}
