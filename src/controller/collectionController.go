package controller

import (
	"strconv"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/service"
	"NFTMarketBackend/src/svc"
	"NFTMarketBackend/src/xhttp"

	"github.com/gin-gonic/gin"
)

// CreateCollectionHandler deploys a shared-base-URI collection; the ?variant
// query selects the single-metadata factory instead.
func CreateCollectionHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var param entity.CreateCollectionParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		var res *entity.CreateCollectionRes
		var err error
		if c.Query("variant") == entity.VariantSingle {
			res, err = service.CreateSingleCollection(c.Request.Context(), serverCtx, param)
		} else {
			res, err = service.CreateCollection(c.Request.Context(), serverCtx, param)
		}
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func CollectionDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		col, err := service.GetCollection(c.Request.Context(), serverCtx, address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, col)
	}
}

// CollectionsHandler enumerates the registry; ?creator= narrows to one
// creator's deployments.
func CollectionsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
		cols, count, err := service.GetCollections(c.Request.Context(), serverCtx, c.Query("creator"), page, pageSize)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, entity.CollectionListRes{Result: cols, Count: count})
	}
}

func CollectionCountHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := service.GetCollectionCount(c.Request.Context(), serverCtx, c.Query("creator"))
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, gin.H{"count": count})
	}
}
