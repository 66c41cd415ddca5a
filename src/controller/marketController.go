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

func ListNFTHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var param entity.ListParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.ListNFT(c.Request.Context(), serverCtx, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func CancelListingHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var param entity.CancelParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.CancelListing(c.Request.Context(), serverCtx, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func BuyNFTHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var param entity.BuyParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.BuyNFT(c.Request.Context(), serverCtx, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// ListingDetailHandler returns the record in a slot, terminal records
// included; unknown slots yield a null result.
func ListingDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		tokenID, ok := tokenIDParam(c)
		if !ok {
			return
		}
		listing, err := service.GetListing(c.Request.Context(), serverCtx, address, tokenID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, entity.ListingRes{Result: listing})
	}
}

func CollectionListingsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		listings, err := service.GetCollectionListings(c.Request.Context(), serverCtx, address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, entity.ListingRes{Result: listings})
	}
}

func SellerListingsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := c.Params.ByName("seller")
		if seller == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		listings, err := service.GetSellerListings(c.Request.Context(), serverCtx, seller)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, entity.ListingRes{Result: listings})
	}
}

// ListingsPageHandler pages active listings in ascending listing-id order.
func ListingsPageHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		listings, count, err := service.GetListingsPage(c.Request.Context(), serverCtx, offset, limit)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, entity.ListingPageRes{Result: listings, Count: count})
	}
}

func ListingCountHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := service.GetActiveListingCount(c.Request.Context(), serverCtx)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, gin.H{"count": count})
	}
}
