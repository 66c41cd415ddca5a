package controller

import (
	"strconv"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/service"
	"NFTMarketBackend/src/svc"
	"NFTMarketBackend/src/xhttp"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func collectionParam(c *gin.Context) (string, bool) {
	address := c.Params.ByName("address")
	if address == "" {
		xhttp.Error(c, errcode.ErrInvalidParams)
		return "", false
	}
	return address, true
}

func tokenIDParam(c *gin.Context) (uint64, bool) {
	tokenID, err := strconv.ParseUint(c.Params.ByName("token_id"), 10, 64)
	if err != nil {
		xhttp.Error(c, errcode.ErrInvalidParams)
		return 0, false
	}
	return tokenID, true
}

func MintSingleHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		var param entity.MintSingleParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.MintSingle(c.Request.Context(), serverCtx, address, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func MintBatchHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		var param entity.MintBatchParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.MintBatch(c.Request.Context(), serverCtx, address, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func PublicMintHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		var param entity.PublicMintParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.PublicMint(c.Request.Context(), serverCtx, address, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func ReserveMintHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		var param entity.ReserveMintParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.ReserveMint(c.Request.Context(), serverCtx, address, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func SetTokenURIsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		var param entity.SetTokenURIsParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		txID, err := service.SetTokenURIs(c.Request.Context(), serverCtx, address, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, gin.H{"tx_id": txID})
	}
}

func SetSaleActiveHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		var param entity.SetSaleActiveParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		txID, err := service.SetSaleActive(c.Request.Context(), serverCtx, address, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, gin.H{"tx_id": txID})
	}
}

func ApproveHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		var param entity.ApproveParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		txID, err := service.Approve(c.Request.Context(), serverCtx, address, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, gin.H{"tx_id": txID})
	}
}

func SetApprovalForAllHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		var param entity.ApprovalForAllParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		txID, err := service.SetApprovalForAll(c.Request.Context(), serverCtx, address, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, gin.H{"tx_id": txID})
	}
}

func RoyaltyInfoHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		tokenID, ok := tokenIDParam(c)
		if !ok {
			return
		}
		salePrice, err := decimal.NewFromString(c.Query("sale_price"))
		if err != nil || salePrice.IsNegative() {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetRoyaltyInfo(c.Request.Context(), serverCtx, address, tokenID, salePrice)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func TokenURIHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		tokenID, ok := tokenIDParam(c)
		if !ok {
			return
		}
		res, err := service.GetTokenURI(c.Request.Context(), serverCtx, address, tokenID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// TokenMetadataHandler serves the fetched metadata document; ?refresh=true
// bypasses the cache.
func TokenMetadataHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		tokenID, ok := tokenIDParam(c)
		if !ok {
			return
		}
		refresh := c.Query("refresh") == "true"
		doc, err := service.GetTokenMetadata(c.Request.Context(), serverCtx, address, tokenID, refresh)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, doc)
	}
}

func TokenOwnerHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := collectionParam(c)
		if !ok {
			return
		}
		tokenID, ok := tokenIDParam(c)
		if !ok {
			return
		}
		owner, err := service.GetOwner(c.Request.Context(), serverCtx, address, tokenID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, gin.H{"owner": owner})
	}
}
