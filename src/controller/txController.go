package controller

import (
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/service"
	"NFTMarketBackend/src/svc"
	"NFTMarketBackend/src/xhttp"

	"github.com/gin-gonic/gin"
)

// TransactionStatusHandler serves finality polling for state-changing
// operations.
func TransactionStatusHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")
		if id == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		tx, err := service.GetTransaction(c.Request.Context(), serverCtx, id)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, tx)
	}
}
