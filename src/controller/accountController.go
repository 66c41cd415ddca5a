package controller

import (
	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/service"
	"NFTMarketBackend/src/svc"
	"NFTMarketBackend/src/xhttp"

	"github.com/gin-gonic/gin"
)

func DepositHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		var param entity.DepositParam
		if err := c.ShouldBindJSON(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.Deposit(c.Request.Context(), serverCtx, address, param.Amount)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func BalanceHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetBalance(c.Request.Context(), serverCtx, address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
