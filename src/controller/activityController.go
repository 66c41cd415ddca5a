package controller

import (
	"encoding/json"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/service"
	"NFTMarketBackend/src/svc"
	"NFTMarketBackend/src/xhttp"

	"github.com/gin-gonic/gin"
)

// ActivitiesHandler pages the event log; filters arrive JSON-encoded in the
// ?filters query.
func ActivitiesHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter entity.ActivityFilterParam
		if raw := c.Query("filters"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &filter); err != nil {
				xhttp.Error(c, errcode.ErrInvalidParams)
				return
			}
		}
		activities, count, err := service.GetActivities(c.Request.Context(), serverCtx, filter)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, entity.ActivityListRes{Result: activities, Count: count})
	}
}
