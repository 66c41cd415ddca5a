package service

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/svc"
)

// GetActivities pages the event log, newest first.
func GetActivities(ctx context.Context, serverCtx *svc.ServerCtx, filter entity.ActivityFilterParam) ([]entity.Activity, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > serverCtx.C.Api.MaxNum {
		filter.PageSize = serverCtx.C.Api.MaxNum
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	return serverCtx.Dao.QueryActivities(ctx, filter)
}
