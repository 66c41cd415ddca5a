package service

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/svc"

	"go.uber.org/zap"
)

// CreateCollection deploys a shared-base-URI collection for the creator.
func CreateCollection(ctx context.Context, serverCtx *svc.ServerCtx, param entity.CreateCollectionParam) (*entity.CreateCollectionRes, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindCreateCollection, param)
	if err != nil {
		return nil, err
	}
	col, opErr := serverCtx.Deployer.CreateCollection(ctx, param)
	finalizeTx(ctx, serverCtx, txID, opErr, col)
	if opErr != nil {
		return nil, opErr
	}
	if err := recordCollectionCreated(ctx, serverCtx, col); err != nil {
		zap.L().Error("failed on record collection activity", zap.Error(err))
	}
	return &entity.CreateCollectionRes{Address: col.Address, TxID: txID}, nil
}

// CreateSingleCollection deploys a single-metadata-variant collection.
func CreateSingleCollection(ctx context.Context, serverCtx *svc.ServerCtx, param entity.CreateCollectionParam) (*entity.CreateCollectionRes, error) {
	txID, err := beginTx(ctx, serverCtx, entity.TxKindCreateCollection, param)
	if err != nil {
		return nil, err
	}
	col, opErr := serverCtx.Deployer.CreateSingleCollection(ctx, param.Creator, param.Name, param.Symbol, param.MaxSupply, param.RoyaltyBps)
	finalizeTx(ctx, serverCtx, txID, opErr, col)
	if opErr != nil {
		return nil, opErr
	}
	if err := recordCollectionCreated(ctx, serverCtx, col); err != nil {
		zap.L().Error("failed on record collection activity", zap.Error(err))
	}
	return &entity.CreateCollectionRes{Address: col.Address, TxID: txID}, nil
}

func recordCollectionCreated(ctx context.Context, serverCtx *svc.ServerCtx, col *entity.Collection) error {
	return serverCtx.Dao.CreateActivity(ctx, &entity.Activity{
		Type:              entity.ActivityCollectionCreated,
		CollectionAddress: col.Address,
		Maker:             col.Owner,
		EventTime:         col.CreatedAt,
	})
}

func GetCollection(ctx context.Context, serverCtx *svc.ServerCtx, address string) (*entity.Collection, error) {
	return serverCtx.Dao.GetCollection(ctx, address)
}

// GetCollections enumerates the registry; creator may be empty for the
// global view.
func GetCollections(ctx context.Context, serverCtx *svc.ServerCtx, creator string, page, pageSize int) ([]entity.Collection, int64, error) {
	if pageSize <= 0 || pageSize > serverCtx.C.Api.MaxNum {
		pageSize = serverCtx.C.Api.MaxNum
	}
	if page <= 0 {
		page = 1
	}
	return serverCtx.Deployer.Collections(ctx, creator, page, pageSize)
}

func GetCollectionCount(ctx context.Context, serverCtx *svc.ServerCtx, creator string) (int64, error) {
	return serverCtx.Deployer.Count(ctx, creator)
}
