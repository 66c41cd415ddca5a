package service

import (
	"context"
	"encoding/json"
	"time"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/svc"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// beginTx opens a pending transaction record before a state-changing
// operation runs. The record is written outside the operation's own database
// transaction so a failed operation still leaves an auditable failed record.
func beginTx(ctx context.Context, serverCtx *svc.ServerCtx, kind string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed on marshal tx payload")
	}
	id := uuid.NewString()
	err = serverCtx.Dao.CreateTransaction(ctx, &entity.Transaction{
		ID:        id,
		Kind:      kind,
		Status:    entity.TxStatusPending,
		Payload:   string(body),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// finalizeTx settles the record to confirmed or failed. Finalization errors
// are logged, not propagated: the operation's own outcome wins.
func finalizeTx(ctx context.Context, serverCtx *svc.ServerCtx, id string, opErr error, result interface{}) {
	status := entity.TxStatusConfirmed
	errCode, errMsg, resultBody := 0, "", ""
	if opErr != nil {
		status = entity.TxStatusFailed
		coded := errcode.ErrUnexpected
		var e *errcode.Err
		if errors.As(opErr, &e) {
			coded = e
		}
		errCode = coded.Code()
		errMsg = coded.Msg()
	} else if result != nil {
		if body, err := json.Marshal(result); err == nil {
			resultBody = string(body)
		}
	}
	if err := serverCtx.Dao.FinalizeTransaction(ctx, id, status, errCode, errMsg, resultBody); err != nil {
		zap.L().Error("failed on finalize transaction record", zap.String("tx_id", id), zap.Error(err))
	}
}

// GetTransaction serves finality polling.
func GetTransaction(ctx context.Context, serverCtx *svc.ServerCtx, id string) (*entity.Transaction, error) {
	tx, err := serverCtx.Dao.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, errcode.ErrInvalidParams
	}
	return tx, nil
}
