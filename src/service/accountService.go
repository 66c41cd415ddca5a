package service

import (
	"context"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/svc"

	"github.com/shopspring/decimal"
)

// Deposit funds an account. This stands in for base-currency acquisition,
// which is outside the settlement protocol.
func Deposit(ctx context.Context, serverCtx *svc.ServerCtx, address string, amount decimal.Decimal) (*entity.MarketOpRes, error) {
	if !amount.IsPositive() {
		return nil, errcode.ErrInvalidParams
	}
	txID, err := beginTx(ctx, serverCtx, entity.TxKindDeposit, map[string]string{
		"address": address,
		"amount":  amount.String(),
	})
	if err != nil {
		return nil, err
	}
	opErr := serverCtx.Dao.Credit(ctx, address, amount)
	finalizeTx(ctx, serverCtx, txID, opErr, nil)
	if opErr != nil {
		return nil, opErr
	}
	return &entity.MarketOpRes{TxID: txID}, nil
}

func GetBalance(ctx context.Context, serverCtx *svc.ServerCtx, address string) (*entity.BalanceRes, error) {
	balance, err := serverCtx.Dao.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}
	return &entity.BalanceRes{Address: address, Balance: balance}, nil
}
