package chain

import (
	"context"

	"NFTMarketBackend/src/dao"
	"NFTMarketBackend/src/errcode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// accountLedger moves value between account rows in the scope of the
// caller's transaction.
type accountLedger struct {
	d *dao.Dao
}

// AccountLedger is the LedgerFactory for the built-in funds ledger.
func AccountLedger(d *dao.Dao) Ledger {
	return &accountLedger{d: d}
}

func (l *accountLedger) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errors.Wrap(errcode.ErrUnexpected, "negative transfer amount")
	}
	if amount.IsZero() {
		return nil
	}
	if err := l.d.Debit(ctx, from, amount); err != nil {
		return err
	}
	return l.d.Credit(ctx, to, amount)
}
