package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"NFTMarketBackend/src/chain"
	"NFTMarketBackend/src/config"
	"NFTMarketBackend/src/db"
	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"
	"NFTMarketBackend/src/svc"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestCtx(t *testing.T) *svc.ServerCtx {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	conf := config.DefaultConfig()
	conf.Market.FeeRecipient = "0xfeerecipient"
	return svc.New(conf, gdb)
}

// listedToken deploys a collection, mints token 1 to the seller and lists it.
func listedToken(t *testing.T, serverCtx *svc.ServerCtx, price int64) string {
	t.Helper()
	ctx := context.Background()
	col, err := serverCtx.Deployer.CreateSingleCollection(ctx, "0xcreator", "Art", "ART", 10, 0)
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
	if _, err := serverCtx.Issuer.MintSingle(ctx, col.Address, "0xcreator", "0xseller", "ipfs://x"); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := serverCtx.Issuer.Approve(ctx, col.Address, "0xseller", chain.EscrowAddress, 1); err != nil {
		t.Fatalf("approve: %v", err)
	}
	res, err := ListNFT(ctx, serverCtx, entity.ListParam{
		Caller:            "0xseller",
		CollectionAddress: col.Address,
		TokenID:           1,
		Price:             decimal.NewFromInt(price),
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.TxID == "" {
		t.Fatal("list response has no tx id")
	}
	return col.Address
}

func TestListRecordsConfirmedTransaction(t *testing.T) {
	serverCtx := newTestCtx(t)
	ctx := context.Background()
	colAddr := listedToken(t, serverCtx, 100)

	listing, err := GetListing(ctx, serverCtx, colAddr, 1)
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if listing == nil || !listing.Active {
		t.Fatalf("listing = %+v, want active", listing)
	}

	var txs []entity.Transaction
	if err := serverCtx.DB.Find(&txs).Error; err != nil {
		t.Fatalf("load transactions: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("transaction records = %d, want 1", len(txs))
	}
	tx := txs[0]
	if tx.Kind != entity.TxKindList || tx.Status != entity.TxStatusConfirmed {
		t.Fatalf("record = %s/%s, want list/confirmed", tx.Kind, tx.Status)
	}
	if tx.FinalizedAt == nil {
		t.Fatal("confirmed record has no finalized_at")
	}

	polled, err := GetTransaction(ctx, serverCtx, tx.ID)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if polled.Status != entity.TxStatusConfirmed {
		t.Fatalf("polled status = %s", polled.Status)
	}
}

func TestFailedOperationRecordsFailure(t *testing.T) {
	serverCtx := newTestCtx(t)
	ctx := context.Background()
	colAddr := listedToken(t, serverCtx, 100)

	// Buy with no deposited funds: the operation fails but still leaves an
	// auditable failed record carrying the error.
	_, err := BuyNFT(ctx, serverCtx, entity.BuyParam{
		Caller:            "0xbuyer",
		CollectionAddress: colAddr,
		TokenID:           1,
		Paid:              decimal.NewFromInt(100),
	})
	if !errors.Is(err, errcode.ErrInsufficientFunds) {
		t.Fatalf("unfunded buy: got %v, want ErrInsufficientFunds", err)
	}

	var tx entity.Transaction
	if err := serverCtx.DB.Where("kind = ?", entity.TxKindBuy).First(&tx).Error; err != nil {
		t.Fatalf("load buy record: %v", err)
	}
	if tx.Status != entity.TxStatusFailed {
		t.Fatalf("status = %s, want failed", tx.Status)
	}
	if tx.ErrCode != errcode.ErrInsufficientFunds.Code() {
		t.Fatalf("err code = %d, want %d", tx.ErrCode, errcode.ErrInsufficientFunds.Code())
	}
	if tx.ErrMsg == "" {
		t.Fatal("failed record has no error message")
	}
}

func TestBuySettlesThroughService(t *testing.T) {
	serverCtx := newTestCtx(t)
	ctx := context.Background()
	colAddr := listedToken(t, serverCtx, 100)

	if _, err := Deposit(ctx, serverCtx, "0xbuyer", decimal.NewFromInt(150)); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	res, err := BuyNFT(ctx, serverCtx, entity.BuyParam{
		Caller:            "0xbuyer",
		CollectionAddress: colAddr,
		TokenID:           1,
		Paid:              decimal.NewFromInt(150),
	})
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if res.Settlement == nil {
		t.Fatal("buy response has no settlement")
	}
	if !res.Settlement.Refund.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("refund = %s, want 50", res.Settlement.Refund)
	}

	// The confirmed record carries the serialized settlement.
	var tx entity.Transaction
	if err := serverCtx.DB.Where("kind = ?", entity.TxKindBuy).First(&tx).Error; err != nil {
		t.Fatalf("load buy record: %v", err)
	}
	if tx.Status != entity.TxStatusConfirmed || tx.Result == "" {
		t.Fatalf("record = %s result=%q, want confirmed with result body", tx.Status, tx.Result)
	}
	if !strings.Contains(tx.Result, "\"seller_proceeds\"") {
		t.Fatalf("result body missing split: %s", tx.Result)
	}
}

func TestGetTransactionUnknownID(t *testing.T) {
	serverCtx := newTestCtx(t)
	if _, err := GetTransaction(context.Background(), serverCtx, "no-such-id"); !errors.Is(err, errcode.ErrInvalidParams) {
		t.Fatalf("unknown id: got %v, want ErrInvalidParams", err)
	}
}

func TestListingsPageCapsLimit(t *testing.T) {
	serverCtx := newTestCtx(t)
	serverCtx.C.Api.MaxNum = 2
	ctx := context.Background()

	col, err := serverCtx.Deployer.CreateSingleCollection(ctx, "0xcreator", "Art", "ART", 10, 0)
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
	for id := uint64(1); id <= 4; id++ {
		if _, err := serverCtx.Issuer.MintSingle(ctx, col.Address, "0xcreator", "0xseller", fmt.Sprintf("ipfs://%d", id)); err != nil {
			t.Fatalf("mint: %v", err)
		}
		if err := serverCtx.Issuer.Approve(ctx, col.Address, "0xseller", chain.EscrowAddress, id); err != nil {
			t.Fatalf("approve: %v", err)
		}
		if _, err := ListNFT(ctx, serverCtx, entity.ListParam{
			Caller:            "0xseller",
			CollectionAddress: col.Address,
			TokenID:           id,
			Price:             decimal.NewFromInt(10),
		}); err != nil {
			t.Fatalf("list %d: %v", id, err)
		}
	}

	listings, count, err := GetListingsPage(ctx, serverCtx, 0, 100)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("page size = %d, want capped at 2", len(listings))
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}
}
