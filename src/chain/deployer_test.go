package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"NFTMarketBackend/src/entity"
	"NFTMarketBackend/src/errcode"

	"github.com/shopspring/decimal"
)

func TestCreateCollectionValidation(t *testing.T) {
	_, _, dep := newIssuerEnv(t)
	ctx := context.Background()

	base := entity.CreateCollectionParam{
		Creator:   creator,
		Name:      "Drop",
		Symbol:    "DRP",
		MaxSupply: 10,
		MintPrice: decimal.NewFromInt(1),
	}

	cases := []struct {
		name   string
		mutate func(*entity.CreateCollectionParam)
		want   error
	}{
		{"empty creator", func(p *entity.CreateCollectionParam) { p.Creator = "" }, errcode.ErrInvalidParams},
		{"empty name", func(p *entity.CreateCollectionParam) { p.Name = "" }, errcode.ErrInvalidParams},
		{"empty symbol", func(p *entity.CreateCollectionParam) { p.Symbol = "" }, errcode.ErrInvalidParams},
		{"royalty above cap", func(p *entity.CreateCollectionParam) { p.RoyaltyBps = 1001 }, errcode.ErrInvalidRoyaltyPercentage},
		{"negative royalty", func(p *entity.CreateCollectionParam) { p.RoyaltyBps = -1 }, errcode.ErrInvalidRoyaltyPercentage},
		{"zero supply", func(p *entity.CreateCollectionParam) { p.MaxSupply = 0 }, errcode.ErrInvalidMaxSupply},
		{"reserve beyond supply", func(p *entity.CreateCollectionParam) { p.OwnerReserve = 11 }, errcode.ErrInvalidMaxSupply},
		{"negative price", func(p *entity.CreateCollectionParam) { p.MintPrice = decimal.NewFromInt(-1) }, errcode.ErrInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			param := base
			tc.mutate(&param)
			if _, err := dep.CreateCollection(ctx, param); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	// Royalty exactly at the 10% cap is allowed.
	param := base
	param.RoyaltyBps = entity.MaxRoyaltyBps
	if _, err := dep.CreateCollection(ctx, param); err != nil {
		t.Fatalf("royalty at cap: %v", err)
	}
}

func TestCreateCollectionDefaults(t *testing.T) {
	_, _, dep := newIssuerEnv(t)

	col := deployDrop(t, dep, entity.CreateCollectionParam{
		Creator:    creator,
		Name:       "Drop",
		Symbol:     "DRP",
		MaxSupply:  10,
		RoyaltyBps: 300,
		MintPrice:  decimal.NewFromInt(5),
	})
	if col.Address == "" {
		t.Fatal("deployed collection has no address")
	}
	if col.Owner != creator {
		t.Fatalf("owner = %s, want creator", col.Owner)
	}
	if col.RoyaltyReceiver != creator {
		t.Fatalf("royalty receiver = %s, want creator", col.RoyaltyReceiver)
	}
	if col.Variant != entity.VariantCollection {
		t.Fatalf("variant = %s, want collection", col.Variant)
	}
	if col.SaleActive {
		t.Fatal("sale must start closed")
	}
	if col.MintedCount != 0 {
		t.Fatalf("minted count = %d, want 0", col.MintedCount)
	}
}

func TestRegistryExcludesTemplate(t *testing.T) {
	_, _, dep := newIssuerEnv(t)
	ctx := context.Background()

	if err := dep.EnsureTemplate(ctx); err != nil {
		t.Fatalf("ensure template: %v", err)
	}
	// Idempotent: a second call seeds nothing.
	if err := dep.EnsureTemplate(ctx); err != nil {
		t.Fatalf("ensure template again: %v", err)
	}

	for n := 0; n < 3; n++ {
		deployDrop(t, dep, entity.CreateCollectionParam{
			Creator:   creator,
			Name:      fmt.Sprintf("Drop %d", n),
			Symbol:    "DRP",
			MaxSupply: 10,
			MintPrice: decimal.NewFromInt(1),
		})
	}

	cols, total, err := dep.Collections(ctx, "", 1, 10)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if total != 3 || len(cols) != 3 {
		t.Fatalf("registry size = %d/%d, want 3", len(cols), total)
	}
	for _, col := range cols {
		if col.IsTemplate {
			t.Fatalf("template leaked into registry: %+v", col)
		}
	}
	count, err := dep.Count(ctx, "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestRegistryByCreator(t *testing.T) {
	_, _, dep := newIssuerEnv(t)
	ctx := context.Background()

	for n := 0; n < 2; n++ {
		deployDrop(t, dep, entity.CreateCollectionParam{
			Creator:   creator,
			Name:      fmt.Sprintf("Mine %d", n),
			Symbol:    "MNE",
			MaxSupply: 10,
			MintPrice: decimal.NewFromInt(1),
		})
	}
	deployDrop(t, dep, entity.CreateCollectionParam{
		Creator:   outsider,
		Name:      "Other",
		Symbol:    "OTH",
		MaxSupply: 10,
		MintPrice: decimal.NewFromInt(1),
	})

	cols, total, err := dep.Collections(ctx, creator, 1, 10)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if total != 2 || len(cols) != 2 {
		t.Fatalf("by creator = %d/%d, want 2", len(cols), total)
	}
	for _, col := range cols {
		if col.Owner != creator {
			t.Fatalf("foreign collection in creator view: %+v", col)
		}
	}

	// Registry keeps insertion order.
	if cols[0].Name != "Mine 0" || cols[1].Name != "Mine 1" {
		t.Fatalf("order = %s, %s", cols[0].Name, cols[1].Name)
	}

	count, err := dep.Count(ctx, outsider)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}
