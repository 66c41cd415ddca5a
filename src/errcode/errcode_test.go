package errcode

import (
	"testing"

	"github.com/pkg/errors"
)

func TestIsMatchesWrapped(t *testing.T) {
	wrapped := errors.Wrap(ErrListingNotActive, "failed on cancel listing")
	if !errors.Is(wrapped, ErrListingNotActive) {
		t.Fatal("wrapped coded error should match by code")
	}
	if errors.Is(wrapped, ErrListingActive) {
		t.Fatal("distinct codes must not match")
	}

	var coded *Err
	if !errors.As(wrapped, &coded) {
		t.Fatal("errors.As should unwrap to *Err")
	}
	if coded.Code() != ErrListingNotActive.Code() {
		t.Fatalf("code = %d, want %d", coded.Code(), ErrListingNotActive.Code())
	}
}

func TestRetryableByKind(t *testing.T) {
	cases := []struct {
		err  *Err
		want bool
	}{
		{ErrInvalidPrice, false},
		{ErrNotTokenOwner, false},
		{ErrListingNotActive, true},
		{ErrInsufficientFunds, true},
		{ErrExternalCallFailed, true},
		{ErrUnexpected, false},
	}
	for _, tc := range cases {
		if got := tc.err.Retryable(); got != tc.want {
			t.Errorf("Retryable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestCodesAreUnique(t *testing.T) {
	all := []*Err{
		ErrInvalidParams, ErrInvalidPrice, ErrInvalidQuantity, ErrInvalidMetadata,
		ErrInvalidRoyaltyPercentage, ErrInvalidMaxSupply, ErrLengthMismatch,
		ErrNotTokenOwner, ErrNotApproved, ErrUnauthorizedAccess, ErrNotContractOwner,
		ErrListingNotActive, ErrListingActive, ErrSupplyExceeded, ErrInsufficientPayment,
		ErrSaleNotActive, ErrWalletCapExceeded, ErrReserveExceeded, ErrNonexistentToken,
		ErrNonexistentCollection, ErrInsufficientFunds, ErrReentrantCall,
		ErrExternalCallFailed, ErrUnexpected,
	}
	all = append(all, NewCustomErr("one-off"))
	seen := make(map[int]*Err, len(all))
	for _, e := range all {
		if prev, ok := seen[e.Code()]; ok {
			t.Fatalf("code %d shared by %v and %v", e.Code(), prev, e)
		}
		seen[e.Code()] = e
	}
}

func TestCustomErrIsNotUnexpected(t *testing.T) {
	custom := NewCustomErr("metadata fetch failed")
	if errors.Is(custom, ErrUnexpected) {
		t.Fatal("custom errors must not compare equal to ErrUnexpected")
	}
	if !errors.Is(custom, NewCustomErr("different message")) {
		t.Fatal("custom errors share the custom code")
	}
	if custom.Retryable() {
		t.Fatal("custom errors are not retryable")
	}
}
