package utils

import (
	"strings"
	"testing"
)

func TestNewAddressShape(t *testing.T) {
	addr := NewAddress()
	if !strings.HasPrefix(addr, "0x") {
		t.Fatalf("address %q missing 0x prefix", addr)
	}
	if len(addr) != 42 {
		t.Fatalf("address length = %d, want 42", len(addr))
	}
	if addr != strings.ToLower(addr) {
		t.Fatalf("address %q should be lower case", addr)
	}
}

func TestNewAddressUnique(t *testing.T) {
	seen := make(map[string]bool)
	for n := 0; n < 1000; n++ {
		addr := NewAddress()
		if seen[addr] {
			t.Fatalf("duplicate address %q", addr)
		}
		seen[addr] = true
	}
}

func TestNormalizeAddress(t *testing.T) {
	if got := NormalizeAddress("  0xABCdef  "); got != "0xabcdef" {
		t.Fatalf("normalized = %q", got)
	}
}
