package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewAddress generates a fresh 20-byte hex address for a deployed collection.
func NewAddress() string {
	id := uuid.New()
	raw := id[:]
	// Pad to 20 bytes so addresses line up with the usual 0x40-char form.
	buf := make([]byte, 20)
	copy(buf[20-len(raw):], raw)
	return "0x" + hex.EncodeToString(buf)
}

// NormalizeAddress lower-cases an address for use as a storage key.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
