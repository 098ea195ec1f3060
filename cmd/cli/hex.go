package cli

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// decodeHexExact decodes an optionally "0x"-prefixed hex string and
// requires it to decode to exactly n bytes, the way mustAddr in the
// teacher's liquidity_pools.go trims the prefix before decoding.
func decodeHexExact(s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != n {
		return nil, fmt.Errorf("want %d bytes, got %d", n, len(b))
	}
	return b, nil
}
