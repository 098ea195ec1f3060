// Package core implements the constant-product AMM trade-pair engine:
// pair registry, liquidity accounting, swap pricing, and the atomic
// transfer discipline that binds them to an external token ledger.
package core

import "encoding/hex"

// Hash is a 256-bit opaque identifier used for trade-pair identity and as
// the runtime's digest type.
type Hash [32]byte

// String renders the hash as a lowercase hex string.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// IsZero reports whether h is the all-zero hash.
func (h Hash) IsZero() bool { return h == Hash{} }

// Address is a 20-byte account identifier, wide enough for both real
// signed accounts and accounts derived with no private key (see
// DeriveAccount).
type Address [20]byte

// String renders the address as a lowercase hex string.
func (a Address) String() string { return hex.EncodeToString(a[:]) }

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool { return a == Address{} }

// AddressZero is the sentinel zero-value account.
var AddressZero = Address{}

// TokenID identifies a fungible token on the external ledger.
type TokenID uint32

// maxBalance is the largest representable balance value, used as the total
// supply minted for every LP token at pair-creation time (see
// TradePair.LiquidityTokenIssuedAmount and DESIGN.md invariant 5).
const maxBalance uint64 = ^uint64(0)
