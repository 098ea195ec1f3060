package core

import (
	"encoding/binary"
	"encoding/json"
)

// TradePair is the sole persistent aggregate (spec §3). Reserves live on
// the external ledger, keyed by Account; Pair itself only records identity,
// the derived custodian account, and the LP token's id and cumulative
// issued amount.
type TradePair struct {
	Hash                       Hash    `json:"hash"`
	Base                       TokenID `json:"base"`
	Quote                      TokenID `json:"quote"`
	Account                    Address `json:"account"`
	LiquidityTokenHash         TokenID `json:"liquidity_token_hash"`
	LiquidityTokenIssuedAmount uint64  `json:"liquidity_token_issued_amount"`
}

// Storage key prefixes (spec §3 "Registry indexes", §6 "Persisted storage
// layout"). Kept stable across upgrades since state must survive them.
var (
	keyPrefixTradePair        = []byte("tp/hash/")
	keyPrefixHashByBaseQuote  = []byte("tp/bq/")
	keyPrefixHashByIndex      = []byte("tp/idx/")
	keyTradePairsIndex        = []byte("tp/meta/index")
	keyNonce                  = []byte("tp/meta/nonce")
)

func keyTradePair(h Hash) []byte {
	return append(append([]byte{}, keyPrefixTradePair...), h[:]...)
}

func keyHashByBaseQuote(base, quote TokenID) []byte {
	k := append([]byte{}, keyPrefixHashByBaseQuote...)
	k = append(k, encodeUint32(uint32(base))...)
	k = append(k, encodeUint32(uint32(quote))...)
	return k
}

func keyHashByIndex(i uint64) []byte {
	return append(append([]byte{}, keyPrefixHashByIndex...), encodeUint64(i)...)
}

// PairRegistry implements C1: unique pair identity, derived pool account,
// and the three registry indexes, all persisted through a StateRW so the
// gap-free insertion index survives restarts.
type PairRegistry struct {
	store StateRW
}

// NewPairRegistry wraps store as a trade-pair registry.
func NewPairRegistry(store StateRW) *PairRegistry {
	return &PairRegistry{store: store}
}

func (r *PairRegistry) nonce() uint64 {
	v, ok := r.store.Get(keyNonce)
	if !ok {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

func (r *PairRegistry) setNonce(n uint64) { r.store.Set(keyNonce, encodeUint64(n)) }

func (r *PairRegistry) index() uint64 {
	v, ok := r.store.Get(keyTradePairsIndex)
	if !ok {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

func (r *PairRegistry) setIndex(n uint64) { r.store.Set(keyTradePairsIndex, encodeUint64(n)) }

// ByHash returns the pair registered under hash, if any.
func (r *PairRegistry) ByHash(hash Hash) (*TradePair, bool) {
	raw, ok := r.store.Get(keyTradePair(hash))
	if !ok {
		return nil, false
	}
	var p TradePair
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	return &p, true
}

// ByBaseQuote returns the pair registered for the ordered pair
// (base, quote) — the opposite ordering is, by construction, never
// registered (spec invariant 2; §3's index is "one direction only").
func (r *PairRegistry) ByBaseQuote(base, quote TokenID) (*TradePair, bool) {
	raw, ok := r.store.Get(keyHashByBaseQuote(base, quote))
	if !ok {
		return nil, false
	}
	var h Hash
	copy(h[:], raw)
	return r.ByHash(h)
}

// exists reports whether either ordering of (base, quote) is already
// registered (spec §4.1 precondition 4: pair uniqueness is unordered).
func (r *PairRegistry) exists(base, quote TokenID) bool {
	if _, ok := r.ByBaseQuote(base, quote); ok {
		return true
	}
	_, ok := r.ByBaseQuote(quote, base)
	return ok
}

// ByIndex returns the i-th pair in insertion order.
func (r *PairRegistry) ByIndex(i uint64) (*TradePair, bool) {
	raw, ok := r.store.Get(keyHashByIndex(i))
	if !ok {
		return nil, false
	}
	var h Hash
	copy(h[:], raw)
	return r.ByHash(h)
}

// Len returns the number of registered pairs.
func (r *PairRegistry) Len() uint64 { return r.index() }

// insert stores p under all three indexes and advances Nonce and the
// insertion index. Callers must already have validated every precondition
// in spec §4.1 — insert performs no checks of its own.
func (r *PairRegistry) insert(p *TradePair, nextNonce uint64) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.store.Set(keyTradePair(p.Hash), raw)
	r.store.Set(keyHashByBaseQuote(p.Base, p.Quote), p.Hash[:])
	i := r.index()
	r.store.Set(keyHashByIndex(i), p.Hash[:])
	r.setIndex(i + 1)
	r.setNonce(nextNonce)
	return nil
}

// update persists a mutated pair (liquidity operations change
// LiquidityTokenIssuedAmount but never its identity or indexes; swaps do
// not call it).
func (r *PairRegistry) update(p *TradePair) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.store.Set(keyTradePair(p.Hash), raw)
	return nil
}
