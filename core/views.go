package core

// PairView exposes read-only information about a trade pair, including
// reserves that only the ledger — not TradePair itself — stores.
type PairView struct {
	Hash                       Hash
	Base, Quote                TokenID
	Account                    Address
	BaseReserve, QuoteReserve  uint64
	LiquidityTokenHash         TokenID
	LiquidityTokenIssuedAmount uint64
}

// View returns a read-only snapshot of pair, including its current
// reserves.
func (e *Engine) View(pair *TradePair) PairView {
	return PairView{
		Hash:                       pair.Hash,
		Base:                       pair.Base,
		Quote:                      pair.Quote,
		Account:                    pair.Account,
		BaseReserve:                e.ledger.BalanceOf(pair.Account, pair.Base),
		QuoteReserve:               e.ledger.BalanceOf(pair.Account, pair.Quote),
		LiquidityTokenHash:         pair.LiquidityTokenHash,
		LiquidityTokenIssuedAmount: e.issuedAmount(pair),
	}
}

// Snapshot returns a PairView for every registered pair, in insertion
// order.
func (e *Engine) Snapshot() []PairView {
	pairs := e.Pairs()
	out := make([]PairView, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, e.View(p))
	}
	return out
}
