package core

// SwapBuy implements C4's "pay base, receive quote" swap (spec §4.4):
// Δq = Q·Δb / (B+Δb), the simplified integer-equivalent form of the
// source's expanded (Q·(B+Δb) − Q·B)/(B+Δb); the simplified form is
// strictly recommended for overflow safety and is what mulDiv computes.
// L (the LP issuance) is unchanged by a swap. No fee is taken: the whole
// input enters the numerator Q·Δb. A fee would scale Δb in that numerator
// only, leaving the raw Δb in the denominator.
func (e *Engine) SwapBuy(sender Address, pairHash Hash, baseAmount uint64) (*TradePair, uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pair, ok := e.registry.ByHash(pairHash)
	if !ok {
		return nil, 0, ErrNoMatchingTradePair
	}
	baseReserve := e.ledger.BalanceOf(pair.Account, pair.Base)
	quoteReserve := e.ledger.BalanceOf(pair.Account, pair.Quote)
	if baseReserve == 0 {
		return nil, 0, ErrPoolBaseAmountIsZero
	}
	if quoteReserve == 0 {
		return nil, 0, ErrPoolQuoteAmountIsZero
	}
	if baseAmount == 0 {
		return nil, 0, ErrBaseAmountIsZero
	}

	denom, err := addChecked(baseReserve, baseAmount)
	if err != nil {
		return nil, 0, err
	}
	quoteOut, err := mulDiv(quoteReserve, baseAmount, denom)
	if err != nil {
		return nil, 0, err
	}
	if quoteOut == 0 {
		return nil, 0, ErrQuoteAmountIsZero
	}

	if err := e.ledger.EnsureFreeBalance(sender, pair.Base, baseAmount); err != nil {
		return nil, 0, err
	}
	if err := e.ledger.EnsureFreeBalance(pair.Account, pair.Quote, quoteOut); err != nil {
		return nil, 0, err
	}

	if err := e.transfer(sender, pair.Account, pair.Base, baseAmount); err != nil {
		return nil, 0, err
	}
	if err := e.transfer(pair.Account, sender, pair.Quote, quoteOut); err != nil {
		return nil, 0, err
	}

	e.sink.Emit(Event{Type: EventSwapBuy, Account: sender, PairHash: pairHash})
	return pair, quoteOut, nil
}

// SwapSell implements C4's "pay quote, receive base" swap (spec §4.4):
// Δb_out = B·Δq / (Q+Δq), symmetric to SwapBuy and likewise fee-free (a fee
// would scale Δq in the numerator B·Δq only).
func (e *Engine) SwapSell(sender Address, pairHash Hash, quoteAmount uint64) (*TradePair, uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pair, ok := e.registry.ByHash(pairHash)
	if !ok {
		return nil, 0, ErrNoMatchingTradePair
	}
	baseReserve := e.ledger.BalanceOf(pair.Account, pair.Base)
	quoteReserve := e.ledger.BalanceOf(pair.Account, pair.Quote)
	if baseReserve == 0 {
		return nil, 0, ErrPoolBaseAmountIsZero
	}
	if quoteReserve == 0 {
		return nil, 0, ErrPoolQuoteAmountIsZero
	}
	if quoteAmount == 0 {
		return nil, 0, ErrQuoteAmountIsZero
	}

	denom, err := addChecked(quoteReserve, quoteAmount)
	if err != nil {
		return nil, 0, err
	}
	baseOut, err := mulDiv(baseReserve, quoteAmount, denom)
	if err != nil {
		return nil, 0, err
	}
	if baseOut == 0 {
		return nil, 0, ErrBaseAmountIsZero
	}

	if err := e.ledger.EnsureFreeBalance(sender, pair.Quote, quoteAmount); err != nil {
		return nil, 0, err
	}
	if err := e.ledger.EnsureFreeBalance(pair.Account, pair.Base, baseOut); err != nil {
		return nil, 0, err
	}

	if err := e.transfer(sender, pair.Account, pair.Quote, quoteAmount); err != nil {
		return nil, 0, err
	}
	if err := e.transfer(pair.Account, sender, pair.Base, baseOut); err != nil {
		return nil, 0, err
	}

	e.sink.Emit(Event{Type: EventSwapSell, Account: sender, PairHash: pairHash})
	return pair, baseOut, nil
}

// QuoteBuy previews SwapBuy's output without mutating any state. Useful for
// CLI/RPC quote surfaces (spec §9 rules out a Price type, but a read-only
// preview of the existing curve is not a price oracle — it reads the same
// reserves a swap would).
func (e *Engine) QuoteBuy(pairHash Hash, baseAmount uint64) (uint64, error) {
	pair, ok := e.registry.ByHash(pairHash)
	if !ok {
		return 0, ErrNoMatchingTradePair
	}
	baseReserve := e.ledger.BalanceOf(pair.Account, pair.Base)
	quoteReserve := e.ledger.BalanceOf(pair.Account, pair.Quote)
	denom, err := addChecked(baseReserve, baseAmount)
	if err != nil {
		return 0, err
	}
	return mulDiv(quoteReserve, baseAmount, denom)
}

// QuoteSell previews SwapSell's output without mutating any state.
func (e *Engine) QuoteSell(pairHash Hash, quoteAmount uint64) (uint64, error) {
	pair, ok := e.registry.ByHash(pairHash)
	if !ok {
		return 0, ErrNoMatchingTradePair
	}
	baseReserve := e.ledger.BalanceOf(pair.Account, pair.Base)
	quoteReserve := e.ledger.BalanceOf(pair.Account, pair.Quote)
	denom, err := addChecked(quoteReserve, quoteAmount)
	if err != nil {
		return 0, err
	}
	return mulDiv(baseReserve, quoteAmount, denom)
}
