package core

// AddLiquidity deposits base/quote tokens into a pair's pool in exchange
// for newly minted LP shares. The bootstrap branch (taken when the pool
// has no reserves or no issued LP yet) lets the caller set the initial
// price; every later deposit is proportional to the pool's current
// reserve ratio and systematically favors the pool through floor
// division — both are load-bearing behaviors, not bugs.
func (e *Engine) AddLiquidity(sender Address, pairHash Hash, baseAmount uint64, quoteAmount *uint64) (*TradePair, uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pair, ok := e.registry.ByHash(pairHash)
	if !ok {
		return nil, 0, ErrNoMatchingTradePair
	}
	if baseAmount == 0 {
		return nil, 0, ErrBaseAmountIsZero
	}

	baseReserve := e.ledger.BalanceOf(pair.Account, pair.Base)
	quoteReserve := e.ledger.BalanceOf(pair.Account, pair.Quote)
	issued := e.issuedAmount(pair)

	var quote, minted uint64
	if quoteReserve == 0 || issued == 0 {
		if quoteAmount == nil {
			return nil, 0, ErrQuoteAmountIsNone
		}
		quote = *quoteAmount
		minted = baseAmount
	} else {
		var err error
		quote, err = mulDiv(quoteReserve, baseAmount, baseReserve)
		if err != nil {
			return nil, 0, err
		}
		minted, err = mulDiv(issued, baseAmount, baseReserve)
		if err != nil {
			return nil, 0, err
		}
	}

	if quote == 0 {
		return nil, 0, ErrQuoteAmountIsZero
	}
	if minted == 0 {
		return nil, 0, ErrLiquidityMintedIsZero
	}

	// C5 discipline: every guard evaluated before the first mutation.
	if err := e.ledger.EnsureFreeBalance(sender, pair.Base, baseAmount); err != nil {
		return nil, 0, err
	}
	if err := e.ledger.EnsureFreeBalance(sender, pair.Quote, quote); err != nil {
		return nil, 0, err
	}
	if err := e.ledger.EnsureFreeBalance(pair.Account, pair.LiquidityTokenHash, minted); err != nil {
		return nil, 0, err
	}

	if err := e.transfer(sender, pair.Account, pair.Base, baseAmount); err != nil {
		return nil, 0, err
	}
	if err := e.transfer(sender, pair.Account, pair.Quote, quote); err != nil {
		return nil, 0, err
	}
	if err := e.transfer(pair.Account, sender, pair.LiquidityTokenHash, minted); err != nil {
		return nil, 0, err
	}

	pair.LiquidityTokenIssuedAmount = e.issuedAmount(pair)
	if err := e.registry.update(pair); err != nil {
		return nil, 0, err
	}

	e.sink.Emit(Event{Type: EventLiquidityAdded, Account: sender, PairHash: pairHash})
	return pair, minted, nil
}

// RemoveLiquidity burns lpAmount of LP shares for a pro-rata slice of the
// pool's reserves.
func (e *Engine) RemoveLiquidity(sender Address, pairHash Hash, lpAmount uint64) (*TradePair, uint64, uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pair, ok := e.registry.ByHash(pairHash)
	if !ok {
		return nil, 0, 0, ErrNoMatchingTradePair
	}
	if lpAmount == 0 {
		return nil, 0, 0, ErrLiquidityTokenAmountIsZero
	}

	issued := e.issuedAmount(pair)
	if issued == 0 {
		return nil, 0, 0, ErrLiquidityTokenIssuedAmountIsZero
	}
	if lpAmount > issued {
		return nil, 0, 0, ErrLiquidityTokenAmountOverflow
	}

	baseReserve := e.ledger.BalanceOf(pair.Account, pair.Base)
	quoteReserve := e.ledger.BalanceOf(pair.Account, pair.Quote)
	if baseReserve == 0 {
		return nil, 0, 0, ErrPoolBaseAmountIsZero
	}
	if quoteReserve == 0 {
		return nil, 0, 0, ErrPoolQuoteAmountIsZero
	}

	basePayout, err := mulDiv(baseReserve, lpAmount, issued)
	if err != nil {
		return nil, 0, 0, err
	}
	quotePayout, err := mulDiv(quoteReserve, lpAmount, issued)
	if err != nil {
		return nil, 0, 0, err
	}
	if basePayout == 0 {
		return nil, 0, 0, ErrBaseAmountIsZero
	}
	if quotePayout == 0 {
		return nil, 0, 0, ErrQuoteAmountIsZero
	}

	if err := e.ledger.EnsureFreeBalance(pair.Account, pair.Base, basePayout); err != nil {
		return nil, 0, 0, err
	}
	if err := e.ledger.EnsureFreeBalance(pair.Account, pair.Quote, quotePayout); err != nil {
		return nil, 0, 0, err
	}
	if err := e.ledger.EnsureFreeBalance(sender, pair.LiquidityTokenHash, lpAmount); err != nil {
		return nil, 0, 0, err
	}

	if err := e.transfer(pair.Account, sender, pair.Base, basePayout); err != nil {
		return nil, 0, 0, err
	}
	if err := e.transfer(pair.Account, sender, pair.Quote, quotePayout); err != nil {
		return nil, 0, 0, err
	}
	if err := e.transfer(sender, pair.Account, pair.LiquidityTokenHash, lpAmount); err != nil {
		return nil, 0, 0, err
	}

	pair.LiquidityTokenIssuedAmount = e.issuedAmount(pair)
	if err := e.registry.update(pair); err != nil {
		return nil, 0, 0, err
	}

	e.sink.Emit(Event{Type: EventLiquidityRemoved, Account: sender, PairHash: pairHash})
	return pair, basePayout, quotePayout, nil
}

// issuedAmount recomputes the cumulative LP shares held by providers (spec
// invariant 6): total supply minus whatever the pair account still holds of
// its own LP token. Recomputing from the ledger on every read — rather than
// trusting a cached counter — is what keeps invariant 6 exact even if a
// caller inspects LiquidityTokenIssuedAmount mid-sequence.
func (e *Engine) issuedAmount(pair *TradePair) uint64 {
	return maxBalance - e.ledger.BalanceOf(pair.Account, pair.LiquidityTokenHash)
}
