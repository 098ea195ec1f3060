package core

import "fmt"

// CreateTradePair registers a new trade pair for (base, quote), deriving
// its pool account and minting its LP token. Preconditions are evaluated
// in a fixed order so callers can rely on the first failing check's error
// kind.
func (e *Engine) CreateTradePair(sender Address, base, quote TokenID) (*TradePair, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if base == quote {
		return nil, ErrBaseEqualQuote
	}

	baseOwner, ok := e.ledger.Owner(base)
	if !ok {
		return nil, ErrTokenOwnerNotFound
	}
	quoteOwner, ok := e.ledger.Owner(quote)
	if !ok {
		return nil, ErrTokenOwnerNotFound
	}
	if _, ok := e.ledger.Token(base); !ok {
		return nil, ErrTokenNotFound
	}
	quoteMeta, ok := e.ledger.Token(quote)
	if !ok {
		return nil, ErrTokenNotFound
	}

	if sender != baseOwner && sender != quoteOwner {
		return nil, ErrSenderNotEqualToBaseOrQuoteOwner
	}

	if e.registry.exists(base, quote) {
		return nil, ErrTradePairExisted
	}

	nonce := e.registry.nonce()
	hash := e.runtime.Hash(
		e.runtime.RandomSeed()[:],
		encodeUint64(e.runtime.BlockNumber()),
		sender[:],
		encodeUint32(uint32(base)),
		encodeUint32(uint32(quote)),
		encodeUint64(nonce),
	)
	account := DeriveAccount(e.runtime, base, quote, hash)

	// Symbol is "LT_" || base.symbol || "_" || quote.symbol. Reads quote's
	// own metadata rather than re-reading base's — the field is
	// display-only and affects no invariant, but a wrong symbol would be
	// confusing for anyone inspecting a pair.
	baseMeta, _ := e.ledger.Token(base)
	symbol := "LT_" + baseMeta.Symbol + "_" + quoteMeta.Symbol

	lpToken, err := e.ledger.DoIssue(account, symbol, maxBalance)
	if err != nil {
		return nil, fmt.Errorf("do_issue lp token: %w", err)
	}

	pair := &TradePair{
		Hash:                       hash,
		Base:                       base,
		Quote:                      quote,
		Account:                    account,
		LiquidityTokenHash:         lpToken,
		LiquidityTokenIssuedAmount: 0,
	}
	if err := e.registry.insert(pair, nonce+1); err != nil {
		return nil, err
	}

	e.sink.Emit(Event{Type: EventTradePairCreated, Account: sender, PairHash: hash, Pair: pair})
	return pair, nil
}
