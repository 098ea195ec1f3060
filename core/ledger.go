package core

import "errors"

// TokenMeta is the subset of token metadata the core reads from the ledger
// — only Symbol is read, when building an LP token's display name.
type TokenMeta struct {
	Symbol string
}

// Ledger is the token-ledger interface the core depends on. It is
// implemented by a host chain's own balance/ownership store; Ledger is
// deliberately narrow — the core never reaches past it to mutate a pair
// account's balances directly.
type Ledger interface {
	// Owner returns the recorded owner of token, or ok=false if the token
	// has no owner on file.
	Owner(token TokenID) (owner Address, ok bool)

	// Token returns the token's metadata, or ok=false if it does not exist.
	Token(token TokenID) (meta TokenMeta, ok bool)

	// BalanceOf returns account's spendable balance of token.
	BalanceOf(account Address, token TokenID) uint64

	// EnsureFreeBalance fails if account's spendable balance of token is
	// less than amount; it has no side effects either way.
	EnsureFreeBalance(account Address, token TokenID, amount uint64) error

	// DoIssue creates a new token with the given symbol and total supply,
	// minted entirely to owner, and returns the fresh token id.
	DoIssue(owner Address, symbol string, totalSupply uint64) (TokenID, error)

	// DoTransfer moves amount of token from from to to. It is contractually
	// infallible when preceded by a successful EnsureFreeBalance(from, token,
	// amount) — see Engine.transfer in engine.go.
	DoTransfer(from, to Address, token TokenID, amount uint64, memo []byte) error
}

// ErrInsufficientBalance is returned by EnsureFreeBalance implementations
// when the spendable balance is below the requested amount.
var ErrInsufficientBalance = errors.New("insufficient free balance")
