package core

import (
	"fmt"
	"sync"
)

// MemoryLedger is a reference Ledger implementation backed by in-process
// maps. It stands in for the host chain's real balance store and is what
// cmd/tradepair and cmd/pairserver wire up for a standalone demo node.
type MemoryLedger struct {
	mu       sync.Mutex
	owners   map[TokenID]Address
	tokens   map[TokenID]TokenMeta
	balances map[TokenID]map[Address]uint64
	nextID   TokenID
}

// NewMemoryLedger returns an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		owners:   make(map[TokenID]Address),
		tokens:   make(map[TokenID]TokenMeta),
		balances: make(map[TokenID]map[Address]uint64),
		nextID:   1,
	}
}

// IssueGenesis creates a token owned by owner with the given symbol and
// total supply minted to owner. It is the test/demo equivalent of whatever
// genesis process the host chain uses to mint tokens before any trade pair
// exists; the core itself never calls IssueGenesis.
func (l *MemoryLedger) IssueGenesis(owner Address, symbol string, totalSupply uint64) TokenID {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.owners[id] = owner
	l.tokens[id] = TokenMeta{Symbol: symbol}
	l.balances[id] = map[Address]uint64{owner: totalSupply}
	return id
}

func (l *MemoryLedger) Owner(token TokenID) (Address, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.owners[token]
	return a, ok
}

func (l *MemoryLedger) Token(token TokenID) (TokenMeta, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.tokens[token]
	return m, ok
}

func (l *MemoryLedger) BalanceOf(account Address, token TokenID) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[token][account]
}

func (l *MemoryLedger) EnsureFreeBalance(account Address, token TokenID, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[token][account] < amount {
		return ErrInsufficientBalance
	}
	return nil
}

func (l *MemoryLedger) DoIssue(owner Address, symbol string, totalSupply uint64) (TokenID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.owners[id] = owner
	l.tokens[id] = TokenMeta{Symbol: symbol}
	if l.balances[id] == nil {
		l.balances[id] = make(map[Address]uint64)
	}
	l.balances[id][owner] = totalSupply
	return id, nil
}

func (l *MemoryLedger) DoTransfer(from, to Address, token TokenID, amount uint64, _ []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal, ok := l.balances[token]
	if !ok || bal[from] < amount {
		return fmt.Errorf("do_transfer: %w", ErrInsufficientBalance)
	}
	bal[from] -= amount
	bal[to] += amount
	return nil
}
