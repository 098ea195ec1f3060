package core

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Engine wires the pair registry, the external token ledger, and the
// runtime together into the five trade-pair extrinsics: create a pair,
// add or remove liquidity, and swap by buying or selling the base token.
type Engine struct {
	mu       sync.Mutex
	registry *PairRegistry
	ledger   Ledger
	runtime  Runtime
	sink     EventSink
	logger   *log.Logger
}

// NewEngine constructs a ready-to-use Engine. Pass the reference
// implementations (MemoryState, MemoryLedger, SimpleRuntime, EventLog) for
// a standalone demo or test.
func NewEngine(store StateRW, ledger Ledger, runtime Runtime, sink EventSink, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Engine{
		registry: NewPairRegistry(store),
		ledger:   ledger,
		runtime:  runtime,
		sink:     sink,
		logger:   logger,
	}
}

var (
	engineOnce sync.Once
	engine     *Engine
)

// InitEngine installs the package-level singleton Engine, once. Called by
// cmd/tradepair and cmd/pairserver; cmd/cli reads it through Manager.
func InitEngine(store StateRW, ledger Ledger, runtime Runtime, sink EventSink, logger *log.Logger) {
	engineOnce.Do(func() {
		engine = NewEngine(store, ledger, runtime, sink, logger)
	})
}

// Manager returns the package-level singleton Engine, or nil if InitEngine
// has not yet been called.
func Manager() *Engine { return engine }

// Pair returns a registered trade pair by hash.
func (e *Engine) Pair(hash Hash) (*TradePair, bool) { return e.registry.ByHash(hash) }

// PairByTokens returns the pair registered for (base, quote) in either
// order.
func (e *Engine) PairByTokens(base, quote TokenID) (*TradePair, bool) {
	if p, ok := e.registry.ByBaseQuote(base, quote); ok {
		return p, true
	}
	return e.registry.ByBaseQuote(quote, base)
}

// Pairs returns every registered pair, in insertion order.
func (e *Engine) Pairs() []*TradePair {
	n := e.registry.Len()
	out := make([]*TradePair, 0, n)
	for i := uint64(0); i < n; i++ {
		if p, ok := e.registry.ByIndex(i); ok {
			out = append(out, p)
		}
	}
	return out
}

// transfer is the shared leg-execution helper used by every mutating
// extrinsic: it assumes all guards already passed (C5's discipline, spec
// §4.5) and surfaces any ledger failure wrapped with call-site context.
func (e *Engine) transfer(from, to Address, token TokenID, amount uint64) error {
	if err := e.ledger.DoTransfer(from, to, token, amount, nil); err != nil {
		return fmt.Errorf("do_transfer token %d: %w", token, err)
	}
	return nil
}
