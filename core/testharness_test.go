package core_test

import (
	core "tradepair-network/core"
)

// newEngine wires a fresh in-memory ledger/runtime/store/event-log into an
// Engine, mirroring the standalone wiring cmd/tradepair performs at
// startup. Each test gets an isolated Engine so scenarios never leak state
// across tests.
func newEngine() (*core.Engine, *core.MemoryLedger) {
	store := core.NewMemoryState()
	ledger := core.NewMemoryLedger()
	runtime := core.NewSimpleRuntime(core.Hash{0x01})
	sink := core.NewEventLog(nil)
	return core.NewEngine(store, ledger, runtime, sink, nil), ledger
}

// setupS1 reproduces the literal end-to-end setup: Alice issues
// T1/T2, funds Bob, and creates the (T1, T2) pair.
func setupS1(t testHelper) (*core.Engine, *core.MemoryLedger, core.Address, core.Address, core.TokenID, core.TokenID, *core.TradePair) {
	t.Helper()
	engine, ledger := newEngine()

	alice := core.Address{10}
	bob := core.Address{20}

	t1 := ledger.IssueGenesis(alice, "T1", 21_000_000)
	t2 := ledger.IssueGenesis(alice, "T2", 10_000_000)

	mustTransfer(t, ledger, alice, bob, t1, 1_000_000)
	mustTransfer(t, ledger, alice, bob, t2, 5_000_000)

	pair, err := engine.CreateTradePair(alice, t1, t2)
	if err != nil {
		t.Fatalf("create trade pair: %v", err)
	}
	return engine, ledger, alice, bob, t1, t2, pair
}

func mustTransfer(t testHelper, ledger *core.MemoryLedger, from, to core.Address, token core.TokenID, amount uint64) {
	t.Helper()
	if err := ledger.DoTransfer(from, to, token, amount, nil); err != nil {
		t.Fatalf("setup transfer: %v", err)
	}
}

// testHelper is the subset of *testing.T/*testing.B this file needs, so it
// can be shared by Test and Benchmark helpers alike without importing
// "testing" types directly into every call site.
type testHelper interface {
	Helper()
	Fatalf(format string, args ...any)
}
