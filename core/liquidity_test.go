package core_test

import (
	"errors"
	"testing"

	core "tradepair-network/core"
)

func u64(v uint64) *uint64 { return &v }

// TestScenarioS1Bootstrap reproduces scenario S1: the first deposit into
// a fresh pair sets the initial price and mints LP 1:1 with the base
// amount.
func TestScenarioS1Bootstrap(t *testing.T) {
	engine, ledger, alice, _, t1, t2, pair := setupS1(t)

	updated, minted, err := engine.AddLiquidity(alice, pair.Hash, 100, u64(30_000))
	if err != nil {
		t.Fatalf("AddLiquidity: %v", err)
	}

	if minted != 100 {
		t.Fatalf("want minted=100, got %d", minted)
	}
	if got := ledger.BalanceOf(alice, updated.LiquidityTokenHash); got != 100 {
		t.Fatalf("want balance(Alice, LP)=100, got %d", got)
	}
	if got := ledger.BalanceOf(pair.Account, t1); got != 100 {
		t.Fatalf("want balance(A, T1)=100, got %d", got)
	}
	if got := ledger.BalanceOf(pair.Account, t2); got != 30_000 {
		t.Fatalf("want balance(A, T2)=30000, got %d", got)
	}
}

// TestScenarioS2Proportional continues into scenario S2: a second
// deposit derives its quote leg and mint amount from the current reserve
// ratio.
func TestScenarioS2Proportional(t *testing.T) {
	engine, ledger, alice, bob, t1, t2, pair := setupS1(t)

	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 100, u64(30_000)); err != nil {
		t.Fatalf("S1 add: %v", err)
	}

	updated, minted, err := engine.AddLiquidity(bob, pair.Hash, 500, nil)
	if err != nil {
		t.Fatalf("S2 add: %v", err)
	}

	if minted != 500 {
		t.Fatalf("want minted=500, got %d", minted)
	}
	if updated.LiquidityTokenIssuedAmount != 600 {
		t.Fatalf("want L=600, got %d", updated.LiquidityTokenIssuedAmount)
	}
	if got := ledger.BalanceOf(pair.Account, t1); got != 600 {
		t.Fatalf("want balance(A, T1)=600, got %d", got)
	}
	if got := ledger.BalanceOf(pair.Account, t2); got != 180_000 {
		t.Fatalf("want balance(A, T2)=180000, got %d", got)
	}
}

// TestScenarioS5ProportionalAfterTrading continues through S3/S4 (see
// TestScenarioS3Buy/TestScenarioS4Sell in swap_test.go) to scenario S5: a
// deposit after trading still derives proportionally from whatever the
// reserves are at that point, not from the bootstrap ratio.
func TestScenarioS5ProportionalAfterTrading(t *testing.T) {
	engine, ledger, alice, bob, t1, t2, pair := setupS1(t)

	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 100, u64(30_000)); err != nil {
		t.Fatalf("S1 add: %v", err)
	}
	if _, _, err := engine.AddLiquidity(bob, pair.Hash, 500, nil); err != nil {
		t.Fatalf("S2 add: %v", err)
	}
	if _, _, err := engine.SwapBuy(alice, pair.Hash, 13); err != nil {
		t.Fatalf("S3 buy: %v", err)
	}
	if _, _, err := engine.SwapSell(bob, pair.Hash, 539); err != nil {
		t.Fatalf("S4 sell: %v", err)
	}

	if got := ledger.BalanceOf(pair.Account, t1); got != 612 {
		t.Fatalf("precondition for S5 broken: want balance(A, T1)=612 after S4, got %d", got)
	}
	if got := ledger.BalanceOf(pair.Account, t2); got != 176_722 {
		t.Fatalf("precondition for S5 broken: want balance(A, T2)=176722 after S4, got %d", got)
	}

	updated, minted, err := engine.AddLiquidity(alice, pair.Hash, 477, nil)
	if err != nil {
		t.Fatalf("S5 add: %v", err)
	}
	if minted != 467 {
		t.Fatalf("want minted=467, got %d", minted)
	}
	if updated.LiquidityTokenIssuedAmount != 1067 {
		t.Fatalf("want L=1067, got %d", updated.LiquidityTokenIssuedAmount)
	}
}

// TestScenarioS6WithdrawToZero reproduces scenario S6: once every LP
// share is burned, the pool returns to empty reserves and invariant 2 (LP
// conservation) leaves balance(A, LP) back at max_value.
func TestScenarioS6WithdrawToZero(t *testing.T) {
	engine, ledger, alice, bob, t1, t2, pair := setupS1(t)

	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 100, u64(30_000)); err != nil {
		t.Fatalf("S1 add: %v", err)
	}
	if _, _, err := engine.AddLiquidity(bob, pair.Hash, 500, nil); err != nil {
		t.Fatalf("S2 add: %v", err)
	}
	if _, _, err := engine.SwapBuy(alice, pair.Hash, 13); err != nil {
		t.Fatalf("S3 buy: %v", err)
	}
	if _, _, err := engine.SwapSell(bob, pair.Hash, 539); err != nil {
		t.Fatalf("S4 sell: %v", err)
	}
	updated, _, err := engine.AddLiquidity(alice, pair.Hash, 477, nil)
	if err != nil {
		t.Fatalf("S5 add: %v", err)
	}

	aliceLP := ledger.BalanceOf(alice, updated.LiquidityTokenHash)
	bobLP := ledger.BalanceOf(bob, updated.LiquidityTokenHash)
	if aliceLP+bobLP != updated.LiquidityTokenIssuedAmount {
		t.Fatalf("LP conservation broken before withdrawal: %d+%d != %d", aliceLP, bobLP, updated.LiquidityTokenIssuedAmount)
	}

	final, _, _, err := engine.RemoveLiquidity(bob, pair.Hash, bobLP)
	if err != nil {
		t.Fatalf("remove bob's LP: %v", err)
	}
	final, _, _, err = engine.RemoveLiquidity(alice, pair.Hash, aliceLP)
	if err != nil {
		t.Fatalf("remove alice's LP: %v", err)
	}

	if final.LiquidityTokenIssuedAmount != 0 {
		t.Fatalf("want L=0, got %d", final.LiquidityTokenIssuedAmount)
	}
	if got := ledger.BalanceOf(pair.Account, t1); got != 0 {
		t.Fatalf("want base reserve=0, got %d", got)
	}
	if got := ledger.BalanceOf(pair.Account, t2); got != 0 {
		t.Fatalf("want quote reserve=0, got %d", got)
	}
	const maxBalance = ^uint64(0)
	if got := ledger.BalanceOf(pair.Account, final.LiquidityTokenHash); got != maxBalance {
		t.Fatalf("want balance(A, LP)=max_value, got %d", got)
	}
}

func TestAddLiquidityRejectsZeroBaseAmount(t *testing.T) {
	engine, _, alice, _, _, _, pair := setupS1(t)
	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 0, u64(1)); err == nil {
		t.Fatalf("expected an error for a zero base amount")
	}
}

func TestAddLiquidityBootstrapRequiresExplicitQuote(t *testing.T) {
	engine, _, alice, _, _, _, pair := setupS1(t)
	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 100, nil); err == nil {
		t.Fatalf("expected bootstrap deposit without an explicit quote amount to fail")
	}
}

func TestRemoveLiquidityRejectsMoreThanIssued(t *testing.T) {
	engine, _, alice, _, _, _, pair := setupS1(t)
	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 100, u64(30_000)); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if _, _, _, err := engine.RemoveLiquidity(alice, pair.Hash, 101); err == nil {
		t.Fatalf("expected an error when withdrawing more LP than alice holds")
	}
}

// TestRemoveLiquidityZeroBasePayoutSurfacesErrBaseAmountIsZero skews the
// base-reserve/issued ratio below 1 (via a large sell that drains the base
// reserve without touching issued), then withdraws the smallest possible LP
// amount so basePayout floors to zero. original_source/.../lib.rs:257-258
// reuses BaseAmountIsZero for this check, distinct from the earlier
// reserve-positivity PoolBaseAmountIsZero check.
func TestRemoveLiquidityZeroBasePayoutSurfacesErrBaseAmountIsZero(t *testing.T) {
	engine, ledger := newEngine()
	alice := core.Address{1}
	t1 := ledger.IssueGenesis(alice, "T1", 2_000_000)
	t2 := ledger.IssueGenesis(alice, "T2", 2_000_000)

	pair, err := engine.CreateTradePair(alice, t1, t2)
	if err != nil {
		t.Fatalf("create pair: %v", err)
	}
	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 1_000, u64(1_000)); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if _, _, err := engine.SwapSell(alice, pair.Hash, 999_000); err != nil {
		t.Fatalf("swap sell: %v", err)
	}

	if _, _, _, err := engine.RemoveLiquidity(alice, pair.Hash, 1); !errors.Is(err, core.ErrBaseAmountIsZero) {
		t.Fatalf("want ErrBaseAmountIsZero, got %v", err)
	}
}

// TestRemoveLiquidityZeroQuotePayoutSurfacesErrQuoteAmountIsZero is the
// symmetric case, skewing the quote-reserve/issued ratio below 1 instead.
func TestRemoveLiquidityZeroQuotePayoutSurfacesErrQuoteAmountIsZero(t *testing.T) {
	engine, ledger := newEngine()
	alice := core.Address{1}
	t1 := ledger.IssueGenesis(alice, "T1", 2_000_000)
	t2 := ledger.IssueGenesis(alice, "T2", 2_000_000)

	pair, err := engine.CreateTradePair(alice, t1, t2)
	if err != nil {
		t.Fatalf("create pair: %v", err)
	}
	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 1_000, u64(1_000)); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if _, _, err := engine.SwapBuy(alice, pair.Hash, 999_000); err != nil {
		t.Fatalf("swap buy: %v", err)
	}

	if _, _, _, err := engine.RemoveLiquidity(alice, pair.Hash, 1); !errors.Is(err, core.ErrQuoteAmountIsZero) {
		t.Fatalf("want ErrQuoteAmountIsZero, got %v", err)
	}
}

// TestAddRemoveRoundTrip exercises universal invariant 5: a deposit
// immediately reversed returns the sender's balances to within a unit of
// their pre-call values.
func TestAddRemoveRoundTrip(t *testing.T) {
	engine, ledger, alice, bob, t1, t2, pair := setupS1(t)
	if _, _, err := engine.AddLiquidity(alice, pair.Hash, 100, u64(30_000)); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	beforeT1 := ledger.BalanceOf(bob, t1)
	beforeT2 := ledger.BalanceOf(bob, t2)

	_, minted, err := engine.AddLiquidity(bob, pair.Hash, 1_000, nil)
	if err != nil {
		t.Fatalf("bob add: %v", err)
	}
	if _, _, _, err := engine.RemoveLiquidity(bob, pair.Hash, minted); err != nil {
		t.Fatalf("bob remove: %v", err)
	}

	afterT1 := ledger.BalanceOf(bob, t1)
	afterT2 := ledger.BalanceOf(bob, t2)

	if diff := absDiff(beforeT1, afterT1); diff > 1 {
		t.Fatalf("base round-trip dust too large: %d", diff)
	}
	if diff := absDiff(beforeT2, afterT2); diff > 1 {
		t.Fatalf("quote round-trip dust too large: %d", diff)
	}
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
