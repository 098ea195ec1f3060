package core

import "errors"

// Error kinds surfaced to callers of the five extrinsics. Every precondition
// failure returns one of these directly (never wrapped) so callers can use
// errors.Is. DoIssue and DoTransfer failures are wrapped with additional
// call-site context via fmt.Errorf elsewhere in this package;
// EnsureFreeBalance failures are returned exactly as the ledger reports them.
var (
	// Pair domain
	ErrBaseEqualQuote                = errors.New("base equal quote")
	ErrTokenNotFound                 = errors.New("token not found")
	ErrTokenOwnerNotFound             = errors.New("token owner not found")
	ErrSenderNotEqualToBaseOrQuoteOwner = errors.New("sender not equal to base or quote owner")
	ErrTradePairExisted              = errors.New("trade pair existed")
	ErrNoMatchingTradePair           = errors.New("no matching trade pair")

	// Input validation
	ErrBaseAmountIsZero  = errors.New("base amount is zero")
	ErrQuoteAmountIsZero = errors.New("quote amount is zero")
	ErrQuoteAmountIsNone = errors.New("quote amount is none")

	// Liquidity state
	ErrLiquidityMintedIsZero         = errors.New("liquidity minted is zero")
	ErrLiquidityTokenAmountIsZero    = errors.New("liquidity token amount is zero")
	ErrLiquidityTokenAmountOverflow  = errors.New("liquidity token amount overflow")
	ErrLiquidityTokenIssuedAmountIsZero = errors.New("liquidity token issued amount is zero")
	ErrPoolBaseAmountIsZero  = errors.New("pool base amount is zero")
	ErrPoolQuoteAmountIsZero = errors.New("pool quote amount is zero")

	// Arithmetic
	ErrOverflow = errors.New("arithmetic overflow")
)
