// cmd/cli/liquidity.go – Cobra CLI glue for core liquidity accounting
// (bootstrap/proportional deposit, withdrawal). Mirrors pair.go's
// middleware/controller/commands structure.
//
// Usage:
//     $ tradepair liquidity add    <pairHashHex> <senderAddrHex> <baseAmount> [quoteAmount]
//     $ tradepair liquidity remove <pairHashHex> <senderAddrHex> <lpAmount>
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	core "tradepair-network/core"
)

type liquidityController struct{}

func (liquidityController) Add(sender core.Address, pairHash core.Hash, baseAmount uint64, quoteAmount *uint64) (*core.TradePair, uint64, error) {
	return core.Manager().AddLiquidity(sender, pairHash, baseAmount, quoteAmount)
}

func (liquidityController) Remove(sender core.Address, pairHash core.Hash, lpAmount uint64) (*core.TradePair, uint64, uint64, error) {
	return core.Manager().RemoveLiquidity(sender, pairHash, lpAmount)
}

var liquidityCmd = &cobra.Command{
	Use:               "liquidity",
	Short:             "Add or remove liquidity from a trade pair's pool",
	PersistentPreRunE: ensureEngineInitialised,
}

var liquidityAddCmd = &cobra.Command{
	Use:   "add <pairHashHex> <senderAddrHex> <baseAmount> [quoteAmount]",
	Short: "Deposit liquidity; omit quoteAmount for a proportional (non-bootstrap) deposit",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl := liquidityController{}
		hash, err := parseHash(args[0])
		if err != nil {
			return fmt.Errorf("pairHashHex: %w", err)
		}
		sender, err := mustAddr(args[1])
		if err != nil {
			return fmt.Errorf("senderAddrHex: %w", err)
		}
		baseAmount, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("baseAmount: %w", err)
		}
		var quoteAmount *uint64
		if len(args) == 4 {
			q, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("quoteAmount: %w", err)
			}
			quoteAmount = &q
		}
		pair, minted, err := ctl.Add(sender, hash, baseAmount, quoteAmount)
		if err != nil {
			return err
		}
		view := core.Manager().View(pair)
		fmt.Fprintf(cmd.OutOrStdout(), "minted %d LP shares; L=%d\n", minted, view.LiquidityTokenIssuedAmount)
		enc, _ := json.MarshalIndent(view, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

var liquidityRemoveCmd = &cobra.Command{
	Use:   "remove <pairHashHex> <senderAddrHex> <lpAmount>",
	Short: "Burn LP shares for a pro-rata slice of the pool's reserves",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl := liquidityController{}
		hash, err := parseHash(args[0])
		if err != nil {
			return fmt.Errorf("pairHashHex: %w", err)
		}
		sender, err := mustAddr(args[1])
		if err != nil {
			return fmt.Errorf("senderAddrHex: %w", err)
		}
		lpAmount, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("lpAmount: %w", err)
		}
		_, basePayout, quotePayout, err := ctl.Remove(sender, hash, lpAmount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "redeemed %d base / %d quote\n", basePayout, quotePayout)
		return nil
	},
}

func init() {
	liquidityCmd.AddCommand(liquidityAddCmd)
	liquidityCmd.AddCommand(liquidityRemoveCmd)
}

// Export for main-index import: rootCmd.AddCommand(cli.LiquidityCmd)
var LiquidityCmd = liquidityCmd
