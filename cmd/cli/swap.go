// cmd/cli/swap.go – Cobra CLI glue for the constant-product swap pricer.
//
// Usage:
//     $ tradepair swap buy        <pairHashHex> <senderAddrHex> <baseAmount>
//     $ tradepair swap sell       <pairHashHex> <senderAddrHex> <quoteAmount>
//     $ tradepair swap quote-buy  <pairHashHex> <baseAmount>
//     $ tradepair swap quote-sell <pairHashHex> <quoteAmount>
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	core "tradepair-network/core"
)

type swapController struct{}

func (swapController) Buy(sender core.Address, pairHash core.Hash, baseAmount uint64) (uint64, error) {
	_, quoteOut, err := core.Manager().SwapBuy(sender, pairHash, baseAmount)
	return quoteOut, err
}

func (swapController) Sell(sender core.Address, pairHash core.Hash, quoteAmount uint64) (uint64, error) {
	_, baseOut, err := core.Manager().SwapSell(sender, pairHash, quoteAmount)
	return baseOut, err
}

var swapCmd = &cobra.Command{
	Use:               "swap",
	Short:             "Execute or preview a fee-free constant-product swap",
	PersistentPreRunE: ensureEngineInitialised,
}

var swapBuyCmd = &cobra.Command{
	Use:   "buy <pairHashHex> <senderAddrHex> <baseAmount>",
	Short: "Pay base, receive quote",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		out, err := (swapController{}).Buy(sender, hash, baseAmount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "received %d quote\n", out)
		return nil
	},
}

var swapSellCmd = &cobra.Command{
	Use:   "sell <pairHashHex> <senderAddrHex> <quoteAmount>",
	Short: "Pay quote, receive base",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := parseHash(args[0])
		if err != nil {
			return fmt.Errorf("pairHashHex: %w", err)
		}
		sender, err := mustAddr(args[1])
		if err != nil {
			return fmt.Errorf("senderAddrHex: %w", err)
		}
		quoteAmount, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("quoteAmount: %w", err)
		}
		out, err := (swapController{}).Sell(sender, hash, quoteAmount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "received %d base\n", out)
		return nil
	},
}

var swapQuoteBuyCmd = &cobra.Command{
	Use:   "quote-buy <pairHashHex> <baseAmount>",
	Short: "Preview SwapBuy's output without mutating any state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := parseHash(args[0])
		if err != nil {
			return fmt.Errorf("pairHashHex: %w", err)
		}
		baseAmount, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("baseAmount: %w", err)
		}
		out, err := core.Manager().QuoteBuy(hash, baseAmount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", out)
		return nil
	},
}

var swapQuoteSellCmd = &cobra.Command{
	Use:   "quote-sell <pairHashHex> <quoteAmount>",
	Short: "Preview SwapSell's output without mutating any state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := parseHash(args[0])
		if err != nil {
			return fmt.Errorf("pairHashHex: %w", err)
		}
		quoteAmount, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("quoteAmount: %w", err)
		}
		out, err := core.Manager().QuoteSell(hash, quoteAmount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", out)
		return nil
	},
}

func init() {
	swapCmd.AddCommand(swapBuyCmd)
	swapCmd.AddCommand(swapSellCmd)
	swapCmd.AddCommand(swapQuoteBuyCmd)
	swapCmd.AddCommand(swapQuoteSellCmd)
}

// Export for main-index import: rootCmd.AddCommand(cli.SwapCmd)
var SwapCmd = swapCmd
