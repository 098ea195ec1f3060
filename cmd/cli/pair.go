// cmd/cli/pair.go – Cobra CLI glue for the core trade-pair registry.
// -----------------------------------------------------------
// Structure of this file
//   • Middleware (dependency wiring / guard-rails)
//   • Controller (thin orchestrator around core.* helpers)
//   • CLI Commands   – declared top-to-bottom for discoverability
//   • Consolidation  – all commands mounted under root "pair" and
//                      exported via PairCmd for import into your main index.
//
// Usage once injected into main root:
//     $ tradepair pair create <baseTokenID> <quoteTokenID> <senderAddrHex>
//     $ tradepair pair info   <pairHashHex>
//     $ tradepair pair list
// -----------------------------------------------------------
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	core "tradepair-network/core"
)

//---------------------------------------------------------------------
// Middleware – executed for every ~pair/liquidity/swap command
//---------------------------------------------------------------------

// ensureEngineInitialised makes sure the package-level Engine is ready.
// cmd/tradepair's main calls core.InitEngine before executing the root
// command; this is a defensive check for anyone embedding these commands
// into a different main.
func ensureEngineInitialised(cmd *cobra.Command, _ []string) error {
	if core.Manager() == nil {
		return fmt.Errorf("engine not initialised – call core.InitEngine before running CLI commands")
	}
	return nil
}

//---------------------------------------------------------------------
// Controller – provides user-oriented façade, not exposing internals
//---------------------------------------------------------------------

type pairController struct{}

func (pairController) Create(sender core.Address, base, quote core.TokenID) (*core.TradePair, error) {
	return core.Manager().CreateTradePair(sender, base, quote)
}

func (pairController) Info(hash core.Hash) (core.PairView, error) {
	p, ok := core.Manager().Pair(hash)
	if !ok {
		return core.PairView{}, fmt.Errorf("no trade pair registered under hash %s", hash)
	}
	return core.Manager().View(p), nil
}

func (pairController) List() []core.PairView { return core.Manager().Snapshot() }

//---------------------------------------------------------------------
// CLI command declarations
//---------------------------------------------------------------------

var pairCmd = &cobra.Command{
	Use:               "pair",
	Short:             "Trade-pair registry: create pairs, inspect reserves",
	PersistentPreRunE: ensureEngineInitialised,
}

var pairCreateCmd = &cobra.Command{
	Use:   "create <baseTokenID> <quoteTokenID> <senderAddrHex>",
	Short: "Create a new trade pair; sender must own base or quote",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl := pairController{}
		base, err := parseTokenID(args[0])
		if err != nil {
			return fmt.Errorf("baseTokenID: %w", err)
		}
		quote, err := parseTokenID(args[1])
		if err != nil {
			return fmt.Errorf("quoteTokenID: %w", err)
		}
		sender, err := mustAddr(args[2])
		if err != nil {
			return fmt.Errorf("senderAddrHex: %w", err)
		}
		pair, err := ctl.Create(sender, base, quote)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(pair, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

var pairInfoCmd = &cobra.Command{
	Use:   "info <pairHashHex>",
	Short: "Show a trade pair's reserves and LP issuance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl := pairController{}
		hash, err := parseHash(args[0])
		if err != nil {
			return fmt.Errorf("pairHashHex: %w", err)
		}
		view, err := ctl.Info(hash)
		if err != nil {
			return err
		}
		enc, _ := json.MarshalIndent(view, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

var pairListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered trade pair, in creation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctl := pairController{}
		enc, _ := json.MarshalIndent(ctl.List(), "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

//---------------------------------------------------------------------
// Shared argument parsing helpers (used by liquidity.go and swap.go too)
//---------------------------------------------------------------------

func parseTokenID(s string) (core.TokenID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return core.TokenID(v), nil
}

func parseHash(s string) (core.Hash, error) {
	var h core.Hash
	b, err := decodeHexExact(s, len(h))
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func mustAddr(s string) (core.Address, error) {
	var a core.Address
	b, err := decodeHexExact(s, len(a))
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

//---------------------------------------------------------------------
// Consolidation & export
//---------------------------------------------------------------------

func init() {
	pairCmd.AddCommand(pairCreateCmd)
	pairCmd.AddCommand(pairInfoCmd)
	pairCmd.AddCommand(pairListCmd)
}

// Export for main-index import: rootCmd.AddCommand(cli.PairCmd)
var PairCmd = pairCmd
