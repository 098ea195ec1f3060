package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	config "tradepair-network/cmd/config"
	core "tradepair-network/core"
)

func pairsHandler(w http.ResponseWriter, _ *http.Request) {
	views := core.Manager().Snapshot()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(views)
}

// decodeHash parses an optionally "0x"-prefixed hex query parameter into a
// core.Hash, the query-string analogue of cmd/cli's decodeHexExact.
func decodeHash(s string) (core.Hash, error) {
	var hash core.Hash
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return hash, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != len(hash) {
		return hash, fmt.Errorf("want %d bytes, got %d", len(hash), len(b))
	}
	copy(hash[:], b)
	return hash, nil
}

func pairHandler(w http.ResponseWriter, r *http.Request) {
	hash, err := decodeHash(r.URL.Query().Get("hash"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pair, ok := core.Manager().Pair(hash)
	if !ok {
		http.Error(w, "no trade pair registered under that hash", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(core.Manager().View(pair))
}

func main() {
	config.LoadConfig(os.Getenv("TRADEPAIR_ENV"))
	logger := log.New()
	if lvl, err := log.ParseLevel(config.AppConfig.Logging.Level); err == nil {
		logger.SetLevel(lvl)
	}

	store := core.NewMemoryState()
	ledger := core.NewMemoryLedger()
	runtime := core.NewSimpleRuntime(core.Hash{})
	sink := core.NewEventLog(logger)
	core.InitEngine(store, ledger, runtime, sink, logger)

	addr := config.AppConfig.Server.ListenAddr
	if addr == "" {
		addr = "127.0.0.1:8081"
	}
	http.HandleFunc("/api/pairs", pairsHandler)
	http.HandleFunc("/api/pair", pairHandler)
	logger.Printf("pairserver listening on %s", addr)
	logger.Fatal(http.ListenAndServe(addr, nil))
}
