package core

import log "github.com/sirupsen/logrus"

// Event is an append-only record attached to the current block. Events are
// part of the public API — indexers read them — so their shape is part of
// the wire contract, not an implementation detail.
type Event struct {
	Type    string
	Account Address
	PairHash Hash
	Pair    *TradePair // only populated for TradePairCreated
}

const (
	EventTradePairCreated = "TradePairCreated"
	EventLiquidityAdded   = "LiquidityAdded"
	EventLiquidityRemoved = "LiquidityRemoved"
	EventSwapBuy          = "SwapBuy"
	EventSwapSell         = "SwapSell"
)

// EventSink receives emitted events. A real host chain dispatches these to
// its block's event log; EventLog below is the standalone reference sink.
type EventSink interface {
	Emit(evt Event)
}

// EventLog is a reference EventSink that appends to an in-memory slice and
// logs each event at info level as it is emitted.
type EventLog struct {
	logger *log.Logger
	events []Event
}

// NewEventLog returns an EventLog using logger, or logrus's standard
// logger if nil.
func NewEventLog(logger *log.Logger) *EventLog {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &EventLog{logger: logger}
}

func (e *EventLog) Emit(evt Event) {
	e.events = append(e.events, evt)
	e.logger.WithFields(log.Fields{
		"type":    evt.Type,
		"account": evt.Account.String(),
		"pair":    evt.PairHash.String(),
	}).Info("event emitted")
}

// Events returns all events recorded so far, oldest first.
func (e *EventLog) Events() []Event { return e.events }
