package journal

import (
	"github.com/rustyeddy/swingtrader/portfolio"
)

// Journal persists the events of a simulation run. Every Journal can be
// subscribed to a backtest engine.
type Journal interface {
	RecordTransaction(portfolio.Transaction) error
	RecordValuation(portfolio.Valuation) error
	Close() error
}
