package backtest

import (
	"log"

	"github.com/rustyeddy/swingtrader/portfolio"
)

// Observer receives the events of a run as they happen. Returning an error
// stops the run.
type Observer interface {
	RecordTransaction(portfolio.Transaction) error
	RecordValuation(portfolio.Valuation) error
}

// LogObserver writes one line per transaction.
type LogObserver struct {
	Logger *log.Logger
}

func (o LogObserver) RecordTransaction(tx portfolio.Transaction) error {
	o.Logger.Printf("%d . Transaction: [%s] | Balance: %s", tx.Seq, tx, tx.Balance.StringFixed(2))
	return nil
}

func (o LogObserver) RecordValuation(portfolio.Valuation) error { return nil }
