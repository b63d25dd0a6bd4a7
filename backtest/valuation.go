package backtest

import (
	"fmt"
	"time"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
	"github.com/shopspring/decimal"
)

// Valuate marks the account to market at day's close. Held instruments that
// did not trade on day are left out. It does not change any state.
func (e *Engine) Valuate(day time.Time) portfolio.Valuation {
	day = market.Day(day)
	return portfolio.Valuation{
		Day:     day,
		Balance: e.acct.Balance(),
		Portfolio: e.acct.Value(func(name string) (decimal.Decimal, bool) {
			inst, ok := e.cat.Get(name)
			if !ok {
				return decimal.Zero, false
			}
			c, ok := inst.Series.At(day)
			return c.Close, ok
		}),
	}
}

func (e *Engine) recordValuation(day time.Time) error {
	v := e.Valuate(day)
	if err := e.history.Record(v); err != nil {
		return err
	}
	if !v.Day.Equal(e.last.Day) {
		e.processed++
	}
	e.last = v
	for _, o := range e.observers {
		if err := o.RecordValuation(v); err != nil {
			return fmt.Errorf("observer: %w", err)
		}
	}
	return nil
}
