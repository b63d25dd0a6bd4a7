package backtest

import (
	"time"

	"github.com/rustyeddy/swingtrader/catalog"
	"github.com/rustyeddy/swingtrader/portfolio"
)

// swing applies the inter-day rule: at most one buy at an all-time low and
// a sell of every held instrument at its all-time high. It reports whether
// any of those trades happened.
func (e *Engine) swing(day time.Time) (bool, error) {
	bought, err := e.swingBuy(day)
	if err != nil {
		return false, err
	}
	sold, err := e.swingSell(day)
	if err != nil {
		return false, err
	}
	return bought || sold, nil
}

// bestLow picks, among instruments whose all-time low is today, the one with
// the largest profit. Ties go to the earliest instrument in catalog order.
func (e *Engine) bestLow(day time.Time) *catalog.Instrument {
	var best *catalog.Instrument
	for _, inst := range e.cat.Instruments() {
		if !inst.Extremum.MinDate.Equal(day) {
			continue
		}
		if best == nil || inst.Extremum.Profit.GreaterThan(best.Extremum.Profit) {
			best = inst
		}
	}
	return best
}

func (e *Engine) swingBuy(day time.Time) (bool, error) {
	inst := e.bestLow(day)
	if inst == nil {
		return false, nil
	}

	balance := e.acct.Balance()
	if inst.Extremum.Profit.LessThan(SwingProfitThreshold) && !balance.LessThan(ForceTradeBalance) {
		return false, nil
	}

	c, ok := inst.Series.At(day)
	if !ok {
		return false, nil
	}

	// The second volume cap uses the volume recorded on the all-time high day.
	qty := min(
		portfolio.Affordable(balance, c.Low),
		portfolio.LiquidityCap(c.Volume),
		portfolio.LiquidityCap(inst.Extremum.MaxVolume),
	)
	if qty <= 0 {
		return false, nil
	}

	cost := portfolio.BuyCost(qty, c.Low)
	if !balance.Sub(cost).GreaterThan(balance.Mul(e.cfg.MinBalanceFraction)) {
		return false, nil
	}

	if _, err := e.acct.Open(inst.Name, qty, c.Low); err != nil {
		return false, err
	}
	e.stats.SwingBuys++
	err := e.record(portfolio.Transaction{
		Day:        day,
		Action:     portfolio.ActionBuyLow,
		Instrument: inst.Name,
		Quantity:   qty,
		Price:      c.Low,
	})
	return true, err
}

func (e *Engine) swingSell(day time.Time) (bool, error) {
	sold := false
	for _, inst := range e.cat.Instruments() {
		if !inst.Extremum.MaxDate.Equal(day) {
			continue
		}
		if _, held := e.acct.Holding(inst.Name); !held {
			continue
		}
		c, ok := inst.Series.At(day)
		if !ok {
			continue
		}

		qty, _, err := e.acct.Close(inst.Name, c.High)
		if err != nil {
			return sold, err
		}
		sold = true
		e.stats.SwingSells++
		if err := e.record(portfolio.Transaction{
			Day:        day,
			Action:     portfolio.ActionSellHigh,
			Instrument: inst.Name,
			Quantity:   qty,
			Price:      c.High,
		}); err != nil {
			return sold, err
		}
	}
	return sold, nil
}
