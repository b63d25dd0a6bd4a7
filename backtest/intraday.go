package backtest

import (
	"sort"
	"time"

	"github.com/rustyeddy/swingtrader/catalog"
	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
	"github.com/shopspring/decimal"
)

type intradayCandidate struct {
	inst   *catalog.Instrument
	candle market.Candle
	qty    int64
	profit decimal.Decimal // spread * qty
}

// intradayCandidates lists instruments tradable today in catalog order. Every
// candidate is sized against the balance at the start of the rule.
func (e *Engine) intradayCandidates(day time.Time) []intradayCandidate {
	balance := e.acct.Balance()

	var out []intradayCandidate
	for _, inst := range e.cat.Instruments() {
		c, ok := inst.Series.At(day)
		if !ok {
			continue
		}
		spread := c.Spread()
		if spread.LessThan(e.cfg.MinIntradayProfit) {
			continue
		}
		qty := min(portfolio.Affordable(balance, c.Low), portfolio.LiquidityCap(c.Volume))
		if qty <= 0 {
			continue
		}
		out = append(out, intradayCandidate{
			inst:   inst,
			candle: c,
			qty:    qty,
			profit: spread.Mul(decimal.NewFromInt(qty)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].profit.GreaterThan(out[j].profit)
	})
	return out
}

// intraday buys ranked candidates at the low while the shrinking balance
// covers them, then sells every bought lot at the close in buying order.
func (e *Engine) intraday(day time.Time) error {
	if !e.acct.Balance().GreaterThan(MinWorkingCapital) {
		return nil
	}

	var bought []intradayCandidate
	for _, c := range e.intradayCandidates(day) {
		if portfolio.BuyCost(c.qty, c.candle.Low).GreaterThan(e.acct.Balance()) {
			continue
		}
		if _, err := e.acct.Buy(c.qty, c.candle.Low); err != nil {
			return err
		}
		e.stats.IntradayBuys++
		if err := e.record(portfolio.Transaction{
			Day:        day,
			Action:     portfolio.ActionBuyLow,
			Instrument: c.inst.Name,
			Quantity:   c.qty,
			Price:      c.candle.Low,
		}); err != nil {
			return err
		}
		bought = append(bought, c)
	}

	for _, c := range bought {
		if _, err := e.acct.Sell(c.qty, c.candle.Close); err != nil {
			return err
		}
		e.stats.IntradaySells++
		if err := e.record(portfolio.Transaction{
			Day:        day,
			Action:     portfolio.ActionSellClose,
			Instrument: c.inst.Name,
			Quantity:   c.qty,
			Price:      c.candle.Close,
		}); err != nil {
			return err
		}
	}
	return nil
}
