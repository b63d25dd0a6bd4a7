package backtest

import (
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
	"github.com/shopspring/decimal"
)

// Result summarises a run.
type Result struct {
	State State
	Start time.Time
	End   time.Time
	Days  int // days processed

	Transactions int
	Stats

	StartBalance decimal.Decimal
	EndBalance   decimal.Decimal
	EndPortfolio decimal.Decimal
	Open         []portfolio.Position
}

// Result reports where the engine stands. It can be called at any state.
func (e *Engine) Result() Result {
	r := Result{
		State:        e.state,
		Days:         e.processed,
		Transactions: len(e.txs),
		Stats:        e.stats,
		StartBalance: e.startBalance,
		EndBalance:   e.acct.Balance(),
		EndPortfolio: e.last.Portfolio,
		Open:         e.acct.Positions(),
	}
	if len(e.days) > 0 {
		r.Start = e.days[0]
		r.End = e.days[len(e.days)-1]
	}
	return r
}

// PrintResult writes a human readable report of r.
func PrintResult(w io.Writer, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Simulation Result")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "State:          %s\n", r.State)
	fmt.Fprintf(w, "Start:          %s\n", r.Start.Format(market.DayFormat))
	fmt.Fprintf(w, "End:            %s\n", r.End.Format(market.DayFormat))
	fmt.Fprintf(w, "Days:           %d\n", r.Days)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Transactions:   %d\n", r.Transactions)
	fmt.Fprintf(w, "Swing buys:     %d\n", r.SwingBuys)
	fmt.Fprintf(w, "Swing sells:    %d\n", r.SwingSells)
	fmt.Fprintf(w, "Intraday buys:  %d\n", r.IntradayBuys)
	fmt.Fprintf(w, "Intraday sells: %d\n", r.IntradaySells)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start balance:  %s\n", r.StartBalance.StringFixed(2))
	fmt.Fprintf(w, "End balance:    %s\n", r.EndBalance.StringFixed(2))
	fmt.Fprintf(w, "Portfolio:      %s\n", r.EndPortfolio.StringFixed(2))
	for _, p := range r.Open {
		fmt.Fprintf(w, "  open %-10s %d\n", p.Instrument, p.Quantity)
	}
	fmt.Fprintln(w, "==================================================")
}
