package backtest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/swingtrader/catalog"
	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
	"github.com/shopspring/decimal"
)

var (
	// SwingProfitThreshold is the smallest all-time high-low distance worth a
	// swing buy.
	SwingProfitThreshold = decimal.NewFromInt(10)

	// ForceTradeBalance is the balance below which a swing buy ignores
	// SwingProfitThreshold.
	ForceTradeBalance = decimal.NewFromInt(10)

	// MinWorkingCapital is the balance the intraday rule needs to run at all.
	MinWorkingCapital = decimal.NewFromInt(100)
)

var (
	// ErrAlreadyRun is returned by Run on an engine that left the Idle state,
	// and by Step on an engine that completed or failed.
	ErrAlreadyRun = errors.New("backtest: engine already run")

	// ErrDayOutOfRange is returned by Step for a day outside the catalog span.
	ErrDayOutOfRange = errors.New("backtest: day outside catalog range")

	// ErrDayOutOfOrder is returned by Step for a day not after the last one applied.
	ErrDayOutOfOrder = errors.New("backtest: day already applied")
)

// Config holds the two tunables selected by the run mode.
type Config struct {
	// MinIntradayProfit is the smallest close-low spread an intraday trade needs.
	MinIntradayProfit decimal.Decimal

	// MinBalanceFraction is the share of the balance a swing buy must leave
	// untouched.
	MinBalanceFraction decimal.Decimal
}

// State is the lifecycle of an Engine.
type State int

const (
	Idle State = iota
	Running
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Engine replays a catalog day by day and trades it with the swing and
// intraday rules. An Engine owns its account and history and runs once.
type Engine struct {
	cat  *catalog.Catalog
	cfg  Config
	acct *portfolio.Account

	days      []time.Time
	history   *portfolio.History
	txs       []portfolio.Transaction
	observers []Observer

	state        State
	stepped      time.Time // last day fully applied
	processed    int
	last         portfolio.Valuation
	startBalance decimal.Decimal
	stats        Stats
}

// Stats counts trades per rule.
type Stats struct {
	SwingBuys     int
	SwingSells    int
	IntradayBuys  int
	IntradaySells int
}

// NewEngine prepares a run of cat against acct.
func NewEngine(cat *catalog.Catalog, acct *portfolio.Account, cfg Config) *Engine {
	days := cat.Days()
	return &Engine{
		cat:          cat,
		cfg:          cfg,
		acct:         acct,
		days:         days,
		history:      portfolio.NewHistory(days),
		last:         portfolio.Valuation{Balance: acct.Balance(), Portfolio: decimal.Zero},
		startBalance: acct.Balance(),
	}
}

// Subscribe registers observers notified of every trade and every end of day.
func (e *Engine) Subscribe(obs ...Observer) {
	e.observers = append(e.observers, obs...)
}

func (e *Engine) State() State                          { return e.state }
func (e *Engine) Account() *portfolio.Account           { return e.acct }
func (e *Engine) History() *portfolio.History           { return e.history }
func (e *Engine) Transactions() []portfolio.Transaction { return e.txs }
func (e *Engine) Days() []time.Time                     { return e.days }

// Run processes every day of the catalog in calendar order, starting after
// any day already applied with Step. Days already applied stay applied when
// Run fails part way.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if e.state != Idle {
		return Result{}, ErrAlreadyRun
	}
	e.state = Running

	for _, day := range e.days {
		if !e.stepped.IsZero() && !day.After(e.stepped) {
			continue
		}
		if err := ctx.Err(); err != nil {
			e.state = Failed
			return e.Result(), err
		}
		if err := e.Step(day); err != nil {
			e.state = Failed
			return e.Result(), fmt.Errorf("backtest: %s: %w", day.Format(market.DayFormat), err)
		}
	}

	e.state = Completed
	return e.Result(), nil
}

// Step applies one day: the swing rule, then the intraday rule when the
// swing rule did not trade, then the end of day valuation. Days must lie in
// the catalog span and be stepped in increasing order; a rejected day
// changes nothing. A failed Step leaves the engine Failed.
func (e *Engine) Step(day time.Time) error {
	day = market.Day(day)
	if err := e.checkDay(day); err != nil {
		return err
	}

	swung, err := e.swing(day)
	if err != nil {
		e.state = Failed
		return err
	}
	if !swung {
		if err := e.intraday(day); err != nil {
			e.state = Failed
			return err
		}
	}
	if err := e.recordValuation(day); err != nil {
		e.state = Failed
		return err
	}
	e.stepped = day
	return nil
}

func (e *Engine) checkDay(day time.Time) error {
	if e.state == Completed || e.state == Failed {
		return ErrAlreadyRun
	}
	if len(e.days) == 0 || day.Before(e.days[0]) || day.After(e.days[len(e.days)-1]) {
		return fmt.Errorf("%w: %s", ErrDayOutOfRange, day.Format(market.DayFormat))
	}
	if !e.stepped.IsZero() && !day.After(e.stepped) {
		return fmt.Errorf("%w: %s", ErrDayOutOfOrder, day.Format(market.DayFormat))
	}
	return nil
}

// record stamps tx with its sequence number and the post-trade balance, then
// appends it and notifies observers.
func (e *Engine) record(tx portfolio.Transaction) error {
	tx.Seq = len(e.txs) + 1
	tx.Balance = e.acct.Balance()
	e.txs = append(e.txs, tx)

	for _, o := range e.observers {
		if err := o.RecordTransaction(tx); err != nil {
			return fmt.Errorf("observer: %w", err)
		}
	}
	return nil
}
