package backtest

import (
	"errors"
	"testing"
	"time"

	"github.com/rustyeddy/swingtrader/catalog"
	"github.com/rustyeddy/swingtrader/market"
	"github.com/rustyeddy/swingtrader/portfolio"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := market.ParseDay(s)
	require.NoError(t, err)
	return d
}

// bar builds a candle; open is set to the low.
func bar(t *testing.T, day, high, low, close string, volume int64) market.Candle {
	t.Helper()
	return market.Candle{
		Date:   mustDay(t, day),
		Open:   dec(low),
		High:   dec(high),
		Low:    dec(low),
		Close:  dec(close),
		Volume: volume,
	}
}

func instrument(t *testing.T, name string, candles ...market.Candle) *catalog.Instrument {
	t.Helper()
	inst, err := catalog.NewInstrument(name, candles)
	require.NoError(t, err)
	return inst
}

func newEngine(t *testing.T, balance string, cfg Config, insts ...*catalog.Instrument) *Engine {
	t.Helper()
	cat, err := catalog.New(insts)
	require.NoError(t, err)
	return NewEngine(cat, portfolio.NewAccount(dec(balance)), cfg)
}

var (
	smallMode = Config{MinIntradayProfit: dec("100"), MinBalanceFraction: decimal.Zero}
	largeMode = Config{MinIntradayProfit: dec("1"), MinBalanceFraction: dec("0.1")}
)

// recorder keeps every event and can fail on the n-th transaction.
type recorder struct {
	txs    []portfolio.Transaction
	vals   []portfolio.Valuation
	failAt int
}

var errRecorder = errors.New("recorder failure")

func (r *recorder) RecordTransaction(tx portfolio.Transaction) error {
	r.txs = append(r.txs, tx)
	if r.failAt > 0 && len(r.txs) == r.failAt {
		return errRecorder
	}
	return nil
}

func (r *recorder) RecordValuation(v portfolio.Valuation) error {
	r.vals = append(r.vals, v)
	return nil
}

func actions(txs []portfolio.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.String()
	}
	return out
}
