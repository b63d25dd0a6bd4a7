package journal

import (
	"testing"
	"time"

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

func sampleTransactions(t *testing.T) []portfolio.Transaction {
	t.Helper()
	return []portfolio.Transaction{
		{Seq: 1, Day: mustDay(t, "2020-01-02"), Action: portfolio.ActionBuyLow, Instrument: "AAA", Quantity: 50, Price: dec("10"), Balance: dec("495")},
		{Seq: 2, Day: mustDay(t, "2020-01-03"), Action: portfolio.ActionSellHigh, Instrument: "AAA", Quantity: 50, Price: dec("30"), Balance: dec("1980")},
		{Seq: 3, Day: mustDay(t, "2020-01-03"), Action: portfolio.ActionSellClose, Instrument: "BBB", Quantity: 7, Price: dec("12.5"), Balance: dec("2066.625")},
	}
}

func sampleValuations(t *testing.T) []portfolio.Valuation {
	t.Helper()
	return []portfolio.Valuation{
		{Day: mustDay(t, "2020-01-02"), Balance: dec("495"), Portfolio: dec("1000")},
		{Day: mustDay(t, "2020-01-03"), Balance: dec("2066.625"), Portfolio: dec("0")},
	}
}
