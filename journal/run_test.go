package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/swingtrader/backtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary(t *testing.T) RunSummary {
	t.Helper()
	res := backtest.Result{
		State:        backtest.Completed,
		Start:        mustDay(t, "2009-01-02"),
		End:          mustDay(t, "2009-12-31"),
		Days:         251,
		Transactions: 12,
		Stats:        backtest.Stats{SwingBuys: 4, SwingSells: 4, IntradayBuys: 2, IntradaySells: 2},
		StartBalance: dec("1"),
		EndBalance:   dec("1234.5"),
		EndPortfolio: dec("10"),
	}
	cfg := backtest.Config{MinIntradayProfit: dec("100"), MinBalanceFraction: dec("0")}
	return Summarize("01HRUN", "small", "Stocks", 7, cfg, res)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := sampleSummary(t)
	assert.Equal(t, "01HRUN", s.RunID)
	assert.False(t, s.Created.IsZero())
	assert.Equal(t, 251, s.Days)
	assert.Equal(t, 4, s.SwingBuys)
	assert.True(t, s.Profit().Equal(dec("1233.5")))
	assert.True(t, s.Total().Equal(dec("1244.5")))
}

func TestFormatOrg(t *testing.T) {
	t.Parallel()

	out, err := sampleSummary(t).FormatOrg()
	require.NoError(t, err)

	assert.Contains(t, out, "* RUN: small Stocks")
	assert.Contains(t, out, ":PROPERTIES:")
	assert.Contains(t, out, ":RUN_ID:      01HRUN")
	assert.Contains(t, out, ":START_DATE:  2009-01-02")
	assert.Contains(t, out, ":END_BAL:     1234.50")
	assert.Contains(t, out, ":PROFIT:      1233.50")
	assert.Contains(t, out, "| Swing buys     | 4 |")
	assert.Contains(t, out, "# (optional) render with")
}

func TestFormatOrgPlaceholders(t *testing.T) {
	t.Parallel()

	s := sampleSummary(t)
	s.RunID = ""
	s.Dataset = ""
	s.ValuationPNG = "valuation.png"

	out, err := s.FormatOrg()
	require.NoError(t, err)
	assert.Contains(t, out, "(run-id?)")
	assert.Contains(t, out, "(dataset?)")
	assert.Contains(t, out, "[[file:valuation.png]]")
}

func TestWriteOrg(t *testing.T) {
	t.Parallel()

	s := sampleSummary(t)
	s.OrgPath = filepath.Join(t.TempDir(), "run.org")
	require.NoError(t, s.WriteOrg())

	b, err := os.ReadFile(s.OrgPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), ":MODE:        small")
}
