package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every instrument below bottoms on 2020-01-01 with a profit under 10, so
// with a balance of at least 10 the swing rule never trades on 2020-01-02.

func TestIntradayRanksAndSpendsGreedily(t *testing.T) {
	t.Parallel()

	p := instrument(t, "P",
		bar(t, "2020-01-01", "9", "9", "9", 1),
		bar(t, "2020-01-02", "12", "10", "12", 10000),
	)
	q := instrument(t, "Q",
		bar(t, "2020-01-01", "4", "4", "4", 1),
		bar(t, "2020-01-02", "8", "5", "8", 400),
	)
	r := instrument(t, "R",
		bar(t, "2020-01-01", "1", "0.5", "0.5", 1),
		bar(t, "2020-01-02", "2", "1", "2", 100000),
	)
	e := newEngine(t, "1000", largeMode, p, q, r)

	require.NoError(t, e.Step(mustDay(t, "2020-01-02")))

	// R ranks first (990 units * 1) and spends almost everything, so P
	// (99 * 2) and Q (40 * 3) no longer fit.
	assert.Equal(t, []string{
		"2020-01-02 buy-low R 990",
		"2020-01-02 sell-close R 990",
	}, actions(e.Transactions()))

	assert.True(t, e.Transactions()[0].Balance.Equal(dec("0.1")))
	assert.True(t, e.Account().Balance().Equal(dec("1960.3")))
}

func TestIntradayBuysAllThenSellsInBuyOrder(t *testing.T) {
	t.Parallel()

	a := instrument(t, "A",
		bar(t, "2020-01-01", "1", "1", "1", 1),
		bar(t, "2020-01-02", "4", "2", "4", 100),
	)
	b := instrument(t, "B",
		bar(t, "2020-01-01", "1", "1", "1", 1),
		bar(t, "2020-01-02", "5", "2", "5", 100),
	)
	e := newEngine(t, "1000", largeMode, a, b)

	require.NoError(t, e.Step(mustDay(t, "2020-01-02")))

	assert.Equal(t, []string{
		"2020-01-02 buy-low B 10",
		"2020-01-02 buy-low A 10",
		"2020-01-02 sell-close B 10",
		"2020-01-02 sell-close A 10",
	}, actions(e.Transactions()))

	// 1000 - 20.2 - 20.2 + 49.5 + 39.6
	assert.True(t, e.Account().Balance().Equal(dec("1048.7")))
	assert.Empty(t, e.Account().Positions())
}

func TestIntradayTieKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	z := instrument(t, "Z",
		bar(t, "2020-01-01", "1", "1", "1", 1),
		bar(t, "2020-01-02", "4", "2", "4", 100),
	)
	y := instrument(t, "Y",
		bar(t, "2020-01-01", "1", "1", "1", 1),
		bar(t, "2020-01-02", "4", "2", "4", 100),
	)
	e := newEngine(t, "1000", largeMode, z, y)

	require.NoError(t, e.Step(mustDay(t, "2020-01-02")))
	require.Len(t, e.Transactions(), 4)
	assert.Equal(t, "Z", e.Transactions()[0].Instrument)
	assert.Equal(t, "Y", e.Transactions()[1].Instrument)
}

func TestIntradayExclusions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance string
		cfg     Config
		high    string
		low     string
		close   string
		volume  int64
	}{
		{
			name:    "zero spread",
			balance: "1000",
			cfg:     largeMode,
			high:    "9",
			low:     "2",
			close:   "2",
			volume:  1_000_000,
		},
		{
			name:    "spread under threshold",
			balance: "1000",
			cfg:     smallMode,
			high:    "90",
			low:     "2",
			close:   "80",
			volume:  1000,
		},
		{
			name:    "volume too small for one unit",
			balance: "1000",
			cfg:     largeMode,
			high:    "9",
			low:     "2",
			close:   "5",
			volume:  9,
		},
		{
			name:    "balance at working capital floor",
			balance: "100",
			cfg:     largeMode,
			high:    "9",
			low:     "2",
			close:   "5",
			volume:  1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := instrument(t, "A",
				bar(t, "2020-01-01", "1", "1", "1", 1),
				bar(t, "2020-01-02", tt.high, tt.low, tt.close, tt.volume),
			)
			e := newEngine(t, tt.balance, tt.cfg, a)

			require.NoError(t, e.Step(mustDay(t, "2020-01-02")))
			assert.Empty(t, e.Transactions())
			assert.True(t, e.Account().Balance().Equal(dec(tt.balance)))
		})
	}
}

func TestIntradaySkipsInstrumentsWithoutData(t *testing.T) {
	t.Parallel()

	a := instrument(t, "A",
		bar(t, "2020-01-01", "1", "1", "1", 1),
		bar(t, "2020-01-03", "4", "2", "4", 100),
	)
	e := newEngine(t, "1000", largeMode, a)

	require.NoError(t, e.Step(mustDay(t, "2020-01-02")))
	assert.Empty(t, e.Transactions())
}
