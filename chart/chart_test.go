package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/rustyeddy/swingtrader/portfolio"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valuations(start time.Time, n int) []portfolio.Valuation {
	out := make([]portfolio.Valuation, n)
	for i := range out {
		out[i] = portfolio.Valuation{
			Day:       start.AddDate(0, 0, i),
			Balance:   decimal.NewFromInt(int64(100 + i*10)),
			Portfolio: decimal.NewFromInt(int64(i * 3)),
		}
	}
	return out
}

func TestFilterIsStrict(t *testing.T) {
	t.Parallel()

	vals := valuations(DefaultSince.AddDate(0, 0, -1), 4)
	got := Filter(vals, DefaultSince)
	require.Len(t, got, 2)
	assert.True(t, got[0].Day.Equal(DefaultSince.AddDate(0, 0, 1)))
}

func TestRenderValuation(t *testing.T) {
	t.Parallel()

	png, err := RenderValuation(valuations(DefaultSince.AddDate(0, 0, 1), 30), "Small Sequence", DefaultSince)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRenderValuationNotEnoughData(t *testing.T) {
	t.Parallel()

	_, err := RenderValuation(valuations(DefaultSince.AddDate(0, 0, -10), 5), "x", DefaultSince)
	assert.ErrorIs(t, err, ErrNotEnoughData)

	_, err = RenderValuation(nil, "x", time.Time{})
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestRenderValuationFlat(t *testing.T) {
	t.Parallel()

	vals := valuations(DefaultSince.AddDate(0, 0, 1), 3)
	for i := range vals {
		vals[i].Balance = decimal.Zero
		vals[i].Portfolio = decimal.Zero
	}
	_, err := RenderValuation(vals, "flat", DefaultSince)
	assert.NoError(t, err)
}
