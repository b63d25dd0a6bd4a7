package market

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestSeriesLookup(t *testing.T) {
	t.Parallel()

	candles := []Candle{
		{Date: day(t, "2020-01-03"), Low: decimal.NewFromInt(9), Close: decimal.NewFromInt(11), Volume: 10},
		{Date: day(t, "2020-01-02"), Low: decimal.NewFromInt(8), Close: decimal.NewFromInt(8), Volume: 20},
	}
	s, err := NewSeries(candles)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, day(t, "2020-01-02"), s.First())
	assert.Equal(t, day(t, "2020-01-03"), s.Last())

	c, ok := s.At(day(t, "2020-01-03").Add(13 * time.Hour))
	require.True(t, ok)
	assert.Equal(t, int64(10), c.Volume)
	assert.True(t, c.Spread().Equal(decimal.NewFromInt(2)))

	_, ok = s.At(day(t, "2020-01-04"))
	assert.False(t, ok)

	// load order is preserved
	assert.Equal(t, day(t, "2020-01-03"), s.Candles()[0].Date)
}

func TestSeriesRejectsDuplicateDay(t *testing.T) {
	t.Parallel()

	_, err := NewSeries([]Candle{
		{Date: day(t, "2020-01-02")},
		{Date: day(t, "2020-01-02").Add(time.Hour)},
	})
	assert.Error(t, err)
}
