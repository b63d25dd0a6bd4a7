package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecord(t *testing.T) {
	t.Parallel()

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	days := []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2)}
	h := NewHistory(days)
	require.Equal(t, 3, h.Len())

	v := Valuation{Day: days[1].Add(5 * time.Hour), Balance: d("10"), Portfolio: d("2.5")}
	require.NoError(t, h.Record(v))
	// recording the same state again changes nothing
	require.NoError(t, h.Record(v))

	got, ok := h.At(days[1])
	require.True(t, ok)
	assert.Equal(t, days[1], got.Day)
	assert.True(t, got.Total().Equal(d("12.5")))

	untouched, ok := h.At(days[2])
	require.True(t, ok)
	assert.True(t, untouched.Balance.IsZero())

	err := h.Record(Valuation{Day: start.AddDate(0, 0, 5)})
	assert.Error(t, err)
	assert.Len(t, h.Entries(), 3)
}
