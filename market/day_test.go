package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTruncates(t *testing.T) {
	t.Parallel()

	in := time.Date(2020, 1, 2, 15, 4, 5, 6, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), Day(in))
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	d, err := ParseDay(" 2020-01-02 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("02/01/2020")
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single day", start: "2020-01-01", end: "2020-01-01", want: 1},
		{name: "across month", start: "2020-01-30", end: "2020-02-02", want: 4},
		{name: "leap year", start: "2020-02-28", end: "2020-03-01", want: 3},
		{name: "reversed", start: "2020-01-02", end: "2020-01-01", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDay(tt.start)
			require.NoError(t, err)
			end, err := ParseDay(tt.end)
			require.NoError(t, err)

			days := DateRange(start, end)
			assert.Len(t, days, tt.want)
			for i := 1; i < len(days); i++ {
				assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
			}
		})
	}
}
