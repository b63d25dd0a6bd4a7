package market

import (
	"fmt"
	"time"
)

// Series is the daily history of a single instrument. Candles keep the order
// they were loaded in; lookups by day go through an index.
type Series struct {
	candles []Candle
	index   map[time.Time]int
	first   time.Time
	last    time.Time
}

// NewSeries builds a Series from candles. Candle dates are normalised with
// Day. A day that appears twice is rejected.
func NewSeries(candles []Candle) (*Series, error) {
	s := &Series{
		candles: make([]Candle, 0, len(candles)),
		index:   make(map[time.Time]int, len(candles)),
	}
	for _, c := range candles {
		c.Date = Day(c.Date)
		if _, dup := s.index[c.Date]; dup {
			return nil, fmt.Errorf("duplicate candle for %s", c.Date.Format(DayFormat))
		}
		s.index[c.Date] = len(s.candles)
		s.candles = append(s.candles, c)

		if s.first.IsZero() || c.Date.Before(s.first) {
			s.first = c.Date
		}
		if s.last.IsZero() || c.Date.After(s.last) {
			s.last = c.Date
		}
	}
	return s, nil
}

// At returns the candle for day, if the instrument traded that day.
func (s *Series) At(day time.Time) (Candle, bool) {
	i, ok := s.index[Day(day)]
	if !ok {
		return Candle{}, false
	}
	return s.candles[i], true
}

func (s *Series) Len() int { return len(s.candles) }

// Candles returns the candles in load order. The slice must not be modified.
func (s *Series) Candles() []Candle { return s.candles }

// First is the earliest day with data.
func (s *Series) First() time.Time { return s.first }

// Last is the latest day with data.
func (s *Series) Last() time.Time { return s.last }
