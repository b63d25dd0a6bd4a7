package catalog

import (
	"fmt"
	"time"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/shopspring/decimal"
)

// Extremum is the all-time low and high of an instrument, with the day each
// occurred and the volume traded on that day.
type Extremum struct {
	MinDate   time.Time
	MinValue  decimal.Decimal
	MinVolume int64
	MaxDate   time.Time
	MaxValue  decimal.Decimal
	MaxVolume int64
	Profit    decimal.Decimal // MaxValue - MinValue
}

// Instrument is one tradable series together with its precomputed extremum.
// It is immutable once built.
type Instrument struct {
	Name     string
	Series   *market.Series
	Extremum Extremum
}

// NewInstrument builds an Instrument from its daily candles. The low and high
// extremes are taken from the Low and High columns; when the same value occurs
// more than once the first candle in load order wins.
func NewInstrument(name string, candles []market.Candle) (*Instrument, error) {
	if len(candles) == 0 {
		return nil, fmt.Errorf("instrument %s: %w", name, ErrNoData)
	}
	series, err := market.NewSeries(candles)
	if err != nil {
		return nil, fmt.Errorf("instrument %s: %w", name, err)
	}

	lo, hi := series.Candles()[0], series.Candles()[0]
	for _, c := range series.Candles()[1:] {
		if c.Low.LessThan(lo.Low) {
			lo = c
		}
		if c.High.GreaterThan(hi.High) {
			hi = c
		}
	}

	return &Instrument{
		Name:   name,
		Series: series,
		Extremum: Extremum{
			MinDate:   lo.Date,
			MinValue:  lo.Low,
			MinVolume: lo.Volume,
			MaxDate:   hi.Date,
			MaxValue:  hi.High,
			MaxVolume: hi.Volume,
			Profit:    hi.High.Sub(lo.Low),
		},
	}, nil
}

// Eligible reports whether the instrument can take part in a simulation: its
// all-time low must come strictly before its all-time high and the distance
// between them must be at least minProfit.
func (i *Instrument) Eligible(minProfit decimal.Decimal) bool {
	x := i.Extremum
	return x.MinDate.Before(x.MaxDate) && x.Profit.GreaterThanOrEqual(minProfit)
}
