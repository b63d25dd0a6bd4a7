package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle represents one trading day of an instrument: OHLC prices and the
// traded volume.
type Candle struct {
	Date   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// Spread is the intraday distance between the low and the close.
func (c Candle) Spread() decimal.Decimal {
	return c.Close.Sub(c.Low)
}
