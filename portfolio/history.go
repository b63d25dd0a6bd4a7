package portfolio

import (
	"fmt"
	"time"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/shopspring/decimal"
)

// Valuation is the end-of-day state of the account.
type Valuation struct {
	Day       time.Time
	Balance   decimal.Decimal
	Portfolio decimal.Decimal // mark-to-market value of held positions
}

// Total is cash plus positions.
func (v Valuation) Total() decimal.Decimal { return v.Balance.Add(v.Portfolio) }

// History holds one Valuation per calendar day of a run. The day index is
// fixed up front; days not yet recorded read as zero.
type History struct {
	entries []Valuation
	index   map[time.Time]int
}

// NewHistory allocates a dense history over days.
func NewHistory(days []time.Time) *History {
	h := &History{
		entries: make([]Valuation, len(days)),
		index:   make(map[time.Time]int, len(days)),
	}
	for i, d := range days {
		d = market.Day(d)
		h.entries[i] = Valuation{Day: d, Balance: decimal.Zero, Portfolio: decimal.Zero}
		h.index[d] = i
	}
	return h
}

// Record stores v at its own day, replacing what was there.
func (h *History) Record(v Valuation) error {
	v.Day = market.Day(v.Day)
	i, ok := h.index[v.Day]
	if !ok {
		return fmt.Errorf("history: day %s outside range", v.Day.Format(market.DayFormat))
	}
	h.entries[i] = v
	return nil
}

// At returns the valuation recorded for day.
func (h *History) At(day time.Time) (Valuation, bool) {
	i, ok := h.index[market.Day(day)]
	if !ok {
		return Valuation{}, false
	}
	return h.entries[i], true
}

// Entries returns the whole history in calendar order.
func (h *History) Entries() []Valuation { return h.entries }

func (h *History) Len() int { return len(h.entries) }
