package portfolio

import (
	"fmt"
	"time"

	"github.com/rustyeddy/swingtrader/market"
	"github.com/shopspring/decimal"
)

// Action is the kind of a transaction.
type Action string

const (
	ActionBuyLow    Action = "buy-low"
	ActionSellHigh  Action = "sell-high"
	ActionSellClose Action = "sell-close"
)

// Transaction is one executed trade. Seq numbers start at 1 and follow the
// order trades happened in.
type Transaction struct {
	Seq        int
	Day        time.Time
	Action     Action
	Instrument string
	Quantity   int64
	Price      decimal.Decimal // per unit, before fees
	Balance    decimal.Decimal // cash balance right after the trade
}

// String renders the transaction the way the sequence file stores it.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %d", t.Day.Format(market.DayFormat), t.Action, t.Instrument, t.Quantity)
}
