package portfolio

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyHeld       = errors.New("instrument already held")
	ErrNotHeld           = errors.New("instrument not held")
)

// Account is the cash balance and the held positions of one simulation run.
// Every method either applies completely or returns an error and leaves the
// account untouched.
type Account struct {
	balance  decimal.Decimal
	holdings map[string]int64
}

// Position is a held quantity of an instrument.
type Position struct {
	Instrument string
	Quantity   int64
}

func NewAccount(balance decimal.Decimal) *Account {
	return &Account{
		balance:  balance,
		holdings: make(map[string]int64),
	}
}

func (a *Account) Balance() decimal.Decimal { return a.balance }

// Holding returns the held quantity of name.
func (a *Account) Holding(name string) (int64, bool) {
	q, ok := a.holdings[name]
	return q, ok
}

// Positions lists held positions sorted by instrument name.
func (a *Account) Positions() []Position {
	out := make([]Position, 0, len(a.holdings))
	for name, q := range a.holdings {
		out = append(out, Position{Instrument: name, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Instrument < out[j].Instrument })
	return out
}

// Buy pays for qty units at price without recording a position. It is the
// cash leg of a same-day round trip.
func (a *Account) Buy(qty int64, price decimal.Decimal) (decimal.Decimal, error) {
	if qty <= 0 {
		return decimal.Zero, ErrInvalidQuantity
	}
	cost := BuyCost(qty, price)
	if cost.GreaterThan(a.balance) {
		return decimal.Zero, fmt.Errorf("%w: cost %s, balance %s", ErrInsufficientFunds, cost, a.balance)
	}
	a.balance = a.balance.Sub(cost)
	return cost, nil
}

// Sell collects the proceeds of qty units at price without touching positions.
func (a *Account) Sell(qty int64, price decimal.Decimal) (decimal.Decimal, error) {
	if qty <= 0 {
		return decimal.Zero, ErrInvalidQuantity
	}
	proceeds := SellProceeds(qty, price)
	a.balance = a.balance.Add(proceeds)
	return proceeds, nil
}

// Open buys qty units of name at price and keeps them as a position.
func (a *Account) Open(name string, qty int64, price decimal.Decimal) (decimal.Decimal, error) {
	if _, ok := a.holdings[name]; ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrAlreadyHeld, name)
	}
	cost, err := a.Buy(qty, price)
	if err != nil {
		return decimal.Zero, err
	}
	a.holdings[name] = qty
	return cost, nil
}

// Close sells the whole position in name at price. Positions are never
// partially closed.
func (a *Account) Close(name string, price decimal.Decimal) (int64, decimal.Decimal, error) {
	qty, ok := a.holdings[name]
	if !ok {
		return 0, decimal.Zero, fmt.Errorf("%w: %s", ErrNotHeld, name)
	}
	proceeds, err := a.Sell(qty, price)
	if err != nil {
		return 0, decimal.Zero, err
	}
	delete(a.holdings, name)
	return qty, proceeds, nil
}

// Value marks the held positions to market. priceOf returns the price of an
// instrument; positions without a price are left out of the sum.
func (a *Account) Value(priceOf func(name string) (decimal.Decimal, bool)) decimal.Decimal {
	total := decimal.Zero
	for name, q := range a.holdings {
		p, ok := priceOf(name)
		if !ok {
			continue
		}
		total = total.Add(p.Mul(decimal.NewFromInt(q)))
	}
	return total
}
