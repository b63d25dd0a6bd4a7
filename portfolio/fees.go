package portfolio

import "github.com/shopspring/decimal"

var (
	// FeeRate is charged on both sides of every trade.
	FeeRate = decimal.RequireFromString("0.01")

	buyFactor  = decimal.NewFromInt(1).Add(FeeRate)
	sellFactor = decimal.NewFromInt(1).Sub(FeeRate)

	// LiquidityDivisor caps any order at a tenth of the reference volume.
	LiquidityDivisor int64 = 10
)

// BuyCost is what buying qty units at price debits, fee included.
func BuyCost(qty int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(qty)).Mul(buyFactor)
}

// SellProceeds is what selling qty units at price credits, fee deducted.
func SellProceeds(qty int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(qty)).Mul(sellFactor)
}

// Affordable is the largest whole quantity whose BuyCost fits in balance.
func Affordable(balance, price decimal.Decimal) int64 {
	if !price.IsPositive() || !balance.IsPositive() {
		return 0
	}
	q, _ := balance.QuoRem(price.Mul(buyFactor), 0)
	return q.IntPart()
}

// LiquidityCap is the largest quantity that may trade against volume.
func LiquidityCap(volume int64) int64 {
	if volume <= 0 {
		return 0
	}
	return volume / LiquidityDivisor
}
