package decimal_math

import (
	"github.com/shopspring/decimal"
)

// CompoundGrowth returns (1 + rate/periods)^periods - 1.
// Non-positive periods leave the rate unchanged.
func CompoundGrowth(rate decimal.Decimal, periods int64, scale int32) decimal.Decimal {
	if periods <= 0 {
		return rate
	}
	work := scale + 8
	base := decimal.NewFromInt(1).Add(rate.DivRound(decimal.NewFromInt(periods), work))
	return PowInt(base, periods, work).Sub(decimal.NewFromInt(1)).Round(scale)
}

// PowInt raises base to a non-negative integer exponent by squaring,
// rounding intermediates to scale digits.
func PowInt(base decimal.Decimal, exponent int64, scale int32) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base).Round(scale)
		}
		base = base.Mul(base).Round(scale)
		exponent >>= 1
	}
	return result
}
