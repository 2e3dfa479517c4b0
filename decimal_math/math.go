package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var q64 = decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 64), 0)

// Pow10 returns 10^n without going through float64.
func Pow10(n int32) decimal.Decimal {
	return decimal.New(1, n)
}

// AdjustDecimals rescales an on-chain price by 10^(decimalsA - decimalsB).
func AdjustDecimals(x decimal.Decimal, decimalsA, decimalsB uint8) decimal.Decimal {
	return x.Mul(Pow10(int32(decimalsA) - int32(decimalsB)))
}

// FromQ64 converts a Q64.64 fixed point integer to a decimal.
func FromQ64(x *big.Int) decimal.Decimal {
	if x == nil {
		return decimal.Zero
	}
	// x / 2^64 has at most 64 decimal places
	return decimal.NewFromBigInt(x, 0).DivRound(q64, 64)
}

// ToQ64 converts a decimal into Q64.64, truncating the fraction.
func ToQ64(x decimal.Decimal) *big.Int {
	return x.Mul(q64).Floor().BigInt()
}

// ToUIAmount scales a raw token amount down by its mint decimals.
func ToUIAmount(amount *big.Int, decimals uint8) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -int32(decimals))
}
