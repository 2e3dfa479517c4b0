package math

import (
	"math/big"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// MulDiv computes x * y / denominator with the requested rounding.
func MulDiv(x, y, denominator *big.Int, rounding shared.Rounding) *big.Int {
	if denominator.Sign() == 0 {
		return big.NewInt(0)
	}
	mul := new(big.Int).Mul(x, y)
	return divRound(mul, denominator, rounding)
}

func divRound(numerator, denominator *big.Int, rounding shared.Rounding) *big.Int {
	div, mod := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if rounding == shared.RoundingUp && mod.Sign() != 0 {
		return div.Add(div, big.NewInt(1))
	}
	return div
}

func shiftRight(value *big.Int, shift uint, rounding shared.Rounding) *big.Int {
	if rounding == shared.RoundingUp {
		denominator := new(big.Int).Lsh(big.NewInt(1), shift)
		return divRound(value, denominator, rounding)
	}
	return new(big.Int).Rsh(value, shift)
}

func orderSqrtPrice(p0, p1 *big.Int) (*big.Int, *big.Int) {
	if p0.Cmp(p1) <= 0 {
		return p0, p1
	}
	return p1, p0
}
