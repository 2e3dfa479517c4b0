package math

import (
	"math/big"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// AdjustForSlippage reduces amount by the tolerance fraction:
// amount * (denominator - numerator) / denominator.
// The result never exceeds amount for a valid tolerance.
func AdjustForSlippage(amount *big.Int, tolerance shared.Percentage, rounding shared.Rounding) (*big.Int, error) {
	if err := tolerance.Validate(); err != nil {
		return nil, err
	}
	factor := new(big.Int).SetUint64(tolerance.Denominator - tolerance.Numerator)
	return MulDiv(amount, factor, tolerance.DenominatorBig(), rounding), nil
}

// AdjustForSlippageUp raises amount by the tolerance fraction, used for deposit maximums:
// amount * (denominator + numerator) / denominator.
func AdjustForSlippageUp(amount *big.Int, tolerance shared.Percentage, rounding shared.Rounding) (*big.Int, error) {
	if err := tolerance.Validate(); err != nil {
		return nil, err
	}
	factor := new(big.Int).Add(tolerance.DenominatorBig(), tolerance.NumeratorBig())
	return MulDiv(amount, factor, tolerance.DenominatorBig(), rounding), nil
}
