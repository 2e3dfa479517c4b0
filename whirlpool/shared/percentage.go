package shared

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Percentage is a fraction numerator/denominator, 1/100 == 1%.
type Percentage struct {
	Numerator   uint64
	Denominator uint64
}

func NewPercentage(numerator, denominator uint64) Percentage {
	return Percentage{Numerator: numerator, Denominator: denominator}
}

// NewPercentageFromBps builds a tolerance from basis points, 100 == 1%.
func NewPercentageFromBps(bps uint64) Percentage {
	return Percentage{Numerator: bps, Denominator: BasisPointMax}
}

// ZeroPercentage is the tolerance used for exact estimates.
func ZeroPercentage() Percentage {
	return Percentage{Numerator: 0, Denominator: 1}
}

// Validate rejects a zero denominator and fractions above one.
func (p Percentage) Validate() error {
	if p.Denominator == 0 {
		return fmt.Errorf("%w: zero denominator", ErrInvalidSlippage)
	}
	if p.Numerator > p.Denominator {
		return fmt.Errorf("%w: %d/%d exceeds 100%%", ErrInvalidSlippage, p.Numerator, p.Denominator)
	}
	return nil
}

func (p Percentage) NumeratorBig() *big.Int {
	return new(big.Int).SetUint64(p.Numerator)
}

func (p Percentage) DenominatorBig() *big.Int {
	return new(big.Int).SetUint64(p.Denominator)
}

func (p Percentage) Decimal() decimal.Decimal {
	if p.Denominator == 0 {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(p.NumeratorBig(), 0).Div(decimal.NewFromBigInt(p.DenominatorBig(), 0))
}

func (p Percentage) String() string {
	return fmt.Sprintf("%d/%d", p.Numerator, p.Denominator)
}
