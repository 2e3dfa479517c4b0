package decimal_math

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var ErrNegativeSqrt = errors.New("sqrt on negative decimal")

func Sqrt(x decimal.Decimal, prec uint) (decimal.Decimal, error) {
	if x.Sign() < 0 {
		return decimal.Zero, ErrNegativeSqrt
	}

	f, ok := new(big.Float).SetPrec(prec).SetString(x.String())
	if !ok {
		return decimal.Zero, fmt.Errorf("sqrt: cannot parse %s", x)
	}
	return decimal.NewFromString(new(big.Float).SetPrec(prec).Sqrt(f).Text('f', -1))
}
