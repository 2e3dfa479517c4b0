package math

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/orca-go/decimal_math"
)

const sqrtPrecision = 256

// SqrtPriceX64ToPrice converts a Q64.64 sqrt price to a UI price of token A in token B.
func SqrtPriceX64ToPrice(sqrtPriceX64 *big.Int, decimalsA, decimalsB uint8) decimal.Decimal {
	sqrtPrice := decimal_math.FromQ64(sqrtPriceX64)
	return decimal_math.AdjustDecimals(sqrtPrice.Mul(sqrtPrice), decimalsA, decimalsB)
}

func TickIndexToPrice(tick int32, decimalsA, decimalsB uint8) decimal.Decimal {
	return SqrtPriceX64ToPrice(TickIndexToSqrtPriceX64(tick), decimalsA, decimalsB)
}

// PriceToSqrtPriceX64 converts a UI price of token A in token B to a Q64.64 sqrt price.
func PriceToSqrtPriceX64(price decimal.Decimal, decimalsA, decimalsB uint8) (*big.Int, error) {
	if price.Sign() <= 0 {
		return nil, fmt.Errorf("price must be positive: %s", price)
	}
	raw := decimal_math.AdjustDecimals(price, decimalsB, decimalsA)
	sqrtPrice, err := decimal_math.Sqrt(raw, sqrtPrecision)
	if err != nil {
		return nil, err
	}
	return decimal_math.ToQ64(sqrtPrice), nil
}

// PriceToTickIndex returns the greatest tick whose price is <= price.
func PriceToTickIndex(price decimal.Decimal, decimalsA, decimalsB uint8) (int32, error) {
	sqrtPriceX64, err := PriceToSqrtPriceX64(price, decimalsA, decimalsB)
	if err != nil {
		return 0, err
	}
	return SqrtPriceX64ToTickIndex(sqrtPriceX64), nil
}

// InvertPrice returns 1/price, zero for a zero price.
func InvertPrice(price decimal.Decimal) decimal.Decimal {
	if price.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).DivRound(price, 18)
}
