package math

import (
	"fmt"
	"math/big"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// GetRemoveLiquidityQuote estimates the tokens returned by withdrawing all of a
// position's liquidity, and the minimum amounts after slippage.
//
// RoundingDown is the withdrawal default; RoundingUp estimates deposit requirements.
func GetRemoveLiquidityQuote(param shared.RemoveLiquidityQuoteParam, rounding shared.Rounding) (*shared.RemoveLiquidityQuote, error) {
	if err := validateTickRange(param.TickLowerIndex, param.TickUpperIndex); err != nil {
		return nil, err
	}
	if param.Liquidity == nil || param.Liquidity.Sign() < 0 {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidLiquidity, param.Liquidity)
	}
	if err := param.SlippageTolerance.Validate(); err != nil {
		return nil, err
	}

	status := GetPositionStatus(param.TickCurrentIndex, param.TickLowerIndex, param.TickUpperIndex)
	if status == shared.PositionStatusInRange && (param.SqrtPrice == nil || param.SqrtPrice.Sign() <= 0) {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidSqrtPrice, param.SqrtPrice)
	}

	return removeLiquidityQuote(status, param, rounding)
}

func removeLiquidityQuote(status shared.PositionStatus, param shared.RemoveLiquidityQuoteParam, rounding shared.Rounding) (*shared.RemoveLiquidityQuote, error) {
	switch status {
	case shared.PositionStatusBelowRange:
		return removeLiquidityQuoteBelowRange(param, rounding)
	case shared.PositionStatusInRange:
		return removeLiquidityQuoteInRange(param, rounding)
	case shared.PositionStatusAboveRange:
		return removeLiquidityQuoteAboveRange(param, rounding)
	default:
		return nil, fmt.Errorf("%w: %d", shared.ErrUnknownPositionStatus, status)
	}
}

func removeLiquidityQuoteBelowRange(param shared.RemoveLiquidityQuoteParam, rounding shared.Rounding) (*shared.RemoveLiquidityQuote, error) {
	sqrtPriceLower := TickIndexToSqrtPriceX64(param.TickLowerIndex)
	sqrtPriceUpper := TickIndexToSqrtPriceX64(param.TickUpperIndex)

	estTokenA := TokenAFromLiquidity(param.Liquidity, sqrtPriceLower, sqrtPriceUpper, rounding)
	minTokenA, err := AdjustForSlippage(estTokenA, param.SlippageTolerance, rounding)
	if err != nil {
		return nil, err
	}

	return newRemoveLiquidityQuote(param, estTokenA, big.NewInt(0), minTokenA, big.NewInt(0)), nil
}

func removeLiquidityQuoteInRange(param shared.RemoveLiquidityQuoteParam, rounding shared.Rounding) (*shared.RemoveLiquidityQuote, error) {
	sqrtPriceLower := TickIndexToSqrtPriceX64(param.TickLowerIndex)
	sqrtPriceUpper := TickIndexToSqrtPriceX64(param.TickUpperIndex)

	estTokenA := TokenAFromLiquidity(param.Liquidity, param.SqrtPrice, sqrtPriceUpper, rounding)
	estTokenB := TokenBFromLiquidity(param.Liquidity, sqrtPriceLower, param.SqrtPrice, rounding)

	minTokenA, err := AdjustForSlippage(estTokenA, param.SlippageTolerance, rounding)
	if err != nil {
		return nil, err
	}
	minTokenB, err := AdjustForSlippage(estTokenB, param.SlippageTolerance, rounding)
	if err != nil {
		return nil, err
	}

	return newRemoveLiquidityQuote(param, estTokenA, estTokenB, minTokenA, minTokenB), nil
}

func removeLiquidityQuoteAboveRange(param shared.RemoveLiquidityQuoteParam, rounding shared.Rounding) (*shared.RemoveLiquidityQuote, error) {
	sqrtPriceLower := TickIndexToSqrtPriceX64(param.TickLowerIndex)
	sqrtPriceUpper := TickIndexToSqrtPriceX64(param.TickUpperIndex)

	estTokenB := TokenBFromLiquidity(param.Liquidity, sqrtPriceLower, sqrtPriceUpper, rounding)
	minTokenB, err := AdjustForSlippage(estTokenB, param.SlippageTolerance, rounding)
	if err != nil {
		return nil, err
	}

	return newRemoveLiquidityQuote(param, big.NewInt(0), estTokenB, big.NewInt(0), minTokenB), nil
}

func newRemoveLiquidityQuote(param shared.RemoveLiquidityQuoteParam, estTokenA, estTokenB, minTokenA, minTokenB *big.Int) *shared.RemoveLiquidityQuote {
	return &shared.RemoveLiquidityQuote{
		PositionAddress: param.PositionAddress,
		EstTokenA:       estTokenA,
		EstTokenB:       estTokenB,
		MinTokenA:       minTokenA,
		MinTokenB:       minTokenB,
		Liquidity:       new(big.Int).Set(param.Liquidity),
	}
}
