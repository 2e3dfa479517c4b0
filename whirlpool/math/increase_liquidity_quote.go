package math

import (
	"fmt"
	"math/big"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// GetIncreaseLiquidityQuote computes the liquidity minted by depositing the input
// token into the range, the matching amount of the other token, and the maximum
// amounts after slippage. Callers estimating deposits pass RoundingUp.
func GetIncreaseLiquidityQuote(param shared.IncreaseLiquidityQuoteParam, rounding shared.Rounding) (*shared.IncreaseLiquidityQuote, error) {
	if err := validateTickRange(param.TickLowerIndex, param.TickUpperIndex); err != nil {
		return nil, err
	}
	if param.InputAmount == nil || param.InputAmount.Sign() < 0 {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidAmount, param.InputAmount)
	}
	if err := param.SlippageTolerance.Validate(); err != nil {
		return nil, err
	}

	var inputIsA bool
	switch {
	case param.InputTokenMint.Equals(param.TokenMintA):
		inputIsA = true
	case param.InputTokenMint.Equals(param.TokenMintB):
		inputIsA = false
	default:
		return nil, fmt.Errorf("%w: %s", shared.ErrInvalidInputToken, param.InputTokenMint)
	}

	sqrtPriceLower := TickIndexToSqrtPriceX64(param.TickLowerIndex)
	sqrtPriceUpper := TickIndexToSqrtPriceX64(param.TickUpperIndex)

	var liquidity, estTokenA, estTokenB *big.Int
	switch GetPositionStatus(param.TickCurrentIndex, param.TickLowerIndex, param.TickUpperIndex) {
	case shared.PositionStatusBelowRange:
		if !inputIsA {
			return shared.ZeroIncreaseLiquidityQuote(), nil
		}
		liquidity = LiquidityFromTokenA(param.InputAmount, sqrtPriceLower, sqrtPriceUpper, shared.RoundingDown)
		estTokenA = TokenAFromLiquidity(liquidity, sqrtPriceLower, sqrtPriceUpper, rounding)
		estTokenB = big.NewInt(0)
	case shared.PositionStatusAboveRange:
		if inputIsA {
			return shared.ZeroIncreaseLiquidityQuote(), nil
		}
		liquidity = LiquidityFromTokenB(param.InputAmount, sqrtPriceLower, sqrtPriceUpper, shared.RoundingDown)
		estTokenA = big.NewInt(0)
		estTokenB = TokenBFromLiquidity(liquidity, sqrtPriceLower, sqrtPriceUpper, rounding)
	default:
		if param.SqrtPrice == nil || param.SqrtPrice.Sign() <= 0 {
			return nil, fmt.Errorf("%w: %v", shared.ErrInvalidSqrtPrice, param.SqrtPrice)
		}
		if inputIsA {
			liquidity = LiquidityFromTokenA(param.InputAmount, param.SqrtPrice, sqrtPriceUpper, shared.RoundingDown)
		} else {
			liquidity = LiquidityFromTokenB(param.InputAmount, sqrtPriceLower, param.SqrtPrice, shared.RoundingDown)
		}
		estTokenA = TokenAFromLiquidity(liquidity, param.SqrtPrice, sqrtPriceUpper, rounding)
		estTokenB = TokenBFromLiquidity(liquidity, sqrtPriceLower, param.SqrtPrice, rounding)
	}

	maxTokenA, err := AdjustForSlippageUp(estTokenA, param.SlippageTolerance, shared.RoundingUp)
	if err != nil {
		return nil, err
	}
	maxTokenB, err := AdjustForSlippageUp(estTokenB, param.SlippageTolerance, shared.RoundingUp)
	if err != nil {
		return nil, err
	}

	return &shared.IncreaseLiquidityQuote{
		Liquidity: liquidity,
		EstTokenA: estTokenA,
		EstTokenB: estTokenB,
		MaxTokenA: maxTokenA,
		MaxTokenB: maxTokenB,
	}, nil
}
