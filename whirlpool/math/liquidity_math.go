package math

import (
	"math/big"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// TokenAFromLiquidity Δa = L * (√P_upper - √P_lower) / (√P_upper * √P_lower)
func TokenAFromLiquidity(liquidity, sqrtPrice0X64, sqrtPrice1X64 *big.Int, rounding shared.Rounding) *big.Int {
	lower, upper := orderSqrtPrice(sqrtPrice0X64, sqrtPrice1X64)
	denominator := new(big.Int).Mul(upper, lower)
	if denominator.Sign() <= 0 {
		return big.NewInt(0)
	}
	numerator := new(big.Int).Mul(liquidity, new(big.Int).Sub(upper, lower))
	numerator.Lsh(numerator, shared.ScaleOffset)
	return divRound(numerator, denominator, rounding)
}

// TokenBFromLiquidity Δb = L * (√P_upper - √P_lower)
func TokenBFromLiquidity(liquidity, sqrtPrice0X64, sqrtPrice1X64 *big.Int, rounding shared.Rounding) *big.Int {
	lower, upper := orderSqrtPrice(sqrtPrice0X64, sqrtPrice1X64)
	result := new(big.Int).Mul(liquidity, new(big.Int).Sub(upper, lower))
	return shiftRight(result, shared.ScaleOffset, rounding)
}

// LiquidityFromTokenA L = Δa * √P_upper * √P_lower / (√P_upper - √P_lower)
func LiquidityFromTokenA(amount, sqrtPrice0X64, sqrtPrice1X64 *big.Int, rounding shared.Rounding) *big.Int {
	lower, upper := orderSqrtPrice(sqrtPrice0X64, sqrtPrice1X64)
	delta := new(big.Int).Sub(upper, lower)
	if delta.Sign() == 0 {
		return big.NewInt(0)
	}
	product := new(big.Int).Mul(amount, lower)
	product.Mul(product, upper)
	product = divRound(product, delta, rounding)
	return shiftRight(product, shared.ScaleOffset, rounding)
}

// LiquidityFromTokenB L = Δb / (√P_upper - √P_lower)
func LiquidityFromTokenB(amount, sqrtPrice0X64, sqrtPrice1X64 *big.Int, rounding shared.Rounding) *big.Int {
	lower, upper := orderSqrtPrice(sqrtPrice0X64, sqrtPrice1X64)
	delta := new(big.Int).Sub(upper, lower)
	if delta.Sign() == 0 {
		return big.NewInt(0)
	}
	numerator := new(big.Int).Lsh(amount, shared.ScaleOffset)
	return divRound(numerator, delta, rounding)
}
