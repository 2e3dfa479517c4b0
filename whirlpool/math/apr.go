package math

import (
	"errors"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/krazyTry/orca-go/decimal_math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

const aprScale = 18

// EstimateAprsForPriceRange estimates fee and reward APRs for liquidity placed in
// [tickLowerIndex, tickUpperIndex), as if all of the pool's active liquidity sat in that range.
// fees24hUsd is the pool's LP fee income over the last day in USD.
//
// Missing token A or B prices, zero fees, an invalid range or a zero value range yield zero APRs.
func EstimateAprsForPriceRange(
	pool *shared.PoolData,
	prices shared.Prices,
	fees24hUsd decimal.Decimal,
	tickLowerIndex int32,
	tickUpperIndex int32,
) (*shared.EstimatedAprs, error) {
	priceA, okA := prices[pool.TokenMintA.String()]
	priceB, okB := prices[pool.TokenMintB.String()]
	if !okA || !okB || fees24hUsd.Sign() <= 0 || tickLowerIndex >= tickUpperIndex {
		return shared.ZeroAprs(), nil
	}

	quote, err := GetRemoveLiquidityQuote(shared.RemoveLiquidityQuoteParam{
		PositionAddress:   solana.PublicKey{},
		TickCurrentIndex:  pool.TickCurrentIndex,
		SqrtPrice:         pool.SqrtPrice,
		TickLowerIndex:    tickLowerIndex,
		TickUpperIndex:    tickUpperIndex,
		Liquidity:         pool.Liquidity,
		SlippageTolerance: shared.ZeroPercentage(),
	}, shared.RoundingDown)
	if errors.Is(err, shared.ErrInvalidRange) {
		return shared.ZeroAprs(), nil
	}
	if err != nil {
		return nil, err
	}

	concentratedValue := tokenValue(quote.EstTokenA, pool.TokenDecimalsA, priceA).
		Add(tokenValue(quote.EstTokenB, pool.TokenDecimalsB, priceB))
	if concentratedValue.Sign() <= 0 {
		return shared.ZeroAprs(), nil
	}

	aprs := shared.ZeroAprs()
	feesPerYear := fees24hUsd.Mul(decimal.NewFromInt(shared.DaysPerYear))
	aprs.Fee = feesPerYear.DivRound(concentratedValue, aprScale)

	for i, reward := range pool.Rewards {
		if !reward.Initialized() || reward.EmissionsPerSecondX64 == nil || reward.EmissionsPerSecondX64.Sign() == 0 {
			continue
		}
		rewardPrice, ok := prices[reward.Mint.String()]
		if !ok {
			continue
		}
		emissionsPerSecond := decimal_math.FromQ64(reward.EmissionsPerSecondX64).
			Div(decimal_math.Pow10(int32(reward.Decimals)))
		rewardsPerYear := emissionsPerSecond.Mul(decimal.NewFromInt(shared.SecondsPerYear)).Mul(rewardPrice)
		aprs.Rewards[i] = rewardsPerYear.DivRound(concentratedValue, aprScale)
	}
	return aprs, nil
}

// AprToApy compounds apr over the given number of periods per year.
func AprToApy(apr decimal.Decimal, periods int64) decimal.Decimal {
	return decimal_math.CompoundGrowth(apr, periods, aprScale)
}

func tokenValue(amount *big.Int, decimals uint8, price decimal.Decimal) decimal.Decimal {
	return decimal_math.ToUIAmount(amount, decimals).Mul(price)
}
