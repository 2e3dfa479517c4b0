package whirlpool

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/krazyTry/orca-go/whirlpool/api"
	"github.com/krazyTry/orca-go/whirlpool/math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// apyPeriods compounds APRs daily.
const apyPeriods = shared.DaysPerYear

// GetPositionAprApy estimates the yield of position over its own price range.
// Reward mints without a price are left out; whirlpools may be nil to fetch the listing.
func (w *Whirlpool) GetPositionAprApy(
	ctx context.Context,
	position solana.PublicKey,
	prices shared.Prices,
	whirlpools []api.Whirlpool,
) (*WhirlpoolAprApy, error) {
	state, pool, err := w.getPositionAndPool(ctx, position)
	if err != nil {
		return nil, err
	}
	listing, err := w.findWhirlpool(ctx, state.Whirlpool, whirlpools)
	if err != nil {
		return nil, err
	}

	priceLower := math.TickIndexToPrice(state.TickLowerIndex, pool.TokenDecimalsA, pool.TokenDecimalsB)
	priceUpper := math.TickIndexToPrice(state.TickUpperIndex, pool.TokenDecimalsA, pool.TokenDecimalsB)

	return w.estimateAprApy(pool, listing, prices, state.TickLowerIndex, state.TickUpperIndex, priceLower, priceUpper)
}

// GetWhirlpoolRangeAprApy estimates the yield of liquidity placed between two UI prices of pool.
// Every token and reward mint of the pool needs a price.
func (w *Whirlpool) GetWhirlpoolRangeAprApy(
	ctx context.Context,
	pool solana.PublicKey,
	priceLower decimal.Decimal,
	priceUpper decimal.Decimal,
	prices shared.Prices,
	whirlpools []api.Whirlpool,
) (*WhirlpoolAprApy, error) {
	data, err := w.GetPool(ctx, pool)
	if err != nil {
		return nil, err
	}
	listing, err := w.findWhirlpool(ctx, pool, whirlpools)
	if err != nil {
		return nil, err
	}
	if err := requirePoolPrices(data, prices); err != nil {
		return nil, err
	}

	tickLower, err := math.PriceToTickIndex(priceLower, data.TokenDecimalsA, data.TokenDecimalsB)
	if err != nil {
		return nil, fmt.Errorf("lower price: %w", err)
	}
	tickUpper, err := math.PriceToTickIndex(priceUpper, data.TokenDecimalsA, data.TokenDecimalsB)
	if err != nil {
		return nil, fmt.Errorf("upper price: %w", err)
	}
	tickLower = math.GetNearestValidTickIndex(tickLower, listing.TickSpacing)
	tickUpper = math.GetNearestValidTickIndex(tickUpper, listing.TickSpacing)

	return w.estimateAprApy(data, listing, prices, tickLower, tickUpper, priceLower, priceUpper)
}

func (w *Whirlpool) estimateAprApy(
	pool *shared.PoolData,
	listing *api.Whirlpool,
	prices shared.Prices,
	tickLower, tickUpper int32,
	priceLower, priceUpper decimal.Decimal,
) (*WhirlpoolAprApy, error) {
	out := &WhirlpoolAprApy{
		TotalApr:   decimal.Zero,
		TotalApy:   decimal.Zero,
		FeeApr:     decimal.Zero,
		FeeApy:     decimal.Zero,
		RewardsApr: []decimal.Decimal{},
		RewardsApy: []decimal.Decimal{},
		PriceLower: priceLower,
		PriceUpper: priceUpper,
		PoolPrice:  pool.Price,
	}
	if priceLower.GreaterThan(pool.Price) || priceUpper.LessThan(pool.Price) {
		out.OutOfRange = true
		w.logger.Warn("price range does not contain the pool price",
			zap.Stringer("pool", pool.Address),
			zap.String("priceLower", priceLower.String()),
			zap.String("priceUpper", priceUpper.String()),
			zap.String("poolPrice", pool.Price.String()),
		)
		return out, nil
	}

	volume24hUsd := decimal.Zero
	if listing.Volume != nil {
		volume24hUsd = listing.Volume.Day
	}
	fees24hUsd := volume24hUsd.Mul(pool.FeePercentage)

	aprs, err := math.EstimateAprsForPriceRange(pool, prices, fees24hUsd, tickLower, tickUpper)
	if err != nil {
		return nil, err
	}

	out.FeeApr = aprs.Fee
	out.FeeApy = math.AprToApy(aprs.Fee, apyPeriods)
	out.TotalApr = aprs.Fee
	for _, apr := range aprs.Rewards {
		out.TotalApr = out.TotalApr.Add(apr)
		out.RewardsApr = append(out.RewardsApr, apr)
		out.RewardsApy = append(out.RewardsApy, math.AprToApy(apr, apyPeriods))
	}
	out.TotalApy = math.AprToApy(out.TotalApr, apyPeriods)
	return out, nil
}

func requirePoolPrices(pool *shared.PoolData, prices shared.Prices) error {
	mints := []solana.PublicKey{pool.TokenMintA, pool.TokenMintB}
	for _, reward := range pool.Rewards {
		if reward.Initialized() {
			mints = append(mints, reward.Mint)
		}
	}
	for _, mint := range mints {
		if _, ok := prices[mint.String()]; !ok {
			return fmt.Errorf("%w: %s", shared.ErrMissingTokenPrice, mint)
		}
	}
	return nil
}

// findWhirlpool looks pool up in whirlpools, fetching the listing when whirlpools is nil.
func (w *Whirlpool) findWhirlpool(ctx context.Context, pool solana.PublicKey, whirlpools []api.Whirlpool) (*api.Whirlpool, error) {
	if whirlpools == nil {
		var err error
		if whirlpools, err = w.apiClient.ListWhirlpools(ctx); err != nil {
			return nil, err
		}
	}
	return api.FindWhirlpool(whirlpools, pool.String())
}
