package whirlpool

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/krazyTry/orca-go/whirlpool/api"
	"github.com/krazyTry/orca-go/whirlpool/helpers"
	"github.com/krazyTry/orca-go/whirlpool/math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

func (f *fixture) listing() []api.Whirlpool {
	tvl := decimal.NewFromInt(5_000_000)
	return []api.Whirlpool{{
		Address:     f.pool,
		TokenA:      api.Token{Mint: f.mintA, Symbol: "SOL", Decimals: 9},
		TokenB:      api.Token{Mint: f.mintB, Symbol: "USDC", Decimals: 6},
		TickSpacing: 64,
		Price:       decimal.NewFromInt(1000),
		LpFeeRate:   decimal.RequireFromString("0.003"),
		Tvl:         &tvl,
		Volume: &api.PeriodStats{
			Day:   decimal.NewFromInt(1_000_000),
			Week:  decimal.NewFromInt(7_000_000),
			Month: decimal.NewFromInt(30_000_000),
		},
	}}
}

func (f *fixture) prices() shared.Prices {
	return shared.Prices{
		f.mintA.String():      decimal.NewFromInt(1000),
		f.mintB.String():      decimal.NewFromInt(1),
		f.rewardMint.String(): decimal.RequireFromString("0.5"),
	}
}

func TestGetPool(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc, WithLogger(zaptest.NewLogger(t)))

	pool, err := w.GetPool(context.Background(), f.pool)
	require.NoError(t, err)
	assert.Equal(t, f.pool, pool.Address)
	assert.Equal(t, uint8(9), pool.TokenDecimalsA)
	assert.Equal(t, uint8(6), pool.TokenDecimalsB)
	assert.Equal(t, solana.TokenProgramID, pool.TokenProgramA)
	assert.Equal(t, uint16(64), pool.TickSpacing)
	assert.True(t, pool.Price.Equal(decimal.NewFromInt(1000)), pool.Price.String())
	assert.True(t, pool.FeePercentage.Equal(decimal.RequireFromString("0.003")))
	assert.True(t, pool.ProtocolFeePercentage.Equal(decimal.RequireFromString("0.13")))
	assert.True(t, pool.Rewards[0].Initialized())
	assert.Equal(t, uint8(6), pool.Rewards[0].Decimals)
	assert.False(t, pool.Rewards[1].Initialized())
	assert.Equal(t, 1, f.rpc.count("getMultipleAccounts"))
}

func TestNilLogger(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc, WithLogger(nil))

	assert.NotPanics(t, func() {
		_, err := w.GetPool(context.Background(), f.pool)
		assert.NoError(t, err)
	})
	_, err := w.GetPositionAprApy(context.Background(), f.position, f.prices(), f.listing())
	assert.NoError(t, err)
}

func TestGetPoolErrors(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc)

	_, err := w.GetPool(context.Background(), solana.NewWallet().PublicKey())
	assert.ErrorIs(t, err, shared.ErrAccountNotFound)

	_, err = w.GetPool(context.Background(), f.position)
	assert.ErrorIs(t, err, shared.ErrInvalidAccountData)

	delete(f.rpc.accounts, f.mintB)
	_, err = w.GetPool(context.Background(), f.pool)
	assert.ErrorIs(t, err, shared.ErrAccountNotFound)
}

func TestGetPosition(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc)

	position, err := w.GetPosition(context.Background(), f.position)
	require.NoError(t, err)
	assert.Equal(t, f.pool, position.Whirlpool)
	assert.Equal(t, "1000000", position.Liquidity.String())

	_, err = w.GetPosition(context.Background(), solana.NewWallet().PublicKey())
	assert.ErrorIs(t, err, shared.ErrAccountNotFound)
}

func TestGetRemoveLiquidityQuote(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc)

	slippage := shared.NewPercentageFromBps(50)
	quote, err := w.GetRemoveLiquidityQuote(context.Background(), f.position, slippage, shared.RoundingDown)
	require.NoError(t, err)

	want, err := math.GetRemoveLiquidityQuote(shared.RemoveLiquidityQuoteParam{
		PositionAddress:   f.position,
		TickCurrentIndex:  0,
		SqrtPrice:         math.TickIndexToSqrtPriceX64(0),
		TickLowerIndex:    -128,
		TickUpperIndex:    128,
		Liquidity:         big.NewInt(1_000_000),
		SlippageTolerance: slippage,
	}, shared.RoundingDown)
	require.NoError(t, err)

	assert.Equal(t, f.position, quote.PositionAddress)
	assert.Equal(t, want.EstTokenA.String(), quote.EstTokenA.String())
	assert.Equal(t, want.EstTokenB.String(), quote.EstTokenB.String())
	assert.Equal(t, want.MinTokenA.String(), quote.MinTokenA.String())
	assert.Equal(t, want.MinTokenB.String(), quote.MinTokenB.String())
	assert.Positive(t, quote.EstTokenA.Sign())
	assert.Positive(t, quote.EstTokenB.Sign())

	_, err = w.GetRemoveLiquidityQuote(context.Background(), f.position, shared.NewPercentage(2, 1), shared.RoundingDown)
	assert.ErrorIs(t, err, shared.ErrInvalidSlippage)
}

func TestGetPositionTokenHoldings(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc)

	holdings, err := w.GetPositionTokenHoldings(context.Background(), f.position)
	require.NoError(t, err)
	down, err := w.GetRemoveLiquidityQuote(context.Background(), f.position, shared.ZeroPercentage(), shared.RoundingDown)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, holdings.TokenA.Cmp(down.EstTokenA), 0)
	assert.GreaterOrEqual(t, holdings.TokenB.Cmp(down.EstTokenB), 0)
}

func TestGetIncreaseLiquidityQuote(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc)

	quote, err := w.GetIncreaseLiquidityQuote(context.Background(), f.pool, -128, 128, f.mintA, big.NewInt(1_000_000_000), shared.NewPercentageFromBps(100))
	require.NoError(t, err)
	assert.Positive(t, quote.Liquidity.Sign())
	assert.LessOrEqual(t, quote.EstTokenA.Cmp(big.NewInt(1_000_000_000)), 0)
	assert.GreaterOrEqual(t, quote.MaxTokenB.Cmp(quote.EstTokenB), 0)

	_, err = w.GetIncreaseLiquidityQuote(context.Background(), f.pool, -128, 128, f.rewardMint, big.NewInt(1), shared.ZeroPercentage())
	assert.ErrorIs(t, err, shared.ErrInvalidInputToken)
}

func TestGetPositionsCountByPool(t *testing.T) {
	f := newFixture()
	f.addPosition(f.pool)
	f.addPosition(solana.NewWallet().PublicKey())
	f.addTickArray(0, map[int]int64{1: 10})
	w := NewWhirlpool(f.rpc)

	count, err := w.GetPositionsCountByPool(context.Background(), f.pool)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetGenericPoolInfo(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc)

	info, err := w.GetGenericPoolInfo(context.Background(), f.pool, f.listing())
	require.NoError(t, err)
	assert.Equal(t, "ORCA", info.Dex)
	assert.Equal(t, f.pool, info.Address)
	assert.Equal(t, f.mintA, info.TokenMintA)
	assert.Equal(t, f.mintB, info.TokenMintB)
	assert.True(t, info.Price.Equal(decimal.NewFromInt(1000)))
	assert.True(t, info.FeeRate.Equal(decimal.RequireFromString("0.003")))
	require.NotNil(t, info.VolumeOnLast7d)
	assert.True(t, info.VolumeOnLast7d.Equal(decimal.NewFromInt(7_000_000)))
	require.NotNil(t, info.Tvl)
	assert.Equal(t, uint16(64), info.TickSpacing)
	assert.Equal(t, 1, info.Positions)

	_, err = w.GetGenericPoolInfo(context.Background(), f.pool, []api.Whirlpool{})
	assert.ErrorIs(t, err, shared.ErrPoolNotFound)
}

func TestGetPositionAprApy(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc)

	apr, err := w.GetPositionAprApy(context.Background(), f.position, f.prices(), f.listing())
	require.NoError(t, err)
	assert.False(t, apr.OutOfRange)
	assert.True(t, apr.FeeApr.IsPositive())
	require.Len(t, apr.RewardsApr, shared.NumRewards)
	require.Len(t, apr.RewardsApy, shared.NumRewards)
	assert.True(t, apr.RewardsApr[0].IsPositive())
	assert.True(t, apr.RewardsApr[1].IsZero())

	total := apr.FeeApr.Add(apr.RewardsApr[0]).Add(apr.RewardsApr[1]).Add(apr.RewardsApr[2])
	assert.True(t, apr.TotalApr.Equal(total))
	assert.True(t, apr.TotalApy.GreaterThan(apr.TotalApr))
	assert.True(t, apr.PriceLower.LessThan(apr.PoolPrice))
	assert.True(t, apr.PriceUpper.GreaterThan(apr.PoolPrice))
}

func TestGetPositionAprApyOutOfRange(t *testing.T) {
	f := newFixture()
	f.positionSt.TickLowerIndex, f.positionSt.TickUpperIndex = 256, 512
	f.rpc.setAccount(f.position, solana.TokenProgramID, mustMarshal(f.positionSt))
	w := NewWhirlpool(f.rpc)

	apr, err := w.GetPositionAprApy(context.Background(), f.position, f.prices(), f.listing())
	require.NoError(t, err)
	assert.True(t, apr.OutOfRange)
	assert.True(t, apr.TotalApr.IsZero())
	assert.Empty(t, apr.RewardsApr)
}

func TestGetWhirlpoolRangeAprApy(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc)

	apr, err := w.GetWhirlpoolRangeAprApy(context.Background(), f.pool,
		decimal.NewFromInt(900), decimal.NewFromInt(1100), f.prices(), f.listing())
	require.NoError(t, err)
	assert.False(t, apr.OutOfRange)
	assert.True(t, apr.FeeApr.IsPositive())

	// the same liquidity over a narrower range is worth less
	narrow, err := w.GetWhirlpoolRangeAprApy(context.Background(), f.pool,
		decimal.NewFromInt(990), decimal.NewFromInt(1010), f.prices(), f.listing())
	require.NoError(t, err)
	assert.True(t, narrow.FeeApr.GreaterThan(apr.FeeApr))

	prices := f.prices()
	delete(prices, f.rewardMint.String())
	_, err = w.GetWhirlpoolRangeAprApy(context.Background(), f.pool,
		decimal.NewFromInt(900), decimal.NewFromInt(1100), prices, f.listing())
	assert.ErrorIs(t, err, shared.ErrMissingTokenPrice)

	out, err := w.GetWhirlpoolRangeAprApy(context.Background(), f.pool,
		decimal.NewFromInt(1100), decimal.NewFromInt(1200), f.prices(), f.listing())
	require.NoError(t, err)
	assert.True(t, out.OutOfRange)
}

func TestGetWhirlpoolRangeAprApyFetchesListing(t *testing.T) {
	f := newFixture()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"whirlpools":[{"address":%q,"tokenA":{"mint":%q,"decimals":9},"tokenB":{"mint":%q,"decimals":6},"tickSpacing":64,"price":1000,"lpFeeRate":0.003,"volume":{"day":1000000,"week":7000000,"month":30000000}}]}`,
			f.pool, f.mintA, f.mintB)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	w := NewWhirlpool(f.rpc, WithAPIURL(srv.URL), WithHTTPClient(srv.Client()), WithMetrics(reg))

	apr, err := w.GetWhirlpoolRangeAprApy(context.Background(), f.pool,
		decimal.NewFromInt(900), decimal.NewFromInt(1100), f.prices(), nil)
	require.NoError(t, err)
	assert.True(t, apr.FeeApr.IsPositive())
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.RPCRequests.WithLabelValues("whirlpoolList", statusOK)))
}

func TestGetLiquidityDistribution(t *testing.T) {
	f := newFixture()
	f.addTickArray(-11264, map[int]int64{0: 100})
	f.addTickArray(-5632, map[int]int64{86: 500})
	f.addTickArray(0, map[int]int64{2: -500})
	f.addTickArray(5632, map[int]int64{0: -100})
	w := NewWhirlpool(f.rpc)

	dist, err := w.GetLiquidityDistribution(context.Background(), f.pool, true, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(0), dist.CurrentTickIndex)
	assert.True(t, dist.CurrentPrice.Equal(decimal.NewFromInt(1000)))
	require.Len(t, dist.Distribution, 4)

	wantTicks := []int32{-11264, -128, 128, 5632}
	wantLiquidity := []string{"100", "600", "100", "0"}
	for i, point := range dist.Distribution {
		assert.Equal(t, wantTicks[i], point.TickIndex)
		assert.Equal(t, wantLiquidity[i], point.Liquidity.String())
		assert.True(t, point.Price.Equal(math.TickIndexToPrice(point.TickIndex, 9, 6)))
	}

	lowest, highest := int32(-200), int32(200)
	dist, err = w.GetLiquidityDistribution(context.Background(), f.pool, false, &lowest, &highest)
	require.NoError(t, err)
	require.Len(t, dist.Distribution, 2)
	assert.Equal(t, "600", dist.Distribution[0].Liquidity.String())
	assert.True(t, dist.CurrentPrice.Equal(decimal.NewFromInt(1000)), dist.CurrentPrice.String())
	assert.True(t, dist.Distribution[0].Price.Equal(math.InvertPrice(math.TickIndexToPrice(-128, 9, 6))))
}

func TestGetLiquidityDistributionCorruptTickArray(t *testing.T) {
	f := newFixture()
	f.addTickArray(-5632, map[int]int64{86: 500})

	corrupt := mustMarshal(&helpers.TickArray{StartTickIndex: 0, Whirlpool: f.pool})
	corrupt[0] ^= 0xff
	bad := solana.NewWallet().PublicKey()
	f.rpc.setAccount(bad, helpers.WhirlpoolProgramID, corrupt)
	w := NewWhirlpool(f.rpc)

	dist, err := w.GetLiquidityDistribution(context.Background(), f.pool, true, nil, nil)
	assert.Nil(t, dist)
	assert.ErrorIs(t, err, shared.ErrInvalidAccountData)
	assert.ErrorContains(t, err, bad.String())
}

func TestMetrics(t *testing.T) {
	f := newFixture()
	reg := prometheus.NewRegistry()
	w := NewWhirlpool(f.rpc, WithMetrics(reg))

	_, err := w.GetRemoveLiquidityQuote(context.Background(), f.position, shared.ZeroPercentage(), shared.RoundingDown)
	require.NoError(t, err)
	_, err = w.GetPool(context.Background(), solana.NewWallet().PublicKey())
	require.Error(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(w.metrics.RPCRequests.WithLabelValues("getAccountInfo", statusOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.RPCRequests.WithLabelValues("getAccountInfo", statusError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.RPCRequests.WithLabelValues("getMultipleAccounts", statusOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(w.metrics.Quotes.WithLabelValues(quoteKindRemove, statusOK)))
}

func TestRateLimitCanceled(t *testing.T) {
	f := newFixture()
	w := NewWhirlpool(f.rpc, WithRateLimit(1, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.GetPool(ctx, f.pool)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, f.rpc.count("getAccountInfo"))
}
