package whirlpool

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/krazyTry/orca-go/whirlpool/helpers"
	"github.com/krazyTry/orca-go/whirlpool/math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// GetLiquidityDistribution returns the active liquidity starting at every initialized tick of pool
// between lowestTick and highestTick inclusive. Nil bounds default to the outermost tick arrays.
// With keepOrder false the distribution prices are quoted as token B in token A;
// CurrentPrice always stays in the pool's own order.
func (w *Whirlpool) GetLiquidityDistribution(
	ctx context.Context,
	pool solana.PublicKey,
	keepOrder bool,
	lowestTick *int32,
	highestTick *int32,
) (*LiquidityDistribution, error) {
	data, err := w.GetPool(ctx, pool)
	if err != nil {
		return nil, err
	}
	arrays, err := w.getTickArrays(ctx, pool)
	if err != nil {
		return nil, err
	}

	lowest, highest := shared.MinTickIndex, shared.MaxTickIndex
	if len(arrays) > 0 {
		lowest = arrays[0].StartTickIndex
		last := arrays[len(arrays)-1]
		highest = last.TickIndex(shared.TickArraySize-1, data.TickSpacing)
	}
	if lowestTick != nil {
		lowest = *lowestTick
	}
	if highestTick != nil {
		highest = *highestTick
	}

	out := &LiquidityDistribution{
		CurrentPrice:     data.Price,
		CurrentTickIndex: data.TickCurrentIndex,
		Distribution:     []LiquidityForPrice{},
	}

	liquidity := new(big.Int)
	for _, array := range arrays {
		for i, tick := range array.Ticks {
			if !tick.Initialized {
				continue
			}
			liquidity.Add(liquidity, tick.LiquidityNet)

			tickIndex := array.TickIndex(i, data.TickSpacing)
			if tickIndex < lowest || tickIndex > highest {
				continue
			}
			price := math.TickIndexToPrice(tickIndex, data.TokenDecimalsA, data.TokenDecimalsB)
			if !keepOrder {
				price = math.InvertPrice(price)
			}
			out.Distribution = append(out.Distribution, LiquidityForPrice{
				Price:     price,
				Liquidity: new(big.Int).Set(liquidity),
				TickIndex: tickIndex,
			})
		}
	}

	w.logger.Debug("liquidity distribution",
		zap.Stringer("pool", pool),
		zap.Int("tickArrays", len(arrays)),
		zap.Int("points", len(out.Distribution)),
	)
	return out, nil
}

// getTickArrays fetches every tick array of pool ordered by start tick.
func (w *Whirlpool) getTickArrays(ctx context.Context, pool solana.PublicKey) ([]*helpers.TickArray, error) {
	out, err := w.rpcClient.GetProgramAccountsWithOpts(ctx, w.programID, helpers.TickArraysByWhirlpoolOpts(w.commitment, pool))
	if err != nil {
		return nil, fmt.Errorf("fetch tick arrays of whirlpool %s: %w", pool, err)
	}

	arrays := make([]*helpers.TickArray, 0, len(out))
	for _, account := range out {
		if account == nil || account.Account == nil {
			continue
		}
		array, err := helpers.DecodeTickArray(account.Account.Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("tick array %s: %w", account.Pubkey, err)
		}
		arrays = append(arrays, array)
	}
	sort.Slice(arrays, func(i, j int) bool {
		return arrays[i].StartTickIndex < arrays[j].StartTickIndex
	})
	return arrays, nil
}
