package whirlpool

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	solanago "github.com/krazyTry/orca-go/solana"
	"github.com/krazyTry/orca-go/whirlpool/helpers"
	"github.com/krazyTry/orca-go/whirlpool/math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// GetPool fetches a whirlpool and the decimals of its token and reward mints.
func (w *Whirlpool) GetPool(ctx context.Context, pool solana.PublicKey) (*shared.PoolData, error) {
	state, err := w.getWhirlpoolAccount(ctx, pool)
	if err != nil {
		return nil, err
	}

	mints := []solana.PublicKey{state.TokenMintA, state.TokenMintB}
	for _, reward := range state.RewardInfos {
		if !reward.Mint.IsZero() {
			mints = append(mints, reward.Mint)
		}
	}
	tokens, err := solanago.GetMultipleToken(ctx, w.rpcClient, w.commitment, mints...)
	if err != nil {
		return nil, fmt.Errorf("fetch mints of whirlpool %s: %w", pool, err)
	}
	mintInfo := make(map[solana.PublicKey]*solanago.Token, len(tokens))
	for i, token := range tokens {
		if token == nil {
			return nil, fmt.Errorf("%w: mint %s of whirlpool %s", shared.ErrAccountNotFound, mints[i], pool)
		}
		mintInfo[mints[i]] = token
	}

	data := toPoolData(pool, state, mintInfo)
	w.logger.Debug("fetched whirlpool",
		zap.Stringer("pool", pool),
		zap.Int32("tickCurrentIndex", data.TickCurrentIndex),
		zap.String("price", data.Price.String()),
		zap.Bool("token2022A", mintInfo[state.TokenMintA].IsToken2022()),
		zap.Bool("token2022B", mintInfo[state.TokenMintB].IsToken2022()),
	)
	return data, nil
}

func (w *Whirlpool) getWhirlpoolAccount(ctx context.Context, pool solana.PublicKey) (*helpers.Whirlpool, error) {
	out, err := solanago.GetAccountInfo(ctx, w.rpcClient, w.commitment, pool)
	if solanago.IsNotFound(err) {
		return nil, fmt.Errorf("%w: whirlpool %s", shared.ErrAccountNotFound, pool)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch whirlpool %s: %w", pool, err)
	}
	state, err := helpers.DecodeWhirlpool(out.Value.Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("whirlpool %s: %w", pool, err)
	}
	return state, nil
}

func toPoolData(address solana.PublicKey, state *helpers.Whirlpool, mints map[solana.PublicKey]*solanago.Token) *shared.PoolData {
	tokenA, tokenB := mints[state.TokenMintA], mints[state.TokenMintB]
	decimalsA, decimalsB := tokenA.Decimals, tokenB.Decimals
	data := &shared.PoolData{
		Address:          address,
		WhirlpoolsConfig: state.WhirlpoolsConfig,
		TokenMintA:       state.TokenMintA,
		TokenMintB:       state.TokenMintB,
		TokenVaultA:      state.TokenVaultA,
		TokenVaultB:      state.TokenVaultB,
		TokenProgramA:    tokenA.Owner,
		TokenProgramB:    tokenB.Owner,
		TokenDecimalsA:   decimalsA,
		TokenDecimalsB:   decimalsB,
		TickSpacing:      state.TickSpacing,
		FeeRate:          state.FeeRate,
		ProtocolFeeRate:  state.ProtocolFeeRate,
		Liquidity:        state.Liquidity,
		SqrtPrice:        state.SqrtPrice,
		TickCurrentIndex: state.TickCurrentIndex,
		Price:            math.SqrtPriceX64ToPrice(state.SqrtPrice, decimalsA, decimalsB),
		FeePercentage: decimal.NewFromInt(int64(state.FeeRate)).
			Div(decimal.NewFromInt(shared.FeeRateDenominator)),
		ProtocolFeePercentage: decimal.NewFromInt(int64(state.ProtocolFeeRate)).
			Div(decimal.NewFromInt(shared.ProtocolFeeRateDenominator)),
	}
	for i, reward := range state.RewardInfos {
		data.Rewards[i] = shared.RewardData{
			Mint:                  reward.Mint,
			Vault:                 reward.Vault,
			EmissionsPerSecondX64: reward.EmissionsPerSecondX64,
			GrowthGlobalX64:       reward.GrowthGlobalX64,
		}
		if mint, ok := mints[reward.Mint]; ok {
			data.Rewards[i].Decimals = mint.Decimals
		}
	}
	return data
}
