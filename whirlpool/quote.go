package whirlpool

import (
	"context"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/krazyTry/orca-go/whirlpool/math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

const (
	quoteKindRemove   = "remove_liquidity"
	quoteKindHoldings = "holdings"
	quoteKindIncrease = "increase_liquidity"
)

// GetRemoveLiquidityQuote quotes withdrawing all liquidity of position at the pool's current price.
func (w *Whirlpool) GetRemoveLiquidityQuote(
	ctx context.Context,
	position solana.PublicKey,
	slippage shared.Percentage,
	rounding shared.Rounding,
) (*shared.RemoveLiquidityQuote, error) {
	state, pool, err := w.getPositionAndPool(ctx, position)
	if err != nil {
		return nil, err
	}

	quote, err := math.GetRemoveLiquidityQuote(shared.RemoveLiquidityQuoteParam{
		PositionAddress:   position,
		TickCurrentIndex:  pool.TickCurrentIndex,
		SqrtPrice:         pool.SqrtPrice,
		TickLowerIndex:    state.TickLowerIndex,
		TickUpperIndex:    state.TickUpperIndex,
		Liquidity:         state.Liquidity,
		SlippageTolerance: slippage,
	}, rounding)
	w.metrics.observeQuote(quoteKindRemove, err)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("remove liquidity quote",
		zap.Stringer("position", position),
		zap.Stringer("estTokenA", quote.EstTokenA),
		zap.Stringer("estTokenB", quote.EstTokenB),
	)
	return quote, nil
}

// GetPositionTokenHoldings returns the token amounts backing position, rounded up.
func (w *Whirlpool) GetPositionTokenHoldings(ctx context.Context, position solana.PublicKey) (*PositionTokenHoldings, error) {
	state, pool, err := w.getPositionAndPool(ctx, position)
	if err != nil {
		return nil, err
	}

	quote, err := math.GetRemoveLiquidityQuote(shared.RemoveLiquidityQuoteParam{
		PositionAddress:   position,
		TickCurrentIndex:  pool.TickCurrentIndex,
		SqrtPrice:         pool.SqrtPrice,
		TickLowerIndex:    state.TickLowerIndex,
		TickUpperIndex:    state.TickUpperIndex,
		Liquidity:         state.Liquidity,
		SlippageTolerance: shared.ZeroPercentage(),
	}, shared.RoundingUp)
	w.metrics.observeQuote(quoteKindHoldings, err)
	if err != nil {
		return nil, err
	}
	return &PositionTokenHoldings{
		Position: position,
		TokenA:   quote.EstTokenA,
		TokenB:   quote.EstTokenB,
	}, nil
}

// GetIncreaseLiquidityQuote quotes depositing amount of inputMint into [tickLower, tickUpper) of pool.
func (w *Whirlpool) GetIncreaseLiquidityQuote(
	ctx context.Context,
	pool solana.PublicKey,
	tickLowerIndex int32,
	tickUpperIndex int32,
	inputMint solana.PublicKey,
	amount *big.Int,
	slippage shared.Percentage,
) (*shared.IncreaseLiquidityQuote, error) {
	data, err := w.GetPool(ctx, pool)
	if err != nil {
		return nil, err
	}

	quote, err := math.GetIncreaseLiquidityQuote(shared.IncreaseLiquidityQuoteParam{
		InputTokenMint:    inputMint,
		InputAmount:       amount,
		TokenMintA:        data.TokenMintA,
		TokenMintB:        data.TokenMintB,
		TickCurrentIndex:  data.TickCurrentIndex,
		SqrtPrice:         data.SqrtPrice,
		TickLowerIndex:    tickLowerIndex,
		TickUpperIndex:    tickUpperIndex,
		SlippageTolerance: slippage,
	}, shared.RoundingUp)
	w.metrics.observeQuote(quoteKindIncrease, err)
	if err != nil {
		return nil, err
	}
	return quote, nil
}
