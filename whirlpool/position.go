package whirlpool

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	solanago "github.com/krazyTry/orca-go/solana"
	"github.com/krazyTry/orca-go/whirlpool/helpers"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

func (w *Whirlpool) GetPosition(ctx context.Context, position solana.PublicKey) (*helpers.Position, error) {
	out, err := solanago.GetAccountInfo(ctx, w.rpcClient, w.commitment, position)
	if solanago.IsNotFound(err) {
		return nil, fmt.Errorf("%w: position %s", shared.ErrAccountNotFound, position)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch position %s: %w", position, err)
	}
	state, err := helpers.DecodePosition(out.Value.Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("position %s: %w", position, err)
	}
	w.logger.Debug("fetched position",
		zap.Stringer("position", position),
		zap.Stringer("whirlpool", state.Whirlpool),
		zap.Int32("tickLowerIndex", state.TickLowerIndex),
		zap.Int32("tickUpperIndex", state.TickUpperIndex),
	)
	return state, nil
}

// getPositionAndPool fetches a position and the whirlpool it belongs to.
func (w *Whirlpool) getPositionAndPool(ctx context.Context, position solana.PublicKey) (*helpers.Position, *shared.PoolData, error) {
	state, err := w.GetPosition(ctx, position)
	if err != nil {
		return nil, nil, err
	}
	pool, err := w.GetPool(ctx, state.Whirlpool)
	if err != nil {
		return nil, nil, err
	}
	return state, pool, nil
}
