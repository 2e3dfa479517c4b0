package whirlpool

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/krazyTry/orca-go/whirlpool/api"
	"github.com/krazyTry/orca-go/whirlpool/helpers"
)

const dexName = "ORCA"

func (w *Whirlpool) GetGenericPoolInfo(ctx context.Context, pool solana.PublicKey, whirlpools []api.Whirlpool) (*GenericPoolInfo, error) {
	data, err := w.GetPool(ctx, pool)
	if err != nil {
		return nil, err
	}
	listing, err := w.findWhirlpool(ctx, pool, whirlpools)
	if err != nil {
		return nil, err
	}
	positions, err := w.GetPositionsCountByPool(ctx, pool)
	if err != nil {
		return nil, err
	}

	info := &GenericPoolInfo{
		Dex:         dexName,
		Address:     pool,
		TokenMintA:  data.TokenMintA,
		TokenMintB:  data.TokenMintB,
		Price:       data.Price,
		FeeRate:     data.FeePercentage,
		Tvl:         listing.Tvl,
		TickSpacing: data.TickSpacing,
		Positions:   positions,
	}
	if listing.Volume != nil {
		week := listing.Volume.Week
		info.VolumeOnLast7d = &week
	}
	return info, nil
}

// GetPositionsCountByPool counts the open positions of pool.
func (w *Whirlpool) GetPositionsCountByPool(ctx context.Context, pool solana.PublicKey) (int, error) {
	out, err := w.rpcClient.GetProgramAccountsWithOpts(ctx, w.programID, helpers.PositionsByWhirlpoolOpts(w.commitment, pool))
	if err != nil {
		return 0, fmt.Errorf("fetch positions of whirlpool %s: %w", pool, err)
	}
	return len(out), nil
}
