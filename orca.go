package orca

import (
	"github.com/krazyTry/orca-go/whirlpool"
)

// NewWhirlpoolClient creates a new Whirlpool client.
//
// Example:
//
// orcaWhirlpool := NewWhirlpoolClient(rpcClient, whirlpool.WithLogger(logger), whirlpool.WithRateLimit(10, 10))
//
// orcaWhirlpool.GetRemoveLiquidityQuote(ctx1, position, shared.NewPercentageFromBps(100), shared.RoundingDown)
//
// orcaWhirlpool.GetPositionAprApy(ctx1, position, prices, nil)
var NewWhirlpoolClient = whirlpool.NewWhirlpool
