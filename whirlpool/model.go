package whirlpool

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// WhirlpoolAprApy are yield estimates for a price range, as fractions.
type WhirlpoolAprApy struct {
	TotalApr   decimal.Decimal
	TotalApy   decimal.Decimal
	FeeApr     decimal.Decimal
	FeeApy     decimal.Decimal
	RewardsApr []decimal.Decimal
	RewardsApy []decimal.Decimal

	PriceLower decimal.Decimal
	PriceUpper decimal.Decimal
	PoolPrice  decimal.Decimal
	OutOfRange bool
}

// GenericPoolInfo is a dex agnostic pool summary.
type GenericPoolInfo struct {
	Dex            string
	Address        solana.PublicKey
	TokenMintA     solana.PublicKey
	TokenMintB     solana.PublicKey
	Price          decimal.Decimal
	FeeRate        decimal.Decimal
	VolumeOnLast7d *decimal.Decimal
	Tvl            *decimal.Decimal
	TickSpacing    uint16
	Positions      int
}

type LiquidityForPrice struct {
	Price     decimal.Decimal
	Liquidity *big.Int
	TickIndex int32
}

type LiquidityDistribution struct {
	CurrentPrice     decimal.Decimal
	CurrentTickIndex int32
	Distribution     []LiquidityForPrice
}

// PositionTokenHoldings are the raw token amounts backing a position.
type PositionTokenHoldings struct {
	Position solana.PublicKey
	TokenA   *big.Int
	TokenB   *big.Int
}
