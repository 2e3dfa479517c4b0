package shared

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// Rounding selects the direction of every integer division in a quote.
// RoundingDown favors the user, RoundingUp favors the protocol.
type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

// PositionStatus is the position range relative to the pool's current tick.
type PositionStatus uint8

const (
	PositionStatusBelowRange PositionStatus = 0
	PositionStatusInRange    PositionStatus = 1
	PositionStatusAboveRange PositionStatus = 2
)

func (s PositionStatus) String() string {
	switch s {
	case PositionStatusBelowRange:
		return "BelowRange"
	case PositionStatusInRange:
		return "InRange"
	case PositionStatusAboveRange:
		return "AboveRange"
	default:
		return "Unknown"
	}
}

type Cluster string

const (
	ClusterMainnetBeta Cluster = "mainnet-beta"
	ClusterDevnet      Cluster = "devnet"
)

// Prices maps a base58 mint address to its USD spot price.
type Prices map[string]decimal.Decimal

// RewardData is an initialized pool reward emitter.
type RewardData struct {
	Mint                  solana.PublicKey
	Vault                 solana.PublicKey
	EmissionsPerSecondX64 *big.Int
	GrowthGlobalX64       *big.Int
	Decimals              uint8
}

// Initialized reports whether the reward slot has a mint assigned.
func (r RewardData) Initialized() bool {
	return !r.Mint.IsZero()
}

// PoolData is a decoded whirlpool enriched with mint decimals and derived price.
type PoolData struct {
	Address          solana.PublicKey
	WhirlpoolsConfig solana.PublicKey
	TokenMintA       solana.PublicKey
	TokenMintB       solana.PublicKey
	TokenVaultA      solana.PublicKey
	TokenVaultB      solana.PublicKey
	// TokenProgramA and TokenProgramB are the owners of the mints, SPL Token or Token-2022
	TokenProgramA    solana.PublicKey
	TokenProgramB    solana.PublicKey
	TokenDecimalsA   uint8
	TokenDecimalsB   uint8
	TickSpacing      uint16
	FeeRate          uint16
	ProtocolFeeRate  uint16
	Liquidity        *big.Int
	SqrtPrice        *big.Int
	TickCurrentIndex int32
	Price            decimal.Decimal
	// FeePercentage is FeeRate as a fraction, 3000 -> 0.003
	FeePercentage         decimal.Decimal
	ProtocolFeePercentage decimal.Decimal
	Rewards               [NumRewards]RewardData
}

// EstimatedAprs are annualized rates as fractions, 0.12 == 12%.
type EstimatedAprs struct {
	Fee     decimal.Decimal
	Rewards [NumRewards]decimal.Decimal
}

// ZeroAprs returns an estimate with every rate set to zero.
func ZeroAprs() *EstimatedAprs {
	return &EstimatedAprs{
		Fee:     decimal.Zero,
		Rewards: [NumRewards]decimal.Decimal{decimal.Zero, decimal.Zero, decimal.Zero},
	}
}
