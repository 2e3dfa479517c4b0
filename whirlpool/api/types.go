package api

import (
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

type Token struct {
	Mint     solana.PublicKey
	Symbol   string
	Name     string
	Decimals uint8
}

// PeriodStats holds a value aggregated over the last day, week and month.
type PeriodStats struct {
	Day   decimal.Decimal
	Week  decimal.Decimal
	Month decimal.Decimal
}

// Whirlpool is one entry of the Orca whirlpool listing.
// Tvl, Volume and FeeApr are nil when the listing has no statistics for the pool.
type Whirlpool struct {
	Address          solana.PublicKey
	WhirlpoolsConfig solana.PublicKey
	TokenA           Token
	TokenB           Token
	Whitelisted      bool
	TickSpacing      uint16
	Price            decimal.Decimal
	LpFeeRate        decimal.Decimal
	ProtocolFeeRate  decimal.Decimal
	Tvl              *decimal.Decimal
	Volume           *PeriodStats
	FeeApr           *PeriodStats
}
