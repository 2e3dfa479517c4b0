package shared

import (
	"math/big"

	"github.com/krazyTry/orca-go/u128"
)

const (
	MinTickIndex int32 = -443636
	MaxTickIndex int32 = 443636

	TickArraySize = 88
	NumRewards    = 3

	ScaleOffset = 64

	BasisPointMax = 10_000
	// FeeRateDenominator is the scale of FeeRate, hundredths of a basis point.
	FeeRateDenominator = 1_000_000
	// ProtocolFeeRateDenominator is the scale of ProtocolFeeRate, basis points.
	ProtocolFeeRateDenominator = 10_000

	SecondsPerYear = 60 * 60 * 24 * 365
	DaysPerYear    = 365
)

var (
	OneQ64  = new(big.Int).Lsh(big.NewInt(1), ScaleOffset)
	MaxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	MinSqrtPriceX64 = u128.ToBig(u128.GenUint128FromString("4295048016"))
	MaxSqrtPriceX64 = u128.ToBig(u128.GenUint128FromString("79226673515401279992447579055"))
)
