package math

import (
	"math/big"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// Q96 factors sqrt(1.0001)^(2^i) for positive ticks, bit 0 is handled by the seed.
var positiveTickFactors = mustBigInts(
	"79236085330515764027303304731",
	"79244008939048815603706035061",
	"79259858533276714757314932305",
	"79291567232598584799939703904",
	"79355022692464371645785046466",
	"79482085999252804386437311141",
	"79736823300114093921829183326",
	"80248749790819932309965073892",
	"81282483887344747381513967011",
	"83390072131320151908154831281",
	"87770609709833776024991924138",
	"97234110755111693312479820773",
	"119332217159966728226237229890",
	"179736315981702064433883588727",
	"407748233172238350107850275304",
	"2098478828474011932436660412517",
	"55581415166113811149459800483533",
	"38992368544603139932233054999993551",
)

// Q64 factors 1/sqrt(1.0001)^(2^i) for negative ticks.
var negativeTickFactors = mustBigInts(
	"18444899583751176498",
	"18443055278223354162",
	"18439367220385604838",
	"18431993317065449817",
	"18417254355718160513",
	"18387811781193591352",
	"18329067761203520168",
	"18212142134806087854",
	"17980523815641551639",
	"17526086738831147013",
	"16651378430235024244",
	"15030750278693429944",
	"12247334978882834399",
	"8131365268884726200",
	"3584323654723342297",
	"696457651847595233",
	"26294789957452057",
	"37481735321082",
)

var (
	positiveOddSeed  = mustBigInt("79232123823359799118286999567")
	positiveEvenSeed = new(big.Int).Lsh(big.NewInt(1), 96)
	negativeOddSeed  = mustBigInt("18445821805675392311")
	negativeEvenSeed = new(big.Int).Lsh(big.NewInt(1), 64)
)

func mustBigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid integer constant " + s)
	}
	return v
}

func mustBigInts(values ...string) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = mustBigInt(v)
	}
	return out
}

// IsTickIndexInBounds reports whether tick lies in [MinTickIndex, MaxTickIndex].
func IsTickIndexInBounds(tick int32) bool {
	return tick >= shared.MinTickIndex && tick <= shared.MaxTickIndex
}

// TickIndexToSqrtPriceX64 returns sqrt(1.0001^tick) as a Q64.64 integer, bit-exact with the
// whirlpool program. Ticks outside the supported bounds are clamped.
func TickIndexToSqrtPriceX64(tick int32) *big.Int {
	if tick < shared.MinTickIndex {
		tick = shared.MinTickIndex
	}
	if tick > shared.MaxTickIndex {
		tick = shared.MaxTickIndex
	}
	if tick >= 0 {
		return sqrtPricePositiveTick(tick)
	}
	return sqrtPriceNegativeTick(tick)
}

func sqrtPricePositiveTick(tick int32) *big.Int {
	var ratio *big.Int
	if tick&1 != 0 {
		ratio = new(big.Int).Set(positiveOddSeed)
	} else {
		ratio = new(big.Int).Set(positiveEvenSeed)
	}
	for i, factor := range positiveTickFactors {
		if tick&(2<<i) != 0 {
			ratio.Mul(ratio, factor)
			ratio.Rsh(ratio, 96)
		}
	}
	return ratio.Rsh(ratio, 32)
}

func sqrtPriceNegativeTick(tick int32) *big.Int {
	abs := -tick
	var ratio *big.Int
	if abs&1 != 0 {
		ratio = new(big.Int).Set(negativeOddSeed)
	} else {
		ratio = new(big.Int).Set(negativeEvenSeed)
	}
	for i, factor := range negativeTickFactors {
		if abs&(2<<i) != 0 {
			ratio.Mul(ratio, factor)
			ratio.Rsh(ratio, shared.ScaleOffset)
		}
	}
	return ratio
}

// SqrtPriceX64ToTickIndex returns the greatest tick whose sqrt price is <= sqrtPriceX64.
func SqrtPriceX64ToTickIndex(sqrtPriceX64 *big.Int) int32 {
	if sqrtPriceX64.Cmp(shared.MinSqrtPriceX64) <= 0 {
		return shared.MinTickIndex
	}
	if sqrtPriceX64.Cmp(shared.MaxSqrtPriceX64) >= 0 {
		return shared.MaxTickIndex
	}

	lo, hi := shared.MinTickIndex, shared.MaxTickIndex
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if TickIndexToSqrtPriceX64(mid).Cmp(sqrtPriceX64) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// GetNearestValidTickIndex truncates tick toward zero onto the tick spacing grid.
func GetNearestValidTickIndex(tick int32, tickSpacing uint16) int32 {
	if tickSpacing == 0 {
		return tick
	}
	spacing := int32(tickSpacing)
	valid := tick - tick%spacing
	if valid < shared.MinTickIndex {
		valid += spacing
	}
	if valid > shared.MaxTickIndex {
		valid -= spacing
	}
	return valid
}
