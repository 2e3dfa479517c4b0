package helpers

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

type WhirlpoolRewardInfo struct {
	Mint                  solana.PublicKey
	Vault                 solana.PublicKey
	Authority             solana.PublicKey
	EmissionsPerSecondX64 *big.Int
	GrowthGlobalX64       *big.Int
}

// Whirlpool https://github.com/orca-so/whirlpools/blob/main/programs/whirlpool/src/state/whirlpool.rs
type Whirlpool struct {
	WhirlpoolsConfig           solana.PublicKey
	WhirlpoolBump              [1]uint8
	TickSpacing                uint16
	FeeTierIndexSeed           [2]uint8
	FeeRate                    uint16
	ProtocolFeeRate            uint16
	Liquidity                  *big.Int
	SqrtPrice                  *big.Int
	TickCurrentIndex           int32
	ProtocolFeeOwedA           uint64
	ProtocolFeeOwedB           uint64
	TokenMintA                 solana.PublicKey
	TokenVaultA                solana.PublicKey
	FeeGrowthGlobalA           *big.Int
	TokenMintB                 solana.PublicKey
	TokenVaultB                solana.PublicKey
	FeeGrowthGlobalB           *big.Int
	RewardLastUpdatedTimestamp uint64
	RewardInfos                [shared.NumRewards]WhirlpoolRewardInfo
}

type PositionRewardInfo struct {
	GrowthInsideCheckpoint *big.Int
	AmountOwed             uint64
}

// Position https://github.com/orca-so/whirlpools/blob/main/programs/whirlpool/src/state/position.rs
type Position struct {
	Whirlpool            solana.PublicKey
	PositionMint         solana.PublicKey
	Liquidity            *big.Int
	TickLowerIndex       int32
	TickUpperIndex       int32
	FeeGrowthCheckpointA *big.Int
	FeeOwedA             uint64
	FeeGrowthCheckpointB *big.Int
	FeeOwedB             uint64
	RewardInfos          [shared.NumRewards]PositionRewardInfo
}

type Tick struct {
	Initialized          bool
	LiquidityNet         *big.Int // signed
	LiquidityGross       *big.Int
	FeeGrowthOutsideA    *big.Int
	FeeGrowthOutsideB    *big.Int
	RewardGrowthsOutside [shared.NumRewards]*big.Int
}

// TickArray https://github.com/orca-so/whirlpools/blob/main/programs/whirlpool/src/state/tick.rs
type TickArray struct {
	StartTickIndex int32
	Ticks          [shared.TickArraySize]Tick
	Whirlpool      solana.PublicKey
}

func checkAccount(name string, data []byte, discriminator [8]byte, size int) error {
	if len(data) != size {
		return fmt.Errorf("%w: %s account is %d bytes, want %d", shared.ErrInvalidAccountData, name, len(data), size)
	}
	if !bytes.Equal(data[:8], discriminator[:]) {
		return fmt.Errorf("%w: %s discriminator mismatch", shared.ErrInvalidAccountData, name)
	}
	return nil
}

func DecodeWhirlpool(data []byte) (*Whirlpool, error) {
	if err := checkAccount("whirlpool", data, WhirlpoolDiscriminator, WhirlpoolSize); err != nil {
		return nil, err
	}
	r := newAccountReader(data[8:])
	out := &Whirlpool{}
	out.WhirlpoolsConfig = r.pubkey()
	copy(out.WhirlpoolBump[:], r.bytes(1))
	out.TickSpacing = r.uint16()
	copy(out.FeeTierIndexSeed[:], r.bytes(2))
	out.FeeRate = r.uint16()
	out.ProtocolFeeRate = r.uint16()
	out.Liquidity = r.uint128()
	out.SqrtPrice = r.uint128()
	out.TickCurrentIndex = r.int32()
	out.ProtocolFeeOwedA = r.uint64()
	out.ProtocolFeeOwedB = r.uint64()
	out.TokenMintA = r.pubkey()
	out.TokenVaultA = r.pubkey()
	out.FeeGrowthGlobalA = r.uint128()
	out.TokenMintB = r.pubkey()
	out.TokenVaultB = r.pubkey()
	out.FeeGrowthGlobalB = r.uint128()
	out.RewardLastUpdatedTimestamp = r.uint64()
	for i := range out.RewardInfos {
		out.RewardInfos[i] = WhirlpoolRewardInfo{
			Mint:                  r.pubkey(),
			Vault:                 r.pubkey(),
			Authority:             r.pubkey(),
			EmissionsPerSecondX64: r.uint128(),
			GrowthGlobalX64:       r.uint128(),
		}
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: whirlpool: %v", shared.ErrInvalidAccountData, r.err)
	}
	return out, nil
}

// Marshal encodes the whirlpool in its on-chain layout, the inverse of DecodeWhirlpool.
func (w *Whirlpool) Marshal() ([]byte, error) {
	out := newAccountWriter(WhirlpoolSize)
	out.write(WhirlpoolDiscriminator[:])
	out.pubkey(w.WhirlpoolsConfig)
	out.write(w.WhirlpoolBump[:])
	out.uint16(w.TickSpacing)
	out.write(w.FeeTierIndexSeed[:])
	out.uint16(w.FeeRate)
	out.uint16(w.ProtocolFeeRate)
	out.uint128(w.Liquidity)
	out.uint128(w.SqrtPrice)
	out.int32(w.TickCurrentIndex)
	out.uint64(w.ProtocolFeeOwedA)
	out.uint64(w.ProtocolFeeOwedB)
	out.pubkey(w.TokenMintA)
	out.pubkey(w.TokenVaultA)
	out.uint128(w.FeeGrowthGlobalA)
	out.pubkey(w.TokenMintB)
	out.pubkey(w.TokenVaultB)
	out.uint128(w.FeeGrowthGlobalB)
	out.uint64(w.RewardLastUpdatedTimestamp)
	for _, reward := range w.RewardInfos {
		out.pubkey(reward.Mint)
		out.pubkey(reward.Vault)
		out.pubkey(reward.Authority)
		out.uint128(reward.EmissionsPerSecondX64)
		out.uint128(reward.GrowthGlobalX64)
	}
	return out.bytes()
}

func DecodePosition(data []byte) (*Position, error) {
	if err := checkAccount("position", data, PositionDiscriminator, PositionSize); err != nil {
		return nil, err
	}
	r := newAccountReader(data[8:])
	out := &Position{}
	out.Whirlpool = r.pubkey()
	out.PositionMint = r.pubkey()
	out.Liquidity = r.uint128()
	out.TickLowerIndex = r.int32()
	out.TickUpperIndex = r.int32()
	out.FeeGrowthCheckpointA = r.uint128()
	out.FeeOwedA = r.uint64()
	out.FeeGrowthCheckpointB = r.uint128()
	out.FeeOwedB = r.uint64()
	for i := range out.RewardInfos {
		out.RewardInfos[i] = PositionRewardInfo{
			GrowthInsideCheckpoint: r.uint128(),
			AmountOwed:             r.uint64(),
		}
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: position: %v", shared.ErrInvalidAccountData, r.err)
	}
	return out, nil
}

// Marshal encodes the position in its on-chain layout, the inverse of DecodePosition.
func (p *Position) Marshal() ([]byte, error) {
	out := newAccountWriter(PositionSize)
	out.write(PositionDiscriminator[:])
	out.pubkey(p.Whirlpool)
	out.pubkey(p.PositionMint)
	out.uint128(p.Liquidity)
	out.int32(p.TickLowerIndex)
	out.int32(p.TickUpperIndex)
	out.uint128(p.FeeGrowthCheckpointA)
	out.uint64(p.FeeOwedA)
	out.uint128(p.FeeGrowthCheckpointB)
	out.uint64(p.FeeOwedB)
	for _, reward := range p.RewardInfos {
		out.uint128(reward.GrowthInsideCheckpoint)
		out.uint64(reward.AmountOwed)
	}
	return out.bytes()
}

func DecodeTickArray(data []byte) (*TickArray, error) {
	if err := checkAccount("tick array", data, TickArrayDiscriminator, TickArraySize); err != nil {
		return nil, err
	}
	r := newAccountReader(data[8:])
	out := &TickArray{}
	out.StartTickIndex = r.int32()
	for i := range out.Ticks {
		tick := Tick{
			Initialized:       r.bool(),
			LiquidityNet:      r.int128(),
			LiquidityGross:    r.uint128(),
			FeeGrowthOutsideA: r.uint128(),
			FeeGrowthOutsideB: r.uint128(),
		}
		for j := range tick.RewardGrowthsOutside {
			tick.RewardGrowthsOutside[j] = r.uint128()
		}
		out.Ticks[i] = tick
	}
	out.Whirlpool = r.pubkey()
	if r.err != nil {
		return nil, fmt.Errorf("%w: tick array: %v", shared.ErrInvalidAccountData, r.err)
	}
	return out, nil
}

// Marshal encodes the tick array in its on-chain layout, the inverse of DecodeTickArray.
func (t *TickArray) Marshal() ([]byte, error) {
	out := newAccountWriter(TickArraySize)
	out.write(TickArrayDiscriminator[:])
	out.int32(t.StartTickIndex)
	for _, tick := range t.Ticks {
		out.bool(tick.Initialized)
		out.int128(tick.LiquidityNet)
		out.uint128(tick.LiquidityGross)
		out.uint128(tick.FeeGrowthOutsideA)
		out.uint128(tick.FeeGrowthOutsideB)
		for _, growth := range tick.RewardGrowthsOutside {
			out.uint128(growth)
		}
	}
	out.pubkey(t.Whirlpool)
	return out.bytes()
}

// TickIndex returns the tick index of the i-th tick in the array.
func (t *TickArray) TickIndex(i int, tickSpacing uint16) int32 {
	return t.StartTickIndex + int32(i)*int32(tickSpacing)
}
