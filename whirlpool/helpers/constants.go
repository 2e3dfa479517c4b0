package helpers

import (
	"github.com/gagliardetto/solana-go"

	solanago "github.com/krazyTry/orca-go/solana"
)

var WhirlpoolProgramID = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")

const (
	WhirlpoolSize = 653
	PositionSize  = 216
	TickArraySize = 9988

	TickSize = 113

	// PositionWhirlpoolOffset is the offset of Position.whirlpool.
	PositionWhirlpoolOffset = 8
	// TickArrayWhirlpoolOffset is the offset of TickArray.whirlpool, after the ticks.
	TickArrayWhirlpoolOffset = 9956
)

var (
	WhirlpoolDiscriminator = solanago.Discriminator("Whirlpool")
	PositionDiscriminator  = solanago.Discriminator("Position")
	TickArrayDiscriminator = solanago.Discriminator("TickArray")
)
