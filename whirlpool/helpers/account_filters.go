package helpers

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	solanago "github.com/krazyTry/orca-go/solana"
)

// PositionsByWhirlpoolOpts selects every position account opened on pool.
func PositionsByWhirlpoolOpts(commitment rpc.CommitmentType, pool solana.PublicKey) *rpc.GetProgramAccountsOpts {
	return solanago.GenProgramAccountFilter(commitment, PositionSize,
		solanago.Filter{Owner: pool, Offset: PositionWhirlpoolOffset})
}

// TickArraysByWhirlpoolOpts selects every tick array of pool.
func TickArraysByWhirlpoolOpts(commitment rpc.CommitmentType, pool solana.PublicKey) *rpc.GetProgramAccountsOpts {
	return solanago.GenProgramAccountFilter(commitment, TickArraySize,
		solanago.Filter{Owner: pool, Offset: TickArrayWhirlpoolOffset})
}
