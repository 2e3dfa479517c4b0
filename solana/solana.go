package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// MaxMultipleAccounts is the getMultipleAccounts per request limit.
const MaxMultipleAccounts = 100

// AccountsClient is the part of *rpc.Client used to read accounts.
type AccountsClient interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetMultipleAccountsWithOpts(ctx context.Context, accounts []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error)
}

// Filter represents a memcmp filter on a public key at a fixed account offset
type Filter struct {
	Owner  solana.PublicKey
	Offset uint64
}

func (f Filter) RPCFilter() rpc.RPCFilter {
	return rpc.RPCFilter{Memcmp: &rpc.RPCFilterMemcmp{Offset: f.Offset, Bytes: solana.Base58(f.Owner.Bytes())}}
}
