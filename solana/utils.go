package solana

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Discriminator returns the anchor account discriminator for name.
func Discriminator(name string) [8]byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out
}

// GenProgramAccountFilter builds getProgramAccounts options for accounts of dataSize bytes
// matching every filter.
func GenProgramAccountFilter(commitment rpc.CommitmentType, dataSize uint64, filters ...Filter) *rpc.GetProgramAccountsOpts {
	opt := &rpc.GetProgramAccountsOpts{
		Commitment: commitment,
		Encoding:   solana.EncodingBase64,
	}
	if dataSize > 0 {
		opt.Filters = append(opt.Filters, rpc.RPCFilter{DataSize: dataSize})
	}
	for _, f := range filters {
		opt.Filters = append(opt.Filters, f.RPCFilter())
	}
	return opt
}

// GetAccountInfo returns rpc.ErrNotFound for a missing account.
func GetAccountInfo(ctx context.Context, rpcClient AccountsClient, commitment rpc.CommitmentType, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	out, err := rpcClient.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: commitment, Encoding: solana.EncodingBase64})
	if err != nil {
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, rpc.ErrNotFound
	}
	return out, nil
}

// GetMultipleAccountInfo fetches accounts in batches of MaxMultipleAccounts.
// The result is index aligned with accounts; missing accounts are nil.
func GetMultipleAccountInfo(ctx context.Context, rpcClient AccountsClient, commitment rpc.CommitmentType, accounts []solana.PublicKey) ([]*rpc.Account, error) {
	list := make([]*rpc.Account, 0, len(accounts))
	for start := 0; start < len(accounts); start += MaxMultipleAccounts {
		end := min(start+MaxMultipleAccounts, len(accounts))
		outs, err := rpcClient.GetMultipleAccountsWithOpts(ctx, accounts[start:end], &rpc.GetMultipleAccountsOpts{Commitment: commitment, Encoding: solana.EncodingBase64})
		if err != nil {
			return nil, err
		}
		if len(outs.Value) != end-start {
			return nil, fmt.Errorf("getMultipleAccounts returned %d accounts, want %d", len(outs.Value), end-start)
		}
		list = append(list, outs.Value...)
	}
	return list, nil
}

// GetMultipleToken decodes mint accounts. Missing mints are nil.
func GetMultipleToken(ctx context.Context, rpcClient AccountsClient, commitment rpc.CommitmentType, tokens ...solana.PublicKey) ([]*Token, error) {
	outs, err := GetMultipleAccountInfo(ctx, rpcClient, commitment, tokens)
	if err != nil {
		return nil, err
	}
	list := make([]*Token, len(outs))
	for i, out := range outs {
		if out == nil {
			continue
		}

		token, err := new(TokenLayout).Decode(out.Data.GetBinary())
		if err != nil {
			return nil, fmt.Errorf("decode mint %s: %w", tokens[i], err)
		}
		token.Address = tokens[i]
		token.Owner = out.Owner

		list[i] = token
	}
	return list, nil
}

// IsNotFound reports whether err means the account does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, rpc.ErrNotFound)
}
