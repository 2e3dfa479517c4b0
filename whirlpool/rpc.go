package whirlpool

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/time/rate"

	solanago "github.com/krazyTry/orca-go/solana"
)

// RPCClient is the part of *rpc.Client the whirlpool client reads with.
type RPCClient interface {
	solanago.AccountsClient
	GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
}

var _ RPCClient = (*rpc.Client)(nil)

// instrumentedRPC throttles every call and reports it to metrics.
type instrumentedRPC struct {
	next    RPCClient
	limiter *rate.Limiter
	metrics *Metrics
}

func (c *instrumentedRPC) GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (out *rpc.GetAccountInfoResult, err error) {
	defer c.observe("getAccountInfo", time.Now(), &err)
	if err = c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.next.GetAccountInfoWithOpts(ctx, account, opts)
}

func (c *instrumentedRPC) GetMultipleAccountsWithOpts(ctx context.Context, accounts []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (out *rpc.GetMultipleAccountsResult, err error) {
	defer c.observe("getMultipleAccounts", time.Now(), &err)
	if err = c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.next.GetMultipleAccountsWithOpts(ctx, accounts, opts)
}

func (c *instrumentedRPC) GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (out rpc.GetProgramAccountsResult, err error) {
	defer c.observe("getProgramAccounts", time.Now(), &err)
	if err = c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.next.GetProgramAccountsWithOpts(ctx, publicKey, opts)
}

func (c *instrumentedRPC) observe(method string, start time.Time, err *error) {
	c.metrics.ObserveRequest(method, *err, time.Since(start))
}
