package whirlpool

import (
	"bytes"
	"context"
	"math/big"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/orca-go/whirlpool/helpers"
	"github.com/krazyTry/orca-go/whirlpool/math"
)

type fakeRPC struct {
	mu       sync.Mutex
	accounts map[solana.PublicKey]*rpc.Account
	program  map[solana.PublicKey][]*rpc.KeyedAccount
	calls    map[string]int
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		accounts: map[solana.PublicKey]*rpc.Account{},
		program:  map[solana.PublicKey][]*rpc.KeyedAccount{},
		calls:    map[string]int{},
	}
}

func (f *fakeRPC) setAccount(key, owner solana.PublicKey, data []byte) {
	acc := &rpc.Account{Owner: owner, Data: rpc.DataBytesOrJSONFromBytes(data)}
	f.accounts[key] = acc
	if owner.Equals(helpers.WhirlpoolProgramID) {
		f.program[owner] = append(f.program[owner], &rpc.KeyedAccount{Pubkey: key, Account: acc})
	}
}

func (f *fakeRPC) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeRPC) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeRPC) GetAccountInfoWithOpts(_ context.Context, account solana.PublicKey, _ *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	f.record("getAccountInfo")
	acc, ok := f.accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: acc}, nil
}

func (f *fakeRPC) GetMultipleAccountsWithOpts(_ context.Context, accounts []solana.PublicKey, _ *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error) {
	f.record("getMultipleAccounts")
	out := &rpc.GetMultipleAccountsResult{Value: make([]*rpc.Account, len(accounts))}
	for i, a := range accounts {
		out.Value[i] = f.accounts[a]
	}
	return out, nil
}

func (f *fakeRPC) GetProgramAccountsWithOpts(_ context.Context, program solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error) {
	f.record("getProgramAccounts")
	var out rpc.GetProgramAccountsResult
	for _, acc := range f.program[program] {
		if matchFilters(acc.Account.Data.GetBinary(), opts) {
			out = append(out, acc)
		}
	}
	return out, nil
}

func matchFilters(data []byte, opts *rpc.GetProgramAccountsOpts) bool {
	if opts == nil {
		return true
	}
	for _, filter := range opts.Filters {
		if filter.DataSize != 0 && uint64(len(data)) != filter.DataSize {
			return false
		}
		if m := filter.Memcmp; m != nil {
			end := int(m.Offset) + len(m.Bytes)
			if end > len(data) || !bytes.Equal(data[m.Offset:end], m.Bytes) {
				return false
			}
		}
	}
	return true
}

type marshaler interface {
	Marshal() ([]byte, error)
}

func mustMarshal(account marshaler) []byte {
	data, err := account.Marshal()
	if err != nil {
		panic(err)
	}
	return data
}

func mintData(decimals uint8) []byte {
	data := make([]byte, 82)
	data[44] = decimals
	data[45] = 1
	return data
}

// fixture is a SOL/USDC like pool at tick 0 with one position around it.
type fixture struct {
	rpc        *fakeRPC
	pool       solana.PublicKey
	position   solana.PublicKey
	mintA      solana.PublicKey
	mintB      solana.PublicKey
	rewardMint solana.PublicKey
	state      *helpers.Whirlpool
	positionSt *helpers.Position
}

func newFixture() *fixture {
	f := &fixture{
		rpc:        newFakeRPC(),
		pool:       solana.NewWallet().PublicKey(),
		position:   solana.NewWallet().PublicKey(),
		mintA:      solana.NewWallet().PublicKey(),
		mintB:      solana.NewWallet().PublicKey(),
		rewardMint: solana.NewWallet().PublicKey(),
	}
	f.state = &helpers.Whirlpool{
		TickSpacing:      64,
		FeeRate:          3000,
		ProtocolFeeRate:  1300,
		Liquidity:        big.NewInt(1_000_000_000_000),
		SqrtPrice:        math.TickIndexToSqrtPriceX64(0),
		TickCurrentIndex: 0,
		TokenMintA:       f.mintA,
		TokenMintB:       f.mintB,
	}
	f.state.RewardInfos[0] = helpers.WhirlpoolRewardInfo{
		Mint:                  f.rewardMint,
		EmissionsPerSecondX64: new(big.Int).Lsh(big.NewInt(1_000), 64),
	}
	f.positionSt = &helpers.Position{
		Whirlpool:      f.pool,
		PositionMint:   solana.NewWallet().PublicKey(),
		Liquidity:      big.NewInt(1_000_000),
		TickLowerIndex: -128,
		TickUpperIndex: 128,
	}

	f.rpc.setAccount(f.mintA, solana.TokenProgramID, mintData(9))
	f.rpc.setAccount(f.mintB, solana.TokenProgramID, mintData(6))
	f.rpc.setAccount(f.rewardMint, solana.Token2022ProgramID, mintData(6))
	f.rpc.setAccount(f.pool, helpers.WhirlpoolProgramID, mustMarshal(f.state))
	f.rpc.setAccount(f.position, helpers.WhirlpoolProgramID, mustMarshal(f.positionSt))
	return f
}

func (f *fixture) addPosition(pool solana.PublicKey) {
	p := &helpers.Position{Whirlpool: pool, Liquidity: big.NewInt(1), TickLowerIndex: -64, TickUpperIndex: 64}
	f.rpc.setAccount(solana.NewWallet().PublicKey(), helpers.WhirlpoolProgramID, mustMarshal(p))
}

func (f *fixture) addTickArray(start int32, ticks map[int]int64) {
	array := &helpers.TickArray{StartTickIndex: start, Whirlpool: f.pool}
	for i, net := range ticks {
		array.Ticks[i] = helpers.Tick{
			Initialized:    true,
			LiquidityNet:   big.NewInt(net),
			LiquidityGross: new(big.Int).Abs(big.NewInt(net)),
		}
	}
	f.rpc.setAccount(solana.NewWallet().PublicKey(), helpers.WhirlpoolProgramID, mustMarshal(array))
}
