package api

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

func parseWhirlpoolList(body []byte) ([]Whirlpool, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("orca api: invalid json")
	}
	pools := gjson.GetBytes(body, "whirlpools")
	if !pools.IsArray() {
		return nil, fmt.Errorf("orca api: missing whirlpools array")
	}

	list := make([]Whirlpool, 0, len(pools.Array()))
	var err error
	pools.ForEach(func(_, value gjson.Result) bool {
		var pool Whirlpool
		if pool, err = parseWhirlpool(value); err != nil {
			return false
		}
		list = append(list, pool)
		return true
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func parseWhirlpool(v gjson.Result) (Whirlpool, error) {
	address, err := solana.PublicKeyFromBase58(v.Get("address").String())
	if err != nil {
		return Whirlpool{}, fmt.Errorf("orca api: whirlpool address %q: %w", v.Get("address").String(), err)
	}
	tokenA, err := parseToken(v.Get("tokenA"))
	if err != nil {
		return Whirlpool{}, fmt.Errorf("orca api: whirlpool %s tokenA: %w", address, err)
	}
	tokenB, err := parseToken(v.Get("tokenB"))
	if err != nil {
		return Whirlpool{}, fmt.Errorf("orca api: whirlpool %s tokenB: %w", address, err)
	}

	pool := Whirlpool{
		Address:         address,
		TokenA:          tokenA,
		TokenB:          tokenB,
		Whitelisted:     v.Get("whitelisted").Bool(),
		TickSpacing:     uint16(v.Get("tickSpacing").Uint()),
		Price:           parseDecimal(v.Get("price")),
		LpFeeRate:       parseDecimal(v.Get("lpFeeRate")),
		ProtocolFeeRate: parseDecimal(v.Get("protocolFeeRate")),
	}
	if config := v.Get("whirlpoolsConfig"); config.Exists() {
		pool.WhirlpoolsConfig, _ = solana.PublicKeyFromBase58(config.String())
	}
	if tvl := v.Get("tvl"); tvl.Exists() && tvl.Type != gjson.Null {
		d := parseDecimal(tvl)
		pool.Tvl = &d
	}
	pool.Volume = parseStats(v.Get("volume"))
	pool.FeeApr = parseStats(v.Get("feeApr"))
	return pool, nil
}

func parseToken(v gjson.Result) (Token, error) {
	mint, err := solana.PublicKeyFromBase58(v.Get("mint").String())
	if err != nil {
		return Token{}, err
	}
	return Token{
		Mint:     mint,
		Symbol:   v.Get("symbol").String(),
		Name:     v.Get("name").String(),
		Decimals: uint8(v.Get("decimals").Uint()),
	}, nil
}

func parseStats(v gjson.Result) *PeriodStats {
	if !v.IsObject() {
		return nil
	}
	return &PeriodStats{
		Day:   parseDecimal(v.Get("day")),
		Week:  parseDecimal(v.Get("week")),
		Month: parseDecimal(v.Get("month")),
	}
}

// parseDecimal accepts JSON numbers and numeric strings; anything else is zero.
func parseDecimal(v gjson.Result) decimal.Decimal {
	var raw string
	switch v.Type {
	case gjson.Number:
		raw = v.Raw
	case gjson.String:
		raw = v.String()
	default:
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
