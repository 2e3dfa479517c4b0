package shared

import "errors"

var (
	ErrInvalidRange          = errors.New("invalid tick range")
	ErrUnknownPositionStatus = errors.New("unknown position status")
	ErrInvalidSlippage       = errors.New("invalid slippage tolerance")
	ErrInvalidLiquidity      = errors.New("invalid liquidity")
	ErrInvalidSqrtPrice      = errors.New("invalid sqrt price")
	ErrInvalidInputToken     = errors.New("input token is not in the pool")
	ErrInvalidAmount         = errors.New("invalid token amount")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAccountData = errors.New("invalid account data")
	ErrPoolNotFound       = errors.New("pool not found in orca whirlpool listing")
	ErrMissingTokenPrice  = errors.New("missing token price")
)
