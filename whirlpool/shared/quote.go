package shared

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// RemoveLiquidityQuoteParam is a snapshot of a position and its pool.
type RemoveLiquidityQuoteParam struct {
	PositionAddress   solana.PublicKey
	TickCurrentIndex  int32
	SqrtPrice         *big.Int // Q64.64
	TickLowerIndex    int32
	TickUpperIndex    int32
	Liquidity         *big.Int
	SlippageTolerance Percentage
}

type RemoveLiquidityQuote struct {
	PositionAddress solana.PublicKey
	EstTokenA       *big.Int
	EstTokenB       *big.Int
	MinTokenA       *big.Int
	MinTokenB       *big.Int
	Liquidity       *big.Int
}

// IncreaseLiquidityQuoteParam describes a deposit of InputAmount of InputTokenMint.
type IncreaseLiquidityQuoteParam struct {
	InputTokenMint    solana.PublicKey
	InputAmount       *big.Int
	TokenMintA        solana.PublicKey
	TokenMintB        solana.PublicKey
	TickCurrentIndex  int32
	SqrtPrice         *big.Int
	TickLowerIndex    int32
	TickUpperIndex    int32
	SlippageTolerance Percentage
}

type IncreaseLiquidityQuote struct {
	Liquidity *big.Int
	EstTokenA *big.Int
	EstTokenB *big.Int
	MaxTokenA *big.Int
	MaxTokenB *big.Int
}

// ZeroIncreaseLiquidityQuote is returned when the input side cannot be deposited into the range.
func ZeroIncreaseLiquidityQuote() *IncreaseLiquidityQuote {
	return &IncreaseLiquidityQuote{
		Liquidity: big.NewInt(0),
		EstTokenA: big.NewInt(0),
		EstTokenB: big.NewInt(0),
		MaxTokenA: big.NewInt(0),
		MaxTokenB: big.NewInt(0),
	}
}
