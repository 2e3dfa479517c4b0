package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// MintSize is the length of the base mint layout shared by SPL Token and Token-2022.
const MintSize = 82

// Token is a decoded mint account.
type Token struct {
	token.Mint
	Address solana.PublicKey
	// Owner is the token program, SPL Token or Token-2022
	Owner solana.PublicKey
}

// IsToken2022 reports whether the mint is owned by the Token-2022 program.
func (t *Token) IsToken2022() bool {
	return t.Owner.Equals(solana.Token2022ProgramID)
}

// TokenLayout decodes mint accounts of either token program.
type TokenLayout struct {
}

// Decode reads the base mint layout; Token-2022 extensions after it are ignored.
func (l *TokenLayout) Decode(data []byte) (*Token, error) {
	if len(data) < MintSize {
		return nil, fmt.Errorf("mint account is %d bytes, want at least %d", len(data), MintSize)
	}
	mint := token.Mint{}
	if err := mint.Decode(data[:MintSize]); err != nil {
		return nil, err
	}
	if !mint.IsInitialized {
		return nil, fmt.Errorf("mint is not initialized")
	}
	return &Token{Mint: mint}, nil
}
