package types

import (
	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/host/spltoken"
)

// MintDecimals reads the decimals of a mint account.
func MintDecimals(mint *host.AccountInfo) (uint8, error) {
	m, err := spltoken.DecodeMint(mint.Data)
	if err != nil {
		return 0, sdkerrors.Wrapf(ErrInvalidTokenMint, "mint %s: %s", mint.Key, err)
	}
	if !m.IsInitialized {
		return 0, sdkerrors.Wrapf(ErrInvalidTokenMint, "mint %s is not initialized", mint.Key)
	}
	return m.Decimals, nil
}

// ValidateTokenAccount requires account to hold tokens of mint.
func ValidateTokenAccount(account *host.AccountInfo, mint solana.PublicKey) error {
	acc, err := spltoken.DecodeAccount(account.Data)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenMint, "token account %s: %s", account.Key, err)
	}
	if !acc.Mint.Equals(mint) {
		return sdkerrors.Wrapf(ErrInvalidTokenMint, "token account %s holds %s", account.Key, acc.Mint)
	}
	return nil
}
