package types

import (
	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
)

// IsContractEmpty reports whether every byte of data is zero.
func IsContractEmpty(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// ValidateContractEmptiness refuses to initialize over existing state.
func ValidateContractEmptiness(data []byte) error {
	if !IsContractEmpty(data) {
		return ErrAccountAlreadyInitialized
	}
	return nil
}

// ValidateContractNonEmptiness refuses to operate on absent state.
func ValidateContractNonEmptiness(data []byte) error {
	if IsContractEmpty(data) {
		return ErrUninitializedAccount
	}
	return nil
}

// StatePrefix returns data[:end], or all of data when it is shorter.
func StatePrefix(data []byte, end int) []byte {
	if end > len(data) {
		return data
	}
	return data[:end]
}

// ValidatePubkeyMatch returns err unless key is one of list.
func ValidatePubkeyMatch(list []solana.PublicKey, key solana.PublicKey, err error) error {
	for _, k := range list {
		if k.Equals(key) {
			return nil
		}
	}
	return sdkerrors.Wrapf(err, "key %s", key)
}

// RequireSigner fails with ErrMissingRequiredSignature unless the account signed.
func RequireSigner(info *host.AccountInfo) error {
	if !info.IsSigner {
		return sdkerrors.Wrapf(ErrMissingRequiredSignature, "account %s", info.Key)
	}
	return nil
}

// AccountIter walks an instruction's account list in order.
type AccountIter struct {
	accounts []*host.AccountInfo
	pos      int
}

// NewAccountIter creates an iterator over accounts.
func NewAccountIter(accounts []*host.AccountInfo) *AccountIter {
	return &AccountIter{accounts: accounts}
}

// NextAccountInfo returns the next account or ErrNotEnoughAccountKeys.
func (it *AccountIter) NextAccountInfo() (*host.AccountInfo, error) {
	if it.pos >= len(it.accounts) {
		return nil, sdkerrors.Wrapf(ErrNotEnoughAccountKeys, "account #%d", it.pos)
	}
	acc := it.accounts[it.pos]
	it.pos++
	return acc, nil
}

// Remaining returns the accounts not yet consumed.
func (it *AccountIter) Remaining() []*host.AccountInfo {
	return it.accounts[it.pos:]
}
