package types

import (
	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/host/spltoken"
)

const (
	// MultisigLen is the packed size of a multisig account.
	MultisigLen = spltoken.MultisigLen
	// MaxSigners bounds n of a multisig.
	MaxSigners = token.MAX_SIGNERS
)

// Multisig shares the token program layout: m | n | is_initialized | signers[11].
type Multisig = spltoken.Multisig

// UnpackMultisig decodes a multisig account.
func UnpackMultisig(data []byte) (*Multisig, error) {
	ms, err := spltoken.DecodeMultisig(data)
	if err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	return ms, nil
}

// PackMultisig encodes ms into a multisig account.
func PackMultisig(ms *Multisig, data []byte) error {
	if err := ms.Encode(data); err != nil {
		return sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	return nil
}

func newMultisig(signers []solana.PublicKey, m uint8) (*Multisig, error) {
	n := len(signers)
	if n < 1 || n > MaxSigners {
		return nil, sdkerrors.Wrapf(ErrInvalidNumberOfProvidedSigners, "n=%d", n)
	}
	if m < 1 || int(m) > n {
		return nil, sdkerrors.Wrapf(ErrInvalidNumberOfRequiredSigners, "m=%d n=%d", m, n)
	}
	ms := &Multisig{M: m, N: uint8(n), IsInitialized: true}
	copy(ms.Signers[:], signers)
	return ms, nil
}

// InitMultisig initializes an m of len(signers) multisig in account.
func InitMultisig(account *host.AccountInfo, signers []solana.PublicKey, m uint8) error {
	current, err := UnpackMultisig(account.Data)
	if err != nil {
		return err
	}
	if current.IsInitialized {
		return sdkerrors.Wrapf(ErrAlreadyInUse, "multisig %s", account.Key)
	}
	ms, err := newMultisig(signers, m)
	if err != nil {
		return err
	}
	return PackMultisig(ms, account.Data)
}

// RotateMultisig replaces the signer set of an initialized multisig.
func RotateMultisig(account *host.AccountInfo, signers []solana.PublicKey, m uint8) error {
	current, err := UnpackMultisig(account.Data)
	if err != nil {
		return err
	}
	if !current.IsInitialized {
		return sdkerrors.Wrapf(ErrUninitializedAccount, "multisig %s", account.Key)
	}
	ms, err := newMultisig(signers, m)
	if err != nil {
		return err
	}
	return PackMultisig(ms, account.Data)
}

// ValidateOwner checks that ownerAccount is expectedOwner and that it signed,
// reporting failures with this module's error codes.
func ValidateOwner(programID, expectedOwner solana.PublicKey, ownerAccount *host.AccountInfo, signers []*host.AccountInfo) error {
	err := spltoken.ValidateOwner(programID, expectedOwner, ownerAccount, signers)
	switch {
	case err == nil:
		return nil
	case sdkerrors.IsOf(err, spltoken.ErrOwnerMismatch):
		return sdkerrors.Wrap(ErrOwnerMismatch, err.Error())
	case sdkerrors.IsOf(err, spltoken.ErrMissingSignature):
		return sdkerrors.Wrap(ErrMissingRequiredSignature, err.Error())
	default:
		return sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
}
