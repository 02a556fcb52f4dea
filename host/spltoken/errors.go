package spltoken

import (
	sdkerrors "cosmossdk.io/errors"
)

const (
	// ModuleName is the codespace of token program errors.
	ModuleName = "spltoken"

	BaseErrorCode uint32 = 1
)

var (
	ErrInvalidInstruction        = sdkerrors.Register(ModuleName, BaseErrorCode+0, "invalid token instruction")
	ErrNotEnoughAccountKeys      = sdkerrors.Register(ModuleName, BaseErrorCode+1, "not enough account keys")
	ErrIncorrectProgramID        = sdkerrors.Register(ModuleName, BaseErrorCode+2, "account not owned by the token program")
	ErrInvalidAccountData        = sdkerrors.Register(ModuleName, BaseErrorCode+3, "invalid account data")
	ErrUninitializedState        = sdkerrors.Register(ModuleName, BaseErrorCode+4, "state is uninitialized")
	ErrAlreadyInUse              = sdkerrors.Register(ModuleName, BaseErrorCode+5, "account or token already in use")
	ErrOwnerMismatch             = sdkerrors.Register(ModuleName, BaseErrorCode+6, "owner does not match")
	ErrMintMismatch              = sdkerrors.Register(ModuleName, BaseErrorCode+7, "account not associated with this mint")
	ErrInsufficientFunds         = sdkerrors.Register(ModuleName, BaseErrorCode+8, "insufficient funds")
	ErrFixedSupply               = sdkerrors.Register(ModuleName, BaseErrorCode+9, "fixed supply")
	ErrOverflow                  = sdkerrors.Register(ModuleName, BaseErrorCode+10, "operation overflowed")
	ErrMissingSignature          = sdkerrors.Register(ModuleName, BaseErrorCode+11, "missing required signature")
	ErrAuthorityTypeNotSupported = sdkerrors.Register(ModuleName, BaseErrorCode+12, "authority type not supported")
)
