package host

import (
	sdkerrors "cosmossdk.io/errors"
)

const (
	// ModuleName is the codespace of runtime errors.
	ModuleName = "host"

	BaseErrorCode uint32 = 1
)

var (
	ErrProgramNotFound             = sdkerrors.Register(ModuleName, BaseErrorCode+0, "program not found")
	ErrAccountNotFound             = sdkerrors.Register(ModuleName, BaseErrorCode+1, "account not found")
	ErrAccountExists               = sdkerrors.Register(ModuleName, BaseErrorCode+2, "account already exists")
	ErrMissingSignature            = sdkerrors.Register(ModuleName, BaseErrorCode+3, "transaction signature missing")
	ErrPrivilegeEscalation         = sdkerrors.Register(ModuleName, BaseErrorCode+4, "cross-program invocation with unauthorized signer or writable account")
	ErrCallDepthExceeded           = sdkerrors.Register(ModuleName, BaseErrorCode+5, "cross-program invocation call depth too deep")
	ErrExternalAccountDataModified = sdkerrors.Register(ModuleName, BaseErrorCode+6, "program modified data of an account it does not own")
	ErrReadonlyDataModified        = sdkerrors.Register(ModuleName, BaseErrorCode+7, "program modified data of a read-only account")
	ErrNoActiveTransaction         = sdkerrors.Register(ModuleName, BaseErrorCode+8, "no active transaction in context")
	ErrInvalidSeeds                = sdkerrors.Register(ModuleName, BaseErrorCode+9, "signer seeds do not derive a program address")
	ErrEmptyTransaction            = sdkerrors.Register(ModuleName, BaseErrorCode+10, "transaction has no instructions")
)
