package types

import (
	sdkerrors "cosmossdk.io/errors"
)

const (
	BaseErrorCode uint32 = 1
)

var (
	ErrInvalidInstruction             = sdkerrors.Register(ModuleName, BaseErrorCode+0, "invalid instruction data")
	ErrMissingRequiredSignature       = sdkerrors.Register(ModuleName, BaseErrorCode+1, "missing required signature")
	ErrAccountAlreadyInitialized      = sdkerrors.Register(ModuleName, BaseErrorCode+2, "account already initialized")
	ErrUninitializedAccount           = sdkerrors.Register(ModuleName, BaseErrorCode+3, "account is not initialized")
	ErrNotEnoughAccountKeys           = sdkerrors.Register(ModuleName, BaseErrorCode+4, "not enough account keys")
	ErrAccountDataTooSmall            = sdkerrors.Register(ModuleName, BaseErrorCode+5, "account data too small")
	ErrInvalidAccountData             = sdkerrors.Register(ModuleName, BaseErrorCode+6, "invalid account data")
	ErrOwnerMismatch                  = sdkerrors.Register(ModuleName, BaseErrorCode+7, "owner does not match")
	ErrAlreadyInUse                   = sdkerrors.Register(ModuleName, BaseErrorCode+8, "account already in use")
	ErrInvalidNumberOfProvidedSigners = sdkerrors.Register(ModuleName, BaseErrorCode+9, "invalid number of provided signers")
	ErrInvalidNumberOfRequiredSigners = sdkerrors.Register(ModuleName, BaseErrorCode+10, "invalid number of required signers")
	ErrInvalidAmount                  = sdkerrors.Register(ModuleName, BaseErrorCode+11, "invalid amount")
	ErrInvalidSeeds                   = sdkerrors.Register(ModuleName, BaseErrorCode+12, "invalid program address seeds")
)
