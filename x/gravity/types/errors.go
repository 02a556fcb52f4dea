package types

import (
	sdkerrors "cosmossdk.io/errors"
)

const (
	BaseErrorCode uint32 = 1
)

var (
	ErrInvalidInstruction      = sdkerrors.Register(ModuleName, BaseErrorCode+0, "invalid instruction")
	ErrNotRentExempt           = sdkerrors.Register(ModuleName, BaseErrorCode+1, "not rent exempt")
	ErrInputRoundMismatch      = sdkerrors.Register(ModuleName, BaseErrorCode+2, "input round mismatch")
	ErrInvalidBFTCount         = sdkerrors.Register(ModuleName, BaseErrorCode+3, "invalid bft count")
	ErrInvalidInstructionIndex = sdkerrors.Register(ModuleName, BaseErrorCode+4, "invalid instruction index")
)
