package types

import (
	sdkerrors "cosmossdk.io/errors"
)

const (
	BaseErrorCode uint32 = 1
)

var (
	ErrInvalidDataOnAttach               = sdkerrors.Register(ModuleName, BaseErrorCode+0, "invalid data on attach")
	ErrInvalidRequestStatus              = sdkerrors.Register(ModuleName, BaseErrorCode+1, "invalid request status")
	ErrInvalidInstructionIndex           = sdkerrors.Register(ModuleName, BaseErrorCode+2, "invalid instruction index")
	ErrAccessDenied                      = sdkerrors.Register(ModuleName, BaseErrorCode+3, "access denied")
	ErrTransferRequestsCountLimit        = sdkerrors.Register(ModuleName, BaseErrorCode+4, "transfer requests count limit")
	ErrInvalidInputToken                 = sdkerrors.Register(ModuleName, BaseErrorCode+5, "invalid input token")
	ErrErrorOnReceiverUnpack             = sdkerrors.Register(ModuleName, BaseErrorCode+6, "error on receiver unpack")
	ErrRequestIDIsAlreadyBeingProcessed  = sdkerrors.Register(ModuleName, BaseErrorCode+7, "request id is already being processed")
	ErrRequestIDForConfirmationIsInvalid = sdkerrors.Register(ModuleName, BaseErrorCode+8, "request id for confirmation is invalid")
	ErrRequestAmountMismatch             = sdkerrors.Register(ModuleName, BaseErrorCode+9, "request amount mismatch")
	ErrRequestReceiverMismatch           = sdkerrors.Register(ModuleName, BaseErrorCode+10, "request receiver mismatch")
	ErrRequestStatusMismatch             = sdkerrors.Register(ModuleName, BaseErrorCode+11, "request status mismatch")
	ErrByteArrayUnpackFailed             = sdkerrors.Register(ModuleName, BaseErrorCode+12, "byte array unpack failed")
	ErrInvalidTokenMint                  = sdkerrors.Register(ModuleName, BaseErrorCode+13, "invalid token mint")
	ErrInvalidInstruction                = sdkerrors.Register(ModuleName, BaseErrorCode+14, "invalid instruction")
)
