package types

import (
	sdkerrors "cosmossdk.io/errors"
)

const (
	BaseErrorCode uint32 = 1
)

var (
	ErrSendValueToSubsFailed                   = sdkerrors.Register(ModuleName, BaseErrorCode+0, "failed to send value to subs")
	ErrSubscriberExists                        = sdkerrors.Register(ModuleName, BaseErrorCode+1, "sub id exists")
	ErrSubscribeFailed                         = sdkerrors.Register(ModuleName, BaseErrorCode+2, "subscribe failed")
	ErrDataProviderForSendValueToSubsIsInvalid = sdkerrors.Register(ModuleName, BaseErrorCode+3, "data provider for subscribers is invalid")
	ErrSubscriberValueBeenSent                 = sdkerrors.Register(ModuleName, BaseErrorCode+4, "value has been already sent to subscriber")
	ErrInvalidSubscriptionID                   = sdkerrors.Register(ModuleName, BaseErrorCode+5, "invalid subscription id")
	ErrInvalidInstructionIndex                 = sdkerrors.Register(ModuleName, BaseErrorCode+6, "no such instruction index")
	ErrInvalidSubscriptionProgramID            = sdkerrors.Register(ModuleName, BaseErrorCode+7, "invalid subscription target program id")
	ErrPulseIDHasNotBeenPersisted              = sdkerrors.Register(ModuleName, BaseErrorCode+8, "pulse id has not been persisted")
	ErrPulseValidationOrderMismatch            = sdkerrors.Register(ModuleName, BaseErrorCode+9, "pulse validation order mismatch")
	ErrUnsubscribeIsNotAvailable               = sdkerrors.Register(ModuleName, BaseErrorCode+10, "unsubscribe is not available")
	ErrInputRoundMismatch                      = sdkerrors.Register(ModuleName, BaseErrorCode+11, "input round mismatch")
	ErrInvalidBFTCount                         = sdkerrors.Register(ModuleName, BaseErrorCode+12, "invalid bft count")
	ErrInvalidInstruction                      = sdkerrors.Register(ModuleName, BaseErrorCode+13, "invalid instruction")
	ErrInvalidDataType                         = sdkerrors.Register(ModuleName, BaseErrorCode+14, "invalid data type")
	ErrPulseStoreFull                          = sdkerrors.Register(ModuleName, BaseErrorCode+15, "no room for another pulse")
)
