package types

import (
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

const (
	ModuleName = "port"

	// StateLen is the reserved prefix of a port state account.
	StateLen = 20000

	// EmptinessPrefix is the prefix checked before a port is initialized.
	EmptinessPrefix = 3000

	// DefaultDecimals is used when an operation carries no mint account.
	DefaultDecimals uint8 = 8
)

const (
	InitContractTag uint8 = iota
	CreateTransferUnwrapRequestTag
	AttachValueTag
	ConfirmDestinationChainRequestTag
	TransferTokenOwnershipTag
)

const (
	PublicKeyAlloc      = 32
	AmountAlloc         = 8
	ForeignAddressAlloc = 32
	SwapIDAlloc         = 16
	BFTAlloc            = 1

	// RequestRecordLen is the state growth of one pending request: its swap
	// status entry, its request entry and its queue slot.
	RequestRecordLen = (SwapIDAlloc + 1) + (SwapIDAlloc + ForeignAddressAlloc + PublicKeyAlloc + AmountAlloc) + SwapIDAlloc
)

// Port operation actions.
const (
	ActionMint    byte = 'm'
	ActionUnlock  byte = 'u'
	ActionConfirm byte = 'c'
)

type (
	SwapID         = commontypes.SwapID
	ForeignAddress = commontypes.ForeignAddress
)
