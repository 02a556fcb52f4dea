package types

const (
	ModuleName = "nebula"

	// StateLen is the reserved prefix of the nebula state account.
	StateLen = 1500
)

const (
	InitContractTag uint8 = iota
	UpdateOraclesTag
	SendHashValueTag
	SendValueToSubsTag
	SubscribeTag
	UnsubscribeTag
)

const (
	BFTAlloc            = 1
	DataTypeAlloc       = 1
	PublicKeyAlloc      = 32
	PulseIDAlloc        = 8
	SubscriptionIDAlloc = 16
	DataHashAlloc       = 64
	MinConfirmAlloc     = 1
	RewardAlloc         = 8
	PulseKeyAlloc       = 32

	// PulseRecordLen is the state growth of one committed pulse.
	PulseRecordLen = PulseKeyAlloc + PulseIDAlloc
)

// PulseID numbers committed data hashes.
type PulseID = uint64
