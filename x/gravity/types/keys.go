package types

const (
	ModuleName = "gravity"

	// StateLen is the reserved prefix of the gravity state account.
	StateLen = 299

	// stateFixedLen is initializer | bft | consuls length | last round | multisig.
	stateFixedLen = 32 + 1 + 4 + 8 + 32

	// MaxConsuls is the largest consul set StateLen holds.
	MaxConsuls = (StateLen - stateFixedLen) / 32
)

const (
	InitContractTag uint8 = iota
	UpdateConsulsTag
)
