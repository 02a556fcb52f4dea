package types

import (
	"github.com/google/uuid"
)

const (
	// ModuleName is the codespace shared by all programs for common failures.
	ModuleName = "common"
)

type (
	// SwapID identifies one cross-chain transfer.
	SwapID = [16]byte
	// SubscriptionID identifies a nebula subscription.
	SubscriptionID = [16]byte
	// ForeignAddress is an opaque counterparty chain address.
	ForeignAddress = [32]byte
)

// NewID returns a random id for swaps and subscriptions.
func NewID() [16]byte {
	return uuid.New()
}
