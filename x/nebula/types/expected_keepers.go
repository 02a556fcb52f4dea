package types

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
)

// Invoker performs the signed cross-program call into a subscriber.
type Invoker interface {
	InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []*host.AccountInfo, signerSeeds ...[][]byte) error
}
