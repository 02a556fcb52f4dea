package types

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
)

// Invoker performs signed calls into the token program.
type Invoker interface {
	InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []*host.AccountInfo, signerSeeds ...[][]byte) error
}
