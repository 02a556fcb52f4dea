package host

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Program is an on-chain program executed by the runtime. Keepers of the
// x/ modules implement it.
type Program interface {
	Process(ctx context.Context, programID solana.PublicKey, accounts []*AccountInfo, input []byte) error
}

// ProgramFunc adapts a function into a Program.
type ProgramFunc func(ctx context.Context, programID solana.PublicKey, accounts []*AccountInfo, input []byte) error

func (f ProgramFunc) Process(ctx context.Context, programID solana.PublicKey, accounts []*AccountInfo, input []byte) error {
	return f(ctx, programID, accounts, input)
}

// Invoker performs cross-program invocations on behalf of the currently
// executing program. Signer seeds are resolved against the calling program id.
type Invoker interface {
	InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []*AccountInfo, signerSeeds ...[][]byte) error
}
