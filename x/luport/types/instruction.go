package types

import (
	"github.com/gagliardetto/solana-go"

	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// NewInitContractInstruction builds an InitContract instruction.
func NewInitContractInstruction(programID, initializer, state solana.PublicKey, msg *MsgInitContract) (*solana.GenericInstruction, error) {
	data, err := msg.Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.Meta(initializer).SIGNER(),
		solana.Meta(state).WRITE(),
	}, data), nil
}

// NewCreateTransferUnwrapRequestInstruction builds a lock request moving the
// holder's tokens into the vault. holder must have approved pda as delegate of
// tokenHolder.
func NewCreateTransferUnwrapRequestInstruction(
	programID, holder, state, tokenProgram, mint, tokenHolder, vault, pda solana.PublicKey,
	msg *porttypes.MsgCreateTransferUnwrapRequest,
) (*solana.GenericInstruction, error) {
	data, err := msg.Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.Meta(holder).SIGNER(),
		solana.Meta(state).WRITE(),
		solana.Meta(tokenProgram),
		solana.Meta(mint),
		solana.Meta(tokenHolder).WRITE(),
		solana.Meta(vault).WRITE(),
		solana.Meta(pda),
	}, data), nil
}
