package types

import (
	"github.com/gagliardetto/solana-go"

	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// NewInitContractInstruction builds an InitContract instruction. A non-nil
// mint binds the token mint of the port.
func NewInitContractInstruction(programID, initializer, state solana.PublicKey, mint *solana.PublicKey, msg *MsgInitContract) (*solana.GenericInstruction, error) {
	data, err := msg.Pack()
	if err != nil {
		return nil, err
	}
	metas := solana.AccountMetaSlice{
		solana.Meta(initializer).SIGNER(),
		solana.Meta(state).WRITE(),
	}
	if mint != nil {
		metas = append(metas, solana.Meta(*mint))
	}
	return solana.NewInstruction(programID, metas, data), nil
}

// NewCreateTransferUnwrapRequestInstruction builds a burn backed unwrap
// request. holder must have approved pda as delegate of tokenHolder.
func NewCreateTransferUnwrapRequestInstruction(
	programID, holder, state, tokenProgram, mint, tokenHolder, pda solana.PublicKey,
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
		solana.Meta(mint).WRITE(),
		solana.Meta(tokenHolder).WRITE(),
		solana.Meta(pda),
	}, data), nil
}

// NewTransferTokenOwnershipInstruction builds a mint authority handover.
func NewTransferTokenOwnershipInstruction(
	programID, oracle, state, mint, currentOwner, tokenProgram solana.PublicKey,
	msg *MsgTransferTokenOwnership,
) (*solana.GenericInstruction, error) {
	data, err := msg.Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.Meta(oracle).SIGNER(),
		solana.Meta(state).WRITE(),
		solana.Meta(mint).WRITE(),
		solana.Meta(currentOwner),
		solana.Meta(tokenProgram),
	}, data), nil
}
