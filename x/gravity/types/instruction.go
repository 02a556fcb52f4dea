package types

import (
	"github.com/gagliardetto/solana-go"
)

// NewInitContractInstruction builds an InitContract instruction.
func NewInitContractInstruction(
	programID, initializer, state, multisig solana.PublicKey,
	msg *MsgInitContract,
) (*solana.GenericInstruction, error) {
	data, err := msg.Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.Meta(initializer).SIGNER(),
		solana.Meta(state).WRITE(),
		solana.Meta(multisig).WRITE(),
	}, data), nil
}

// NewUpdateConsulsInstruction builds an UpdateConsuls instruction signed by the
// current consuls.
func NewUpdateConsulsInstruction(
	programID, initializer, state, multisig solana.PublicKey,
	consuls []solana.PublicKey,
	msg *MsgUpdateConsuls,
) (*solana.GenericInstruction, error) {
	data, err := msg.Pack()
	if err != nil {
		return nil, err
	}
	metas := solana.AccountMetaSlice{
		solana.Meta(initializer).SIGNER(),
		solana.Meta(state).WRITE(),
		solana.Meta(multisig).WRITE(),
	}
	for _, c := range consuls {
		metas = append(metas, solana.Meta(c).SIGNER())
	}
	return solana.NewInstruction(programID, metas, data), nil
}
