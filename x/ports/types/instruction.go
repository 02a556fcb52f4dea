package types

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// NewAttachValueInstruction builds the AttachValue call a nebula sends to a
// subscribed port. passthrough accounts follow the signers.
func NewAttachValueInstruction(
	programID solana.PublicKey,
	data []byte,
	oracle, subscriberData, tokenProgram, mint, recipient, pda solana.PublicKey,
	signers []solana.PublicKey,
	passthrough ...*solana.AccountMeta,
) *solana.GenericInstruction {
	metas := make(solana.AccountMetaSlice, 0, 6+len(signers)+len(passthrough))
	metas = append(metas,
		solana.Meta(oracle).SIGNER(),
		solana.Meta(subscriberData).WRITE(),
		solana.Meta(tokenProgram),
		solana.Meta(mint).WRITE(),
		solana.Meta(recipient).WRITE(),
		solana.Meta(pda),
	)
	for _, s := range signers {
		metas = append(metas, solana.Meta(s).SIGNER())
	}
	metas = append(metas, passthrough...)

	payload, _ := NewMsgAttachValue(data).Pack()
	return solana.NewInstruction(programID, metas, payload)
}

// NewConfirmDestinationChainRequestInstruction builds a confirmation. mint is
// optional and supplies the decimals of the payload amount.
func NewConfirmDestinationChainRequestInstruction(programID, oracle, state solana.PublicKey, mint *solana.PublicKey, data []byte) *solana.GenericInstruction {
	metas := solana.AccountMetaSlice{
		solana.Meta(oracle).SIGNER(),
		solana.Meta(state).WRITE(),
	}
	if mint != nil {
		metas = append(metas, solana.Meta(*mint))
	}
	payload, _ := NewMsgConfirmDestinationChainRequest(data).Pack()
	return solana.NewInstruction(programID, metas, payload)
}

// TokenInstruction retargets a token program instruction at tokenProgram.
func TokenInstruction(tokenProgram solana.PublicKey, ix *token.Instruction) (solana.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(tokenProgram, ix.Accounts(), data), nil
}
