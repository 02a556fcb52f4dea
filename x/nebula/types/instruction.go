package types

import (
	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

func newInstruction(programID solana.PublicKey, msg commontypes.Msg, metas solana.AccountMetaSlice) (*solana.GenericInstruction, error) {
	data, err := msg.Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, metas, data), nil
}

func signerMetas(metas solana.AccountMetaSlice, signers []solana.PublicKey) solana.AccountMetaSlice {
	for _, s := range signers {
		metas = append(metas, solana.Meta(s).SIGNER())
	}
	return metas
}

// NewInitContractInstruction builds an InitContract instruction.
func NewInitContractInstruction(programID, initializer, state, multisig solana.PublicKey, msg *MsgInitContract) (*solana.GenericInstruction, error) {
	return newInstruction(programID, msg, solana.AccountMetaSlice{
		solana.Meta(initializer).SIGNER(),
		solana.Meta(state).WRITE(),
		solana.Meta(multisig).WRITE(),
	})
}

// NewUpdateOraclesInstruction builds an UpdateOracles instruction signed by
// the current oracles.
func NewUpdateOraclesInstruction(programID, initializer, state, multisig solana.PublicKey, oracles []solana.PublicKey, msg *MsgUpdateOracles) (*solana.GenericInstruction, error) {
	return newInstruction(programID, msg, signerMetas(solana.AccountMetaSlice{
		solana.Meta(initializer),
		solana.Meta(state).WRITE(),
		solana.Meta(multisig).WRITE(),
	}, oracles))
}

// NewSendHashValueInstruction builds a pulse commit. oracle is expected to be
// among oracles.
func NewSendHashValueInstruction(programID, oracle, state, multisig solana.PublicKey, oracles []solana.PublicKey, msg *MsgSendHashValue) (*solana.GenericInstruction, error) {
	return newInstruction(programID, msg, signerMetas(solana.AccountMetaSlice{
		solana.Meta(oracle).SIGNER(),
		solana.Meta(state).WRITE(),
		solana.Meta(multisig),
	}, oracles))
}

// DispatchAccounts are the accounts of the subscriber a value is sent to.
type DispatchAccounts struct {
	TokenProgram      solana.PublicKey
	SubscriberProgram solana.PublicKey
	SubscriberData    solana.PublicKey
	Mint              solana.PublicKey
	Recipient         solana.PublicKey
	PDA               solana.PublicKey
	// Passthrough accounts are forwarded to the subscriber unchanged.
	Passthrough []*solana.AccountMeta
}

// NewSendValueToSubsInstruction builds a value dispatch to one subscriber.
func NewSendValueToSubsInstruction(programID, oracle, state, multisig solana.PublicKey, dispatch DispatchAccounts, msg *MsgSendValueToSubs) (*solana.GenericInstruction, error) {
	metas := solana.AccountMetaSlice{
		solana.Meta(oracle).SIGNER(),
		solana.Meta(state).WRITE(),
		solana.Meta(multisig),
		solana.Meta(dispatch.TokenProgram),
		solana.Meta(dispatch.SubscriberProgram),
		solana.Meta(dispatch.SubscriberData).WRITE(),
		solana.Meta(dispatch.Mint).WRITE(),
		solana.Meta(dispatch.Recipient).WRITE(),
		solana.Meta(dispatch.PDA),
	}
	metas = append(metas, dispatch.Passthrough...)
	return newInstruction(programID, msg, metas)
}

// NewSubscribeInstruction builds a Subscribe instruction.
func NewSubscribeInstruction(programID, sender, state solana.PublicKey, msg *MsgSubscribe) (*solana.GenericInstruction, error) {
	return newInstruction(programID, msg, solana.AccountMetaSlice{
		solana.Meta(sender).SIGNER(),
		solana.Meta(state).WRITE(),
	})
}

// NewUnsubscribeInstruction builds an Unsubscribe instruction.
func NewUnsubscribeInstruction(programID, sender, state solana.PublicKey, msg *MsgUnsubscribe) (*solana.GenericInstruction, error) {
	return newInstruction(programID, msg, solana.AccountMetaSlice{
		solana.Meta(sender).SIGNER(),
		solana.Meta(state).WRITE(),
	})
}
