package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

// Process decodes an instruction and routes it to its handler.
func (k Keeper) Process(ctx context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, input []byte) error {
	msg, err := types.DecodeMsg(input)
	if err != nil {
		return err
	}
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	k.logger.Info("instruction", "type", msg.Type())

	switch msg := msg.(type) {
	case *types.MsgInitContract:
		return k.InitContract(ctx, programID, accounts, msg)
	case *types.MsgUpdateOracles:
		return k.UpdateOracles(ctx, programID, accounts, msg)
	case *types.MsgSendHashValue:
		return k.SendHashValue(ctx, programID, accounts, msg)
	case *types.MsgSendValueToSubs:
		return k.SendValueToSubs(ctx, programID, accounts, msg)
	case *types.MsgSubscribe:
		return k.Subscribe(ctx, programID, accounts, msg)
	case *types.MsgUnsubscribe:
		return k.Unsubscribe(ctx, programID, accounts, msg)
	default:
		return sdkerrors.Wrapf(types.ErrInvalidInstruction, "unhandled %s", msg.Type())
	}
}

// loadState reads the nebula state from the next account.
func loadState(iter *commontypes.AccountIter) (*host.AccountInfo, *types.NebulaState, error) {
	stateAccount, err := iter.NextAccountInfo()
	if err != nil {
		return nil, nil, err
	}
	state, err := types.LoadState(stateAccount.Data)
	if err != nil {
		return nil, nil, err
	}
	return stateAccount, state, nil
}

// validateOracleSignatures checks the first bft signer accounts against the
// bound multisig.
func validateOracleSignatures(programID solana.PublicKey, state *types.NebulaState, multisig *host.AccountInfo, signers []*host.AccountInfo) error {
	if !state.Multisig.Equals(multisig.Key) {
		return sdkerrors.Wrapf(types.ErrInvalidBFTCount, "multisig %s is not bound", multisig.Key)
	}
	if len(signers) < int(state.BFT) {
		return sdkerrors.Wrapf(types.ErrInvalidBFTCount, "%d signer accounts for bft %d", len(signers), state.BFT)
	}
	if err := commontypes.ValidateOwner(programID, state.Multisig, multisig, signers[:state.BFT]); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidBFTCount, err.Error())
	}
	return nil
}
