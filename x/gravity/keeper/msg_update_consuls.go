package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/gravity/types"
)

// UpdateConsuls replaces the consul set once bft of the current consuls sign.
func (k Keeper) UpdateConsuls(_ context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgUpdateConsuls) error {
	iter := commontypes.NewAccountIter(accounts)

	initializer, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := commontypes.RequireSigner(initializer); err != nil {
		return err
	}

	stateAccount, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := commontypes.ValidateContractNonEmptiness(commontypes.StatePrefix(stateAccount.Data, types.StateLen)); err != nil {
		return err
	}
	state, err := types.LoadState(stateAccount.Data)
	if err != nil {
		return err
	}

	multisig, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := validateConsulSignatures(programID, state, multisig, iter.Remaining()); err != nil {
		return err
	}

	if msg.CurrentRound <= state.LastRound {
		return sdkerrors.Wrapf(types.ErrInputRoundMismatch, "round %d, last round %d", msg.CurrentRound, state.LastRound)
	}

	if err := commontypes.RotateMultisig(multisig, msg.Consuls, msg.BFT()); err != nil {
		return err
	}

	state.BFT = msg.BFT()
	state.Consuls = msg.Consuls
	state.LastRound = msg.CurrentRound
	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.logger.Debug("consuls updated", "state", stateAccount.Key, "round", msg.CurrentRound)
	return nil
}

// validateConsulSignatures checks the first bft signer accounts against the
// bound multisig.
func validateConsulSignatures(programID solana.PublicKey, state *types.GravityState, multisig *host.AccountInfo, signers []*host.AccountInfo) error {
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
