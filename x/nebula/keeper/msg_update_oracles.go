package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

// UpdateOracles rotates the oracle set once bft of the current oracles sign.
func (k Keeper) UpdateOracles(_ context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgUpdateOracles) error {
	iter := commontypes.NewAccountIter(accounts)

	// the leading account is kept for layout compatibility with gravity
	if _, err := iter.NextAccountInfo(); err != nil {
		return err
	}

	stateAccount, state, err := loadState(iter)
	if err != nil {
		return err
	}

	multisig, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := validateOracleSignatures(programID, state, multisig, iter.Remaining()); err != nil {
		return err
	}

	if msg.Round <= state.LastRound {
		return sdkerrors.Wrapf(types.ErrInputRoundMismatch, "round %d, last round %d", msg.Round, state.LastRound)
	}

	if err := commontypes.RotateMultisig(multisig, msg.Oracles, msg.BFT()); err != nil {
		return err
	}

	state.Oracles = msg.Oracles
	state.BFT = msg.BFT()
	state.LastRound = msg.Round
	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.logger.Debug("oracles updated", "state", stateAccount.Key, "round", msg.Round, "oracles", len(msg.Oracles))
	return nil
}
