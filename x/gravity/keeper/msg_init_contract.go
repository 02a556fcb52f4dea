package keeper

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/gravity/types"
)

// InitContract stores the first consul set and binds its multisig.
func (k Keeper) InitContract(_ context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgInitContract) error {
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
	if err := commontypes.ValidateContractEmptiness(commontypes.StatePrefix(stateAccount.Data, types.StateLen)); err != nil {
		return err
	}

	multisig, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := commontypes.InitMultisig(multisig, msg.Consuls, msg.BFT); err != nil {
		return err
	}

	state := &types.GravityState{
		Initializer: initializer.Key,
		BFT:         msg.BFT,
		Consuls:     msg.Consuls,
		LastRound:   msg.CurrentRound,
		Multisig:    multisig.Key,
	}
	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.logger.Debug("gravity contract initialized", "state", stateAccount.Key, "bft", msg.BFT, "round", msg.CurrentRound)
	return nil
}
