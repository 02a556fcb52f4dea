package keeper

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

// InitContract stores the oracle set and data type and binds the multisig.
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
	if err := commontypes.InitMultisig(multisig, msg.Oracles, msg.BFT); err != nil {
		return err
	}

	state := types.NewNebulaState()
	state.Oracles = msg.Oracles
	state.BFT = msg.BFT
	state.Multisig = multisig.Key
	state.GravityContract = msg.GravityContract
	state.DataType = msg.DataType
	state.IsInitialized = true
	state.Initializer = initializer.Key
	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.logger.Debug("nebula initialized", "state", stateAccount.Key, "data_type", msg.DataType.String(), "bft", msg.BFT)
	return nil
}
