package keeper

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/ibport/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// InitContract creates the port state. An optional third account binds the
// token mint.
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
	if err := commontypes.ValidateContractEmptiness(commontypes.StatePrefix(stateAccount.Data, porttypes.EmptinessPrefix)); err != nil {
		return err
	}

	state := porttypes.NewPortState()
	state.IsInitialized = true
	state.Nebula = msg.Nebula
	state.TokenAddress = msg.TokenAddress
	state.Oracles = msg.Oracles
	state.Initializer = initializer.Key
	if rest := iter.Remaining(); len(rest) > 0 {
		state.TokenMint = rest[0].Key
	}

	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.Logger().Debug("ib port initialized", "state", stateAccount.Key, "mint", state.TokenMint, "oracles", len(state.Oracles))
	return nil
}
