package keeper

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// ConfirmDestinationChainRequest retires a delivered outbound request. An
// optional third account supplies the mint the payload amount is scaled by.
func (k Keeper) ConfirmDestinationChainRequest(_ context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgConfirmDestinationChainRequest) error {
	iter := commontypes.NewAccountIter(accounts)

	oracle, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := commontypes.RequireSigner(oracle); err != nil {
		return err
	}

	stateAccount, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	state, err := types.LoadState(stateAccount.Data)
	if err != nil {
		return err
	}
	if err := state.ValidateDataProvider(oracle.Key); err != nil {
		return err
	}

	decimals := types.DefaultDecimals
	if rest := iter.Remaining(); len(rest) > 0 {
		if err := state.ValidateTokenMint(rest[0].Key); err != nil {
			return err
		}
		if decimals, err = types.MintDecimals(rest[0]); err != nil {
			return err
		}
	}

	op, err := types.UnpackPortOperation(msg.Data)
	if err != nil {
		return err
	}
	if err := state.DropProcessedRequest(op, decimals); err != nil {
		return err
	}

	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.logger.Debug("request confirmed", "swap", op.SwapID, "pending", state.Requests.Len())
	return nil
}
