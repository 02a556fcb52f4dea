package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

// SendHashValue commits a data hash as the next pulse.
func (k Keeper) SendHashValue(_ context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgSendHashValue) error {
	iter := commontypes.NewAccountIter(accounts)

	oracle, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := commontypes.RequireSigner(oracle); err != nil {
		return err
	}

	stateAccount, state, err := loadState(iter)
	if err != nil {
		return err
	}
	if !state.IsOracle(oracle.Key) {
		return sdkerrors.Wrapf(types.ErrDataProviderForSendValueToSubsIsInvalid, "%s is not an oracle", oracle.Key)
	}

	multisig, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := validateOracleSignatures(programID, state, multisig, iter.Remaining()); err != nil {
		return err
	}

	pulseID, evicted, err := state.AddPulse(msg.DataHash)
	if err != nil {
		return err
	}
	if len(evicted) > 0 {
		k.logger.Info("undelivered pulses evicted", "pulses", evicted)
	}
	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.logger.Debug("pulse committed", "pulse", pulseID, "oracle", oracle.Key)
	return nil
}
