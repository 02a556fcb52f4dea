package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// SendValueToSubs releases the value behind the previous pulse to one
// subscriber by invoking its AttachValue.
//
// Accounts: oracle, state, multisig, token program, subscriber program,
// subscriber data, mint, recipient, subscriber pda, then passthrough accounts.
func (k Keeper) SendValueToSubs(ctx context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgSendValueToSubs) error {
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

	multisig, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := validateDataProvider(state, multisig, oracle.Key); err != nil {
		return err
	}

	sub, err := state.SubscriptionForPulse(msg.PulseID, msg.SubscriptionID)
	if err != nil {
		return err
	}
	if !state.HasPulse(msg.DataValue) {
		return sdkerrors.Wrapf(types.ErrPulseIDHasNotBeenPersisted, "pulse %d", msg.PulseID)
	}

	dispatch := make([]*host.AccountInfo, 6)
	for i := range dispatch {
		if dispatch[i], err = iter.NextAccountInfo(); err != nil {
			return err
		}
	}
	tokenProgram, subscriberProgram, subscriberData := dispatch[0], dispatch[1], dispatch[2]
	mint, recipient, pda := dispatch[3], dispatch[4], dispatch[5]

	if !subscriberProgram.Key.Equals(sub.ContractAddress) {
		return sdkerrors.Wrapf(types.ErrInvalidSubscriptionProgramID, "program %s, subscribed %s", subscriberProgram.Key, sub.ContractAddress)
	}
	authority, _, err := commontypes.FindProgramAddress(commontypes.GravitySeed, sub.ContractAddress)
	if err != nil {
		return err
	}
	if !authority.Equals(pda.Key) {
		return sdkerrors.Wrapf(types.ErrInvalidSubscriptionProgramID, "pda %s, expected %s", pda.Key, authority)
	}

	passthrough := host.Metas(iter.Remaining())
	ix := porttypes.NewAttachValueInstruction(sub.ContractAddress, msg.DataValue[:],
		oracle.Key, subscriberData.Key, tokenProgram.Key, mint.Key, recipient.Key, pda.Key,
		nil, passthrough...)
	// the oracle signature carries over to the subscriber; the nebula signs nothing
	if err := k.invoker.InvokeSigned(ctx, ix, accounts); err != nil {
		return err
	}

	if err := state.DropProcessedPulse(msg.DataValue); err != nil {
		return err
	}
	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.logger.Debug("value dispatched", "pulse", msg.PulseID, "subscriber", sub.ContractAddress)
	return nil
}

// validateDataProvider requires key to be a signer of the bound multisig.
func validateDataProvider(state *types.NebulaState, multisig *host.AccountInfo, key solana.PublicKey) error {
	if !state.Multisig.Equals(multisig.Key) {
		return sdkerrors.Wrapf(types.ErrDataProviderForSendValueToSubsIsInvalid, "multisig %s is not bound", multisig.Key)
	}
	ms, err := commontypes.UnpackMultisig(multisig.Data)
	if err != nil {
		return sdkerrors.Wrap(types.ErrDataProviderForSendValueToSubsIsInvalid, err.Error())
	}
	return commontypes.ValidatePubkeyMatch(ms.Signers[:ms.N], key, types.ErrDataProviderForSendValueToSubsIsInvalid)
}
