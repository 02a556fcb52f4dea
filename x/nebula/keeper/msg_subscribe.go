package keeper

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

// Subscribe registers the caller's subscription.
func (k Keeper) Subscribe(_ context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgSubscribe) error {
	iter := commontypes.NewAccountIter(accounts)

	sender, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := commontypes.RequireSigner(sender); err != nil {
		return err
	}

	stateAccount, state, err := loadState(iter)
	if err != nil {
		return err
	}

	if err := state.Subscribe(msg.SubscriptionID, types.Subscription{
		Sender:           sender.Key,
		ContractAddress:  msg.Address,
		MinConfirmations: msg.MinConfirmations,
		Reward:           msg.Reward,
	}); err != nil {
		return err
	}
	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.logger.Debug("subscribed", "subscription", msg.SubscriptionID, "address", msg.Address)
	return nil
}

// Unsubscribe always fails.
func (k Keeper) Unsubscribe(_ context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgUnsubscribe) error {
	iter := commontypes.NewAccountIter(accounts)

	sender, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := commontypes.RequireSigner(sender); err != nil {
		return err
	}

	_, state, err := loadState(iter)
	if err != nil {
		return err
	}
	return state.Unsubscribe(msg.SubscriptionID)
}
