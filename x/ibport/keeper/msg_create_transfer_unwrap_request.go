package keeper

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/ibport/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// CreateTransferUnwrapRequest burns the holder's tokens and queues an
// outbound request.
func (k Keeper) CreateTransferUnwrapRequest(ctx context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, msg *porttypes.MsgCreateTransferUnwrapRequest) error {
	iter := commontypes.NewAccountIter(accounts)

	holder, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := commontypes.RequireSigner(holder); err != nil {
		return err
	}

	stateAccount, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	state, err := porttypes.LoadState(stateAccount.Data)
	if err != nil {
		return err
	}

	tokenProgram, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := state.ValidateTokenProgram(tokenProgram.Key); err != nil {
		return err
	}

	mint, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	if err := state.ValidateTokenMint(mint.Key); err != nil {
		return err
	}
	decimals, err := porttypes.MintDecimals(mint)
	if err != nil {
		return err
	}

	tokenHolder, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	pda, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	seeds, err := commontypes.ValidatePDA(commontypes.IBPortSeed, programID, pda.Key)
	if err != nil {
		return err
	}

	amount, err := commontypes.UIAmountToAmount(msg.Amount, decimals)
	if err != nil {
		return err
	}
	if err := state.CreateTransferUnwrapRequest(msg.RequestID, amount, tokenHolder.Key, msg.Receiver, types.MaxIdleRequestsCount); err != nil {
		return err
	}

	burn, err := porttypes.TokenInstruction(tokenProgram.Key,
		token.NewBurnInstruction(amount, tokenHolder.Key, mint.Key, pda.Key, nil).Build())
	if err != nil {
		return err
	}
	if err := k.Invoker().InvokeSigned(ctx, burn, accounts, seeds); err != nil {
		return err
	}

	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.Logger().Debug("unwrap request created", "request", msg.RequestID, "amount", amount, "pending", state.Requests.Len())
	return nil
}
