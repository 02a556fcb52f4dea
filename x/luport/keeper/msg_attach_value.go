package keeper

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// AttachValue applies an oracle payload. An unlock action releases tokens
// from the vault to the receiver once per swap id; a confirm action marks a
// pending request as delivered.
//
// The vault follows the standard attach accounts.
func (k Keeper) AttachValue(ctx context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, msg *porttypes.MsgAttachValue) error {
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
	state, err := porttypes.LoadState(stateAccount.Data)
	if err != nil {
		return err
	}
	if err := state.ValidateDataProvider(oracle.Key); err != nil {
		return err
	}

	tokenProgram, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	mint, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	recipient, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	pda, err := iter.NextAccountInfo()
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

	op, err := porttypes.UnpackPortOperation(msg.Data)
	if err != nil {
		return err
	}
	amount, err := state.AttachData(op, recipient.Key, porttypes.ActionUnlock, decimals)
	if err != nil {
		return err
	}

	if op.Action == porttypes.ActionUnlock {
		if err := state.ValidateTokenProgram(tokenProgram.Key); err != nil {
			return err
		}
		vault, err := iter.NextAccountInfo()
		if err != nil {
			return err
		}
		if err := porttypes.ValidateTokenAccount(vault, state.TokenMint); err != nil {
			return err
		}
		seeds, err := commontypes.ValidatePDA(commontypes.GravitySeed, programID, pda.Key)
		if err != nil {
			return err
		}
		unlock, err := porttypes.TokenInstruction(tokenProgram.Key,
			token.NewTransferInstruction(amount, vault.Key, recipient.Key, pda.Key, nil).Build())
		if err != nil {
			return err
		}
		if err := k.Invoker().InvokeSigned(ctx, unlock, accounts, seeds); err != nil {
			return err
		}
	}

	if err := state.Save(stateAccount.Data); err != nil {
		return err
	}

	k.Logger().Debug("value attached", "action", string(op.Action), "swap", op.SwapID, "amount", amount)
	return nil
}
