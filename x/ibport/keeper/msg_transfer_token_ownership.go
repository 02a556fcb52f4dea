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

// TransferTokenOwnership moves mint authority from the port to NewAuthority
// and optionally rebinds the token program.
func (k Keeper) TransferTokenOwnership(ctx context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, msg *types.MsgTransferTokenOwnership) error {
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

	mint, err := iter.NextAccountInfo()
	if err != nil {
		return err
	}
	currentOwner, err := iter.NextAccountInfo()
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

	seeds, err := commontypes.ValidatePDA(commontypes.GravitySeed, programID, currentOwner.Key)
	if err != nil {
		return err
	}
	setAuthority, err := porttypes.TokenInstruction(tokenProgram.Key,
		token.NewSetAuthorityInstruction(token.AuthorityMintTokens, msg.NewAuthority, mint.Key, currentOwner.Key, nil).Build())
	if err != nil {
		return err
	}
	if err := k.Invoker().InvokeSigned(ctx, setAuthority, accounts, seeds); err != nil {
		return err
	}

	if !msg.NewToken.IsZero() {
		state.TokenAddress = msg.NewToken
		if err := state.Save(stateAccount.Data); err != nil {
			return err
		}
	}

	k.Logger().Debug("token ownership transferred", "mint", mint.Key, "authority", msg.NewAuthority)
	return nil
}
