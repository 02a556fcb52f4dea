package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/x/luport/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// Process decodes an instruction and routes it to its handler.
func (k Keeper) Process(ctx context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, input []byte) error {
	msg, err := types.DecodeMsg(input)
	if err != nil {
		return err
	}
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	k.Logger().Info("instruction", "type", msg.Type())

	switch msg := msg.(type) {
	case *types.MsgInitContract:
		return k.InitContract(ctx, programID, accounts, msg)
	case *porttypes.MsgCreateTransferUnwrapRequest:
		return k.CreateTransferUnwrapRequest(ctx, programID, accounts, msg)
	case *porttypes.MsgAttachValue:
		return k.AttachValue(ctx, programID, accounts, msg)
	case *porttypes.MsgConfirmDestinationChainRequest:
		return k.ConfirmDestinationChainRequest(ctx, programID, accounts, msg)
	default:
		return sdkerrors.Wrapf(porttypes.ErrInvalidInstruction, "unhandled %s", msg.Type())
	}
}
