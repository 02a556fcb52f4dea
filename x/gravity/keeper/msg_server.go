package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/x/gravity/types"
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

	k.logger.Info("instruction", "type", msg.Type())

	switch msg := msg.(type) {
	case *types.MsgInitContract:
		return k.InitContract(ctx, programID, accounts, msg)
	case *types.MsgUpdateConsuls:
		return k.UpdateConsuls(ctx, programID, accounts, msg)
	default:
		return sdkerrors.Wrapf(types.ErrInvalidInstruction, "unhandled %s", msg.Type())
	}
}
