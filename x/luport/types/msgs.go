package types

import (
	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

var _ commontypes.Msg = &MsgInitContract{}

// MsgInitContract binds the port to its nebula, token program, mint and
// oracles.
type MsgInitContract struct {
	Nebula       solana.PublicKey
	TokenAddress solana.PublicKey
	TokenMint    solana.PublicKey
	Oracles      []solana.PublicKey
}

// NewMsgInitContract creates new instance of MsgInitContract
func NewMsgInitContract(nebula, tokenAddress, tokenMint solana.PublicKey, oracles []solana.PublicKey) *MsgInitContract {
	return &MsgInitContract{Nebula: nebula, TokenAddress: tokenAddress, TokenMint: tokenMint, Oracles: oracles}
}

func (msg MsgInitContract) Route() string { return ModuleName }
func (msg MsgInitContract) Type() string  { return "init_contract" }

func (msg *MsgInitContract) ValidateBasic() error {
	if msg.TokenMint.IsZero() {
		return sdkerrors.Wrap(porttypes.ErrInvalidTokenMint, "token mint is required")
	}
	if len(msg.Oracles) > 255 {
		return sdkerrors.Wrapf(porttypes.ErrInvalidInstruction, "%d oracles", len(msg.Oracles))
	}
	return nil
}

func (msg *MsgInitContract) Pack() ([]byte, error) {
	return commontypes.PackInstruction(porttypes.InitContractTag, func(enc *bin.Encoder) error {
		for _, key := range []solana.PublicKey{msg.Nebula, msg.TokenAddress, msg.TokenMint} {
			if err := commontypes.EncodePublicKey(enc, key); err != nil {
				return err
			}
		}
		if err := enc.WriteUint8(uint8(len(msg.Oracles))); err != nil {
			return err
		}
		for _, o := range msg.Oracles {
			if err := commontypes.EncodePublicKey(enc, o); err != nil {
				return err
			}
		}
		return nil
	})
}

// DecodeMsg unpacks raw instruction data. LU ports have no ownership
// transfer.
func DecodeMsg(input []byte) (commontypes.Msg, error) {
	tag, rest, err := commontypes.SplitTag(input)
	if err != nil {
		return nil, err
	}

	switch tag {
	case porttypes.InitContractTag:
		return decodeInitContract(rest)
	case porttypes.CreateTransferUnwrapRequestTag, porttypes.AttachValueTag, porttypes.ConfirmDestinationChainRequestTag:
		return porttypes.DecodeSharedMsg(tag, rest)
	default:
		return nil, sdkerrors.Wrapf(porttypes.ErrInvalidInstruction, "unknown tag %d", tag)
	}
}

func decodeInitContract(rest []byte) (commontypes.Msg, error) {
	ranges := commontypes.BuildRangeFromAlloc(porttypes.PublicKeyAlloc, porttypes.PublicKeyAlloc, porttypes.PublicKeyAlloc, porttypes.BFTAlloc)
	keys := make([]solana.PublicKey, 3)
	for i := range keys {
		key, err := commontypes.ReadPublicKey(rest, ranges[i])
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}

	bft, err := commontypes.ReadU8(rest, ranges[3])
	if err != nil {
		return nil, err
	}
	oracles, err := commontypes.RetrieveOracles(rest, commontypes.Range{Start: ranges[3].End, End: ranges[3].End + porttypes.PublicKeyAlloc*int(bft)}, bft)
	if err != nil {
		return nil, err
	}
	return NewMsgInitContract(keys[0], keys[1], keys[2], oracles), nil
}
