package types

import (
	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

var (
	_ commontypes.Msg = &MsgInitContract{}
	_ commontypes.Msg = &MsgTransferTokenOwnership{}
)

// MsgInitContract binds the port to its nebula, token program and oracles.
type MsgInitContract struct {
	Nebula       solana.PublicKey
	TokenAddress solana.PublicKey
	Oracles      []solana.PublicKey
}

// NewMsgInitContract creates new instance of MsgInitContract
func NewMsgInitContract(nebula, tokenAddress solana.PublicKey, oracles []solana.PublicKey) *MsgInitContract {
	return &MsgInitContract{Nebula: nebula, TokenAddress: tokenAddress, Oracles: oracles}
}

func (msg MsgInitContract) Route() string { return ModuleName }
func (msg MsgInitContract) Type() string  { return "init_contract" }

func (msg *MsgInitContract) ValidateBasic() error {
	if len(msg.Oracles) > 255 {
		return sdkerrors.Wrapf(porttypes.ErrInvalidInstruction, "%d oracles", len(msg.Oracles))
	}
	return nil
}

// Pack omits the oracle section when the list is empty.
func (msg *MsgInitContract) Pack() ([]byte, error) {
	return commontypes.PackInstruction(porttypes.InitContractTag, func(enc *bin.Encoder) error {
		if err := commontypes.EncodePublicKey(enc, msg.Nebula); err != nil {
			return err
		}
		if err := commontypes.EncodePublicKey(enc, msg.TokenAddress); err != nil {
			return err
		}
		if len(msg.Oracles) == 0 {
			return nil
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

// MsgTransferTokenOwnership hands mint authority to a new owner.
type MsgTransferTokenOwnership struct {
	NewAuthority solana.PublicKey
	NewToken     solana.PublicKey
}

func NewMsgTransferTokenOwnership(newAuthority, newToken solana.PublicKey) *MsgTransferTokenOwnership {
	return &MsgTransferTokenOwnership{NewAuthority: newAuthority, NewToken: newToken}
}

func (msg MsgTransferTokenOwnership) Route() string { return ModuleName }
func (msg MsgTransferTokenOwnership) Type() string  { return "transfer_token_ownership" }

func (msg *MsgTransferTokenOwnership) ValidateBasic() error { return nil }

func (msg *MsgTransferTokenOwnership) Pack() ([]byte, error) {
	return commontypes.PackInstruction(porttypes.TransferTokenOwnershipTag, func(enc *bin.Encoder) error {
		if err := commontypes.EncodePublicKey(enc, msg.NewAuthority); err != nil {
			return err
		}
		return commontypes.EncodePublicKey(enc, msg.NewToken)
	})
}

// DecodeMsg unpacks raw instruction data.
func DecodeMsg(input []byte) (commontypes.Msg, error) {
	tag, rest, err := commontypes.SplitTag(input)
	if err != nil {
		return nil, err
	}

	switch tag {
	case porttypes.InitContractTag:
		return decodeInitContract(rest)
	case porttypes.TransferTokenOwnershipTag:
		ranges := commontypes.BuildRangeFromAlloc(porttypes.PublicKeyAlloc, porttypes.PublicKeyAlloc)
		authority, err := commontypes.ReadPublicKey(rest, ranges[0])
		if err != nil {
			return nil, err
		}
		newToken, err := commontypes.ReadPublicKey(rest, ranges[1])
		if err != nil {
			return nil, err
		}
		return NewMsgTransferTokenOwnership(authority, newToken), nil
	case porttypes.CreateTransferUnwrapRequestTag, porttypes.AttachValueTag, porttypes.ConfirmDestinationChainRequestTag:
		return porttypes.DecodeSharedMsg(tag, rest)
	default:
		return nil, sdkerrors.Wrapf(porttypes.ErrInvalidInstruction, "unknown tag %d", tag)
	}
}

func decodeInitContract(rest []byte) (commontypes.Msg, error) {
	ranges := commontypes.BuildRangeFromAlloc(porttypes.PublicKeyAlloc, porttypes.PublicKeyAlloc, porttypes.BFTAlloc)
	nebula, err := commontypes.ReadPublicKey(rest, ranges[0])
	if err != nil {
		return nil, err
	}
	tokenAddress, err := commontypes.ReadPublicKey(rest, ranges[1])
	if err != nil {
		return nil, err
	}
	if len(rest) == ranges[1].End {
		return NewMsgInitContract(nebula, tokenAddress, nil), nil
	}

	bft, err := commontypes.ReadU8(rest, ranges[2])
	if err != nil {
		return nil, err
	}
	oracles, err := commontypes.RetrieveOracles(rest, commontypes.Range{Start: ranges[2].End, End: ranges[2].End + porttypes.PublicKeyAlloc*int(bft)}, bft)
	if err != nil {
		return nil, err
	}
	return NewMsgInitContract(nebula, tokenAddress, oracles), nil
}
