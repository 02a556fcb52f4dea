package types

import (
	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

const (
	BFTAlloc       = 1
	RoundAlloc     = 8
	PublicKeyAlloc = solana.PublicKeyLength
)

var (
	_ commontypes.Msg = &MsgInitContract{}
	_ commontypes.Msg = &MsgUpdateConsuls{}
)

// MsgInitContract deploys the consul set.
type MsgInitContract struct {
	Consuls      []solana.PublicKey
	CurrentRound uint64
	BFT          uint8
}

// NewMsgInitContract creates new instance of MsgInitContract
func NewMsgInitContract(consuls []solana.PublicKey, round uint64, bft uint8) *MsgInitContract {
	return &MsgInitContract{Consuls: consuls, CurrentRound: round, BFT: bft}
}

// Route returns the name of the module
func (msg MsgInitContract) Route() string { return ModuleName }

// Type returns the the action
func (msg MsgInitContract) Type() string { return "init_contract" }

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgInitContract) ValidateBasic() error {
	return validateConsuls(msg.Consuls, msg.BFT)
}

func (msg *MsgInitContract) Pack() ([]byte, error) {
	return packConsuls(InitContractTag, msg.BFT, msg.CurrentRound, msg.Consuls)
}

// MsgUpdateConsuls replaces the consul set for a later round.
type MsgUpdateConsuls struct {
	Consuls      []solana.PublicKey
	CurrentRound uint64
}

// NewMsgUpdateConsuls creates new instance of MsgUpdateConsuls
func NewMsgUpdateConsuls(consuls []solana.PublicKey, round uint64) *MsgUpdateConsuls {
	return &MsgUpdateConsuls{Consuls: consuls, CurrentRound: round}
}

// Route returns the name of the module
func (msg MsgUpdateConsuls) Route() string { return ModuleName }

// Type returns the the action
func (msg MsgUpdateConsuls) Type() string { return "update_consuls" }

// BFT is the size of the new consul set.
func (msg *MsgUpdateConsuls) BFT() uint8 { return uint8(len(msg.Consuls)) }

// ValidateBasic does a sanity check on the provided data.
func (msg *MsgUpdateConsuls) ValidateBasic() error {
	if len(msg.Consuls) > MaxConsuls {
		return sdkerrors.Wrapf(ErrInvalidBFTCount, "%d consuls, at most %d", len(msg.Consuls), MaxConsuls)
	}
	return validateConsuls(msg.Consuls, msg.BFT())
}

func (msg *MsgUpdateConsuls) Pack() ([]byte, error) {
	return packConsuls(UpdateConsulsTag, msg.BFT(), msg.CurrentRound, msg.Consuls)
}

func validateConsuls(consuls []solana.PublicKey, bft uint8) error {
	if bft == 0 || int(bft) > MaxConsuls {
		return sdkerrors.Wrapf(ErrInvalidBFTCount, "bft %d outside 1..%d", bft, MaxConsuls)
	}
	if len(consuls) != int(bft) {
		return sdkerrors.Wrapf(ErrInvalidBFTCount, "%d consuls for bft %d", len(consuls), bft)
	}
	return nil
}

func packConsuls(tag, bft uint8, round uint64, consuls []solana.PublicKey) ([]byte, error) {
	return commontypes.PackInstruction(tag, func(enc *bin.Encoder) error {
		if err := enc.WriteUint8(bft); err != nil {
			return err
		}
		if err := enc.WriteUint64(round, bin.LE); err != nil {
			return err
		}
		for _, c := range consuls {
			if err := commontypes.EncodePublicKey(enc, c); err != nil {
				return err
			}
		}
		return nil
	})
}

// AllocationByTag returns the field widths of an instruction body.
func AllocationByTag(tag uint8, bft uint8) ([]int, error) {
	switch tag {
	case InitContractTag, UpdateConsulsTag:
		return []int{BFTAlloc, RoundAlloc, PublicKeyAlloc * int(bft)}, nil
	default:
		return nil, sdkerrors.Wrapf(ErrInvalidInstructionIndex, "tag %d", tag)
	}
}

// DecodeMsg unpacks raw instruction data.
func DecodeMsg(input []byte) (commontypes.Msg, error) {
	tag, rest, err := commontypes.SplitTag(input)
	if err != nil {
		return nil, err
	}
	if tag != InitContractTag && tag != UpdateConsulsTag {
		return nil, sdkerrors.Wrapf(ErrInvalidInstruction, "unknown tag %d", tag)
	}

	bft, err := commontypes.ReadU8(rest, commontypes.Range{Start: 0, End: BFTAlloc})
	if err != nil {
		return nil, err
	}
	allocs, err := AllocationByTag(tag, bft)
	if err != nil {
		return nil, err
	}
	ranges := commontypes.BuildRangeFromAlloc(allocs...)

	round, err := commontypes.ReadU64LE(rest, ranges[1])
	if err != nil {
		return nil, err
	}
	consuls, err := commontypes.RetrieveOracles(rest, ranges[2], bft)
	if err != nil {
		return nil, err
	}

	if tag == InitContractTag {
		return NewMsgInitContract(consuls, round, bft), nil
	}
	return NewMsgUpdateConsuls(consuls, round), nil
}
