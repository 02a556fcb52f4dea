package types

import (
	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

var (
	_ commontypes.Msg = &MsgCreateTransferUnwrapRequest{}
	_ commontypes.Msg = &MsgAttachValue{}
	_ commontypes.Msg = &MsgConfirmDestinationChainRequest{}
)

// MsgCreateTransferUnwrapRequest moves tokens out of the port towards a
// foreign receiver.
type MsgCreateTransferUnwrapRequest struct {
	RequestID SwapID
	Amount    float64
	Receiver  ForeignAddress
}

// NewMsgCreateTransferUnwrapRequest creates new instance of MsgCreateTransferUnwrapRequest
func NewMsgCreateTransferUnwrapRequest(id SwapID, amount float64, receiver ForeignAddress) *MsgCreateTransferUnwrapRequest {
	return &MsgCreateTransferUnwrapRequest{RequestID: id, Amount: amount, Receiver: receiver}
}

func (msg MsgCreateTransferUnwrapRequest) Route() string { return ModuleName }
func (msg MsgCreateTransferUnwrapRequest) Type() string  { return "create_transfer_unwrap_request" }

func (msg *MsgCreateTransferUnwrapRequest) ValidateBasic() error {
	_, err := commontypes.UIAmountToAmount(msg.Amount, 0)
	return err
}

func (msg *MsgCreateTransferUnwrapRequest) Pack() ([]byte, error) {
	return commontypes.PackInstruction(CreateTransferUnwrapRequestTag, func(enc *bin.Encoder) error {
		if err := enc.WriteFloat64(msg.Amount, bin.LE); err != nil {
			return err
		}
		if err := commontypes.EncodeForeignAddress(enc, msg.Receiver); err != nil {
			return err
		}
		return commontypes.EncodeID(enc, msg.RequestID)
	})
}

// MsgAttachValue carries an oracle payload into the port.
type MsgAttachValue struct {
	Data []byte
}

func NewMsgAttachValue(data []byte) *MsgAttachValue {
	return &MsgAttachValue{Data: data}
}

func (msg MsgAttachValue) Route() string { return ModuleName }
func (msg MsgAttachValue) Type() string  { return "attach_value" }

func (msg *MsgAttachValue) ValidateBasic() error {
	return validatePayload(msg.Data)
}

func (msg *MsgAttachValue) Pack() ([]byte, error) {
	return append([]byte{AttachValueTag}, msg.Data...), nil
}

// MsgConfirmDestinationChainRequest retires a delivered outbound request.
type MsgConfirmDestinationChainRequest struct {
	Data []byte
}

func NewMsgConfirmDestinationChainRequest(data []byte) *MsgConfirmDestinationChainRequest {
	return &MsgConfirmDestinationChainRequest{Data: data}
}

func (msg MsgConfirmDestinationChainRequest) Route() string { return ModuleName }
func (msg MsgConfirmDestinationChainRequest) Type() string {
	return "confirm_destination_chain_request"
}

func (msg *MsgConfirmDestinationChainRequest) ValidateBasic() error {
	return validatePayload(msg.Data)
}

func (msg *MsgConfirmDestinationChainRequest) Pack() ([]byte, error) {
	return append([]byte{ConfirmDestinationChainRequestTag}, msg.Data...), nil
}

func validatePayload(data []byte) error {
	if len(data) < PortOperationLen {
		return sdkerrors.Wrapf(ErrByteArrayUnpackFailed, "payload of %d bytes", len(data))
	}
	return nil
}

// DecodeSharedMsg unpacks the instructions both ports share.
func DecodeSharedMsg(tag uint8, rest []byte) (commontypes.Msg, error) {
	switch tag {
	case CreateTransferUnwrapRequestTag:
		ranges := commontypes.BuildRangeFromAlloc(AmountAlloc, ForeignAddressAlloc, SwapIDAlloc)
		amount, err := commontypes.ReadF64LE(rest, ranges[0])
		if err != nil {
			return nil, err
		}
		receiver, err := commontypes.ReadForeignAddress(rest, ranges[1])
		if err != nil {
			return nil, err
		}
		id, err := commontypes.ReadSwapID(rest, ranges[2])
		if err != nil {
			return nil, err
		}
		return NewMsgCreateTransferUnwrapRequest(id, amount, receiver), nil
	case AttachValueTag:
		return NewMsgAttachValue(append([]byte(nil), rest...)), nil
	case ConfirmDestinationChainRequestTag:
		return NewMsgConfirmDestinationChainRequest(append([]byte(nil), rest...)), nil
	default:
		return nil, sdkerrors.Wrapf(ErrInvalidInstructionIndex, "tag %d", tag)
	}
}
