package types

import (
	"bytes"

	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

// PortOperationLen is the minimum size of an attached payload.
const PortOperationLen = 1 + SwapIDAlloc + AmountAlloc + ForeignAddressAlloc

// PortOperation is the payload an oracle attaches to a port:
// action | swap_id | amount (f64 LE, UI units) | receiver.
type PortOperation struct {
	Action   byte
	SwapID   SwapID
	Amount   float64
	Receiver ForeignAddress
}

// NewPortOperation creates new instance of PortOperation
func NewPortOperation(action byte, swapID SwapID, amount float64, receiver ForeignAddress) *PortOperation {
	return &PortOperation{Action: action, SwapID: swapID, Amount: amount, Receiver: receiver}
}

// UnpackPortOperation decodes a payload. Trailing bytes are ignored.
func UnpackPortOperation(data []byte) (*PortOperation, error) {
	if len(data) < PortOperationLen {
		return nil, sdkerrors.Wrapf(ErrByteArrayUnpackFailed, "payload of %d bytes", len(data))
	}
	dec := bin.NewBinDecoder(data)
	op := new(PortOperation)

	var err error
	if op.Action, err = dec.ReadUint8(); err != nil {
		return nil, sdkerrors.Wrap(ErrByteArrayUnpackFailed, err.Error())
	}
	if op.SwapID, err = commontypes.DecodeID(dec); err != nil {
		return nil, sdkerrors.Wrap(ErrByteArrayUnpackFailed, err.Error())
	}
	if op.Amount, err = dec.ReadFloat64(bin.LE); err != nil {
		return nil, sdkerrors.Wrap(ErrByteArrayUnpackFailed, err.Error())
	}
	if op.Receiver, err = commontypes.DecodeForeignAddress(dec); err != nil {
		return nil, sdkerrors.Wrap(ErrByteArrayUnpackFailed, err.Error())
	}
	return op, nil
}

// Pack encodes the payload.
func (op *PortOperation) Pack() []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	// writes into a bytes.Buffer with the bin encoding cannot fail
	_ = enc.WriteUint8(op.Action)
	_ = commontypes.EncodeID(enc, op.SwapID)
	_ = enc.WriteFloat64(op.Amount, bin.LE)
	_ = commontypes.EncodeForeignAddress(enc, op.Receiver)
	return buf.Bytes()
}

// BaseAmount converts the UI amount into base units of a mint with decimals.
func (op *PortOperation) BaseAmount(decimals uint8) (uint64, error) {
	return commontypes.UIAmountToAmount(op.Amount, decimals)
}
