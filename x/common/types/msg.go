package types

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
)

// Msg is a decoded program instruction.
type Msg interface {
	// Route returns the name of the program handling the message.
	Route() string
	// Type returns the instruction name.
	Type() string
	ValidateBasic() error
	// Pack encodes the message with its tag byte.
	Pack() ([]byte, error)
}

// PackInstruction writes tag followed by whatever body writes into enc.
func PackInstruction(tag uint8, body func(enc *bin.Encoder) error) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	if err := enc.WriteUint8(tag); err != nil {
		return nil, err
	}
	if err := body(enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SplitTag separates the instruction tag from its body.
func SplitTag(input []byte) (uint8, []byte, error) {
	if len(input) == 0 {
		return 0, nil, ErrInvalidInstruction.Wrap("empty instruction data")
	}
	return input[0], input[1:], nil
}
