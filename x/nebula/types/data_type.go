package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// DataType is the kind of value a nebula publishes.
type DataType uint8

const (
	DataTypeInt64 DataType = iota
	DataTypeString
	DataTypeBytes
)

func (d DataType) String() string {
	switch d {
	case DataTypeInt64:
		return "int64"
	case DataTypeString:
		return "string"
	case DataTypeBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Validate rejects discriminants outside the enum.
func (d DataType) Validate() error {
	if d > DataTypeBytes {
		return sdkerrors.Wrapf(ErrInvalidDataType, "data type %d", d)
	}
	return nil
}

// ParseDataType maps a name back to its DataType.
func ParseDataType(s string) (DataType, error) {
	for d := DataTypeInt64; d <= DataTypeBytes; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, sdkerrors.Wrapf(ErrInvalidDataType, "data type %q", s)
}
