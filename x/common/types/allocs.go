package types

import (
	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the width of the range.
func (r Range) Len() int { return r.End - r.Start }

// BuildRangeFromAlloc turns field widths into consecutive ranges starting at 0.
func BuildRangeFromAlloc(allocs ...int) []Range {
	ranges := make([]Range, 0, len(allocs))
	start := 0
	for _, width := range allocs {
		ranges = append(ranges, Range{Start: start, End: start + width})
		start += width
	}
	return ranges
}

// ExtractFromRange applies f to input[r.Start:r.End].
func ExtractFromRange[T any](input []byte, r Range, f func([]byte) (T, error)) (T, error) {
	var zero T
	if r.Start < 0 || r.End < r.Start || r.End > len(input) {
		return zero, sdkerrors.Wrapf(ErrInvalidInstruction, "range [%d,%d) outside input of %d bytes", r.Start, r.End, len(input))
	}
	v, err := f(input[r.Start:r.End])
	if err != nil {
		return zero, sdkerrors.Wrap(ErrInvalidInstruction, err.Error())
	}
	return v, nil
}

// ReadU8 reads a single byte field.
func ReadU8(input []byte, r Range) (uint8, error) {
	return ExtractFromRange(input, r, func(b []byte) (uint8, error) {
		return bin.NewBinDecoder(b).ReadUint8()
	})
}

// ReadU64LE reads a little-endian u64 field.
func ReadU64LE(input []byte, r Range) (uint64, error) {
	return ExtractFromRange(input, r, func(b []byte) (uint64, error) {
		return bin.NewBinDecoder(b).ReadUint64(bin.LE)
	})
}

// ReadF64LE reads a little-endian f64 field.
func ReadF64LE(input []byte, r Range) (float64, error) {
	return ExtractFromRange(input, r, func(b []byte) (float64, error) {
		return bin.NewBinDecoder(b).ReadFloat64(bin.LE)
	})
}

// ReadBytes copies a fixed width blob.
func ReadBytes(input []byte, r Range) ([]byte, error) {
	return ExtractFromRange(input, r, func(b []byte) ([]byte, error) {
		return append([]byte(nil), b...), nil
	})
}

// ReadPublicKey reads a 32 byte public key.
func ReadPublicKey(input []byte, r Range) (solana.PublicKey, error) {
	return ExtractFromRange(input, r, func(b []byte) (solana.PublicKey, error) {
		raw, err := bin.NewBinDecoder(b).ReadNBytes(solana.PublicKeyLength)
		if err != nil {
			return solana.PublicKey{}, err
		}
		return solana.PublicKeyFromBytes(raw), nil
	})
}

// ReadSwapID reads a 16 byte identifier.
func ReadSwapID(input []byte, r Range) (SwapID, error) {
	return ExtractFromRange(input, r, func(b []byte) (SwapID, error) {
		var id SwapID
		raw, err := bin.NewBinDecoder(b).ReadNBytes(len(id))
		if err != nil {
			return id, err
		}
		copy(id[:], raw)
		return id, nil
	})
}

// ReadForeignAddress reads a 32 byte counterparty address.
func ReadForeignAddress(input []byte, r Range) (ForeignAddress, error) {
	return ExtractFromRange(input, r, func(b []byte) (ForeignAddress, error) {
		var addr ForeignAddress
		raw, err := bin.NewBinDecoder(b).ReadNBytes(len(addr))
		if err != nil {
			return addr, err
		}
		copy(addr[:], raw)
		return addr, nil
	})
}

// RetrieveOracles reads bft consecutive public keys from the start of r.
func RetrieveOracles(input []byte, r Range, bft uint8) ([]solana.PublicKey, error) {
	return ExtractFromRange(input, r, func(b []byte) ([]solana.PublicKey, error) {
		dec := bin.NewBinDecoder(b)
		oracles := make([]solana.PublicKey, 0, bft)
		for i := 0; i < int(bft); i++ {
			raw, err := dec.ReadNBytes(solana.PublicKeyLength)
			if err != nil {
				return nil, err
			}
			oracles = append(oracles, solana.PublicKeyFromBytes(raw))
		}
		return oracles, nil
	})
}
