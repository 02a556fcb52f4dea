package types

import (
	"bytes"

	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

func encodeState(state bin.BinaryMarshaler) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := state.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	return buf.Bytes(), nil
}

// EncodedLen is the number of bytes PackState writes for state.
func EncodedLen(state bin.BinaryMarshaler) (int, error) {
	raw, err := encodeState(state)
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}

// PackState borsh-encodes state into data[:end]. The rest of the range is zeroed.
func PackState(state bin.BinaryMarshaler, data []byte, end int) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}

	dst := StatePrefix(data, end)
	if len(raw) > len(dst) {
		return sdkerrors.Wrapf(ErrAccountDataTooSmall, "state needs %d bytes, range holds %d", len(raw), len(dst))
	}
	n := copy(dst, raw)
	clear(dst[n:])
	return nil
}

// UnpackState borsh-decodes state from data[:end].
func UnpackState(data []byte, end int, state bin.BinaryUnmarshaler) error {
	if err := state.UnmarshalWithDecoder(bin.NewBorshDecoder(StatePrefix(data, end))); err != nil {
		return sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	return nil
}

// readLength reads a Vec length and rejects lengths the input cannot hold.
func readLength(dec *bin.Decoder) (int, error) {
	n, err := dec.ReadLength()
	if err != nil {
		return 0, err
	}
	if n > dec.Remaining() {
		return 0, ErrInvalidAccountData.Wrapf("vector of %d elements with %d bytes left", n, dec.Remaining())
	}
	return n, nil
}

func EncodePublicKey(enc *bin.Encoder, key solana.PublicKey) error {
	return enc.WriteBytes(key[:], false)
}

func DecodePublicKey(dec *bin.Decoder) (solana.PublicKey, error) {
	raw, err := dec.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBytes(raw), nil
}

// EncodePublicKeys writes a Vec<Pubkey>.
func EncodePublicKeys(enc *bin.Encoder, keys []solana.PublicKey) error {
	if err := enc.WriteLength(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := EncodePublicKey(enc, k); err != nil {
			return err
		}
	}
	return nil
}

// DecodePublicKeys reads a Vec<Pubkey>.
func DecodePublicKeys(dec *bin.Decoder) ([]solana.PublicKey, error) {
	n, err := readLength(dec)
	if err != nil {
		return nil, err
	}
	keys := make([]solana.PublicKey, 0, n)
	for i := 0; i < n; i++ {
		k, err := DecodePublicKey(dec)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func EncodeID(enc *bin.Encoder, id [16]byte) error {
	return enc.WriteBytes(id[:], false)
}

func DecodeID(dec *bin.Decoder) ([16]byte, error) {
	var id [16]byte
	raw, err := dec.ReadNBytes(len(id))
	if err != nil {
		return id, err
	}
	copy(id[:], raw)
	return id, nil
}

// EncodeIDs writes a Vec<[u8;16]>.
func EncodeIDs(enc *bin.Encoder, ids [][16]byte) error {
	if err := enc.WriteLength(len(ids)); err != nil {
		return err
	}
	for _, id := range ids {
		if err := EncodeID(enc, id); err != nil {
			return err
		}
	}
	return nil
}

// DecodeIDs reads a Vec<[u8;16]>.
func DecodeIDs(dec *bin.Decoder) ([][16]byte, error) {
	n, err := readLength(dec)
	if err != nil {
		return nil, err
	}
	ids := make([][16]byte, 0, n)
	for i := 0; i < n; i++ {
		id, err := DecodeID(dec)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func EncodeForeignAddress(enc *bin.Encoder, addr ForeignAddress) error {
	return enc.WriteBytes(addr[:], false)
}

func DecodeForeignAddress(dec *bin.Decoder) (ForeignAddress, error) {
	var addr ForeignAddress
	raw, err := dec.ReadNBytes(len(addr))
	if err != nil {
		return addr, err
	}
	copy(addr[:], raw)
	return addr, nil
}
