package spltoken

import (
	"bytes"

	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

const (
	MintLen     = 82
	AccountLen  = 165
	MultisigLen = 355
)

// DecodeMint reads a mint from account data.
func DecodeMint(data []byte) (*token.Mint, error) {
	if len(data) != MintLen {
		return nil, sdkerrors.Wrapf(ErrInvalidAccountData, "mint length %d", len(data))
	}
	var mint token.Mint
	if err := bin.NewBinDecoder(data).Decode(&mint); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	return &mint, nil
}

// EncodeMint writes a mint into account data.
func EncodeMint(mint *token.Mint, data []byte) error {
	return encodeInto(mint, data, MintLen)
}

// DecodeAccount reads a token account from account data.
func DecodeAccount(data []byte) (*token.Account, error) {
	if len(data) != AccountLen {
		return nil, sdkerrors.Wrapf(ErrInvalidAccountData, "token account length %d", len(data))
	}
	var acc token.Account
	if err := bin.NewBinDecoder(data).Decode(&acc); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	return &acc, nil
}

// EncodeAccount writes a token account into account data.
func EncodeAccount(acc *token.Account, data []byte) error {
	return encodeInto(acc, data, AccountLen)
}

func encodeInto(v interface{}, data []byte, size int) error {
	if len(data) != size {
		return sdkerrors.Wrapf(ErrInvalidAccountData, "expected %d bytes, got %d", size, len(data))
	}
	buf := new(bytes.Buffer)
	if err := bin.NewBinEncoder(buf).Encode(v); err != nil {
		return sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	copy(data, buf.Bytes())
	return nil
}

// Multisig is a token multisignature authority: m of the first n signers must sign.
type Multisig struct {
	M             uint8
	N             uint8
	IsInitialized bool
	Signers       [token.MAX_SIGNERS]solana.PublicKey
}

// DecodeMultisig reads a multisig authority from account data.
func DecodeMultisig(data []byte) (*Multisig, error) {
	if len(data) != MultisigLen {
		return nil, sdkerrors.Wrapf(ErrInvalidAccountData, "multisig length %d", len(data))
	}
	dec := bin.NewBinDecoder(data)
	var (
		ms  Multisig
		err error
	)
	if ms.M, err = dec.ReadUint8(); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	if ms.N, err = dec.ReadUint8(); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	if ms.IsInitialized, err = dec.ReadBool(); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
	}
	for i := range ms.Signers {
		raw, err := dec.ReadNBytes(solana.PublicKeyLength)
		if err != nil {
			return nil, sdkerrors.Wrap(ErrInvalidAccountData, err.Error())
		}
		ms.Signers[i] = solana.PublicKeyFromBytes(raw)
	}
	return &ms, nil
}

// Encode writes the multisig into account data.
func (ms *Multisig) Encode(data []byte) error {
	if len(data) != MultisigLen {
		return sdkerrors.Wrapf(ErrInvalidAccountData, "multisig length %d", len(data))
	}
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	if err := enc.WriteUint8(ms.M); err != nil {
		return err
	}
	if err := enc.WriteUint8(ms.N); err != nil {
		return err
	}
	if err := enc.WriteBool(ms.IsInitialized); err != nil {
		return err
	}
	for _, s := range ms.Signers {
		if err := enc.WriteBytes(s[:], false); err != nil {
			return err
		}
	}
	copy(data, buf.Bytes())
	return nil
}
