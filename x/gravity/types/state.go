package types

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

// GravityState is the persisted consul set.
type GravityState struct {
	Initializer solana.PublicKey
	BFT         uint8
	Consuls     []solana.PublicKey
	LastRound   uint64
	Multisig    solana.PublicKey
}

func (s GravityState) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := commontypes.EncodePublicKey(enc, s.Initializer); err != nil {
		return err
	}
	if err := enc.WriteUint8(s.BFT); err != nil {
		return err
	}
	if err := commontypes.EncodePublicKeys(enc, s.Consuls); err != nil {
		return err
	}
	if err := enc.WriteUint64(s.LastRound, bin.LE); err != nil {
		return err
	}
	return commontypes.EncodePublicKey(enc, s.Multisig)
}

func (s *GravityState) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if s.Initializer, err = commontypes.DecodePublicKey(dec); err != nil {
		return err
	}
	if s.BFT, err = dec.ReadUint8(); err != nil {
		return err
	}
	if s.Consuls, err = commontypes.DecodePublicKeys(dec); err != nil {
		return err
	}
	if s.LastRound, err = dec.ReadUint64(bin.LE); err != nil {
		return err
	}
	s.Multisig, err = commontypes.DecodePublicKey(dec)
	return err
}

// LoadState decodes the gravity state from account data.
func LoadState(data []byte) (*GravityState, error) {
	state := new(GravityState)
	if err := commontypes.UnpackState(data, StateLen, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Save encodes the state into account data.
func (s *GravityState) Save(data []byte) error {
	return commontypes.PackState(s, data, StateLen)
}
