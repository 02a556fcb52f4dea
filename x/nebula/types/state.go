package types

import (
	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

// Subscription is a subscriber registered on a nebula.
type Subscription struct {
	Sender           solana.PublicKey
	ContractAddress  solana.PublicKey
	MinConfirmations uint8
	Reward           uint64
}

// NebulaState is the persisted nebula contract.
type NebulaState struct {
	Oracles         []solana.PublicKey
	BFT             uint8
	Multisig        solana.PublicKey
	GravityContract solana.PublicKey
	DataType        DataType
	LastRound       uint64
	LastPulseID     PulseID
	Subscriptions   *commontypes.RecordHandler[commontypes.SubscriptionID, Subscription]
	Pulses          *commontypes.RecordHandler[PulseKey, PulseID]
	IsInitialized   bool
	Initializer     solana.PublicKey
}

// NewNebulaState returns an empty state.
func NewNebulaState() *NebulaState {
	return &NebulaState{
		Subscriptions: commontypes.NewRecordHandler[commontypes.SubscriptionID, Subscription](),
		Pulses:        commontypes.NewRecordHandler[PulseKey, PulseID](),
	}
}

// AddPulse commits hash under the next pulse id. When StateLen has no room
// for another pulse the oldest undelivered pulses are evicted; their ids are
// returned.
func (s *NebulaState) AddPulse(hash DataHash) (PulseID, []PulseID, error) {
	n, err := commontypes.EncodedLen(s)
	if err != nil {
		return 0, nil, err
	}
	var evicted []PulseID
	for n+PulseRecordLen > StateLen && s.Pulses.Len() > 0 {
		id, _ := s.Pulses.Drop(s.Pulses.Keys()[0])
		evicted = append(evicted, id)
		n -= PulseRecordLen
	}
	if n+PulseRecordLen > StateLen {
		return 0, evicted, sdkerrors.Wrapf(ErrPulseStoreFull, "state holds %d of %d bytes", n, StateLen)
	}

	s.LastPulseID++
	s.Pulses.Insert(PulseKeyOf(hash), s.LastPulseID)
	return s.LastPulseID, evicted, nil
}

// Subscribe registers a subscription under a fresh id.
func (s *NebulaState) Subscribe(id commontypes.SubscriptionID, sub Subscription) error {
	if s.Subscriptions.Contains(id) {
		return sdkerrors.Wrapf(ErrSubscribeFailed, "subscription %x exists", id)
	}
	s.Subscriptions.Insert(id, sub)
	return nil
}

// Unsubscribe is not supported.
func (s *NebulaState) Unsubscribe(id commontypes.SubscriptionID) error {
	return sdkerrors.Wrapf(ErrUnsubscribeIsNotAvailable, "subscription %x", id)
}

// SubscriptionForPulse returns the subscription a value for pulseID may be
// released to. Values are released one pulse after their hash is committed.
func (s *NebulaState) SubscriptionForPulse(pulseID PulseID, id commontypes.SubscriptionID) (Subscription, error) {
	if s.LastPulseID == 0 || pulseID != s.LastPulseID-1 {
		return Subscription{}, sdkerrors.Wrapf(ErrPulseValidationOrderMismatch, "pulse %d, last pulse %d", pulseID, s.LastPulseID)
	}
	sub, ok := s.Subscriptions.Get(id)
	if !ok {
		return Subscription{}, sdkerrors.Wrapf(ErrInvalidSubscriptionID, "subscription %x", id)
	}
	return sub, nil
}

// HasPulse reports whether the hash of value is committed.
func (s *NebulaState) HasPulse(value DataHash) bool {
	return s.Pulses.Contains(PulseKeyOf(HashValue(value)))
}

// DropProcessedPulse removes the pulse committing to value.
func (s *NebulaState) DropProcessedPulse(value DataHash) error {
	if _, ok := s.Pulses.Drop(PulseKeyOf(HashValue(value))); !ok {
		return sdkerrors.Wrapf(ErrPulseIDHasNotBeenPersisted, "value %x", value[:8])
	}
	return nil
}

// IsOracle reports whether key is in the current oracle set.
func (s *NebulaState) IsOracle(key solana.PublicKey) bool {
	for _, o := range s.Oracles {
		if o.Equals(key) {
			return true
		}
	}
	return false
}

func (s NebulaState) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := commontypes.EncodePublicKeys(enc, s.Oracles); err != nil {
		return err
	}
	if err := enc.WriteUint8(s.BFT); err != nil {
		return err
	}
	if err := commontypes.EncodePublicKey(enc, s.Multisig); err != nil {
		return err
	}
	if err := commontypes.EncodePublicKey(enc, s.GravityContract); err != nil {
		return err
	}
	if err := enc.WriteUint8(uint8(s.DataType)); err != nil {
		return err
	}
	if err := enc.WriteUint64(s.LastRound, bin.LE); err != nil {
		return err
	}
	if err := enc.WriteUint64(s.LastPulseID, bin.LE); err != nil {
		return err
	}
	if err := commontypes.MarshalRecords(enc, s.Subscriptions, commontypes.EncodeID, encodeSubscription); err != nil {
		return err
	}
	if err := commontypes.MarshalRecords(enc, s.Pulses, encodePulseKey, encodePulseID); err != nil {
		return err
	}
	if err := enc.WriteBool(s.IsInitialized); err != nil {
		return err
	}
	return commontypes.EncodePublicKey(enc, s.Initializer)
}

func (s *NebulaState) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if s.Oracles, err = commontypes.DecodePublicKeys(dec); err != nil {
		return err
	}
	if s.BFT, err = dec.ReadUint8(); err != nil {
		return err
	}
	if s.Multisig, err = commontypes.DecodePublicKey(dec); err != nil {
		return err
	}
	if s.GravityContract, err = commontypes.DecodePublicKey(dec); err != nil {
		return err
	}
	dataType, err := dec.ReadUint8()
	if err != nil {
		return err
	}
	s.DataType = DataType(dataType)
	if s.LastRound, err = dec.ReadUint64(bin.LE); err != nil {
		return err
	}
	if s.LastPulseID, err = dec.ReadUint64(bin.LE); err != nil {
		return err
	}
	if s.Subscriptions, err = commontypes.UnmarshalRecords(dec, commontypes.DecodeID, decodeSubscription); err != nil {
		return err
	}
	if s.Pulses, err = commontypes.UnmarshalRecords(dec, decodePulseKey, decodePulseID); err != nil {
		return err
	}
	if s.IsInitialized, err = dec.ReadBool(); err != nil {
		return err
	}
	s.Initializer, err = commontypes.DecodePublicKey(dec)
	return err
}

// LoadState decodes the nebula state from account data.
func LoadState(data []byte) (*NebulaState, error) {
	state := NewNebulaState()
	if err := commontypes.UnpackState(data, StateLen, state); err != nil {
		return nil, err
	}
	if !state.IsInitialized {
		return nil, commontypes.ErrUninitializedAccount
	}
	return state, nil
}

// Save encodes the state into account data.
func (s *NebulaState) Save(data []byte) error {
	return commontypes.PackState(s, data, StateLen)
}

func encodeSubscription(enc *bin.Encoder, sub Subscription) error {
	if err := commontypes.EncodePublicKey(enc, sub.Sender); err != nil {
		return err
	}
	if err := commontypes.EncodePublicKey(enc, sub.ContractAddress); err != nil {
		return err
	}
	if err := enc.WriteUint8(sub.MinConfirmations); err != nil {
		return err
	}
	return enc.WriteUint64(sub.Reward, bin.LE)
}

func decodeSubscription(dec *bin.Decoder) (sub Subscription, err error) {
	if sub.Sender, err = commontypes.DecodePublicKey(dec); err != nil {
		return sub, err
	}
	if sub.ContractAddress, err = commontypes.DecodePublicKey(dec); err != nil {
		return sub, err
	}
	if sub.MinConfirmations, err = dec.ReadUint8(); err != nil {
		return sub, err
	}
	sub.Reward, err = dec.ReadUint64(bin.LE)
	return sub, err
}

// Pulse keys are persisted as Vec<u8>.
func encodePulseKey(enc *bin.Encoder, key PulseKey) error {
	return enc.WriteBytes(key[:], true)
}

func decodePulseKey(dec *bin.Decoder) (PulseKey, error) {
	var key PulseKey
	raw, err := dec.ReadByteSlice()
	if err != nil {
		return key, err
	}
	if len(raw) != len(key) {
		return key, commontypes.ErrInvalidAccountData.Wrapf("pulse key of %d bytes", len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

func encodePulseID(enc *bin.Encoder, id PulseID) error {
	return enc.WriteUint64(id, bin.LE)
}

func decodePulseID(dec *bin.Decoder) (PulseID, error) {
	return dec.ReadUint64(bin.LE)
}
