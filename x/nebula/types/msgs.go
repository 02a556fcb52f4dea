package types

import (
	"crypto/sha256"

	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

var (
	_ commontypes.Msg = &MsgInitContract{}
	_ commontypes.Msg = &MsgUpdateOracles{}
	_ commontypes.Msg = &MsgSendHashValue{}
	_ commontypes.Msg = &MsgSendValueToSubs{}
	_ commontypes.Msg = &MsgSubscribe{}
	_ commontypes.Msg = &MsgUnsubscribe{}
)

// DataHash is the 64 byte hash field of a pulse. A SHA-256 digest occupies
// the first half.
type DataHash = [DataHashAlloc]byte

// PulseKey is the pulse map key of a committed hash.
type PulseKey = [sha256.Size]byte

// PulseKeyOf returns the pulse map key stored for hash.
func PulseKeyOf(hash DataHash) PulseKey {
	var key PulseKey
	copy(key[:], hash[:sha256.Size])
	return key
}

// HashValue returns the hash field committing to value.
func HashValue(value DataHash) DataHash {
	var hash DataHash
	digest := sha256.Sum256(value[:])
	copy(hash[:], digest[:])
	return hash
}

// MsgInitContract deploys a nebula.
type MsgInitContract struct {
	DataType        DataType
	GravityContract solana.PublicKey
	Oracles         []solana.PublicKey
	BFT             uint8
}

// NewMsgInitContract creates new instance of MsgInitContract
func NewMsgInitContract(dataType DataType, gravity solana.PublicKey, oracles []solana.PublicKey, bft uint8) *MsgInitContract {
	return &MsgInitContract{DataType: dataType, GravityContract: gravity, Oracles: oracles, BFT: bft}
}

func (msg MsgInitContract) Route() string { return ModuleName }
func (msg MsgInitContract) Type() string  { return "init_contract" }

func (msg *MsgInitContract) ValidateBasic() error {
	if err := msg.DataType.Validate(); err != nil {
		return err
	}
	return validateOracles(msg.Oracles, msg.BFT)
}

func (msg *MsgInitContract) Pack() ([]byte, error) {
	return commontypes.PackInstruction(InitContractTag, func(enc *bin.Encoder) error {
		if err := enc.WriteUint8(msg.BFT); err != nil {
			return err
		}
		if err := enc.WriteUint8(uint8(msg.DataType)); err != nil {
			return err
		}
		if err := commontypes.EncodePublicKey(enc, msg.GravityContract); err != nil {
			return err
		}
		return encodeKeys(enc, msg.Oracles)
	})
}

// MsgUpdateOracles rotates the oracle set for a later round.
type MsgUpdateOracles struct {
	Oracles []solana.PublicKey
	Round   uint64
}

// NewMsgUpdateOracles creates new instance of MsgUpdateOracles
func NewMsgUpdateOracles(oracles []solana.PublicKey, round uint64) *MsgUpdateOracles {
	return &MsgUpdateOracles{Oracles: oracles, Round: round}
}

func (msg MsgUpdateOracles) Route() string { return ModuleName }
func (msg MsgUpdateOracles) Type() string  { return "update_oracles" }

// BFT is the size of the new oracle set.
func (msg *MsgUpdateOracles) BFT() uint8 { return uint8(len(msg.Oracles)) }

func (msg *MsgUpdateOracles) ValidateBasic() error {
	if len(msg.Oracles) > commontypes.MaxSigners {
		return sdkerrors.Wrapf(ErrInvalidBFTCount, "%d oracles", len(msg.Oracles))
	}
	return validateOracles(msg.Oracles, msg.BFT())
}

func (msg *MsgUpdateOracles) Pack() ([]byte, error) {
	return commontypes.PackInstruction(UpdateOraclesTag, func(enc *bin.Encoder) error {
		if err := enc.WriteUint8(msg.BFT()); err != nil {
			return err
		}
		if err := encodeKeys(enc, msg.Oracles); err != nil {
			return err
		}
		return enc.WriteUint64(msg.Round, bin.LE)
	})
}

// MsgSendHashValue commits the hash of the next pulse.
type MsgSendHashValue struct {
	DataHash DataHash
}

func NewMsgSendHashValue(hash DataHash) *MsgSendHashValue {
	return &MsgSendHashValue{DataHash: hash}
}

func (msg MsgSendHashValue) Route() string { return ModuleName }
func (msg MsgSendHashValue) Type() string  { return "send_hash_value" }

func (msg *MsgSendHashValue) ValidateBasic() error { return nil }

func (msg *MsgSendHashValue) Pack() ([]byte, error) {
	return commontypes.PackInstruction(SendHashValueTag, func(enc *bin.Encoder) error {
		return enc.WriteBytes(msg.DataHash[:], false)
	})
}

// MsgSendValueToSubs releases a committed value to one subscriber.
type MsgSendValueToSubs struct {
	DataValue      DataHash
	DataType       DataType
	PulseID        PulseID
	SubscriptionID commontypes.SubscriptionID
}

func NewMsgSendValueToSubs(value DataHash, dataType DataType, pulseID PulseID, subID commontypes.SubscriptionID) *MsgSendValueToSubs {
	return &MsgSendValueToSubs{DataValue: value, DataType: dataType, PulseID: pulseID, SubscriptionID: subID}
}

func (msg MsgSendValueToSubs) Route() string { return ModuleName }
func (msg MsgSendValueToSubs) Type() string  { return "send_value_to_subs" }

func (msg *MsgSendValueToSubs) ValidateBasic() error {
	return msg.DataType.Validate()
}

func (msg *MsgSendValueToSubs) Pack() ([]byte, error) {
	return commontypes.PackInstruction(SendValueToSubsTag, func(enc *bin.Encoder) error {
		if err := enc.WriteBytes(msg.DataValue[:], false); err != nil {
			return err
		}
		if err := enc.WriteUint8(uint8(msg.DataType)); err != nil {
			return err
		}
		if err := enc.WriteUint64(msg.PulseID, bin.LE); err != nil {
			return err
		}
		return commontypes.EncodeID(enc, msg.SubscriptionID)
	})
}

// MsgSubscribe registers a subscriber program.
type MsgSubscribe struct {
	Address          solana.PublicKey
	MinConfirmations uint8
	Reward           uint64
	SubscriptionID   commontypes.SubscriptionID
}

func NewMsgSubscribe(address solana.PublicKey, minConfirmations uint8, reward uint64, subID commontypes.SubscriptionID) *MsgSubscribe {
	return &MsgSubscribe{Address: address, MinConfirmations: minConfirmations, Reward: reward, SubscriptionID: subID}
}

func (msg MsgSubscribe) Route() string { return ModuleName }
func (msg MsgSubscribe) Type() string  { return "subscribe" }

func (msg *MsgSubscribe) ValidateBasic() error { return nil }

func (msg *MsgSubscribe) Pack() ([]byte, error) {
	return commontypes.PackInstruction(SubscribeTag, func(enc *bin.Encoder) error {
		if err := commontypes.EncodePublicKey(enc, msg.Address); err != nil {
			return err
		}
		if err := enc.WriteUint8(msg.MinConfirmations); err != nil {
			return err
		}
		if err := enc.WriteUint64(msg.Reward, bin.LE); err != nil {
			return err
		}
		return commontypes.EncodeID(enc, msg.SubscriptionID)
	})
}

// MsgUnsubscribe is decoded but always refused.
type MsgUnsubscribe struct {
	SubscriptionID commontypes.SubscriptionID
}

func NewMsgUnsubscribe(subID commontypes.SubscriptionID) *MsgUnsubscribe {
	return &MsgUnsubscribe{SubscriptionID: subID}
}

func (msg MsgUnsubscribe) Route() string { return ModuleName }
func (msg MsgUnsubscribe) Type() string  { return "unsubscribe" }

func (msg *MsgUnsubscribe) ValidateBasic() error { return nil }

func (msg *MsgUnsubscribe) Pack() ([]byte, error) {
	return commontypes.PackInstruction(UnsubscribeTag, func(enc *bin.Encoder) error {
		return commontypes.EncodeID(enc, msg.SubscriptionID)
	})
}

func validateOracles(oracles []solana.PublicKey, bft uint8) error {
	if bft == 0 || int(bft) > commontypes.MaxSigners {
		return sdkerrors.Wrapf(ErrInvalidBFTCount, "bft %d", bft)
	}
	if len(oracles) != int(bft) {
		return sdkerrors.Wrapf(ErrInvalidBFTCount, "%d oracles for bft %d", len(oracles), bft)
	}
	return nil
}

func encodeKeys(enc *bin.Encoder, keys []solana.PublicKey) error {
	for _, k := range keys {
		if err := commontypes.EncodePublicKey(enc, k); err != nil {
			return err
		}
	}
	return nil
}
