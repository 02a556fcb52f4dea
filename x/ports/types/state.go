package types

import (
	"slices"

	sdkerrors "cosmossdk.io/errors"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

// GenericRequest is an outbound transfer waiting for confirmation.
type GenericRequest struct {
	Destination ForeignAddress
	Origin      solana.PublicKey
	Amount      uint64
}

// PortState is the persisted state shared by IB and LU ports.
type PortState struct {
	Nebula        solana.PublicKey
	TokenAddress  solana.PublicKey
	TokenMint     solana.PublicKey
	Initializer   solana.PublicKey
	Oracles       []solana.PublicKey
	SwapStatus    *commontypes.RecordHandler[SwapID, RequestStatus]
	Requests      *commontypes.RecordHandler[SwapID, GenericRequest]
	IsInitialized bool
	RequestsQueue []SwapID
}

// NewPortState returns an empty state.
func NewPortState() *PortState {
	return &PortState{
		SwapStatus: commontypes.NewRecordHandler[SwapID, RequestStatus](),
		Requests:   commontypes.NewRecordHandler[SwapID, GenericRequest](),
	}
}

// ValidateDataProvider fails with ErrAccessDenied unless key is a port oracle.
// An empty oracle list authorizes nobody.
func (s *PortState) ValidateDataProvider(key solana.PublicKey) error {
	return commontypes.ValidatePubkeyMatch(s.Oracles, key, ErrAccessDenied)
}

// ValidateTokenProgram checks the supplied token program against the bound one.
func (s *PortState) ValidateTokenProgram(key solana.PublicKey) error {
	if !s.TokenAddress.Equals(key) {
		return sdkerrors.Wrapf(ErrInvalidInputToken, "expected %s, got %s", s.TokenAddress, key)
	}
	return nil
}

// ValidateTokenMint checks the supplied mint against the bound one.
func (s *PortState) ValidateTokenMint(key solana.PublicKey) error {
	if s.TokenMint.IsZero() || !s.TokenMint.Equals(key) {
		return sdkerrors.Wrapf(ErrInvalidTokenMint, "expected %s, got %s", s.TokenMint, key)
	}
	return nil
}

// RequestCapacity is the number of further requests the reserved state
// range can hold.
func (s *PortState) RequestCapacity() (int, error) {
	n, err := commontypes.EncodedLen(s)
	if err != nil {
		return 0, err
	}
	return max(0, (StateLen-n)/RequestRecordLen), nil
}

// CreateTransferUnwrapRequest queues an outbound transfer. limit bounds the
// number of unconfirmed requests; a full state range bounds it earlier.
func (s *PortState) CreateTransferUnwrapRequest(id SwapID, amount uint64, origin solana.PublicKey, dest ForeignAddress, limit int) error {
	if s.Requests.Len() >= limit || len(s.RequestsQueue) >= limit {
		return sdkerrors.Wrapf(ErrTransferRequestsCountLimit, "%d pending requests", s.Requests.Len())
	}
	free, err := s.RequestCapacity()
	if err != nil {
		return err
	}
	if free == 0 {
		return sdkerrors.Wrapf(ErrTransferRequestsCountLimit, "state range full with %d pending requests", s.Requests.Len())
	}
	if s.Requests.Contains(id) || s.SwapStatus.Contains(id) {
		return sdkerrors.Wrapf(ErrRequestIDIsAlreadyBeingProcessed, "request %x", id)
	}

	s.Requests.Insert(id, GenericRequest{Destination: dest, Origin: origin, Amount: amount})
	s.SwapStatus.Insert(id, RequestStatusNew)
	s.RequestsQueue = append(s.RequestsQueue, id)
	return nil
}

// AttachData applies an oracle payload. inbound is the action that releases
// tokens on this port ('m' or 'u'); the returned amount is what must be
// released to recipient, zero for a confirmation of an outbound request.
func (s *PortState) AttachData(op *PortOperation, recipient solana.PublicKey, inbound byte, decimals uint8) (uint64, error) {
	switch op.Action {
	case inbound:
		if status, ok := s.SwapStatus.Get(op.SwapID); ok {
			return 0, sdkerrors.Wrapf(ErrInvalidRequestStatus, "swap %x is %s", op.SwapID, status)
		}
		if ForeignAddress(recipient) != op.Receiver {
			return 0, sdkerrors.Wrapf(ErrErrorOnReceiverUnpack, "recipient %s", recipient)
		}
		amount, err := op.BaseAmount(decimals)
		if err != nil {
			return 0, err
		}
		s.SwapStatus.Insert(op.SwapID, RequestStatusSuccess)
		return amount, nil

	case ActionConfirm:
		request, ok := s.Requests.Get(op.SwapID)
		if !ok {
			return 0, sdkerrors.Wrapf(ErrInvalidRequestStatus, "swap %x is not pending", op.SwapID)
		}
		if status, _ := s.SwapStatus.Get(op.SwapID); status != RequestStatusNew {
			return 0, sdkerrors.Wrapf(ErrInvalidRequestStatus, "swap %x is %s", op.SwapID, status)
		}
		if err := matchReceiver(request, op); err != nil {
			return 0, err
		}
		if err := matchAmount(request, op, decimals); err != nil {
			return 0, err
		}
		s.SwapStatus.Insert(op.SwapID, RequestStatusSuccess)
		return 0, nil

	default:
		return 0, sdkerrors.Wrapf(ErrInvalidDataOnAttach, "action %q", op.Action)
	}
}

// DropProcessedRequest removes a confirmed request from requests, queue and
// swap status.
func (s *PortState) DropProcessedRequest(op *PortOperation, decimals uint8) error {
	request, ok := s.Requests.Get(op.SwapID)
	if !ok {
		return sdkerrors.Wrapf(ErrRequestIDForConfirmationIsInvalid, "request %x", op.SwapID)
	}
	if err := matchReceiver(request, op); err != nil {
		return err
	}
	if status, _ := s.SwapStatus.Get(op.SwapID); status == RequestStatusNew {
		return sdkerrors.Wrapf(ErrRequestStatusMismatch, "request %x is still new", op.SwapID)
	}
	if err := matchAmount(request, op, decimals); err != nil {
		return err
	}

	s.Requests.Drop(op.SwapID)
	s.SwapStatus.Drop(op.SwapID)
	s.RequestsQueue = slices.DeleteFunc(s.RequestsQueue, func(id SwapID) bool { return id == op.SwapID })
	return nil
}

func matchReceiver(request GenericRequest, op *PortOperation) error {
	if request.Destination != op.Receiver {
		return sdkerrors.Wrapf(ErrRequestReceiverMismatch, "request %x", op.SwapID)
	}
	return nil
}

func matchAmount(request GenericRequest, op *PortOperation, decimals uint8) error {
	amount, err := op.BaseAmount(decimals)
	if err != nil {
		return err
	}
	if request.Amount != amount {
		return sdkerrors.Wrapf(ErrRequestAmountMismatch, "request %x: %d != %d", op.SwapID, request.Amount, amount)
	}
	return nil
}

func (s PortState) MarshalWithEncoder(enc *bin.Encoder) error {
	for _, key := range []solana.PublicKey{s.Nebula, s.TokenAddress, s.TokenMint, s.Initializer} {
		if err := commontypes.EncodePublicKey(enc, key); err != nil {
			return err
		}
	}
	if err := commontypes.EncodePublicKeys(enc, s.Oracles); err != nil {
		return err
	}
	if err := commontypes.MarshalRecords(enc, s.SwapStatus, commontypes.EncodeID, encodeStatus); err != nil {
		return err
	}
	if err := commontypes.MarshalRecords(enc, s.Requests, commontypes.EncodeID, encodeRequest); err != nil {
		return err
	}
	if err := enc.WriteBool(s.IsInitialized); err != nil {
		return err
	}
	return commontypes.EncodeIDs(enc, s.RequestsQueue)
}

func (s *PortState) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	for _, key := range []*solana.PublicKey{&s.Nebula, &s.TokenAddress, &s.TokenMint, &s.Initializer} {
		if *key, err = commontypes.DecodePublicKey(dec); err != nil {
			return err
		}
	}
	if s.Oracles, err = commontypes.DecodePublicKeys(dec); err != nil {
		return err
	}
	if s.SwapStatus, err = commontypes.UnmarshalRecords(dec, commontypes.DecodeID, decodeStatus); err != nil {
		return err
	}
	if s.Requests, err = commontypes.UnmarshalRecords(dec, commontypes.DecodeID, decodeRequest); err != nil {
		return err
	}
	if s.IsInitialized, err = dec.ReadBool(); err != nil {
		return err
	}
	s.RequestsQueue, err = commontypes.DecodeIDs(dec)
	return err
}

// LoadState decodes an initialized port state from account data.
func LoadState(data []byte) (*PortState, error) {
	if err := commontypes.ValidateContractNonEmptiness(commontypes.StatePrefix(data, EmptinessPrefix)); err != nil {
		return nil, err
	}
	state := NewPortState()
	if err := commontypes.UnpackState(data, StateLen, state); err != nil {
		return nil, err
	}
	if !state.IsInitialized {
		return nil, commontypes.ErrUninitializedAccount
	}
	return state, nil
}

// Save encodes the state into account data.
func (s *PortState) Save(data []byte) error {
	return commontypes.PackState(s, data, StateLen)
}

func encodeStatus(enc *bin.Encoder, status RequestStatus) error {
	return enc.WriteUint8(uint8(status))
}

func decodeStatus(dec *bin.Decoder) (RequestStatus, error) {
	raw, err := dec.ReadUint8()
	if err != nil {
		return 0, err
	}
	status := RequestStatus(raw)
	if !status.Valid() {
		return 0, commontypes.ErrInvalidAccountData.Wrapf("request status %d", raw)
	}
	return status, nil
}

func encodeRequest(enc *bin.Encoder, r GenericRequest) error {
	if err := commontypes.EncodeForeignAddress(enc, r.Destination); err != nil {
		return err
	}
	if err := commontypes.EncodePublicKey(enc, r.Origin); err != nil {
		return err
	}
	return enc.WriteUint64(r.Amount, bin.LE)
}

func decodeRequest(dec *bin.Decoder) (r GenericRequest, err error) {
	if r.Destination, err = commontypes.DecodeForeignAddress(dec); err != nil {
		return r, err
	}
	if r.Origin, err = commontypes.DecodePublicKey(dec); err != nil {
		return r, err
	}
	r.Amount, err = dec.ReadUint64(bin.LE)
	return r, err
}
