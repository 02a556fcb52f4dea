package types

import (
	sdkerrors "cosmossdk.io/errors"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
)

// AllocationByTag returns the field widths of an instruction body. bft is only
// read by tags carrying an oracle list.
func AllocationByTag(tag uint8, bft uint8) ([]int, error) {
	switch tag {
	case InitContractTag:
		return []int{BFTAlloc, DataTypeAlloc, PublicKeyAlloc, PublicKeyAlloc * int(bft)}, nil
	case UpdateOraclesTag:
		return []int{BFTAlloc, PublicKeyAlloc * int(bft), PulseIDAlloc}, nil
	case SendHashValueTag:
		return []int{DataHashAlloc}, nil
	case SendValueToSubsTag:
		return []int{DataHashAlloc, DataTypeAlloc, PulseIDAlloc, SubscriptionIDAlloc}, nil
	case SubscribeTag:
		return []int{PublicKeyAlloc, MinConfirmAlloc, RewardAlloc, SubscriptionIDAlloc}, nil
	case UnsubscribeTag:
		return []int{SubscriptionIDAlloc}, nil
	default:
		return nil, sdkerrors.Wrapf(ErrInvalidInstructionIndex, "tag %d", tag)
	}
}

// DecodeMsg unpacks raw instruction data.
func DecodeMsg(input []byte) (commontypes.Msg, error) {
	tag, rest, err := commontypes.SplitTag(input)
	if err != nil {
		return nil, err
	}
	if tag > UnsubscribeTag {
		return nil, sdkerrors.Wrapf(ErrInvalidInstruction, "unknown tag %d", tag)
	}

	var bft uint8
	if tag == InitContractTag || tag == UpdateOraclesTag {
		if bft, err = commontypes.ReadU8(rest, commontypes.Range{Start: 0, End: BFTAlloc}); err != nil {
			return nil, err
		}
	}
	allocs, err := AllocationByTag(tag, bft)
	if err != nil {
		return nil, err
	}
	ranges := commontypes.BuildRangeFromAlloc(allocs...)

	switch tag {
	case InitContractTag:
		return decodeInitContract(rest, ranges, bft)
	case UpdateOraclesTag:
		return decodeUpdateOracles(rest, ranges, bft)
	case SendHashValueTag:
		hash, err := readDataHash(rest, ranges[0])
		if err != nil {
			return nil, err
		}
		return NewMsgSendHashValue(hash), nil
	case SendValueToSubsTag:
		return decodeSendValueToSubs(rest, ranges)
	case SubscribeTag:
		return decodeSubscribe(rest, ranges)
	default:
		subID, err := commontypes.ReadSwapID(rest, ranges[0])
		if err != nil {
			return nil, err
		}
		return NewMsgUnsubscribe(subID), nil
	}
}

func decodeInitContract(rest []byte, ranges []commontypes.Range, bft uint8) (commontypes.Msg, error) {
	dataType, err := commontypes.ReadU8(rest, ranges[1])
	if err != nil {
		return nil, err
	}
	gravity, err := commontypes.ReadPublicKey(rest, ranges[2])
	if err != nil {
		return nil, err
	}
	oracles, err := commontypes.RetrieveOracles(rest, ranges[3], bft)
	if err != nil {
		return nil, err
	}
	return NewMsgInitContract(DataType(dataType), gravity, oracles, bft), nil
}

func decodeUpdateOracles(rest []byte, ranges []commontypes.Range, bft uint8) (commontypes.Msg, error) {
	oracles, err := commontypes.RetrieveOracles(rest, ranges[1], bft)
	if err != nil {
		return nil, err
	}
	round, err := commontypes.ReadU64LE(rest, ranges[2])
	if err != nil {
		return nil, err
	}
	return NewMsgUpdateOracles(oracles, round), nil
}

func decodeSendValueToSubs(rest []byte, ranges []commontypes.Range) (commontypes.Msg, error) {
	value, err := readDataHash(rest, ranges[0])
	if err != nil {
		return nil, err
	}
	dataType, err := commontypes.ReadU8(rest, ranges[1])
	if err != nil {
		return nil, err
	}
	pulseID, err := commontypes.ReadU64LE(rest, ranges[2])
	if err != nil {
		return nil, err
	}
	subID, err := commontypes.ReadSwapID(rest, ranges[3])
	if err != nil {
		return nil, err
	}
	return NewMsgSendValueToSubs(value, DataType(dataType), pulseID, subID), nil
}

func decodeSubscribe(rest []byte, ranges []commontypes.Range) (commontypes.Msg, error) {
	address, err := commontypes.ReadPublicKey(rest, ranges[0])
	if err != nil {
		return nil, err
	}
	minConfirmations, err := commontypes.ReadU8(rest, ranges[1])
	if err != nil {
		return nil, err
	}
	reward, err := commontypes.ReadU64LE(rest, ranges[2])
	if err != nil {
		return nil, err
	}
	subID, err := commontypes.ReadSwapID(rest, ranges[3])
	if err != nil {
		return nil, err
	}
	return NewMsgSubscribe(address, minConfirmations, reward, subID), nil
}

func readDataHash(input []byte, r commontypes.Range) (DataHash, error) {
	return commontypes.ExtractFromRange(input, r, func(b []byte) (DataHash, error) {
		var hash DataHash
		copy(hash[:], b)
		return hash, nil
	})
}
