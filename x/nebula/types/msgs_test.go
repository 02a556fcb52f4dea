package types_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

func TestDecodeMsg(t *testing.T) {
	oracles := []solana.PublicKey{solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()}
	var value types.DataHash
	copy(value[:], "pulse value")
	subID := commontypes.SubscriptionID{1, 2, 3}

	tests := []struct {
		name    string
		msg     commontypes.Msg
		wantLen int
	}{
		{name: "init contract", msg: types.NewMsgInitContract(types.DataTypeBytes, oracles[0], oracles, 2), wantLen: 1 + 1 + 1 + 32 + 64},
		{name: "update oracles", msg: types.NewMsgUpdateOracles(oracles, 9), wantLen: 1 + 1 + 64 + 8},
		{name: "send hash value", msg: types.NewMsgSendHashValue(types.HashValue(value)), wantLen: 1 + 64},
		{name: "send value to subs", msg: types.NewMsgSendValueToSubs(value, types.DataTypeString, 4, subID), wantLen: 1 + 64 + 1 + 8 + 16},
		{name: "subscribe", msg: types.NewMsgSubscribe(oracles[1], 3, 1000, subID), wantLen: 1 + 32 + 1 + 8 + 16},
		{name: "unsubscribe", msg: types.NewMsgUnsubscribe(subID), wantLen: 1 + 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := tc.msg.Pack()
			require.NoError(t, err)
			require.Len(t, data, tc.wantLen)

			decoded, err := types.DecodeMsg(data)
			require.NoError(t, err)
			require.Equal(t, tc.msg, decoded)
		})
	}
}

func TestDecodeMsgErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "fail; empty input", input: nil, wantErr: commontypes.ErrInvalidInstruction},
		{name: "fail; unknown tag", input: []byte{6}, wantErr: types.ErrInvalidInstruction},
		{name: "fail; truncated hash", input: append([]byte{types.SendHashValueTag}, make([]byte, 63)...), wantErr: commontypes.ErrInvalidInstruction},
		{name: "fail; oracles shorter than bft", input: append([]byte{types.UpdateOraclesTag, 2}, make([]byte, 40)...), wantErr: commontypes.ErrInvalidInstruction},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := types.DecodeMsg(tc.input)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateBasic(t *testing.T) {
	key := solana.NewWallet().PublicKey()

	require.NoError(t, types.NewMsgInitContract(types.DataTypeInt64, key, []solana.PublicKey{key}, 1).ValidateBasic())
	require.ErrorIs(t, types.NewMsgInitContract(types.DataType(7), key, []solana.PublicKey{key}, 1).ValidateBasic(), types.ErrInvalidDataType)
	require.ErrorIs(t, types.NewMsgInitContract(types.DataTypeInt64, key, []solana.PublicKey{key}, 2).ValidateBasic(), types.ErrInvalidBFTCount)
	require.ErrorIs(t, types.NewMsgUpdateOracles(nil, 1).ValidateBasic(), types.ErrInvalidBFTCount)
	require.ErrorIs(t, types.NewMsgSendValueToSubs(types.DataHash{}, types.DataType(3), 0, commontypes.SubscriptionID{}).ValidateBasic(), types.ErrInvalidDataType)
}

func TestParseDataType(t *testing.T) {
	for _, dt := range []types.DataType{types.DataTypeInt64, types.DataTypeString, types.DataTypeBytes} {
		parsed, err := types.ParseDataType(dt.String())
		require.NoError(t, err)
		require.Equal(t, dt, parsed)
	}
	_, err := types.ParseDataType("float")
	require.ErrorIs(t, err, types.ErrInvalidDataType)
}
