package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

func TestPortOperation(t *testing.T) {
	op := types.NewPortOperation(types.ActionMint, types.SwapID{1, 2}, 12.75, types.ForeignAddress{0xaa})
	data := op.Pack()
	require.Len(t, data, types.PortOperationLen)
	require.Equal(t, byte('m'), data[0])

	t.Run("success; trailing bytes ignored", func(t *testing.T) {
		padded := append(append([]byte(nil), data...), make([]byte, 7)...)
		decoded, err := types.UnpackPortOperation(padded)
		require.NoError(t, err)
		require.Equal(t, op, decoded)
	})

	t.Run("fail; short payload", func(t *testing.T) {
		_, err := types.UnpackPortOperation(data[:types.PortOperationLen-1])
		require.ErrorIs(t, err, types.ErrByteArrayUnpackFailed)
	})

	amount, err := op.BaseAmount(2)
	require.NoError(t, err)
	require.Equal(t, uint64(1275), amount)
}

func TestRequestStatus(t *testing.T) {
	require.Equal(t, "new", types.RequestStatusNew.String())
	require.True(t, types.RequestStatusSuccess.Valid())
	require.False(t, types.RequestStatus(4).Valid())
	require.Equal(t, "unknown", types.RequestStatus(4).String())
}
