package types_test

import (
	"strconv"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

func valueOf(s string) types.DataHash {
	var v types.DataHash
	copy(v[:], s)
	return v
}

func TestPulseOrdering(t *testing.T) {
	require := require.New(t)

	state := types.NewNebulaState()
	subID := commontypes.SubscriptionID{9}
	sub := types.Subscription{ContractAddress: solana.NewWallet().PublicKey(), Reward: 1}
	require.NoError(state.Subscribe(subID, sub))

	_, err := state.SubscriptionForPulse(0, subID)
	require.ErrorIs(err, types.ErrPulseValidationOrderMismatch)

	first, second := valueOf("first"), valueOf("second")
	for i, v := range []types.DataHash{first, second} {
		id, evicted, err := state.AddPulse(types.HashValue(v))
		require.NoError(err)
		require.Empty(evicted)
		require.Equal(types.PulseID(i+1), id)
	}
	require.True(state.HasPulse(first))
	require.True(state.HasPulse(second))

	got, err := state.SubscriptionForPulse(1, subID)
	require.NoError(err)
	require.Equal(sub, got)

	_, err = state.SubscriptionForPulse(2, subID)
	require.ErrorIs(err, types.ErrPulseValidationOrderMismatch)

	_, err = state.SubscriptionForPulse(1, commontypes.SubscriptionID{8})
	require.ErrorIs(err, types.ErrInvalidSubscriptionID)

	require.NoError(state.DropProcessedPulse(first))
	require.False(state.HasPulse(first))
	require.ErrorIs(state.DropProcessedPulse(first), types.ErrPulseIDHasNotBeenPersisted)
}

func TestAddPulseStateCapacity(t *testing.T) {
	require := require.New(t)

	t.Run("success; oldest pulse evicted", func(t *testing.T) {
		state := types.NewNebulaState()
		var ids []types.PulseID
		for i := 0; ; i++ {
			n, err := commontypes.EncodedLen(state)
			require.NoError(err)
			if n+types.PulseRecordLen > types.StateLen {
				break
			}
			id, evicted, err := state.AddPulse(types.HashValue(valueOf("pulse-"+strconv.Itoa(i))))
			require.NoError(err)
			require.Empty(evicted)
			ids = append(ids, id)
		}

		id, evicted, err := state.AddPulse(types.HashValue(valueOf("overflow")))
		require.NoError(err)
		require.Equal([]types.PulseID{ids[0]}, evicted)
		require.Equal(types.PulseID(len(ids)+1), id)
		require.Equal(len(ids), state.Pulses.Len())
		require.True(state.HasPulse(valueOf("overflow")))
		require.NoError(state.Save(make([]byte, types.StateLen)))
	})

	t.Run("fail; subscriptions leave no room", func(t *testing.T) {
		state := types.NewNebulaState()
		for i := 0; ; i++ {
			n, err := commontypes.EncodedLen(state)
			require.NoError(err)
			if n+types.PulseRecordLen > types.StateLen {
				break
			}
			require.NoError(state.Subscribe(commontypes.SubscriptionID{byte(i + 1)}, types.Subscription{}))
		}

		_, _, err := state.AddPulse(types.HashValue(valueOf("x")))
		require.ErrorIs(err, types.ErrPulseStoreFull)
		require.Zero(state.LastPulseID)
	})
}

func TestSubscribe(t *testing.T) {
	state := types.NewNebulaState()
	subID := commontypes.SubscriptionID{1}

	require.NoError(t, state.Subscribe(subID, types.Subscription{}))
	require.ErrorIs(t, state.Subscribe(subID, types.Subscription{Reward: 5}), types.ErrSubscribeFailed)
	require.ErrorIs(t, state.Unsubscribe(subID), types.ErrUnsubscribeIsNotAvailable)
	require.Equal(t, 1, state.Subscriptions.Len())
}

func TestNebulaStateRoundTrip(t *testing.T) {
	require := require.New(t)

	state := types.NewNebulaState()
	state.Oracles = []solana.PublicKey{solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()}
	state.BFT = 2
	state.Multisig = solana.NewWallet().PublicKey()
	state.GravityContract = solana.NewWallet().PublicKey()
	state.DataType = types.DataTypeString
	state.LastRound = 12
	state.IsInitialized = true
	state.Initializer = solana.NewWallet().PublicKey()
	sub := types.Subscription{
		Sender:           solana.NewWallet().PublicKey(),
		ContractAddress:  solana.NewWallet().PublicKey(),
		MinConfirmations: 2,
		Reward:           77,
	}
	require.NoError(state.Subscribe(commontypes.SubscriptionID{4}, sub))
	_, _, err := state.AddPulse(types.HashValue(valueOf("x")))
	require.NoError(err)

	data := make([]byte, types.StateLen)
	require.NoError(state.Save(data))

	loaded, err := types.LoadState(data)
	require.NoError(err)
	require.Equal(state.Oracles, loaded.Oracles)
	require.Equal(state.BFT, loaded.BFT)
	require.Equal(state.Multisig, loaded.Multisig)
	require.Equal(state.GravityContract, loaded.GravityContract)
	require.Equal(state.DataType, loaded.DataType)
	require.Equal(state.LastRound, loaded.LastRound)
	require.Equal(types.PulseID(1), loaded.LastPulseID)
	require.Equal(state.Initializer, loaded.Initializer)
	got, ok := loaded.Subscriptions.Get(commontypes.SubscriptionID{4})
	require.True(ok)
	require.Equal(sub, got)
	require.True(loaded.HasPulse(valueOf("x")))

	_, err = types.LoadState(make([]byte, types.StateLen))
	require.ErrorIs(err, commontypes.ErrUninitializedAccount)
}
