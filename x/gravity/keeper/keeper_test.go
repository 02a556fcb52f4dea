package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/host"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/gravity/keeper"
	"github.com/gravityprotocol/gravity-adapter/x/gravity/types"
)

type testFixture struct {
	ctx context.Context
	rt  *host.Runtime
	k   keeper.Keeper

	programID   solana.PublicKey
	initializer solana.PublicKey
	state       solana.PublicKey
	multisig    solana.PublicKey

	a, b, c, d solana.PublicKey
}

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	logger := log.NewTestLogger(t)

	f := &testFixture{
		ctx:         context.Background(),
		rt:          host.NewRuntime(logger),
		k:           keeper.NewKeeper(logger),
		programID:   solana.NewWallet().PublicKey(),
		initializer: solana.NewWallet().PublicKey(),
		state:       solana.NewWallet().PublicKey(),
		multisig:    solana.NewWallet().PublicKey(),
		a:           solana.NewWallet().PublicKey(),
		b:           solana.NewWallet().PublicKey(),
		c:           solana.NewWallet().PublicKey(),
		d:           solana.NewWallet().PublicKey(),
	}
	f.rt.RegisterProgram(f.programID, f.k)
	require.NoError(t, f.rt.CreateAccount(f.state, f.programID, types.StateLen))
	require.NoError(t, f.rt.CreateAccount(f.multisig, f.programID, commontypes.MultisigLen))
	return f
}

func (f *testFixture) init(t *testing.T) {
	t.Helper()
	ix, err := types.NewInitContractInstruction(f.programID, f.initializer, f.state, f.multisig,
		types.NewMsgInitContract([]solana.PublicKey{f.a, f.b, f.c}, 0, 3))
	require.NoError(t, err)
	require.NoError(t, f.rt.ExecuteInstruction(f.ctx, ix, f.initializer))
}

func (f *testFixture) loadState(t *testing.T) *types.GravityState {
	t.Helper()
	_, data, err := f.rt.Account(f.state)
	require.NoError(t, err)
	state, err := types.LoadState(data)
	require.NoError(t, err)
	return state
}

func (f *testFixture) loadMultisig(t *testing.T) *commontypes.Multisig {
	t.Helper()
	_, data, err := f.rt.Account(f.multisig)
	require.NoError(t, err)
	ms, err := commontypes.UnpackMultisig(data)
	require.NoError(t, err)
	return ms
}

func TestInitContract(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)

	f.init(t)

	state := f.loadState(t)
	require.Equal(f.initializer, state.Initializer)
	require.Equal(uint8(3), state.BFT)
	require.Equal([]solana.PublicKey{f.a, f.b, f.c}, state.Consuls)
	require.Equal(uint64(0), state.LastRound)
	require.Equal(f.multisig, state.Multisig)

	ms := f.loadMultisig(t)
	require.True(ms.IsInitialized)
	require.Equal(uint8(3), ms.M)
	require.Equal(uint8(3), ms.N)
	require.Equal([]solana.PublicKey{f.a, f.b, f.c}, ms.Signers[:ms.N])

	t.Run("fail; state already initialized", func(t *testing.T) {
		ix, err := types.NewInitContractInstruction(f.programID, f.initializer, f.state, f.multisig,
			types.NewMsgInitContract([]solana.PublicKey{f.a}, 0, 1))
		require.NoError(err)
		require.ErrorIs(f.rt.ExecuteInstruction(f.ctx, ix, f.initializer), commontypes.ErrAccountAlreadyInitialized)
	})
}

func TestInitContractConsulCapacity(t *testing.T) {
	newConsuls := func(n int) []solana.PublicKey {
		keys := make([]solana.PublicKey, n)
		for i := range keys {
			keys[i] = solana.NewWallet().PublicKey()
		}
		return keys
	}

	t.Run("success; bft fills the state range", func(t *testing.T) {
		f := SetupTest(t)
		consuls := newConsuls(types.MaxConsuls)
		ix, err := types.NewInitContractInstruction(f.programID, f.initializer, f.state, f.multisig,
			types.NewMsgInitContract(consuls, 0, uint8(len(consuls))))
		require.NoError(t, err)
		require.NoError(t, f.rt.ExecuteInstruction(f.ctx, ix, f.initializer))
		require.Equal(t, consuls, f.loadState(t).Consuls)
	})

	t.Run("fail; bft above state capacity", func(t *testing.T) {
		f := SetupTest(t)
		consuls := newConsuls(types.MaxConsuls + 1)
		ix, err := types.NewInitContractInstruction(f.programID, f.initializer, f.state, f.multisig,
			types.NewMsgInitContract(consuls, 0, uint8(len(consuls))))
		require.NoError(t, err)
		require.ErrorIs(t, f.rt.ExecuteInstruction(f.ctx, ix, f.initializer), types.ErrInvalidBFTCount)

		_, data, err := f.rt.Account(f.state)
		require.NoError(t, err)
		require.True(t, commontypes.IsContractEmpty(data))
	})
}

func TestInitContractFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *testFixture) (solana.Instruction, []solana.PublicKey)
		wantErr error
	}{
		{
			name: "fail; initializer did not sign",
			mutate: func(f *testFixture) (solana.Instruction, []solana.PublicKey) {
				msg := types.NewMsgInitContract([]solana.PublicKey{f.a}, 0, 1)
				data, _ := msg.Pack()
				return solana.NewInstruction(f.programID, solana.AccountMetaSlice{
					solana.Meta(f.initializer),
					solana.Meta(f.state).WRITE(),
					solana.Meta(f.multisig).WRITE(),
				}, data), nil
			},
			wantErr: commontypes.ErrMissingRequiredSignature,
		},
		{
			name: "fail; bft does not match consul count",
			mutate: func(f *testFixture) (solana.Instruction, []solana.PublicKey) {
				data := []byte{types.InitContractTag, 0}
				return solana.NewInstruction(f.programID, solana.AccountMetaSlice{
					solana.Meta(f.initializer).SIGNER(),
					solana.Meta(f.state).WRITE(),
					solana.Meta(f.multisig).WRITE(),
				}, append(data, make([]byte, 8)...)), []solana.PublicKey{f.initializer}
			},
			wantErr: types.ErrInvalidBFTCount,
		},
		{
			name: "fail; truncated consul list",
			mutate: func(f *testFixture) (solana.Instruction, []solana.PublicKey) {
				data, _ := types.NewMsgInitContract([]solana.PublicKey{f.a, f.b}, 0, 2).Pack()
				return solana.NewInstruction(f.programID, solana.AccountMetaSlice{
					solana.Meta(f.initializer).SIGNER(),
					solana.Meta(f.state).WRITE(),
					solana.Meta(f.multisig).WRITE(),
				}, data[:len(data)-1]), []solana.PublicKey{f.initializer}
			},
			wantErr: commontypes.ErrInvalidInstruction,
		},
		{
			name: "fail; unknown tag",
			mutate: func(f *testFixture) (solana.Instruction, []solana.PublicKey) {
				return solana.NewInstruction(f.programID, solana.AccountMetaSlice{
					solana.Meta(f.initializer).SIGNER(),
				}, []byte{7}), []solana.PublicKey{f.initializer}
			},
			wantErr: types.ErrInvalidInstruction,
		},
		{
			name: "fail; missing multisig account",
			mutate: func(f *testFixture) (solana.Instruction, []solana.PublicKey) {
				data, _ := types.NewMsgInitContract([]solana.PublicKey{f.a}, 0, 1).Pack()
				return solana.NewInstruction(f.programID, solana.AccountMetaSlice{
					solana.Meta(f.initializer).SIGNER(),
					solana.Meta(f.state).WRITE(),
				}, data), []solana.PublicKey{f.initializer}
			},
			wantErr: commontypes.ErrNotEnoughAccountKeys,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := SetupTest(t)
			ix, signers := tc.mutate(f)
			require.ErrorIs(t, f.rt.ExecuteInstruction(f.ctx, ix, signers...), tc.wantErr)

			_, data, err := f.rt.Account(f.state)
			require.NoError(t, err)
			require.True(t, commontypes.IsContractEmpty(data))
		})
	}
}

func TestUpdateConsuls(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.init(t)

	update := func(round uint64, signers ...solana.PublicKey) error {
		ix, err := types.NewUpdateConsulsInstruction(f.programID, f.initializer, f.state, f.multisig,
			signers, types.NewMsgUpdateConsuls([]solana.PublicKey{f.a, f.b, f.d}, round))
		require.NoError(err)
		return f.rt.ExecuteInstruction(f.ctx, ix, append([]solana.PublicKey{f.initializer}, signers...)...)
	}

	t.Run("success; three consuls sign round 1", func(t *testing.T) {
		require.NoError(update(1, f.a, f.b, f.c))

		state := f.loadState(t)
		require.Equal([]solana.PublicKey{f.a, f.b, f.d}, state.Consuls)
		require.Equal(uint64(1), state.LastRound)

		ms := f.loadMultisig(t)
		require.Equal([]solana.PublicKey{f.a, f.b, f.d}, ms.Signers[:ms.N])
	})

	t.Run("fail; repeated round", func(t *testing.T) {
		require.ErrorIs(update(1, f.a, f.b, f.d), types.ErrInputRoundMismatch)
	})

	t.Run("fail; only one consul signs", func(t *testing.T) {
		require.ErrorIs(update(2, f.a), types.ErrInvalidBFTCount)
	})

	t.Run("fail; rotated out consul signs", func(t *testing.T) {
		require.ErrorIs(update(2, f.a, f.b, f.c), types.ErrInvalidBFTCount)
	})

	t.Run("fail; consul listed without signature", func(t *testing.T) {
		data, err := types.NewMsgUpdateConsuls([]solana.PublicKey{f.a, f.b, f.d}, 2).Pack()
		require.NoError(err)
		ix := solana.NewInstruction(f.programID, solana.AccountMetaSlice{
			solana.Meta(f.initializer).SIGNER(),
			solana.Meta(f.state).WRITE(),
			solana.Meta(f.multisig).WRITE(),
			solana.Meta(f.a).SIGNER(),
			solana.Meta(f.b),
			solana.Meta(f.d),
		}, data)
		require.ErrorIs(f.rt.ExecuteInstruction(f.ctx, ix, f.initializer, f.a), types.ErrInvalidBFTCount)
	})

	t.Run("fail; same consul repeated", func(t *testing.T) {
		require.ErrorIs(update(2, f.a, f.a, f.a), types.ErrInvalidBFTCount)
	})

	t.Run("success; later round", func(t *testing.T) {
		require.NoError(update(5, f.d, f.b, f.a))
		require.Equal(uint64(5), f.loadState(t).LastRound)
	})
}

func TestUpdateConsulsUninitialized(t *testing.T) {
	f := SetupTest(t)

	ix, err := types.NewUpdateConsulsInstruction(f.programID, f.initializer, f.state, f.multisig,
		[]solana.PublicKey{f.a}, types.NewMsgUpdateConsuls([]solana.PublicKey{f.a}, 1))
	require.NoError(t, err)
	require.ErrorIs(t, f.rt.ExecuteInstruction(f.ctx, ix, f.initializer, f.a), commontypes.ErrUninitializedAccount)
}
