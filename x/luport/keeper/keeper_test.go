package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/host/spltoken"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	"github.com/gravityprotocol/gravity-adapter/x/luport/keeper"
	"github.com/gravityprotocol/gravity-adapter/x/luport/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

type testFixture struct {
	ctx context.Context
	rt  *host.Runtime

	programID    solana.PublicKey
	tokenProgram solana.PublicKey
	state        solana.PublicKey
	mint         solana.PublicKey
	vault        solana.PublicKey
	authority    solana.PublicKey
	locker       solana.PublicKey

	oracle      solana.PublicKey
	holder      solana.PublicKey
	holderToken solana.PublicKey
}

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	logger := log.NewTestLogger(t)

	f := &testFixture{
		ctx:          context.Background(),
		rt:           host.NewRuntime(logger),
		programID:    solana.NewWallet().PublicKey(),
		tokenProgram: spltoken.ProgramID(),
		state:        solana.NewWallet().PublicKey(),
		mint:         solana.NewWallet().PublicKey(),
		vault:        solana.NewWallet().PublicKey(),
		oracle:       solana.NewWallet().PublicKey(),
		holder:       solana.NewWallet().PublicKey(),
		holderToken:  solana.NewWallet().PublicKey(),
	}
	f.rt.RegisterProgram(f.programID, keeper.NewKeeper(logger, f.rt))
	f.rt.RegisterProgram(f.tokenProgram, spltoken.NewProgram(logger))

	var err error
	f.authority, _, err = commontypes.FindProgramAddress(commontypes.GravitySeed, f.programID)
	require.NoError(t, err)
	f.locker, _, err = commontypes.FindProgramAddress(commontypes.LUPortSeed, f.programID)
	require.NoError(t, err)

	// the holder is the mint authority of the locked token
	require.NoError(t, f.rt.CreateAccount(f.mint, f.tokenProgram, spltoken.MintLen))
	f.exec(t, f.tokenIx(t, token.NewInitializeMint2Instruction(6, f.holder, solana.PublicKey{}, f.mint).Build()))
	for owner, account := range map[solana.PublicKey]solana.PublicKey{f.holder: f.holderToken, f.authority: f.vault} {
		require.NoError(t, f.rt.CreateAccount(account, f.tokenProgram, spltoken.AccountLen))
		f.exec(t, f.tokenIx(t, token.NewInitializeAccount3Instruction(owner, account, f.mint).Build()))
	}
	f.exec(t, f.tokenIx(t, token.NewMintToInstruction(50_000_000, f.mint, f.holderToken, f.holder, nil).Build()), f.holder)

	require.NoError(t, f.rt.CreateAccount(f.state, f.programID, porttypes.StateLen))
	initializer := solana.NewWallet().PublicKey()
	ix, err := types.NewInitContractInstruction(f.programID, initializer, f.state,
		types.NewMsgInitContract(solana.NewWallet().PublicKey(), f.tokenProgram, f.mint, []solana.PublicKey{f.oracle}))
	require.NoError(t, err)
	f.exec(t, ix, initializer)
	return f
}

func (f *testFixture) tokenIx(t *testing.T, ix *token.Instruction) solana.Instruction {
	t.Helper()
	out, err := porttypes.TokenInstruction(f.tokenProgram, ix)
	require.NoError(t, err)
	return out
}

func (f *testFixture) exec(t *testing.T, ix solana.Instruction, signers ...solana.PublicKey) {
	t.Helper()
	require.NoError(t, f.rt.ExecuteInstruction(f.ctx, ix, signers...))
}

func (f *testFixture) balance(t *testing.T, key solana.PublicKey) uint64 {
	t.Helper()
	_, data, err := f.rt.Account(key)
	require.NoError(t, err)
	acc, err := spltoken.DecodeAccount(data)
	require.NoError(t, err)
	return acc.Amount
}

func (f *testFixture) loadState(t *testing.T) *porttypes.PortState {
	t.Helper()
	_, data, err := f.rt.Account(f.state)
	require.NoError(t, err)
	state, err := porttypes.LoadState(data)
	require.NoError(t, err)
	return state
}

func (f *testFixture) lock(t *testing.T, vault solana.PublicKey, op *porttypes.PortOperation) error {
	t.Helper()
	ix, err := types.NewCreateTransferUnwrapRequestInstruction(f.programID, f.holder, f.state, f.tokenProgram, f.mint, f.holderToken, vault, f.locker,
		porttypes.NewMsgCreateTransferUnwrapRequest(op.SwapID, op.Amount, op.Receiver))
	require.NoError(t, err)
	return f.rt.ExecuteInstruction(f.ctx, ix, f.holder)
}

func (f *testFixture) unlock(op *porttypes.PortOperation, recipient solana.PublicKey) error {
	ix := porttypes.NewAttachValueInstruction(f.programID, op.Pack(), f.oracle, f.state, f.tokenProgram, f.mint, recipient, f.authority, nil,
		solana.Meta(f.vault).WRITE())
	return f.rt.ExecuteInstruction(f.ctx, ix, f.oracle)
}

func TestInitContract(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)

	state := f.loadState(t)
	require.True(state.IsInitialized)
	require.Equal(f.mint, state.TokenMint)
	require.Equal(f.tokenProgram, state.TokenAddress)
	require.Equal([]solana.PublicKey{f.oracle}, state.Oracles)

	t.Run("fail; mint is required", func(t *testing.T) {
		state := solana.NewWallet().PublicKey()
		require.NoError(f.rt.CreateAccount(state, f.programID, porttypes.StateLen))
		ix, err := types.NewInitContractInstruction(f.programID, f.holder, state,
			types.NewMsgInitContract(solana.NewWallet().PublicKey(), f.tokenProgram, solana.PublicKey{}, []solana.PublicKey{f.oracle}))
		require.NoError(err)
		require.ErrorIs(f.rt.ExecuteInstruction(f.ctx, ix, f.holder), porttypes.ErrInvalidTokenMint)
	})
}

func TestLockAndUnlock(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.exec(t, f.tokenIx(t, token.NewApproveInstruction(30_000_000, f.holderToken, f.locker, f.holder, nil).Build()), f.holder)

	receiver := porttypes.ForeignAddress(solana.NewWallet().PublicKey())
	op := porttypes.NewPortOperation(porttypes.ActionConfirm, commontypes.NewID(), 12.5, receiver)

	t.Run("fail; vault of another mint", func(t *testing.T) {
		require.ErrorIs(f.lock(t, f.state, op), porttypes.ErrInvalidTokenMint)
	})

	t.Run("success; lock", func(t *testing.T) {
		require.NoError(f.lock(t, f.vault, op))
		require.Equal(uint64(12_500_000), f.balance(t, f.vault))
		require.Equal(uint64(37_500_000), f.balance(t, f.holderToken))

		request, ok := f.loadState(t).Requests.Get(op.SwapID)
		require.True(ok)
		require.Equal(uint64(12_500_000), request.Amount)
	})

	t.Run("success; unlock", func(t *testing.T) {
		in := porttypes.NewPortOperation(porttypes.ActionUnlock, commontypes.NewID(), 2.5, porttypes.ForeignAddress(f.holderToken))
		require.NoError(f.unlock(in, f.holderToken))
		require.Equal(uint64(10_000_000), f.balance(t, f.vault))
		require.Equal(uint64(40_000_000), f.balance(t, f.holderToken))

		require.ErrorIs(f.unlock(in, f.holderToken), porttypes.ErrInvalidRequestStatus)
	})

	t.Run("fail; unlock above vault balance", func(t *testing.T) {
		in := porttypes.NewPortOperation(porttypes.ActionUnlock, commontypes.NewID(), 11, porttypes.ForeignAddress(f.holderToken))
		require.ErrorIs(f.unlock(in, f.holderToken), spltoken.ErrInsufficientFunds)
		require.False(f.loadState(t).SwapStatus.Contains(in.SwapID))
	})

	t.Run("fail; mint action on lu port", func(t *testing.T) {
		in := porttypes.NewPortOperation(porttypes.ActionMint, commontypes.NewID(), 1, porttypes.ForeignAddress(f.holderToken))
		require.ErrorIs(f.unlock(in, f.holderToken), porttypes.ErrInvalidDataOnAttach)
	})
}

func TestLockRequestsCountLimit(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.exec(t, f.tokenIx(t, token.NewApproveInstruction(50_000_000, f.holderToken, f.locker, f.holder, nil).Build()), f.holder)

	capacity, err := f.loadState(t).RequestCapacity()
	require.NoError(err)
	require.Greater(capacity, types.MaxIdleRequestsCount)

	receiver := porttypes.ForeignAddress(solana.NewWallet().PublicKey())
	for i := 0; i < types.MaxIdleRequestsCount; i++ {
		op := porttypes.NewPortOperation(porttypes.ActionConfirm, commontypes.NewID(), 0.1, receiver)
		require.NoError(f.lock(t, f.vault, op), "request %d", i+1)
	}
	require.Equal(uint64(types.MaxIdleRequestsCount*100_000), f.balance(t, f.vault))

	op := porttypes.NewPortOperation(porttypes.ActionConfirm, commontypes.NewID(), 0.1, receiver)
	require.ErrorIs(f.lock(t, f.vault, op), porttypes.ErrTransferRequestsCountLimit)
	require.Equal(uint64(types.MaxIdleRequestsCount*100_000), f.balance(t, f.vault))
	require.Equal(types.MaxIdleRequestsCount, f.loadState(t).Requests.Len())
}
