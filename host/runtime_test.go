package host_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/log"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/host"
)

var errBoom = errors.New("boom")

// writer sets the first byte of every writable account it owns to input[0].
func writer() host.Program {
	return host.ProgramFunc(func(_ context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, input []byte) error {
		if len(input) > 0 && input[0] == 0xff {
			return errBoom
		}
		for _, acc := range accounts {
			if acc.IsWritable && acc.Owner.Equals(programID) && len(acc.Data) > 0 {
				acc.Data[0] = input[0]
			}
		}
		return nil
	})
}

func newRuntime(t *testing.T, opts ...host.Option) *host.Runtime {
	return host.NewRuntime(log.NewTestLogger(t), opts...)
}

func TestExecute_CommitsOnSuccess(t *testing.T) {
	require := require.New(t)
	rt := newRuntime(t)

	programID := solana.NewWallet().PublicKey()
	state := solana.NewWallet().PublicKey()
	signer := solana.NewWallet().PublicKey()
	rt.RegisterProgram(programID, writer())
	require.NoError(rt.CreateAccount(state, programID, 4))

	ix := solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.Meta(state).WRITE(),
		solana.Meta(signer).SIGNER(),
	}, []byte{7})
	require.NoError(rt.ExecuteInstruction(context.Background(), ix, signer))

	owner, data, err := rt.Account(state)
	require.NoError(err)
	require.Equal(programID, owner)
	require.Equal([]byte{7, 0, 0, 0}, data)
}

func TestExecute_RollsBackOnFailure(t *testing.T) {
	require := require.New(t)
	rt := newRuntime(t)

	programID := solana.NewWallet().PublicKey()
	state := solana.NewWallet().PublicKey()
	rt.RegisterProgram(programID, writer())
	require.NoError(rt.CreateAccount(state, programID, 2))

	tx := host.NewTransaction(nil,
		solana.NewInstruction(programID, solana.AccountMetaSlice{solana.Meta(state).WRITE()}, []byte{1}),
		solana.NewInstruction(programID, solana.AccountMetaSlice{solana.Meta(state).WRITE()}, []byte{0xff}),
	)
	err := rt.Execute(context.Background(), tx)
	require.ErrorIs(err, errBoom)

	_, data, err := rt.Account(state)
	require.NoError(err)
	require.Equal([]byte{0, 0}, data)
}

func TestExecute_Errors(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	foreign := solana.NewWallet().PublicKey()
	state := solana.NewWallet().PublicKey()
	signer := solana.NewWallet().PublicKey()

	testCases := []struct {
		name    string
		tx      host.Transaction
		program host.Program
		err     error
	}{
		{
			name: "fail; empty transaction",
			tx:   host.NewTransaction(nil),
			err:  host.ErrEmptyTransaction,
		},
		{
			name: "fail; unknown program",
			tx: host.NewTransaction(nil,
				solana.NewInstruction(solana.NewWallet().PublicKey(), solana.AccountMetaSlice{}, nil)),
			err: host.ErrProgramNotFound,
		},
		{
			name: "fail; missing signature",
			tx: host.NewTransaction(nil,
				solana.NewInstruction(programID, solana.AccountMetaSlice{solana.Meta(signer).SIGNER()}, []byte{1})),
			err: host.ErrMissingSignature,
		},
		{
			name: "fail; modifies foreign account",
			tx: host.NewTransaction(nil,
				solana.NewInstruction(programID, solana.AccountMetaSlice{solana.Meta(foreign).WRITE()}, []byte{1})),
			program: host.ProgramFunc(func(_ context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, _ []byte) error {
				accounts[0].Data[0] = 9
				return nil
			}),
			err: host.ErrExternalAccountDataModified,
		},
		{
			name: "fail; modifies readonly account",
			tx: host.NewTransaction(nil,
				solana.NewInstruction(programID, solana.AccountMetaSlice{solana.Meta(state)}, []byte{1})),
			program: host.ProgramFunc(func(_ context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, _ []byte) error {
				accounts[0].Data[0] = 9
				return nil
			}),
			err: host.ErrReadonlyDataModified,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rt := newRuntime(t)
			program := tc.program
			if program == nil {
				program = writer()
			}
			rt.RegisterProgram(programID, program)
			rt.SetAccount(state, programID, []byte{0})
			rt.SetAccount(foreign, solana.SystemProgramID, []byte{0})

			err := rt.Execute(context.Background(), tc.tx)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestInvokeSigned(t *testing.T) {
	callerID := solana.NewWallet().PublicKey()
	calleeID := solana.NewWallet().PublicKey()
	target := solana.NewWallet().PublicKey()
	seeds := [][]byte{[]byte("authority")}
	pda, bump, err := solana.FindProgramAddress(seeds, callerID)
	require.NoError(t, err)
	signerSeeds := [][]byte{seeds[0], {bump}}

	// callee requires pda to sign and writes target
	callee := host.ProgramFunc(func(_ context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, input []byte) error {
		auth, ok := host.FindAccount(accounts, pda)
		if !ok || !auth.IsSigner {
			return host.ErrMissingSignature
		}
		acc, _ := host.FindAccount(accounts, target)
		acc.Data[0] = input[0]
		return nil
	})

	t.Run("success; program address signs", func(t *testing.T) {
		require := require.New(t)
		rt := newRuntime(t)
		rt.RegisterProgram(calleeID, callee)
		rt.RegisterProgram(callerID, host.ProgramFunc(func(ctx context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, _ []byte) error {
			require.Equal(1, host.CallDepth(ctx))
			ix := solana.NewInstruction(calleeID, solana.AccountMetaSlice{
				solana.Meta(target).WRITE(),
				solana.Meta(pda).SIGNER(),
			}, []byte{5})
			return rt.InvokeSigned(ctx, ix, accounts, signerSeeds)
		}))
		rt.SetAccount(target, calleeID, []byte{0})

		ix := solana.NewInstruction(callerID, solana.AccountMetaSlice{
			solana.Meta(target).WRITE(),
			solana.Meta(pda),
			solana.Meta(calleeID),
		}, nil)
		require.NoError(rt.ExecuteInstruction(context.Background(), ix))

		_, data, err := rt.Account(target)
		require.NoError(err)
		require.Equal([]byte{5}, data)
	})

	t.Run("fail; unsigned program address", func(t *testing.T) {
		rt := newRuntime(t)
		rt.RegisterProgram(calleeID, callee)
		rt.RegisterProgram(callerID, host.ProgramFunc(func(ctx context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, _ []byte) error {
			ix := solana.NewInstruction(calleeID, solana.AccountMetaSlice{
				solana.Meta(target).WRITE(),
				solana.Meta(pda).SIGNER(),
			}, []byte{5})
			return rt.InvokeSigned(ctx, ix, accounts)
		}))
		rt.SetAccount(target, calleeID, []byte{0})

		ix := solana.NewInstruction(callerID, solana.AccountMetaSlice{
			solana.Meta(target).WRITE(),
			solana.Meta(pda),
		}, nil)
		err := rt.ExecuteInstruction(context.Background(), ix)
		require.ErrorIs(t, err, host.ErrPrivilegeEscalation)
	})

	t.Run("fail; writable escalation", func(t *testing.T) {
		rt := newRuntime(t)
		rt.RegisterProgram(calleeID, callee)
		rt.RegisterProgram(callerID, host.ProgramFunc(func(ctx context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, _ []byte) error {
			ix := solana.NewInstruction(calleeID, solana.AccountMetaSlice{
				solana.Meta(target).WRITE(),
				solana.Meta(pda).SIGNER(),
			}, []byte{5})
			return rt.InvokeSigned(ctx, ix, accounts, signerSeeds)
		}))
		rt.SetAccount(target, calleeID, []byte{0})

		ix := solana.NewInstruction(callerID, solana.AccountMetaSlice{
			solana.Meta(target),
			solana.Meta(pda),
		}, nil)
		err := rt.ExecuteInstruction(context.Background(), ix)
		require.ErrorIs(t, err, host.ErrPrivilegeEscalation)
	})

	t.Run("fail; outside a transaction", func(t *testing.T) {
		rt := newRuntime(t)
		err := rt.InvokeSigned(context.Background(), solana.NewInstruction(calleeID, solana.AccountMetaSlice{}, nil), nil)
		require.ErrorIs(t, err, host.ErrNoActiveTransaction)
	})
}

func TestInvokeSigned_CallDepth(t *testing.T) {
	rt := newRuntime(t, host.WithMaxCallDepth(2))
	programID := solana.NewWallet().PublicKey()

	// recursive self invocation
	rt.RegisterProgram(programID, host.ProgramFunc(func(ctx context.Context, programID solana.PublicKey, accounts []*host.AccountInfo, _ []byte) error {
		return rt.InvokeSigned(ctx, solana.NewInstruction(programID, solana.AccountMetaSlice{}, nil), accounts)
	}))

	err := rt.ExecuteInstruction(context.Background(), solana.NewInstruction(programID, solana.AccountMetaSlice{}, nil))
	require.ErrorIs(t, err, host.ErrCallDepthExceeded)
}

func TestExecuteBatch(t *testing.T) {
	require := require.New(t)
	rt := newRuntime(t, host.WithParallelism(8))

	programID := solana.NewWallet().PublicKey()
	counter := solana.NewWallet().PublicKey()
	rt.RegisterProgram(programID, host.ProgramFunc(func(_ context.Context, _ solana.PublicKey, accounts []*host.AccountInfo, _ []byte) error {
		accounts[0].Data[0]++
		return nil
	}))
	require.NoError(rt.CreateAccount(counter, programID, 1))

	txs := make([]host.Transaction, 50)
	for i := range txs {
		txs[i] = host.NewTransaction(nil,
			solana.NewInstruction(programID, solana.AccountMetaSlice{solana.Meta(counter).WRITE()}, nil))
	}

	for _, err := range rt.ExecuteBatch(context.Background(), txs) {
		require.NoError(err)
	}

	_, data, err := rt.Account(counter)
	require.NoError(err)
	require.Equal(byte(50), data[0])
}

func TestExecuteBatch_ResultsByIndex(t *testing.T) {
	require := require.New(t)
	rt := newRuntime(t, host.WithParallelism(4))

	programID := solana.NewWallet().PublicKey()
	rt.RegisterProgram(programID, writer())

	txs := make([]host.Transaction, 20)
	for i := range txs {
		key := solana.NewWallet().PublicKey()
		require.NoError(rt.CreateAccount(key, programID, 1))
		input := byte(i)
		if i%2 == 1 {
			input = 0xff
		}
		txs[i] = host.NewTransaction(nil,
			solana.NewInstruction(programID, solana.AccountMetaSlice{solana.Meta(key).WRITE()}, []byte{input}))
	}

	results := rt.ExecuteBatch(context.Background(), txs)
	require.Len(results, len(txs))
	for i, err := range results {
		if i%2 == 1 {
			require.ErrorIs(err, errBoom, "tx %d", i)
		} else {
			require.NoError(err, "tx %d", i)
		}
	}
}

func TestCreateAccount_Exists(t *testing.T) {
	rt := newRuntime(t)
	key := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()

	require.NoError(t, rt.CreateAccount(key, owner, 8))
	require.ErrorIs(t, rt.CreateAccount(key, owner, 8), host.ErrAccountExists)
}
