package types_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/x/common/types"
)

func newKeys(n int) []solana.PublicKey {
	keys := make([]solana.PublicKey, n)
	for i := range keys {
		keys[i] = solana.NewWallet().PublicKey()
	}
	return keys
}

func signerInfos(keys []solana.PublicKey, signed ...bool) []*host.AccountInfo {
	infos := make([]*host.AccountInfo, len(keys))
	for i, k := range keys {
		infos[i] = &host.AccountInfo{Key: k, IsSigner: i < len(signed) && signed[i]}
	}
	return infos
}

func TestInitMultisig(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	keys := newKeys(3)

	t.Run("success", func(t *testing.T) {
		acc := &host.AccountInfo{Key: solana.NewWallet().PublicKey(), Owner: programID, Data: make([]byte, types.MultisigLen)}
		require.NoError(t, types.InitMultisig(acc, keys, 3))

		ms, err := types.UnpackMultisig(acc.Data)
		require.NoError(t, err)
		require.True(t, ms.IsInitialized)
		require.Equal(t, uint8(3), ms.M)
		require.Equal(t, uint8(3), ms.N)
		require.Equal(t, keys, ms.Signers[:3])

		require.ErrorIs(t, types.InitMultisig(acc, keys, 3), types.ErrAlreadyInUse)
	})

	t.Run("fail; bad signer counts", func(t *testing.T) {
		acc := &host.AccountInfo{Data: make([]byte, types.MultisigLen)}
		require.ErrorIs(t, types.InitMultisig(acc, nil, 1), types.ErrInvalidNumberOfProvidedSigners)
		require.ErrorIs(t, types.InitMultisig(acc, newKeys(12), 1), types.ErrInvalidNumberOfProvidedSigners)
		require.ErrorIs(t, types.InitMultisig(acc, keys, 0), types.ErrInvalidNumberOfRequiredSigners)
		require.ErrorIs(t, types.InitMultisig(acc, keys, 4), types.ErrInvalidNumberOfRequiredSigners)
	})

	t.Run("rotate", func(t *testing.T) {
		acc := &host.AccountInfo{Data: make([]byte, types.MultisigLen)}
		require.ErrorIs(t, types.RotateMultisig(acc, keys, 3), types.ErrUninitializedAccount)
		require.NoError(t, types.InitMultisig(acc, keys, 3))

		next := newKeys(2)
		require.NoError(t, types.RotateMultisig(acc, next, 2))
		ms, err := types.UnpackMultisig(acc.Data)
		require.NoError(t, err)
		require.Equal(t, next, ms.Signers[:2])
		require.Equal(t, solana.PublicKey{}, ms.Signers[2])
	})
}

func TestValidateOwner(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	keys := newKeys(3)
	msAcc := &host.AccountInfo{Key: solana.NewWallet().PublicKey(), Owner: programID, Data: make([]byte, types.MultisigLen)}
	require.NoError(t, types.InitMultisig(msAcc, keys, 2))

	testCases := []struct {
		name    string
		owner   *host.AccountInfo
		signers []*host.AccountInfo
		err     error
	}{
		{
			name:    "success; threshold met",
			owner:   msAcc,
			signers: signerInfos(keys[:2], true, true),
		},
		{
			name:    "success; all sign",
			owner:   msAcc,
			signers: signerInfos(keys, true, true, true),
		},
		{
			name:    "fail; same signer twice counts once",
			owner:   msAcc,
			signers: signerInfos([]solana.PublicKey{keys[0], keys[0]}, true, true),
			err:     types.ErrMissingRequiredSignature,
		},
		{
			name:    "fail; listed signer did not sign",
			owner:   msAcc,
			signers: signerInfos(keys, true, false, true),
			err:     types.ErrMissingRequiredSignature,
		},
		{
			name:    "fail; below threshold",
			owner:   msAcc,
			signers: signerInfos(keys[:1], true),
			err:     types.ErrMissingRequiredSignature,
		},
		{
			name:    "fail; outsiders do not count",
			owner:   msAcc,
			signers: signerInfos(append(keys[:1:1], newKeys(2)...), true, true, true),
			err:     types.ErrMissingRequiredSignature,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := types.ValidateOwner(programID, msAcc.Key, tc.owner, tc.signers)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("fail; owner mismatch", func(t *testing.T) {
		err := types.ValidateOwner(programID, solana.NewWallet().PublicKey(), msAcc, nil)
		require.ErrorIs(t, err, types.ErrOwnerMismatch)
	})

	t.Run("fail; uninitialized multisig", func(t *testing.T) {
		blank := &host.AccountInfo{Key: solana.NewWallet().PublicKey(), Owner: programID, Data: make([]byte, types.MultisigLen)}
		err := types.ValidateOwner(programID, blank.Key, blank, signerInfos(keys, true, true, true))
		require.ErrorIs(t, err, types.ErrInvalidAccountData)
	})

	t.Run("plain owner must sign", func(t *testing.T) {
		owner := &host.AccountInfo{Key: solana.NewWallet().PublicKey()}
		require.ErrorIs(t, types.ValidateOwner(programID, owner.Key, owner, nil), types.ErrMissingRequiredSignature)
		owner.IsSigner = true
		require.NoError(t, types.ValidateOwner(programID, owner.Key, owner, nil))
	})
}

func TestPDA(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	key, bump, err := types.FindProgramAddress(types.GravitySeed, programID)
	require.NoError(t, err)

	seeds, err := types.ValidatePDA(types.GravitySeed, programID, key)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("gravity"), {bump}}, seeds)

	derived, err := solana.CreateProgramAddress(seeds, programID)
	require.NoError(t, err)
	require.Equal(t, key, derived)

	_, err = types.ValidatePDA(types.IBPortSeed, programID, key)
	require.ErrorIs(t, err, types.ErrInvalidSeeds)
	require.Equal(t, "luport", types.LUPortSeed.String())
}
