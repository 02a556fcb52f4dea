package testutils

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/app"
)

type TestAccounts struct {
	Initializer solana.PublicKey
	Consuls     []solana.PublicKey
	Oracles     []solana.PublicKey
	User        solana.PublicKey

	// token accounts of User
	IBToken solana.PublicKey
	LUToken solana.PublicKey
}

func SetupTestAccounts(t *testing.T, opt AppSetupOptions) TestAccounts {
	t.Helper()
	accounts := TestAccounts{
		Initializer: NewKey(),
		User:        NewKey(),
		IBToken:     NewKey(),
		LUToken:     NewKey(),
	}
	accounts.Consuls = NewKeys(opt.TestConfig.ConsulCount)
	accounts.Oracles = NewKeys(opt.TestConfig.OracleCount)
	return accounts
}

func fundAccounts(t *testing.T, gravityApp *app.GravityApp, contracts Contracts, accounts *TestAccounts, opt AppSetupOptions) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, gravityApp.CreateTokenAccount(ctx, accounts.IBToken, contracts.IBPort.Mint, accounts.User))
	require.NoError(t, gravityApp.CreateTokenAccount(ctx, accounts.LUToken, contracts.LUPort.Mint, accounts.User))
	require.NoError(t, gravityApp.MintTo(ctx, contracts.LUPort.Mint, accounts.LUToken, accounts.Initializer, opt.TestConfig.LockedSupply))
}

func NewKey() solana.PublicKey {
	return solana.NewWallet().PublicKey()
}

func NewKeys(n int) []solana.PublicKey {
	keys := make([]solana.PublicKey, n)
	for i := range keys {
		keys[i] = NewKey()
	}
	return keys
}
