package testutils

import (
	"testing"

	log "cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/app"
	"github.com/gravityprotocol/gravity-adapter/config"
)

type AppSetupOptions struct {
	TestConfig TestConfig
}

func SetupApp(t *testing.T) *app.GravityApp {
	cfg, err := config.LoadDefaultConfig()
	require.NoError(t, err)

	gravityApp, err := app.NewGravityApp(log.NewTestLogger(t), *cfg)
	require.NoError(t, err)
	return gravityApp
}

// SetAppWithContracts returns an app with a gravity, a nebula, an IB port and
// an LU port deployed and funded test accounts.
func SetAppWithContracts(t *testing.T) (*app.GravityApp, Contracts, TestAccounts) {
	gravityApp := SetupApp(t)

	opts := AppSetupOptions{TestConfig: GetDefaultTestConfig()}
	accounts := SetupTestAccounts(t, opts)
	contracts := setupContracts(t, gravityApp, opts, accounts)
	fundAccounts(t, gravityApp, contracts, &accounts, opts)

	return gravityApp, contracts, accounts
}
