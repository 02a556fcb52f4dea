package testutils

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/app"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	nebulatypes "github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

type Contracts struct {
	Gravity *app.GravityDeployment
	Nebula  *app.NebulaDeployment
	IBPort  *app.PortDeployment
	LUPort  *app.PortDeployment

	// subscriptions of the ports on Nebula
	IBSubscription commontypes.SubscriptionID
	LUSubscription commontypes.SubscriptionID
}

func setupContracts(t *testing.T, gravityApp *app.GravityApp, opt AppSetupOptions, accounts TestAccounts) Contracts {
	t.Helper()
	ctx := context.Background()
	var (
		c   Contracts
		err error
	)

	c.Gravity, err = gravityApp.DeployGravity(ctx, accounts.Initializer, accounts.Consuls, uint8(len(accounts.Consuls)), 0)
	require.NoError(t, err)

	c.Nebula, err = gravityApp.DeployNebula(ctx, accounts.Initializer, c.Gravity.State, accounts.Oracles, nebulatypes.DataTypeBytes)
	require.NoError(t, err)

	c.IBPort, err = gravityApp.DeployIBPort(ctx, accounts.Initializer, c.Nebula.State, accounts.Oracles, opt.TestConfig.Decimals)
	require.NoError(t, err)

	luMint := NewKey()
	require.NoError(t, gravityApp.CreateMint(ctx, luMint, accounts.Initializer, opt.TestConfig.Decimals))
	c.LUPort, err = gravityApp.DeployLUPort(ctx, accounts.Initializer, c.Nebula.State, luMint, accounts.Oracles)
	require.NoError(t, err)

	c.IBSubscription = Subscribe(t, gravityApp, c.Nebula, accounts.Initializer, gravityApp.Programs.IBPort)
	c.LUSubscription = Subscribe(t, gravityApp, c.Nebula, accounts.Initializer, gravityApp.Programs.LUPort)
	return c
}

// Subscribe registers program on nebula and returns the subscription id.
func Subscribe(t *testing.T, gravityApp *app.GravityApp, nebula *app.NebulaDeployment, sender, program solana.PublicKey) commontypes.SubscriptionID {
	t.Helper()
	id := commontypes.NewID()
	ix, err := nebulatypes.NewSubscribeInstruction(gravityApp.Programs.Nebula, sender, nebula.State,
		nebulatypes.NewMsgSubscribe(program, 1, 0, id))
	require.NoError(t, err)
	require.NoError(t, gravityApp.Runtime.ExecuteInstruction(context.Background(), ix, sender))
	return id
}
