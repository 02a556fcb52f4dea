package testutils

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/gravityprotocol/gravity-adapter/app"
	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	nebulatypes "github.com/gravityprotocol/gravity-adapter/x/nebula/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// OperationValue pads a port operation into a nebula value.
func OperationValue(op *porttypes.PortOperation) nebulatypes.DataHash {
	var value nebulatypes.DataHash
	copy(value[:], op.Pack())
	return value
}

// NebulaState reads the state of a deployed nebula.
func NebulaState(t *testing.T, gravityApp *app.GravityApp, nebula *app.NebulaDeployment) *nebulatypes.NebulaState {
	t.Helper()
	_, data, err := gravityApp.Runtime.Account(nebula.State)
	require.NoError(t, err)
	state, err := nebulatypes.LoadState(data)
	require.NoError(t, err)
	return state
}

// CommitPulse commits the hash of value with every nebula oracle signing and
// returns the pulse id value must be dispatched with.
func CommitPulse(t *testing.T, gravityApp *app.GravityApp, nebula *app.NebulaDeployment, value nebulatypes.DataHash) nebulatypes.PulseID {
	t.Helper()
	ix, err := nebulatypes.NewSendHashValueInstruction(gravityApp.Programs.Nebula, nebula.Oracles[0], nebula.State, nebula.Multisig,
		nebula.Oracles, nebulatypes.NewMsgSendHashValue(nebulatypes.HashValue(value)))
	require.NoError(t, err)
	require.NoError(t, gravityApp.Runtime.ExecuteInstruction(context.Background(), ix, nebula.Oracles...))
	return NebulaState(t, gravityApp, nebula).LastPulseID - 1
}

// Dispatch sends a committed value from nebula to the subscribed port.
func Dispatch(
	gravityApp *app.GravityApp,
	nebula *app.NebulaDeployment,
	port *app.PortDeployment,
	subID commontypes.SubscriptionID,
	pulseID nebulatypes.PulseID,
	value nebulatypes.DataHash,
	recipient solana.PublicKey,
) error {
	dispatch := nebulatypes.DispatchAccounts{
		TokenProgram:      gravityApp.Programs.Token,
		SubscriberProgram: port.ProgramID,
		SubscriberData:    port.State,
		Mint:              port.Mint,
		Recipient:         recipient,
		PDA:               port.Authority,
	}
	if !port.Vault.IsZero() {
		dispatch.Passthrough = append(dispatch.Passthrough, solana.Meta(port.Vault).WRITE())
	}
	ix, err := nebulatypes.NewSendValueToSubsInstruction(gravityApp.Programs.Nebula, nebula.Oracles[0], nebula.State, nebula.Multisig,
		dispatch, nebulatypes.NewMsgSendValueToSubs(value, nebulatypes.DataTypeBytes, pulseID, subID))
	if err != nil {
		return err
	}
	return gravityApp.Runtime.ExecuteInstruction(context.Background(), ix, nebula.Oracles[0])
}
