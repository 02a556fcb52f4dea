package app

import (
	"context"

	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	gravitytypes "github.com/gravityprotocol/gravity-adapter/x/gravity/types"
	ibporttypes "github.com/gravityprotocol/gravity-adapter/x/ibport/types"
	luporttypes "github.com/gravityprotocol/gravity-adapter/x/luport/types"
	nebulatypes "github.com/gravityprotocol/gravity-adapter/x/nebula/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// GravityDeployment locates an initialized gravity contract.
type GravityDeployment struct {
	State    solana.PublicKey
	Multisig solana.PublicKey
}

// NebulaDeployment locates an initialized nebula.
type NebulaDeployment struct {
	State    solana.PublicKey
	Multisig solana.PublicKey
	Oracles  []solana.PublicKey
}

// PortDeployment locates an initialized IB or LU port.
type PortDeployment struct {
	ProgramID solana.PublicKey
	State     solana.PublicKey
	Mint      solana.PublicKey
	// Authority is the port PDA that owns the mint (IB) or the vault (LU).
	Authority solana.PublicKey
	// Vault holds locked tokens of an LU port.
	Vault solana.PublicKey
}

// DeployGravity allocates and initializes a gravity contract.
func (app *GravityApp) DeployGravity(ctx context.Context, initializer solana.PublicKey, consuls []solana.PublicKey, bft uint8, round uint64) (*GravityDeployment, error) {
	d := &GravityDeployment{
		State:    solana.NewWallet().PublicKey(),
		Multisig: solana.NewWallet().PublicKey(),
	}
	if err := app.Runtime.CreateAccount(d.State, app.Programs.Gravity, gravitytypes.StateLen); err != nil {
		return nil, err
	}
	if err := app.Runtime.CreateAccount(d.Multisig, app.Programs.Gravity, commontypes.MultisigLen); err != nil {
		return nil, err
	}

	ix, err := gravitytypes.NewInitContractInstruction(app.Programs.Gravity, initializer, d.State, d.Multisig,
		gravitytypes.NewMsgInitContract(consuls, round, bft))
	if err != nil {
		return nil, err
	}
	if err := app.Runtime.ExecuteInstruction(ctx, ix, initializer); err != nil {
		return nil, err
	}
	return d, nil
}

// DeployNebula allocates and initializes a nebula bound to gravity.
func (app *GravityApp) DeployNebula(ctx context.Context, initializer, gravity solana.PublicKey, oracles []solana.PublicKey, dataType nebulatypes.DataType) (*NebulaDeployment, error) {
	d := &NebulaDeployment{
		State:    solana.NewWallet().PublicKey(),
		Multisig: solana.NewWallet().PublicKey(),
		Oracles:  oracles,
	}
	if err := app.Runtime.CreateAccount(d.State, app.Programs.Nebula, nebulatypes.StateLen); err != nil {
		return nil, err
	}
	if err := app.Runtime.CreateAccount(d.Multisig, app.Programs.Nebula, commontypes.MultisigLen); err != nil {
		return nil, err
	}

	ix, err := nebulatypes.NewInitContractInstruction(app.Programs.Nebula, initializer, d.State, d.Multisig,
		nebulatypes.NewMsgInitContract(dataType, gravity, oracles, uint8(len(oracles))))
	if err != nil {
		return nil, err
	}
	if err := app.Runtime.ExecuteInstruction(ctx, ix, initializer); err != nil {
		return nil, err
	}
	return d, nil
}

// DeployIBPort creates a mint owned by the IB port and initializes the port.
func (app *GravityApp) DeployIBPort(ctx context.Context, initializer, nebula solana.PublicKey, oracles []solana.PublicKey, decimals uint8) (*PortDeployment, error) {
	authority, err := Authority(commontypes.GravitySeed, app.Programs.IBPort)
	if err != nil {
		return nil, err
	}
	d := &PortDeployment{
		ProgramID: app.Programs.IBPort,
		State:     solana.NewWallet().PublicKey(),
		Mint:      solana.NewWallet().PublicKey(),
		Authority: authority,
	}
	if err := app.CreateMint(ctx, d.Mint, authority, decimals); err != nil {
		return nil, err
	}
	if err := app.Runtime.CreateAccount(d.State, app.Programs.IBPort, porttypes.StateLen); err != nil {
		return nil, err
	}

	ix, err := ibporttypes.NewInitContractInstruction(app.Programs.IBPort, initializer, d.State, &d.Mint,
		ibporttypes.NewMsgInitContract(nebula, app.Programs.Token, oracles))
	if err != nil {
		return nil, err
	}
	if err := app.Runtime.ExecuteInstruction(ctx, ix, initializer); err != nil {
		return nil, err
	}
	return d, nil
}

// DeployLUPort creates the vault of an existing mint and initializes the port.
func (app *GravityApp) DeployLUPort(ctx context.Context, initializer, nebula, mint solana.PublicKey, oracles []solana.PublicKey) (*PortDeployment, error) {
	authority, err := Authority(commontypes.GravitySeed, app.Programs.LUPort)
	if err != nil {
		return nil, err
	}
	d := &PortDeployment{
		ProgramID: app.Programs.LUPort,
		State:     solana.NewWallet().PublicKey(),
		Mint:      mint,
		Authority: authority,
		Vault:     solana.NewWallet().PublicKey(),
	}
	if err := app.CreateTokenAccount(ctx, d.Vault, mint, authority); err != nil {
		return nil, err
	}
	if err := app.Runtime.CreateAccount(d.State, app.Programs.LUPort, porttypes.StateLen); err != nil {
		return nil, err
	}

	ix, err := luporttypes.NewInitContractInstruction(app.Programs.LUPort, initializer, d.State,
		luporttypes.NewMsgInitContract(nebula, app.Programs.Token, mint, oracles))
	if err != nil {
		return nil, err
	}
	if err := app.Runtime.ExecuteInstruction(ctx, ix, initializer); err != nil {
		return nil, err
	}
	return d, nil
}
