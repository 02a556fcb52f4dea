package app

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	commontypes "github.com/gravityprotocol/gravity-adapter/x/common/types"
	gravitytypes "github.com/gravityprotocol/gravity-adapter/x/gravity/types"
	ibporttypes "github.com/gravityprotocol/gravity-adapter/x/ibport/types"
	nebulatypes "github.com/gravityprotocol/gravity-adapter/x/nebula/types"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// SimulationStep is the observable state after one step of a simulation.
type SimulationStep struct {
	Name    string
	Balance uint64
	Supply  uint64
	Pending int
}

// BridgeSimulation drives a full IB port lifecycle on an app: an inbound
// transfer minted through a nebula pulse, an outbound unwrap and its
// confirmation.
type BridgeSimulation struct {
	app *GravityApp

	Decimals uint8
	Inbound  float64
	Outbound float64

	Initializer solana.PublicKey
	Oracles     []solana.PublicKey
	User        solana.PublicKey
	UserToken   solana.PublicKey

	Gravity *GravityDeployment
	Nebula  *NebulaDeployment
	Port    *PortDeployment

	Steps []SimulationStep
}

// NewBridgeSimulation creates a simulation with fresh keys.
func NewBridgeSimulation(app *GravityApp, oracles int, inbound, outbound float64) *BridgeSimulation {
	s := &BridgeSimulation{
		app:         app,
		Decimals:    porttypes.DefaultDecimals,
		Inbound:     inbound,
		Outbound:    outbound,
		Initializer: solana.NewWallet().PublicKey(),
		User:        solana.NewWallet().PublicKey(),
		UserToken:   solana.NewWallet().PublicKey(),
	}
	for i := 0; i < oracles; i++ {
		s.Oracles = append(s.Oracles, solana.NewWallet().PublicKey())
	}
	return s
}

// Run executes every step, recording state after each.
func (s *BridgeSimulation) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"deploy", s.deploy},
		{"pulse", s.pulse},
		{"mint", s.mint},
		{"unwrap", s.unwrap},
		{"attach confirmation", s.attachConfirmation},
		{"confirm", s.confirm},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		if err := s.record(step.name); err != nil {
			return err
		}
	}
	return nil
}

func (s *BridgeSimulation) record(name string) error {
	step := SimulationStep{Name: name}
	if s.Port == nil {
		s.Steps = append(s.Steps, step)
		return nil
	}
	mint, err := s.app.MintInfo(s.Port.Mint)
	if err != nil {
		return err
	}
	step.Supply = mint.Supply
	if step.Balance, err = s.app.TokenBalance(s.UserToken); err != nil {
		return err
	}
	state, err := s.app.PortState(s.Port.State)
	if err != nil {
		return err
	}
	step.Pending = state.Requests.Len()
	s.Steps = append(s.Steps, step)
	return nil
}

func (s *BridgeSimulation) deploy(ctx context.Context) (err error) {
	a := s.app
	consuls := s.Oracles
	if len(consuls) > gravitytypes.MaxConsuls {
		consuls = consuls[:gravitytypes.MaxConsuls]
	}
	if s.Gravity, err = a.DeployGravity(ctx, s.Initializer, consuls, uint8(len(consuls)), 0); err != nil {
		return err
	}
	if s.Nebula, err = a.DeployNebula(ctx, s.Initializer, s.Gravity.State, s.Oracles, nebulatypes.DataTypeBytes); err != nil {
		return err
	}
	if s.Port, err = a.DeployIBPort(ctx, s.Initializer, s.Nebula.State, s.Oracles, s.Decimals); err != nil {
		return err
	}
	if err := a.CreateTokenAccount(ctx, s.UserToken, s.Port.Mint, s.User); err != nil {
		return err
	}

	ix, err := nebulatypes.NewSubscribeInstruction(a.Programs.Nebula, s.Initializer, s.Nebula.State,
		nebulatypes.NewMsgSubscribe(a.Programs.IBPort, 1, 0, s.subscriptionID()))
	if err != nil {
		return err
	}
	return a.Runtime.ExecuteInstruction(ctx, ix, s.Initializer)
}

func (s *BridgeSimulation) subscriptionID() commontypes.SubscriptionID {
	var id commontypes.SubscriptionID
	copy(id[:], s.Port.State[:])
	return id
}

func (s *BridgeSimulation) inboundValue() nebulatypes.DataHash {
	var id porttypes.SwapID
	copy(id[:], s.UserToken[:])
	op := porttypes.NewPortOperation(porttypes.ActionMint, id, s.Inbound, porttypes.ForeignAddress(s.UserToken))

	var value nebulatypes.DataHash
	copy(value[:], op.Pack())
	return value
}

func (s *BridgeSimulation) pulse(ctx context.Context) error {
	a := s.app
	ix, err := nebulatypes.NewSendHashValueInstruction(a.Programs.Nebula, s.Oracles[0], s.Nebula.State, s.Nebula.Multisig, s.Oracles,
		nebulatypes.NewMsgSendHashValue(nebulatypes.HashValue(s.inboundValue())))
	if err != nil {
		return err
	}
	return a.Runtime.ExecuteInstruction(ctx, ix, s.Oracles...)
}

func (s *BridgeSimulation) mint(ctx context.Context) error {
	a := s.app
	_, data, err := a.Runtime.Account(s.Nebula.State)
	if err != nil {
		return err
	}
	state, err := nebulatypes.LoadState(data)
	if err != nil {
		return err
	}

	ix, err := nebulatypes.NewSendValueToSubsInstruction(a.Programs.Nebula, s.Oracles[0], s.Nebula.State, s.Nebula.Multisig,
		nebulatypes.DispatchAccounts{
			TokenProgram:      a.Programs.Token,
			SubscriberProgram: a.Programs.IBPort,
			SubscriberData:    s.Port.State,
			Mint:              s.Port.Mint,
			Recipient:         s.UserToken,
			PDA:               s.Port.Authority,
		},
		nebulatypes.NewMsgSendValueToSubs(s.inboundValue(), nebulatypes.DataTypeBytes, state.LastPulseID-1, s.subscriptionID()))
	if err != nil {
		return err
	}
	return a.Runtime.ExecuteInstruction(ctx, ix, s.Oracles[0])
}

func (s *BridgeSimulation) outboundOperation(action byte) *porttypes.PortOperation {
	var id porttypes.SwapID
	copy(id[:], s.User[:])
	return porttypes.NewPortOperation(action, id, s.Outbound, porttypes.ForeignAddress(s.Initializer))
}

func (s *BridgeSimulation) unwrap(ctx context.Context) error {
	a := s.app
	burner, err := Authority(commontypes.IBPortSeed, a.Programs.IBPort)
	if err != nil {
		return err
	}
	amount, err := commontypes.UIAmountToAmount(s.Outbound, s.Decimals)
	if err != nil {
		return err
	}
	if err := a.Approve(ctx, s.UserToken, burner, s.User, amount); err != nil {
		return err
	}

	op := s.outboundOperation(porttypes.ActionConfirm)
	ix, err := ibporttypes.NewCreateTransferUnwrapRequestInstruction(a.Programs.IBPort, s.User, s.Port.State,
		a.Programs.Token, s.Port.Mint, s.UserToken, burner,
		porttypes.NewMsgCreateTransferUnwrapRequest(op.SwapID, op.Amount, op.Receiver))
	if err != nil {
		return err
	}
	return a.Runtime.ExecuteInstruction(ctx, ix, s.User)
}

func (s *BridgeSimulation) attachConfirmation(ctx context.Context) error {
	a := s.app
	ix := porttypes.NewAttachValueInstruction(a.Programs.IBPort, s.outboundOperation(porttypes.ActionConfirm).Pack(),
		s.Oracles[0], s.Port.State, a.Programs.Token, s.Port.Mint, s.UserToken, s.Port.Authority, nil)
	return a.Runtime.ExecuteInstruction(ctx, ix, s.Oracles[0])
}

func (s *BridgeSimulation) confirm(ctx context.Context) error {
	a := s.app
	ix := porttypes.NewConfirmDestinationChainRequestInstruction(a.Programs.IBPort, s.Oracles[0], s.Port.State, &s.Port.Mint,
		s.outboundOperation(porttypes.ActionConfirm).Pack())
	return a.Runtime.ExecuteInstruction(ctx, ix, s.Oracles[0])
}
