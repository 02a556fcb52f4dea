package app

import (
	"cosmossdk.io/log"
	"github.com/gagliardetto/solana-go"

	"github.com/gravityprotocol/gravity-adapter/config"
	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/host/spltoken"
	gravitykeeper "github.com/gravityprotocol/gravity-adapter/x/gravity/keeper"
	ibportkeeper "github.com/gravityprotocol/gravity-adapter/x/ibport/keeper"
	luportkeeper "github.com/gravityprotocol/gravity-adapter/x/luport/keeper"
	nebulakeeper "github.com/gravityprotocol/gravity-adapter/x/nebula/keeper"
)

const Name = "gravity"

// GravityApp is an in-process deployment of the gravity programs on a
// runtime.
type GravityApp struct {
	logger log.Logger

	Runtime  *host.Runtime
	Programs config.ProgramKeys

	// keepers
	TokenProgram  *spltoken.Program
	GravityKeeper gravitykeeper.Keeper
	NebulaKeeper  nebulakeeper.Keeper
	IBPortKeeper  ibportkeeper.Keeper
	LUPortKeeper  luportkeeper.Keeper
}

// NewGravityApp returns a reference to an initialized GravityApp.
func NewGravityApp(logger log.Logger, cfg config.Config) (*GravityApp, error) {
	programs, err := cfg.ProgramIDs.Keys()
	if err != nil {
		return nil, err
	}

	opts := []host.Option{}
	if cfg.MaxCallDepth > 0 {
		opts = append(opts, host.WithMaxCallDepth(cfg.MaxCallDepth))
	}
	if cfg.BatchParallelism > 0 {
		opts = append(opts, host.WithParallelism(cfg.BatchParallelism))
	}
	rt := host.NewRuntime(logger, opts...)

	app := &GravityApp{
		logger:   logger.With(log.ModuleKey, "app"),
		Runtime:  rt,
		Programs: programs,
	}

	app.TokenProgram = spltoken.NewProgram(logger)
	app.GravityKeeper = gravitykeeper.NewKeeper(logger)
	app.NebulaKeeper = nebulakeeper.NewKeeper(logger, rt)
	app.IBPortKeeper = ibportkeeper.NewKeeper(logger, rt)
	app.LUPortKeeper = luportkeeper.NewKeeper(logger, rt)

	for id, program := range map[solana.PublicKey]host.Program{
		programs.Token:   app.TokenProgram,
		programs.Gravity: app.GravityKeeper,
		programs.Nebula:  app.NebulaKeeper,
		programs.IBPort:  app.IBPortKeeper,
		programs.LUPort:  app.LUPortKeeper,
	} {
		rt.RegisterProgram(id, program)
	}

	app.logger.Info("programs registered",
		"gravity", programs.Gravity.String(),
		"nebula", programs.Nebula.String(),
		"ibport", programs.IBPort.String(),
		"luport", programs.LUPort.String(),
		"token", programs.Token.String(),
	)
	return app, nil
}

func (app *GravityApp) Logger() log.Logger {
	return app.logger
}
