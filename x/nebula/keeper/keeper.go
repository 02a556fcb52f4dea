package keeper

import (
	"cosmossdk.io/log"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/x/nebula/types"
)

var _ host.Program = Keeper{}

type Keeper struct {
	logger log.Logger

	invoker types.Invoker
}

// NewKeeper creates a new Keeper instance
func NewKeeper(logger log.Logger, invoker types.Invoker) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	return Keeper{
		logger:  logger,
		invoker: invoker,
	}
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}
