package keeper

import (
	"cosmossdk.io/log"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/x/gravity/types"
)

var _ host.Program = Keeper{}

type Keeper struct {
	logger log.Logger
}

// NewKeeper creates a new Keeper instance
func NewKeeper(logger log.Logger) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	return Keeper{
		logger: logger,
	}
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}
