package keeper

import (
	"cosmossdk.io/log"

	"github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

// Keeper carries what IB and LU ports share: the scoped logger, the token
// program invoker and the confirmation handler.
type Keeper struct {
	logger log.Logger

	invoker types.Invoker
}

// NewKeeper creates a new Keeper instance. logger is expected to be scoped to
// the embedding port.
func NewKeeper(logger log.Logger, invoker types.Invoker) Keeper {
	return Keeper{
		logger:  logger,
		invoker: invoker,
	}
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

func (k Keeper) Invoker() types.Invoker {
	return k.invoker
}
