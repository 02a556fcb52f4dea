package keeper

import (
	"cosmossdk.io/log"

	"github.com/gravityprotocol/gravity-adapter/host"
	"github.com/gravityprotocol/gravity-adapter/x/luport/types"
	portkeeper "github.com/gravityprotocol/gravity-adapter/x/ports/keeper"
	porttypes "github.com/gravityprotocol/gravity-adapter/x/ports/types"
)

var _ host.Program = Keeper{}

type Keeper struct {
	portkeeper.Keeper
}

// NewKeeper creates a new Keeper instance
func NewKeeper(logger log.Logger, invoker porttypes.Invoker) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	return Keeper{
		Keeper: portkeeper.NewKeeper(logger, invoker),
	}
}
