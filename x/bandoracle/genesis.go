package bandoracle

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/bandoracle/x/bandoracle/keeper"
	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// InitGenesis initializes the bandoracle module state and binds the port
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(errorsmod.Wrapf(types.ErrInvalidGenesis, "%s", err))
	}

	k.SetPort(ctx, data.PortID)

	// Only try to bind to port if it is not already bound, since we may already own
	// port capability from capability InitGenesis
	if !k.IsBound(ctx, data.PortID) {
		// module binds to the oracle port on InitChain
		// and claims the returned capability
		if err := k.BindPort(ctx, data.PortID); err != nil {
			panic(errorsmod.Wrapf(err, "could not claim port capability"))
		}
	}

	k.SetConfig(ctx, data.Config)
	k.SetRequestCount(ctx, data.RequestCount)

	for _, record := range data.Requests {
		k.SetRequest(ctx, record.RequestID, record.Request)
	}

	for _, record := range data.Prices {
		k.SetPrice(ctx, record.Symbol, record.Price)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	config, _ := k.GetConfig(ctx)

	genesis := types.NewGenesisState(
		k.GetPort(ctx),
		config,
		k.GetRequestCount(ctx),
		k.GetAllRequests(ctx),
		k.GetAllPrices(ctx),
	)
	return &genesis
}
