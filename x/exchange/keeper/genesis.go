package keeper

import (
	"context"

	"github.com/productscience/bridge-exchange/x/exchange/types"
)

// InitGenesis initializes the module state from a genesis state. A nil
// config leaves the exchange awaiting instantiation.
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if data.Config == nil {
		return nil
	}
	if err := data.Config.Validate(); err != nil {
		return err
	}
	return k.Config.Set(ctx, *data.Config)
}

// ExportGenesis exports the module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	has, err := k.Config.Has(ctx)
	if err != nil {
		return nil, err
	}
	genesis := types.DefaultGenesis()
	if has {
		config, err := k.Config.Get(ctx)
		if err != nil {
			return nil, err
		}
		genesis.Config = &config
	}
	return genesis, nil
}
