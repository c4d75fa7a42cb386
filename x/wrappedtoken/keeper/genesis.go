package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

// InitGenesis initializes the module state from a genesis state. Balances and
// bank metadata are restored by the bank module's own genesis.
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	for _, asset := range data.Assets {
		denom := asset.Origin.Denom()
		if err := k.Origins.Set(ctx, denom, asset.Origin); err != nil {
			return err
		}
		if err := k.Authorities.Set(ctx, denom, asset.Authorities); err != nil {
			return err
		}
		if asset.Override != nil {
			if err := k.MetadataOverrides.Set(ctx, denom, *asset.Override); err != nil {
				return err
			}
		}
		if asset.Approved {
			if err := k.TradeApprovals.Set(ctx, approvalKey(asset.Origin.ChainID, asset.Origin.ContractAddress)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExportGenesis exports the module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()

	err := k.Origins.Walk(ctx, nil, func(denom string, origin types.BridgeOrigin) (bool, error) {
		asset := types.GenesisAsset{Origin: origin}

		authorities, err := k.Authorities.Get(ctx, denom)
		if err != nil {
			return true, err
		}
		asset.Authorities = authorities

		override, err := k.MetadataOverrides.Get(ctx, denom)
		if err == nil {
			asset.Override = &override
		} else if !sdkerrors.IsOf(err, collections.ErrNotFound) {
			return true, err
		}

		approved, err := k.TradeApprovals.Has(ctx, approvalKey(origin.ChainID, origin.ContractAddress))
		if err != nil {
			return true, err
		}
		asset.Approved = approved

		genesis.Assets = append(genesis.Assets, asset)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return genesis, nil
}
