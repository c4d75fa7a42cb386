package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"
)

// GenesisAsset is a wrapped asset carried through genesis.
type GenesisAsset struct {
	Origin      BridgeOrigin     `json:"origin"`
	Authorities AssetAuthorities `json:"authorities"`
	// Approved marks the asset as tradable at genesis.
	Approved bool `json:"approved,omitempty"`
	// Override carries any metadata correction applied before export.
	Override *MetadataOverride `json:"override,omitempty"`
}

type GenesisState struct {
	Assets []GenesisAsset `json:"assets,omitempty"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Assets))
	for _, asset := range gs.Assets {
		if err := asset.Origin.Validate(); err != nil {
			return err
		}
		denom := asset.Origin.Denom()
		if _, ok := seen[denom]; ok {
			return sdkerrors.Wrapf(sdkerrtypes.ErrInvalidRequest, "duplicate wrapped asset %s", denom)
		}
		seen[denom] = struct{}{}
		if asset.Authorities.Creator == "" {
			return sdkerrors.Wrapf(sdkerrtypes.ErrInvalidRequest, "wrapped asset %s has no creator", denom)
		}
	}
	return nil
}
