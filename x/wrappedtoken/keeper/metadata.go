package keeper

import (
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

// mergeMetadata applies the non-zero fields of an override on top of the
// creation-time bank metadata.
func mergeMetadata(meta banktypes.Metadata, override types.MetadataOverride) banktypes.Metadata {
	if override.Name != "" {
		meta.Name = override.Name
	}
	if override.Symbol != "" {
		meta.Symbol = override.Symbol
		meta.Display = override.Symbol
		if len(meta.DenomUnits) > 1 {
			meta.DenomUnits[1].Denom = override.Symbol
		}
	}
	if override.Decimals != 0 && len(meta.DenomUnits) > 1 {
		meta.DenomUnits[1].Exponent = uint32(override.Decimals)
	}
	return meta
}
