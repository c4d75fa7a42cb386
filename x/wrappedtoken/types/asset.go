package types

import (
	"strings"

	sdkerrors "cosmossdk.io/errors"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"
)

// BridgeOrigin identifies the real asset a wrapped asset represents. It is
// written once when the asset is created and never mutated afterwards.
type BridgeOrigin struct {
	ChainID         string `json:"chain_id"`
	ContractAddress string `json:"contract_address"`
}

func (o BridgeOrigin) Validate() error {
	if o.ChainID == "" || o.ContractAddress == "" {
		return sdkerrors.Wrap(sdkerrtypes.ErrInvalidRequest, "bridge origin chain and contract required")
	}
	if o.ContractAddress != strings.ToLower(o.ContractAddress) {
		return sdkerrors.Wrap(sdkerrtypes.ErrInvalidRequest, "bridge origin contract must be lowercase")
	}
	return nil
}

// Denom derives the asset's bank denomination.
func (o BridgeOrigin) Denom() string {
	return WrappedDenom(o.ChainID, o.ContractAddress)
}

// AssetAuthorities records who may adjust an asset's presentation metadata.
type AssetAuthorities struct {
	Creator string `json:"creator"`
	Admin   string `json:"admin,omitempty"`
}

// Allows reports whether the given address holds metadata authority.
func (a AssetAuthorities) Allows(address string) bool {
	return address == a.Creator || (a.Admin != "" && address == a.Admin)
}

// MetadataOverride carries asset presentation fields corrected after
// creation. Zero-valued fields fall through to the creation-time metadata.
type MetadataOverride struct {
	Name     string `json:"name,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Decimals uint8  `json:"decimals,omitempty"`
}
