package types

import (
	"strings"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Config is the singleton exchange configuration. It is created once at
// instantiation and read-modified-written on every purchase or admin call.
type Config struct {
	// Admin receives the paid-in wrapped asset and may mutate configuration.
	Admin string `json:"admin"`
	// Buyer is the sole address permitted to purchase.
	Buyer string `json:"buyer"`
	// AcceptedOriginChain identifies the origin chain of the accepted asset,
	// e.g. "ethereum".
	AcceptedOriginChain string `json:"accepted_origin_chain"`
	// AcceptedOriginContract is the origin contract address, always stored
	// lowercase so comparisons are case-insensitive.
	AcceptedOriginContract string `json:"accepted_origin_contract"`
	// Price of one native unit in quote micro-units (6 implied decimals,
	// e.g. 25000 = 0.025). Always > 0.
	Price math.Int `json:"price"`
	// NativeDenom is the denomination paid out to the buyer.
	NativeDenom string `json:"native_denom"`
	// IsPaused gates only the purchase path, never administrative paths.
	IsPaused bool `json:"is_paused"`
	// TotalSold accumulates payouts; monotonically non-decreasing, bounded
	// by 128 bits.
	TotalSold math.Int `json:"total_sold"`
}

// Validate checks the structural invariants of the configuration.
func (c Config) Validate() error {
	if c.Price.IsNil() || !c.Price.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "price must be positive")
	}
	if c.AcceptedOriginChain == "" || c.AcceptedOriginContract == "" {
		return sdkerrors.Wrap(ErrInvalidToken, "accepted origin chain and contract required")
	}
	if c.AcceptedOriginContract != strings.ToLower(c.AcceptedOriginContract) {
		return sdkerrors.Wrap(ErrInvalidToken, "accepted origin contract must be lowercase")
	}
	if c.TotalSold.IsNil() || c.TotalSold.IsNegative() {
		return sdkerrors.Wrap(ErrAmountOverflow, "total sold must be non-negative")
	}
	if c.TotalSold.GT(MaxUint128) {
		return sdkerrors.Wrap(ErrAmountOverflow, "total sold exceeds 128 bits")
	}
	return nil
}

// TokenOrigin is the (chain identifier, contract address) pair identifying
// the real asset a wrapped asset represents.
type TokenOrigin struct {
	ChainID         string `json:"chain_id"`
	ContractAddress string `json:"contract_address"`
}
