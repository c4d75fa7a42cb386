package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	exchangetypes "github.com/productscience/bridge-exchange/x/exchange/types"
	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

// The keeper natively serves the exchange's verification interfaces, so a
// chain hosting both modules needs no query round-trips.
var (
	_ exchangetypes.ApprovalOracle = Keeper{}
	_ exchangetypes.OriginReporter = Keeper{}
)

// ValidateWrappedTokenForTrade reports whether the given asset handle is a
// known wrapped asset whose origin has been approved for trading. An unknown
// handle is simply not approved, not an error.
func (k Keeper) ValidateWrappedTokenForTrade(ctx context.Context, contractAddress string) (bool, error) {
	origin, err := k.Origins.Get(ctx, contractAddress)
	if err != nil {
		if sdkerrors.IsOf(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return k.TradeApprovals.Has(ctx, approvalKey(origin.ChainID, origin.ContractAddress))
}

// ApprovedTokensForTrade lists every origin pair approved for trading.
func (k Keeper) ApprovedTokensForTrade(ctx context.Context) ([]exchangetypes.TokenOrigin, error) {
	var origins []exchangetypes.TokenOrigin
	err := k.TradeApprovals.Walk(ctx, nil, func(key collections.Pair[string, string]) (bool, error) {
		origins = append(origins, exchangetypes.TokenOrigin{
			ChainID:         key.K1(),
			ContractAddress: key.K2(),
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return origins, nil
}

// TokenOrigin self-reports the bridge origin of a wrapped asset.
func (k Keeper) TokenOrigin(ctx context.Context, contractAddress string) (exchangetypes.TokenOrigin, error) {
	origin, err := k.Origins.Get(ctx, contractAddress)
	if err != nil {
		if sdkerrors.IsOf(err, collections.ErrNotFound) {
			return exchangetypes.TokenOrigin{}, sdkerrors.Wrapf(types.ErrUnknownAsset, "denom %s", contractAddress)
		}
		return exchangetypes.TokenOrigin{}, err
	}
	return exchangetypes.TokenOrigin{
		ChainID:         origin.ChainID,
		ContractAddress: origin.ContractAddress,
	}, nil
}
