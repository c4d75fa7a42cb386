package keeper

import (
	"context"
	"strings"

	sdkerrors "cosmossdk.io/errors"

	"github.com/productscience/bridge-exchange/x/exchange/types"
)

// resolveAndVerify checks that the asset handle delivering a transfer is the
// one accepted asset. Stage one asks the registry whether the asset is
// approved for trading at all; stage two asks the asset itself for its
// bridge origin and compares it against the configured (chain, contract)
// pair. Stage two is never reached when stage one fails.
func (k Keeper) resolveAndVerify(ctx context.Context, config types.Config, token string) error {
	contract := strings.TrimPrefix(token, types.WrappedTokenScheme)

	approved, err := k.approvalOracle.ValidateWrappedTokenForTrade(ctx, contract)
	if err != nil {
		return sdkerrors.Wrap(types.ErrInvalidToken, "registry validation query")
	}
	if !approved {
		return sdkerrors.Wrapf(types.ErrTokenNotAccepted, "token %s not approved for trading", contract)
	}

	origin, err := k.originReporter.TokenOrigin(ctx, contract)
	if err != nil {
		return sdkerrors.Wrap(types.ErrInvalidToken, "origin self-report query")
	}

	reportedContract := strings.ToLower(origin.ContractAddress)
	if origin.ChainID != config.AcceptedOriginChain || reportedContract != config.AcceptedOriginContract {
		return sdkerrors.Wrapf(types.ErrWrongToken, "expected %s:%s, got %s:%s",
			config.AcceptedOriginChain, config.AcceptedOriginContract,
			origin.ChainID, reportedContract)
	}

	return nil
}
