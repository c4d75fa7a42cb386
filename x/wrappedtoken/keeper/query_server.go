package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

// Querier serves the module's read-only queries.
type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

// HandleQuery dispatches a tagged query message against the wrapped asset
// identified by denom and returns its JSON-encoded response.
func (q Querier) HandleQuery(ctx context.Context, denom string, msg types.QueryMsg) ([]byte, error) {
	switch {
	case msg.BridgeOrigin != nil:
		return marshalResponse(q.BridgeOrigin(ctx, denom))
	case msg.TokenInfo != nil:
		return marshalResponse(q.TokenInfo(ctx, denom))
	case msg.Balance != nil:
		return marshalResponse(q.Balance(ctx, denom, *msg.Balance))
	case msg.ApprovedTokens != nil:
		return marshalResponse(q.ApprovedTokensList(ctx))
	default:
		return nil, sdkerrors.Wrap(sdkerrtypes.ErrInvalidRequest, "unknown query message variant")
	}
}

func marshalResponse[T any](resp T, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return json.Marshal(resp)
}

func (q Querier) BridgeOrigin(ctx context.Context, denom string) (types.BridgeOrigin, error) {
	origin, err := q.Origins.Get(ctx, denom)
	if err != nil {
		if sdkerrors.IsOf(err, collections.ErrNotFound) {
			return types.BridgeOrigin{}, sdkerrors.Wrapf(types.ErrUnknownAsset, "denom %s", denom)
		}
		return types.BridgeOrigin{}, err
	}
	return origin, nil
}

// TokenInfo returns presentation metadata with any override applied.
func (q Querier) TokenInfo(ctx context.Context, denom string) (types.TokenInfoResponse, error) {
	meta, ok := q.bankKeeper.GetDenomMetaData(ctx, denom)
	if !ok {
		return types.TokenInfoResponse{}, sdkerrors.Wrapf(types.ErrUnknownAsset, "denom %s", denom)
	}

	override, err := q.MetadataOverrides.Get(ctx, denom)
	if err == nil {
		meta = mergeMetadata(meta, override)
	} else if !sdkerrors.IsOf(err, collections.ErrNotFound) {
		return types.TokenInfoResponse{}, err
	}

	var decimals uint8
	if len(meta.DenomUnits) > 1 {
		decimals = uint8(meta.DenomUnits[1].Exponent)
	}
	return types.TokenInfoResponse{
		Name:        meta.Name,
		Symbol:      meta.Symbol,
		Decimals:    decimals,
		TotalSupply: q.bankKeeper.GetSupply(ctx, denom).Amount,
	}, nil
}

func (q Querier) Balance(ctx context.Context, denom string, req types.BalanceQuery) (types.BalanceResponse, error) {
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return types.BalanceResponse{}, sdkerrors.Wrap(err, "balance address")
	}
	return types.BalanceResponse{Balance: q.bankKeeper.GetBalance(ctx, addr, denom).Amount}, nil
}

func (q Querier) ApprovedTokensList(ctx context.Context) (types.ApprovedTokensResponse, error) {
	var origins []types.BridgeOrigin
	err := q.TradeApprovals.Walk(ctx, nil, func(key collections.Pair[string, string]) (bool, error) {
		origins = append(origins, types.BridgeOrigin{ChainID: key.K1(), ContractAddress: key.K2()})
		return false, nil
	})
	if err != nil {
		return types.ApprovedTokensResponse{}, err
	}
	return types.ApprovedTokensResponse{ApprovedTokens: origins}, nil
}
