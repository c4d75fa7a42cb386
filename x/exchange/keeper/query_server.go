package keeper

import (
	"context"
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/productscience/bridge-exchange/x/exchange/types"
)

// Querier serves the exchange's read-only queries.
type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

// HandleQuery dispatches a tagged query message and returns its JSON-encoded
// response.
func (q Querier) HandleQuery(ctx context.Context, msg types.QueryMsg) ([]byte, error) {
	switch {
	case msg.Config != nil:
		return marshalResponse(q.ConfigQuery(ctx))
	case msg.NativeBalance != nil:
		return marshalResponse(q.NativeBalance(ctx))
	case msg.CalculateTokens != nil:
		return marshalResponse(q.CalculateTokens(ctx, *msg.CalculateTokens))
	case msg.BridgeValidation != nil:
		return marshalResponse(q.BridgeValidation(ctx, *msg.BridgeValidation))
	case msg.BlockHeight != nil:
		return marshalResponse(q.BlockHeight(ctx))
	case msg.ApprovedTokens != nil:
		return marshalResponse(q.ApprovedTokens(ctx))
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

func (q Querier) ConfigQuery(ctx context.Context) (types.ConfigResponse, error) {
	config, err := q.Config.Get(ctx)
	if err != nil {
		return types.ConfigResponse{}, err
	}
	return types.ConfigResponse{
		Admin:                  config.Admin,
		Buyer:                  config.Buyer,
		AcceptedOriginChain:    config.AcceptedOriginChain,
		AcceptedOriginContract: config.AcceptedOriginContract,
		Price:                  config.Price,
		NativeDenom:            config.NativeDenom,
		IsPaused:               config.IsPaused,
		TotalSold:              config.TotalSold,
	}, nil
}

func (q Querier) NativeBalance(ctx context.Context) (types.NativeBalanceResponse, error) {
	config, err := q.Config.Get(ctx)
	if err != nil {
		return types.NativeBalanceResponse{}, err
	}
	balance := q.bankKeeper.GetBalance(ctx, q.address, config.NativeDenom)
	return types.NativeBalanceResponse{Denom: balance.Denom, Amount: balance.Amount}, nil
}

func (q Querier) CalculateTokens(ctx context.Context, req types.CalculateTokensQuery) (types.CalculateTokensResponse, error) {
	config, err := q.Config.Get(ctx)
	if err != nil {
		return types.CalculateTokensResponse{}, err
	}
	return types.CalculateTokensResponse{
		Tokens: types.TokensForQuoteAmount(req.QuoteAmount, config.Price),
		Price:  config.Price,
	}, nil
}

// BridgeValidation reports whether a token would pass the purchase-path
// verification. Any failure, wrong identity or failing lookup alike, reports
// invalid rather than an error.
func (q Querier) BridgeValidation(ctx context.Context, req types.BridgeValidationQuery) (types.BridgeValidationResponse, error) {
	config, err := q.Config.Get(ctx)
	if err != nil {
		return types.BridgeValidationResponse{}, err
	}
	err = q.resolveAndVerify(ctx, config, req.Token)
	return types.BridgeValidationResponse{IsValid: err == nil}, nil
}

func (q Querier) BlockHeight(ctx context.Context) (types.BlockHeightResponse, error) {
	return types.BlockHeightResponse{Height: sdk.UnwrapSDKContext(ctx).BlockHeight()}, nil
}

func (q Querier) ApprovedTokens(ctx context.Context) (types.ApprovedTokensResponse, error) {
	tokens, err := q.approvalOracle.ApprovedTokensForTrade(ctx)
	if err != nil {
		return types.ApprovedTokensResponse{}, err
	}
	return types.ApprovedTokensResponse{ApprovedTokens: tokens}, nil
}
