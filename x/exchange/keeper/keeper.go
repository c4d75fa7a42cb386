package keeper

import (
	"context"
	"strings"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/productscience/bridge-exchange/util"
	"github.com/productscience/bridge-exchange/x/exchange/types"
)

type Keeper struct {
	logger log.Logger

	// state management
	Config collections.Item[types.Config]

	address sdk.AccAddress

	bankKeeper     types.BankKeeper
	approvalOracle types.ApprovalOracle
	originReporter types.OriginReporter
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	bankKeeper types.BankKeeper,
	approvalOracle types.ApprovalOracle,
	originReporter types.OriginReporter,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		logger: logger,

		Config: collections.NewItem(sb, types.ConfigKey, types.ConfigName, util.JSONValue[types.Config](types.ConfigName)),

		address: authtypes.NewModuleAddress(types.ModuleName),

		bankKeeper:     bankKeeper,
		approvalOracle: approvalOracle,
		originReporter: originReporter,
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// Address returns the exchange's own on-chain address. The native payout
// balance lives here, and emitted instructions are executed on its behalf.
func (k Keeper) Address() sdk.AccAddress {
	return k.address
}

// Instantiate creates the singleton configuration. It fails if the exchange
// has already been instantiated.
func (k Keeper) Instantiate(ctx context.Context, msg types.InstantiateMsg) (*wasmvmtypes.Response, error) {
	has, err := k.Config.Has(ctx)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, types.ErrConfigExists
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "admin address")
	}
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "buyer address")
	}

	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return nil, types.ErrZeroAmount
	}
	if msg.AcceptedOriginChain == "" || msg.AcceptedOriginContract == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidToken, "accepted origin chain and contract required")
	}

	nativeDenom := k.resolveNativeDenom(ctx)

	config := types.Config{
		Admin:                  admin.String(),
		Buyer:                  buyer.String(),
		AcceptedOriginChain:    msg.AcceptedOriginChain,
		AcceptedOriginContract: strings.ToLower(msg.AcceptedOriginContract),
		Price:                  msg.Price,
		NativeDenom:            nativeDenom,
		IsPaused:               false,
		TotalSold:              math.ZeroInt(),
	}
	if err := k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	k.logger.Info("exchange instantiated",
		"admin", config.Admin,
		"buyer", config.Buyer,
		"accepted_origin_chain", config.AcceptedOriginChain,
		"accepted_origin_contract", config.AcceptedOriginContract,
		"price", config.Price.String(),
		"native_denom", nativeDenom,
	)

	resp := &wasmvmtypes.Response{}
	types.AddAttribute(resp, types.AttributeKeyMethod, "instantiate")
	types.AddAttribute(resp, types.AttributeKeyAdmin, config.Admin)
	types.AddAttribute(resp, types.AttributeKeyBuyer, config.Buyer)
	types.AddAttribute(resp, types.AttributeKeyOriginChain, config.AcceptedOriginChain)
	types.AddAttribute(resp, types.AttributeKeyOriginAddr, config.AcceptedOriginContract)
	types.AddAttribute(resp, types.AttributeKeyPrice, config.Price.String())
	types.AddAttribute(resp, types.AttributeKeyNativeDenom, nativeDenom)
	return resp, nil
}

// resolveNativeDenom picks the first denomination of the bank total supply,
// falling back to the default when the supply cannot be read.
func (k Keeper) resolveNativeDenom(ctx context.Context) string {
	supply, _, err := k.bankKeeper.GetPaginatedTotalSupply(ctx, &query.PageRequest{Limit: 1})
	if err != nil || len(supply) == 0 || supply[0].Denom == "" {
		return types.DefaultNativeDenom
	}
	return supply[0].Denom
}

// GetConfig loads the current configuration.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	return k.Config.Get(ctx)
}
