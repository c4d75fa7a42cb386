package keeper

import (
	"context"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/productscience/bridge-exchange/util"
	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

type Keeper struct {
	logger log.Logger

	// state management
	Origins           collections.Map[string, types.BridgeOrigin]
	Authorities       collections.Map[string, types.AssetAuthorities]
	MetadataOverrides collections.Map[string, types.MetadataOverride]
	TradeApprovals    collections.KeySet[collections.Pair[string, string]]

	// authority is the account allowed to approve assets for trading,
	// typically the governance module account.
	authority string

	address sdk.AccAddress

	bankKeeper types.BankKeeper
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	authority string,
	bankKeeper types.BankKeeper,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		logger: logger,

		Origins: collections.NewMap(sb, types.OriginsKeyPrefix, types.OriginsName,
			collections.StringKey, util.JSONValue[types.BridgeOrigin](types.OriginsName)),
		Authorities: collections.NewMap(sb, types.AuthoritiesKeyPrefix, types.AuthoritiesName,
			collections.StringKey, util.JSONValue[types.AssetAuthorities](types.AuthoritiesName)),
		MetadataOverrides: collections.NewMap(sb, types.MetadataOverridesKeyPrefix, types.MetadataOverridesName,
			collections.StringKey, util.JSONValue[types.MetadataOverride](types.MetadataOverridesName)),
		TradeApprovals: collections.NewKeySet(sb, types.TradeApprovalsKeyPrefix, types.TradeApprovalsName,
			collections.PairKeyCodec(collections.StringKey, collections.StringKey)),

		authority: authority,

		address: authtypes.NewModuleAddress(types.ModuleName),

		bankKeeper: bankKeeper,
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// Address returns the module account address. Burned units pass through it,
// and it signs emitted withdrawal requests.
func (k Keeper) Address() sdk.AccAddress {
	return k.address
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetOrigin loads the bridge origin of a wrapped denomination.
func (k Keeper) GetOrigin(ctx context.Context, denom string) (types.BridgeOrigin, error) {
	return k.Origins.Get(ctx, denom)
}

// approvalKey builds the trade approval key for an origin pair.
func approvalKey(chainID, contractAddress string) collections.Pair[string, string] {
	return collections.Join(chainID, contractAddress)
}
