package keeper

import (
	"context"
	"strings"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

// Execute dispatches an operation against the wrapped asset identified by
// denom. info.Sender is the acting account.
func (k Keeper) Execute(ctx context.Context, denom string, info wasmvmtypes.MessageInfo, msg types.ExecuteMsg) (*wasmvmtypes.Response, error) {
	has, err := k.Origins.Has(ctx, denom)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, sdkerrors.Wrapf(types.ErrUnknownAsset, "denom %s", denom)
	}

	switch {
	case msg.Withdraw != nil:
		return k.withdraw(ctx, denom, info, *msg.Withdraw)
	case msg.UpdateMetadata != nil:
		return k.updateMetadata(ctx, denom, info, *msg.UpdateMetadata)
	case msg.Transfer != nil:
		return k.transfer(ctx, denom, info, *msg.Transfer)
	case msg.Burn != nil:
		return k.burn(ctx, denom, info, *msg.Burn)
	default:
		return nil, sdkerrors.Wrap(sdkerrtypes.ErrInvalidRequest, "unknown execute message variant")
	}
}

// withdraw burns the caller's wrapped units and emits exactly one
// cross-chain instruction requesting their release on the origin chain. All
// validation happens before the burn so a rejected request leaves balances
// untouched.
func (k Keeper) withdraw(ctx context.Context, denom string, info wasmvmtypes.MessageInfo, msg types.WithdrawMsg) (*wasmvmtypes.Response, error) {
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInsufficientFunds, "withdrawal amount must be positive")
	}
	if strings.TrimSpace(msg.DestinationAddress) == "" {
		return nil, sdkerrors.Wrap(sdkerrtypes.ErrInvalidRequest, "destination_address cannot be empty")
	}

	sender, err := sdk.AccAddressFromBech32(info.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "sender address")
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, msg.Amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
		return nil, err
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return nil, err
	}

	withdrawal := types.BridgeWithdrawal{
		Creator:            k.address.String(),
		UserAddress:        info.Sender,
		Amount:             msg.Amount.String(),
		DestinationAddress: msg.DestinationAddress,
	}

	resp := &wasmvmtypes.Response{}
	resp.Messages = append(resp.Messages, wasmvmtypes.SubMsg{
		Msg: wasmvmtypes.CosmosMsg{Any: &wasmvmtypes.AnyMsg{
			TypeURL: types.WithdrawalTypeURL,
			Value:   withdrawal.Encode(),
		}},
		ReplyOn: wasmvmtypes.ReplyNever,
	})
	resp.Attributes = append(resp.Attributes,
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyMethod, Value: "withdraw"},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyDenom, Value: denom},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyBurnAmount, Value: msg.Amount.String()},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyDestination, Value: msg.DestinationAddress},
	)

	k.logger.Info("withdrawal requested",
		"denom", denom,
		"user", info.Sender,
		"amount", msg.Amount.String(),
		"destination", msg.DestinationAddress,
	)

	return resp, nil
}

// updateMetadata records a presentation override for the asset. Only the
// creator or the designated admin may call it; the bridge origin is never
// touched.
func (k Keeper) updateMetadata(ctx context.Context, denom string, info wasmvmtypes.MessageInfo, msg types.UpdateMetadataMsg) (*wasmvmtypes.Response, error) {
	authorities, err := k.Authorities.Get(ctx, denom)
	if err != nil {
		return nil, err
	}
	if !authorities.Allows(info.Sender) {
		return nil, sdkerrors.Wrapf(types.ErrUnauthorized, "sender %s may not update metadata", info.Sender)
	}

	override := types.MetadataOverride{
		Name:     msg.Name,
		Symbol:   msg.Symbol,
		Decimals: msg.Decimals,
	}
	if err := k.MetadataOverrides.Set(ctx, denom, override); err != nil {
		return nil, err
	}

	if meta, ok := k.bankKeeper.GetDenomMetaData(ctx, denom); ok {
		k.bankKeeper.SetDenomMetaData(ctx, mergeMetadata(meta, override))
	}

	resp := &wasmvmtypes.Response{}
	resp.Attributes = append(resp.Attributes,
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyMethod, Value: "update_metadata"},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyDenom, Value: denom},
	)
	return resp, nil
}

func (k Keeper) transfer(ctx context.Context, denom string, info wasmvmtypes.MessageInfo, msg types.TransferMsg) (*wasmvmtypes.Response, error) {
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInsufficientFunds, "transfer amount must be positive")
	}
	sender, err := sdk.AccAddressFromBech32(info.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "sender address")
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "recipient address")
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, msg.Amount))
	if err := k.bankKeeper.SendCoins(ctx, sender, recipient, coins); err != nil {
		return nil, err
	}

	resp := &wasmvmtypes.Response{}
	resp.Attributes = append(resp.Attributes,
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyMethod, Value: "transfer"},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyDenom, Value: denom},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyRecipient, Value: msg.Recipient},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyAmount, Value: msg.Amount.String()},
	)
	return resp, nil
}

// burn destroys the caller's wrapped units without requesting a release on
// the origin chain.
func (k Keeper) burn(ctx context.Context, denom string, info wasmvmtypes.MessageInfo, msg types.BurnMsg) (*wasmvmtypes.Response, error) {
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInsufficientFunds, "burn amount must be positive")
	}
	sender, err := sdk.AccAddressFromBech32(info.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "sender address")
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, msg.Amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
		return nil, err
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return nil, err
	}

	resp := &wasmvmtypes.Response{}
	resp.Attributes = append(resp.Attributes,
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyMethod, Value: "burn"},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyDenom, Value: denom},
		wasmvmtypes.EventAttribute{Key: types.AttributeKeyAmount, Value: msg.Amount.String()},
	)
	return resp, nil
}

// CreateAsset registers a wrapped asset for a bridge origin, records its
// authorities and metadata, and mints any initial balances. The origin pair
// is immutable once written.
func (k Keeper) CreateAsset(ctx context.Context, creator string, msg types.CreateAssetMsg) (string, error) {
	if err := msg.Origin.Validate(); err != nil {
		return "", err
	}
	if _, err := sdk.AccAddressFromBech32(creator); err != nil {
		return "", sdkerrors.Wrap(err, "creator address")
	}

	denom := msg.Origin.Denom()
	has, err := k.Origins.Has(ctx, denom)
	if err != nil {
		return "", err
	}
	if has {
		return "", sdkerrors.Wrapf(types.ErrAssetExists, "denom %s", denom)
	}

	if err := k.Origins.Set(ctx, denom, msg.Origin); err != nil {
		return "", err
	}
	if err := k.Authorities.Set(ctx, denom, types.AssetAuthorities{Creator: creator, Admin: msg.Admin}); err != nil {
		return "", err
	}

	k.bankKeeper.SetDenomMetaData(ctx, banktypes.Metadata{
		Description: "wrapped " + msg.Origin.ChainID + " asset " + msg.Origin.ContractAddress,
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: msg.Symbol, Exponent: uint32(msg.Decimals)},
		},
		Base:    denom,
		Display: msg.Symbol,
		Name:    msg.Name,
		Symbol:  msg.Symbol,
	})

	for _, balance := range msg.InitialBalances {
		recipient, err := sdk.AccAddressFromBech32(balance.Address)
		if err != nil {
			return "", sdkerrors.Wrap(err, "initial balance address")
		}
		if balance.Amount.IsNil() || !balance.Amount.IsPositive() {
			return "", sdkerrors.Wrapf(sdkerrtypes.ErrInvalidRequest, "initial balance for %s must be positive", balance.Address)
		}
		coins := sdk.NewCoins(sdk.NewCoin(denom, balance.Amount))
		if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
			return "", err
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
			return "", err
		}
	}

	k.logger.Info("wrapped asset created",
		"denom", denom,
		"origin_chain", msg.Origin.ChainID,
		"origin_contract", msg.Origin.ContractAddress,
		"creator", creator,
	)

	return denom, nil
}

// ApproveForTrade marks an origin pair as tradable. Only the module
// authority may call it; re-approving is a no-op.
func (k Keeper) ApproveForTrade(ctx context.Context, authority string, origin types.BridgeOrigin) error {
	if authority != k.authority {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.authority, authority)
	}
	if err := origin.Validate(); err != nil {
		return err
	}

	key := approvalKey(origin.ChainID, origin.ContractAddress)
	has, err := k.TradeApprovals.Has(ctx, key)
	if err != nil {
		return err
	}
	if has {
		k.logger.Warn("origin already approved for trading",
			"origin_chain", origin.ChainID,
			"origin_contract", origin.ContractAddress,
		)
		return nil
	}
	return k.TradeApprovals.Set(ctx, key)
}
