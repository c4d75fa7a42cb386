package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/productscience/bridge-exchange/x/exchange/types"
)

// Execute dispatches an execute message to its handler. ExecuteMsg is a
// closed sum type; exactly one variant must be set.
func (k Keeper) Execute(ctx context.Context, info wasmvmtypes.MessageInfo, msg types.ExecuteMsg) (*wasmvmtypes.Response, error) {
	switch {
	case msg.Receive != nil:
		return k.receiveTransfer(ctx, info, *msg.Receive)
	case msg.Pause != nil:
		return k.pause(ctx, info)
	case msg.Resume != nil:
		return k.resume(ctx, info)
	case msg.UpdateBuyer != nil:
		return k.updateBuyer(ctx, info, *msg.UpdateBuyer)
	case msg.UpdatePrice != nil:
		return k.updatePrice(ctx, info, *msg.UpdatePrice)
	case msg.WithdrawNative != nil:
		return k.withdrawNativeTokens(ctx, info, *msg.WithdrawNative)
	case msg.EmergencyWithdraw != nil:
		return k.emergencyWithdraw(ctx, info, *msg.EmergencyWithdraw)
	default:
		return nil, sdkerrors.Wrap(sdkerrtypes.ErrInvalidRequest, "unknown execute message variant")
	}
}

// loadConfigForAdmin loads the configuration and enforces the admin gate.
// The pause flag never gates administrative paths.
func (k Keeper) loadConfigForAdmin(ctx context.Context, sender string) (types.Config, error) {
	config, err := k.Config.Get(ctx)
	if err != nil {
		return types.Config{}, err
	}
	if sender != config.Admin {
		return types.Config{}, sdkerrors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", config.Admin, sender)
	}
	return config, nil
}

func (k Keeper) pause(ctx context.Context, info wasmvmtypes.MessageInfo) (*wasmvmtypes.Response, error) {
	config, err := k.loadConfigForAdmin(ctx, info.Sender)
	if err != nil {
		return nil, err
	}
	config.IsPaused = true
	if err := k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	resp := &wasmvmtypes.Response{}
	types.AddAttribute(resp, types.AttributeKeyMethod, "pause")
	return resp, nil
}

func (k Keeper) resume(ctx context.Context, info wasmvmtypes.MessageInfo) (*wasmvmtypes.Response, error) {
	config, err := k.loadConfigForAdmin(ctx, info.Sender)
	if err != nil {
		return nil, err
	}
	config.IsPaused = false
	if err := k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	resp := &wasmvmtypes.Response{}
	types.AddAttribute(resp, types.AttributeKeyMethod, "resume")
	return resp, nil
}

func (k Keeper) updateBuyer(ctx context.Context, info wasmvmtypes.MessageInfo, msg types.UpdateBuyerMsg) (*wasmvmtypes.Response, error) {
	config, err := k.loadConfigForAdmin(ctx, info.Sender)
	if err != nil {
		return nil, err
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "buyer address")
	}
	config.Buyer = buyer.String()
	if err := k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	resp := &wasmvmtypes.Response{}
	types.AddAttribute(resp, types.AttributeKeyMethod, "update_buyer")
	types.AddAttribute(resp, types.AttributeKeyBuyer, config.Buyer)
	return resp, nil
}

func (k Keeper) updatePrice(ctx context.Context, info wasmvmtypes.MessageInfo, msg types.UpdatePriceMsg) (*wasmvmtypes.Response, error) {
	config, err := k.loadConfigForAdmin(ctx, info.Sender)
	if err != nil {
		return nil, err
	}

	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return nil, types.ErrZeroAmount
	}
	config.Price = msg.Price
	if err := k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	resp := &wasmvmtypes.Response{}
	types.AddAttribute(resp, types.AttributeKeyMethod, "update_price")
	types.AddAttribute(resp, types.AttributeKeyPrice, config.Price.String())
	return resp, nil
}

func (k Keeper) withdrawNativeTokens(ctx context.Context, info wasmvmtypes.MessageInfo, msg types.WithdrawNativeMsg) (*wasmvmtypes.Response, error) {
	config, err := k.loadConfigForAdmin(ctx, info.Sender)
	if err != nil {
		return nil, err
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "recipient address")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, types.ErrZeroAmount
	}

	resp := &wasmvmtypes.Response{}
	types.AddMessage(resp, types.NewBankSendMsg(recipient.String(), config.NativeDenom, msg.Amount))
	types.AddAttribute(resp, types.AttributeKeyMethod, "withdraw")
	types.AddAttribute(resp, types.AttributeKeyAmount, msg.Amount.String())
	types.AddAttribute(resp, types.AttributeKeyRecipient, recipient.String())
	return resp, nil
}

func (k Keeper) emergencyWithdraw(ctx context.Context, info wasmvmtypes.MessageInfo, msg types.EmergencyWithdrawMsg) (*wasmvmtypes.Response, error) {
	config, err := k.loadConfigForAdmin(ctx, info.Sender)
	if err != nil {
		return nil, err
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "recipient address")
	}

	balance := k.bankKeeper.GetBalance(ctx, k.address, config.NativeDenom)
	if balance.Amount.IsZero() {
		resp := &wasmvmtypes.Response{}
		types.AddAttribute(resp, types.AttributeKeyMethod, "emergency_withdraw")
		types.AddAttribute(resp, types.AttributeKeyMessage, "no_funds")
		return resp, nil
	}

	resp := &wasmvmtypes.Response{}
	types.AddMessage(resp, types.NewBankSendMsg(recipient.String(), balance.Denom, balance.Amount))
	types.AddAttribute(resp, types.AttributeKeyMethod, "emergency_withdraw")
	types.AddAttribute(resp, types.AttributeKeyAmount, balance.Amount.String())
	types.AddAttribute(resp, types.AttributeKeyRecipient, recipient.String())
	return resp, nil
}
