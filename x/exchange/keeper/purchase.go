package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/productscience/bridge-exchange/x/exchange/types"
)

// receiveTransfer settles a purchase driven by an inbound transfer
// notification. info.Sender is the asset handle that delivered the transfer
// at the transport layer; msg.Sender is the logical buyer.
//
// Steps 1-7 are pure validation and write nothing. Only the total-sold
// increment mutates durable state, and the emitted settlement instructions
// are executed by the host after this call returns; a failure there rolls
// the increment back.
func (k Keeper) receiveTransfer(ctx context.Context, info wasmvmtypes.MessageInfo, msg types.ReceiveMsg) (*wasmvmtypes.Response, error) {
	config, err := k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}

	if config.IsPaused {
		return nil, types.ErrContractPaused
	}

	tokenContract := info.Sender

	// Only the designated buyer can purchase.
	if msg.Sender != config.Buyer {
		return nil, sdkerrors.Wrapf(types.ErrBuyerNotAllowed, "buyer %s", msg.Sender)
	}

	// Two-stage bridge identity verification against the notifying token.
	if err := k.resolveAndVerify(ctx, config, tokenContract); err != nil {
		return nil, err
	}

	if _, err := types.DecodePurchasePayload(msg.Msg); err != nil {
		return nil, err
	}

	buyer := msg.Sender
	quoteAmount := msg.Amount

	if quoteAmount.IsNil() || !quoteAmount.IsPositive() {
		return nil, types.ErrZeroAmount
	}

	tokens := types.TokensForQuoteAmount(quoteAmount, config.Price)
	if tokens.IsZero() {
		// A price high enough to round the payout down to nothing is
		// indistinguishable from a zero payment.
		return nil, types.ErrZeroAmount
	}

	available := k.bankKeeper.GetBalance(ctx, k.address, config.NativeDenom).Amount
	if tokens.GT(available) {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientBalance, "available %s, needed %s", available, tokens)
	}

	newTotal := config.TotalSold.Add(tokens)
	if newTotal.GT(types.MaxUint128) {
		// total_sold must stay within 128 bits; never saturate.
		return nil, sdkerrors.Wrapf(types.ErrAmountOverflow, "total sold %s + %s", config.TotalSold, tokens)
	}
	config.TotalSold = newTotal
	if err := k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	resp := &wasmvmtypes.Response{}

	// Leg (a): native payout to the buyer.
	types.AddMessage(resp, types.NewBankSendMsg(buyer, config.NativeDenom, tokens))

	// Leg (b): forward the paid-in quote asset to the admin.
	if config.Admin != "" {
		forward, err := types.NewTransferCallMsg(tokenContract, config.Admin, quoteAmount)
		if err != nil {
			return nil, err
		}
		types.AddMessage(resp, forward)
	}

	types.AddAttribute(resp, types.AttributeKeyMethod, "purchase")
	types.AddAttribute(resp, types.AttributeKeyBuyer, buyer)
	types.AddAttribute(resp, types.AttributeKeyQuoteAmount, quoteAmount.String())
	types.AddAttribute(resp, types.AttributeKeyTokens, tokens.String())
	types.AddAttribute(resp, types.AttributeKeyPrice, config.Price.String())

	k.logger.Info("purchase settled",
		"buyer", buyer,
		"token", tokenContract,
		"quote_amount", quoteAmount.String(),
		"tokens", tokens.String(),
		"total_sold", newTotal.String(),
	)

	return resp, nil
}
