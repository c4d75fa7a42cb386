// Package host executes module handlers atomically together with the
// settlement instructions they emit. A handler runs against a branched
// store; its instructions are dispatched against the same branch, and the
// branch is committed only if the handler and every instruction succeed.
package host

import (
	"context"
	"strings"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

// BankKeeper moves native assets on behalf of bank-send instructions.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// ContractExecutor runs execute-style instructions addressed to an on-ledger
// asset or contract handle.
type ContractExecutor interface {
	// ExecuteContract runs msg against the handle on behalf of sender and
	// returns the handler's response, whose own instructions the host
	// dispatches in turn.
	ExecuteContract(ctx sdk.Context, handle string, sender sdk.AccAddress, msg []byte) (*wasmvmtypes.Response, error)
	// ExecutorAddress is the account nested instructions act on behalf of.
	ExecutorAddress() sdk.AccAddress
}

// AnyRouter handles type-URL-addressed instructions, typically cross-chain
// requests picked up by an external relay.
type AnyRouter interface {
	Route(ctx sdk.Context, sender sdk.AccAddress, typeURL string, value []byte) error
}

// Host wires instruction dispatch to its backing keepers.
type Host struct {
	logger log.Logger

	bankKeeper BankKeeper
	executor   ContractExecutor
	router     AnyRouter
}

func New(logger log.Logger, bankKeeper BankKeeper, executor ContractExecutor, router AnyRouter) Host {
	return Host{
		logger:     logger.With(log.ModuleKey, "host"),
		bankKeeper: bankKeeper,
		executor:   executor,
		router:     router,
	}
}

// RunAtomic executes fn against a store branch and dispatches every
// instruction it emits. State changes are committed only if fn and all
// instructions, including nested ones, succeed.
func (h Host) RunAtomic(ctx sdk.Context, sender sdk.AccAddress, fn func(ctx sdk.Context) (*wasmvmtypes.Response, error)) (*wasmvmtypes.Response, error) {
	branch, commit := ctx.CacheContext()

	resp, err := fn(branch)
	if err != nil {
		return nil, err
	}
	if resp != nil {
		if err := h.dispatchAll(branch, sender, resp.Messages); err != nil {
			return nil, err
		}
	}

	commit()
	return resp, nil
}

func (h Host) dispatchAll(ctx sdk.Context, sender sdk.AccAddress, msgs []wasmvmtypes.SubMsg) error {
	for _, sub := range msgs {
		if err := h.dispatch(ctx, sender, sub.Msg); err != nil {
			return err
		}
	}
	return nil
}

func (h Host) dispatch(ctx sdk.Context, sender sdk.AccAddress, msg wasmvmtypes.CosmosMsg) error {
	switch {
	case msg.Bank != nil && msg.Bank.Send != nil:
		return h.dispatchBankSend(ctx, sender, *msg.Bank.Send)
	case msg.Wasm != nil && msg.Wasm.Execute != nil:
		return h.dispatchExecute(ctx, sender, *msg.Wasm.Execute)
	case msg.Any != nil:
		return h.router.Route(ctx, sender, msg.Any.TypeURL, msg.Any.Value)
	default:
		return sdkerrors.Wrap(sdkerrtypes.ErrUnknownRequest, "unsupported instruction")
	}
}

func (h Host) dispatchBankSend(ctx sdk.Context, sender sdk.AccAddress, msg wasmvmtypes.SendMsg) error {
	to, err := sdk.AccAddressFromBech32(msg.ToAddress)
	if err != nil {
		return sdkerrors.Wrap(err, "bank send recipient")
	}
	coins, err := convertCoins(msg.Amount)
	if err != nil {
		return err
	}
	return h.bankKeeper.SendCoins(ctx, sender, to, coins)
}

func (h Host) dispatchExecute(ctx sdk.Context, sender sdk.AccAddress, msg wasmvmtypes.ExecuteMsg) error {
	resp, err := h.executor.ExecuteContract(ctx, msg.ContractAddr, sender, msg.Msg)
	if err != nil {
		return err
	}
	if resp == nil {
		return nil
	}
	return h.dispatchAll(ctx, h.executor.ExecutorAddress(), resp.Messages)
}

func convertCoins(amount []wasmvmtypes.Coin) (sdk.Coins, error) {
	coins := make(sdk.Coins, 0, len(amount))
	for _, c := range amount {
		value, ok := math.NewIntFromString(strings.TrimSpace(c.Amount))
		if !ok {
			return nil, sdkerrors.Wrapf(sdkerrtypes.ErrInvalidCoins, "amount %q", c.Amount)
		}
		coins = append(coins, sdk.Coin{Denom: c.Denom, Amount: value})
	}
	return coins.Sort(), nil
}
