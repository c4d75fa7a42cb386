package keeper

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

// HostExecutor adapts the keeper to the host's execute-instruction dispatch,
// letting other modules drive wrapped assets through emitted instructions.
type HostExecutor struct {
	keeper Keeper
}

func NewHostExecutor(keeper Keeper) HostExecutor {
	return HostExecutor{keeper: keeper}
}

// ExecuteContract decodes a tagged execute message and runs it against the
// wrapped asset identified by handle on behalf of sender.
func (e HostExecutor) ExecuteContract(ctx sdk.Context, handle string, sender sdk.AccAddress, msg []byte) (*wasmvmtypes.Response, error) {
	var execute types.ExecuteMsg
	if err := json.Unmarshal(msg, &execute); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrtypes.ErrJSONUnmarshal, "execute message: %s", err)
	}
	return e.keeper.Execute(ctx, handle, wasmvmtypes.MessageInfo{Sender: sender.String()}, execute)
}

// ExecutorAddress is the account nested instructions act on behalf of.
func (e HostExecutor) ExecutorAddress() sdk.AccAddress {
	return e.keeper.address
}

// WithdrawalRouter surfaces emitted withdrawal requests as chain events for
// the bridge relay to pick up.
type WithdrawalRouter struct {
	logger log.Logger
}

func NewWithdrawalRouter(keeper Keeper) WithdrawalRouter {
	return WithdrawalRouter{logger: keeper.logger}
}

const EventTypeBridgeWithdrawal = "bridge_withdrawal"

// Route accepts only the withdrawal type URL, decodes its payload, and emits
// a bridge_withdrawal event.
func (r WithdrawalRouter) Route(ctx sdk.Context, sender sdk.AccAddress, typeURL string, value []byte) error {
	if typeURL != types.WithdrawalTypeURL {
		return sdkerrors.Wrapf(sdkerrtypes.ErrUnknownRequest, "no route for %s", typeURL)
	}
	withdrawal, err := types.DecodeBridgeWithdrawal(value)
	if err != nil {
		return err
	}
	if withdrawal.Creator != sender.String() {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "withdrawal creator %s does not match sender %s", withdrawal.Creator, sender)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(EventTypeBridgeWithdrawal,
		sdk.NewAttribute("creator", withdrawal.Creator),
		sdk.NewAttribute("user_address", withdrawal.UserAddress),
		sdk.NewAttribute("amount", withdrawal.Amount),
		sdk.NewAttribute("destination_address", withdrawal.DestinationAddress),
	))
	r.logger.Info("bridge withdrawal routed",
		"user", withdrawal.UserAddress,
		"amount", withdrawal.Amount,
		"destination", withdrawal.DestinationAddress,
	)
	return nil
}
