package types

import (
	"bytes"
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdkerrtypes "github.com/cosmos/cosmos-sdk/types/errors"
)

// InstantiateMsg creates the singleton exchange configuration.
type InstantiateMsg struct {
	Admin                  string   `json:"admin"`
	Buyer                  string   `json:"buyer"`
	AcceptedOriginChain    string   `json:"accepted_origin_chain"`
	AcceptedOriginContract string   `json:"accepted_origin_contract"`
	Price                  math.Int `json:"price"`
}

// ExecuteMsg is the closed set of operations accepted by the exchange.
// Exactly one variant must be set; the dispatcher matches exhaustively.
type ExecuteMsg struct {
	Receive           *ReceiveMsg           `json:"receive,omitempty"`
	Pause             *PauseMsg             `json:"pause,omitempty"`
	Resume            *ResumeMsg            `json:"resume,omitempty"`
	UpdateBuyer       *UpdateBuyerMsg       `json:"update_buyer,omitempty"`
	UpdatePrice       *UpdatePriceMsg       `json:"update_price,omitempty"`
	WithdrawNative    *WithdrawNativeMsg    `json:"withdraw_native_tokens,omitempty"`
	EmergencyWithdraw *EmergencyWithdrawMsg `json:"emergency_withdraw,omitempty"`
}

// ReceiveMsg is the inbound transfer notification that drives a purchase.
// Sender is the original initiator of the transfer, not the token contract;
// the token contract is the transport-level sender of the notification.
type ReceiveMsg struct {
	Sender string          `json:"sender"`
	Amount math.Int        `json:"amount"`
	Msg    json.RawMessage `json:"msg"`
}

// PurchaseMsg is the marker payload attached to a purchase transfer. It is
// reserved for future extension and currently carries no fields; a payload
// that does not decode to it aborts the purchase.
type PurchaseMsg struct{}

// DecodePurchasePayload decodes the attached payload into the purchase
// marker, rejecting unknown fields.
func DecodePurchasePayload(raw json.RawMessage) (PurchaseMsg, error) {
	var marker PurchaseMsg
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&marker); err != nil {
		return PurchaseMsg{}, sdkerrors.Wrapf(sdkerrtypes.ErrJSONUnmarshal, "purchase payload: %s", err)
	}
	return marker, nil
}

type PauseMsg struct{}

type ResumeMsg struct{}

type UpdateBuyerMsg struct {
	Buyer string `json:"buyer"`
}

type UpdatePriceMsg struct {
	Price math.Int `json:"price"`
}

type WithdrawNativeMsg struct {
	Amount    math.Int `json:"amount"`
	Recipient string   `json:"recipient"`
}

type EmergencyWithdrawMsg struct {
	Recipient string `json:"recipient"`
}

// QueryMsg is the closed set of read-only queries served by the exchange.
type QueryMsg struct {
	Config           *ConfigQuery           `json:"config,omitempty"`
	NativeBalance    *NativeBalanceQuery    `json:"native_balance,omitempty"`
	CalculateTokens  *CalculateTokensQuery  `json:"calculate_tokens,omitempty"`
	BridgeValidation *BridgeValidationQuery `json:"bridge_validation,omitempty"`
	BlockHeight      *BlockHeightQuery      `json:"block_height,omitempty"`
	ApprovedTokens   *ApprovedTokensQuery   `json:"approved_tokens,omitempty"`
}

type ConfigQuery struct{}

type NativeBalanceQuery struct{}

type CalculateTokensQuery struct {
	QuoteAmount math.Int `json:"quote_amount"`
}

type BridgeValidationQuery struct {
	Token string `json:"token"`
}

type BlockHeightQuery struct{}

type ApprovedTokensQuery struct{}

// ConfigResponse is the config snapshot returned by the config query.
type ConfigResponse struct {
	Admin                  string   `json:"admin"`
	Buyer                  string   `json:"buyer"`
	AcceptedOriginChain    string   `json:"accepted_origin_chain"`
	AcceptedOriginContract string   `json:"accepted_origin_contract"`
	Price                  math.Int `json:"price"`
	NativeDenom            string   `json:"native_denom"`
	IsPaused               bool     `json:"is_paused"`
	TotalSold              math.Int `json:"total_sold"`
}

type NativeBalanceResponse struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

type CalculateTokensResponse struct {
	Tokens math.Int `json:"tokens"`
	Price  math.Int `json:"price"`
}

type BridgeValidationResponse struct {
	IsValid bool `json:"is_valid"`
}

type BlockHeightResponse struct {
	Height int64 `json:"height"`
}

type ApprovedTokensResponse struct {
	ApprovedTokens []TokenOrigin `json:"approved_tokens"`
}
