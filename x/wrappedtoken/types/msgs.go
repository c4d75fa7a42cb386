package types

import (
	"cosmossdk.io/math"
)

// CreateAssetMsg registers a new wrapped asset for a bridge origin and mints
// any initial balances.
type CreateAssetMsg struct {
	Origin          BridgeOrigin     `json:"origin"`
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	Decimals        uint8            `json:"decimals"`
	Admin           string           `json:"admin,omitempty"`
	InitialBalances []InitialBalance `json:"initial_balances,omitempty"`
}

type InitialBalance struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// ExecuteMsg is the closed set of operations accepted by a wrapped asset.
// Exactly one variant must be set; the dispatcher matches exhaustively.
type ExecuteMsg struct {
	Withdraw       *WithdrawMsg       `json:"withdraw,omitempty"`
	UpdateMetadata *UpdateMetadataMsg `json:"update_metadata,omitempty"`
	Transfer       *TransferMsg       `json:"transfer,omitempty"`
	Burn           *BurnMsg           `json:"burn,omitempty"`
}

// WithdrawMsg burns wrapped units and requests their release on the origin
// chain.
type WithdrawMsg struct {
	Amount             math.Int `json:"amount"`
	DestinationAddress string   `json:"destination_address"`
}

type UpdateMetadataMsg struct {
	Name     string `json:"name,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Decimals uint8  `json:"decimals,omitempty"`
}

type TransferMsg struct {
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

type BurnMsg struct {
	Amount math.Int `json:"amount"`
}

// QueryMsg is the closed set of read-only queries served by the module.
type QueryMsg struct {
	BridgeOrigin   *BridgeOriginQuery   `json:"bridge_origin,omitempty"`
	TokenInfo      *TokenInfoQuery      `json:"token_info,omitempty"`
	Balance        *BalanceQuery        `json:"balance,omitempty"`
	ApprovedTokens *ApprovedTokensQuery `json:"approved_tokens,omitempty"`
}

type BridgeOriginQuery struct{}

type TokenInfoQuery struct{}

type BalanceQuery struct {
	Address string `json:"address"`
}

type ApprovedTokensQuery struct{}

// TokenInfoResponse merges creation-time metadata with any override.
type TokenInfoResponse struct {
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Decimals    uint8    `json:"decimals"`
	TotalSupply math.Int `json:"total_supply"`
}

type BalanceResponse struct {
	Balance math.Int `json:"balance"`
}

type ApprovedTokensResponse struct {
	ApprovedTokens []BridgeOrigin `json:"approved_tokens"`
}
