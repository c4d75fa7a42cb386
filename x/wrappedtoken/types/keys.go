package types

import (
	"strings"

	"cosmossdk.io/collections"
)

const (
	ModuleName = "wrappedtoken"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)

var (
	OriginsKeyPrefix           = collections.NewPrefix(0)
	AuthoritiesKeyPrefix       = collections.NewPrefix(1)
	MetadataOverridesKeyPrefix = collections.NewPrefix(2)
	TradeApprovalsKeyPrefix    = collections.NewPrefix(3)
)

const (
	OriginsName           = "origins"
	AuthoritiesName       = "authorities"
	MetadataOverridesName = "metadata_overrides"
	TradeApprovalsName    = "trade_approvals"
)

// WithdrawalTypeURL routes the single cross-chain instruction emitted per
// withdrawal.
const WithdrawalTypeURL = "/inference.inference.MsgRequestBridgeWithdrawal"

// WrappedDenom derives the bank denomination of a wrapped asset from its
// origin pair. The origin contract address is normalized to lowercase so one
// origin maps to exactly one denomination.
func WrappedDenom(chainID, contractAddress string) string {
	return "wrapped/" + chainID + "/" + strings.ToLower(contractAddress)
}
