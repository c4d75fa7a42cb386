package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// BankKeeper defines the expected interface for the bank module. The exchange
// never mutates balances directly; transfers happen through emitted
// settlement instructions executed by the host.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin

	GetPaginatedTotalSupply(ctx context.Context, pagination *query.PageRequest) (sdk.Coins, *query.PageResponse, error)
}

// ApprovalOracle answers whether a presented asset handle is an approved
// bridge-originated asset. The answer is advisory at the platform level: it
// establishes that some governance process approved the asset as a legitimate
// bridge wrapper, independent of which origin asset it wraps.
type ApprovalOracle interface {
	ValidateWrappedTokenForTrade(ctx context.Context, contractAddress string) (bool, error)

	ApprovedTokensForTrade(ctx context.Context) ([]TokenOrigin, error)
}

// OriginReporter asks an asset to self-report the origin pair it wraps.
type OriginReporter interface {
	TokenOrigin(ctx context.Context, contractAddress string) (TokenOrigin, error)
}

// PathQuerier issues a path-addressed, read-only query against a chain-level
// service, with protobuf-encoded request and response payloads.
type PathQuerier interface {
	Query(ctx context.Context, path string, req []byte) ([]byte, error)
}

// SmartQuerier issues a read-only contract-to-contract query with a
// JSON-encoded request and response.
type SmartQuerier interface {
	QuerySmart(ctx context.Context, contractAddress string, req []byte) ([]byte, error)
}
