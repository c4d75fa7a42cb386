package types

import "cosmossdk.io/collections"

var (
	// ConfigKey saves the singleton exchange configuration.
	ConfigKey = collections.NewPrefix(0)

	// ConfigName is the name of the config collection.
	ConfigName = "config"
)

const (
	ModuleName = "exchange"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)

// WrappedTokenScheme is the optional scheme prefix carried by asset handles
// presented to the bridge identity resolver, e.g. "wrapped:wrapped/ethereum/0x..".
const WrappedTokenScheme = "wrapped:"

// DefaultNativeDenom is used when the native denomination cannot be resolved
// from the bank total supply at instantiation time.
const DefaultNativeDenom = "ngonka"

// Registry query paths served by the chain-level wrapped-token registry.
const (
	ValidateWrappedTokenPath = "/inference.inference.Query/ValidateWrappedTokenForTrade"
	ApprovedTokensPath       = "/inference.inference.Query/ApprovedTokensForTrade"
)
