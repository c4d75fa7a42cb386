package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// MaxUint128 bounds every ledger magnitude handled by this module.
var MaxUint128 = math.NewIntFromBigInt(new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// nativeScale converts 6-decimal quote magnitudes into 9-decimal native
// magnitudes: quote * 1e9 / price.
var nativeScale = math.NewInt(1_000_000_000)

// TokensForQuoteAmount returns the native payout for a paid-in quote amount
// at a fixed price, floor(quoteAmount * 1e9 / price).
//
// quoteAmount and price carry 6 implied decimals, the result carries 9. A
// non-positive amount or price yields zero rather than an error; callers
// reject those at the boundary. A scaled product that would not fit 128 bits
// also collapses to zero.
func TokensForQuoteAmount(quoteAmount, price math.Int) math.Int {
	if quoteAmount.IsNil() || !quoteAmount.IsPositive() {
		return math.ZeroInt()
	}
	if price.IsNil() || !price.IsPositive() {
		return math.ZeroInt()
	}
	scaled := quoteAmount.Mul(nativeScale)
	if scaled.GT(MaxUint128) {
		return math.ZeroInt()
	}
	return scaled.Quo(price)
}
