package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes for the wrappedtoken module
const (
	BaseErrorCode uint32 = 1
)

var (
	ErrUnauthorized      = sdkerrors.Register(ModuleName, BaseErrorCode+1, "unauthorized")
	ErrInsufficientFunds = sdkerrors.Register(ModuleName, BaseErrorCode+2, "insufficient funds")
	ErrUnknownAsset      = sdkerrors.Register(ModuleName, BaseErrorCode+3, "unknown wrapped asset")
	ErrAssetExists       = sdkerrors.Register(ModuleName, BaseErrorCode+4, "wrapped asset already exists")
)
