package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes for the exchange module
const (
	BaseErrorCode uint32 = 1
)

var (
	ErrUnauthorized        = sdkerrors.Register(ModuleName, BaseErrorCode+1, "unauthorized")
	ErrContractPaused      = sdkerrors.Register(ModuleName, BaseErrorCode+2, "contract is paused")
	ErrZeroAmount          = sdkerrors.Register(ModuleName, BaseErrorCode+3, "zero amount not allowed")
	ErrInsufficientBalance = sdkerrors.Register(ModuleName, BaseErrorCode+4, "insufficient contract balance")
	ErrTokenNotAccepted    = sdkerrors.Register(ModuleName, BaseErrorCode+5, "token not accepted")
	ErrBuyerNotAllowed     = sdkerrors.Register(ModuleName, BaseErrorCode+6, "buyer not allowed")
	ErrWrongToken          = sdkerrors.Register(ModuleName, BaseErrorCode+7, "wrong token")
	ErrInvalidToken        = sdkerrors.Register(ModuleName, BaseErrorCode+8, "invalid token")
	ErrAmountOverflow      = sdkerrors.Register(ModuleName, BaseErrorCode+9, "amount overflows 128 bits")
	ErrConfigExists        = sdkerrors.Register(ModuleName, BaseErrorCode+10, "exchange already instantiated")
)
