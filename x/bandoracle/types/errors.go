package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrUnauthorized               = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrChannelNotSet              = errorsmod.Register(ModuleName, 3, "local channel is not set")
	ErrRequestNotFound            = errorsmod.Register(ModuleName, 4, "provided request id is not registered")
	ErrOrderedChannelNotSupported = errorsmod.Register(ModuleName, 5, "only unordered channels are supported")
	ErrInvalidVersion             = errorsmod.Register(ModuleName, 6, "invalid IBC channel version")
	ErrEncodeCalldata             = errorsmod.Register(ModuleName, 7, "cannot encode calldata")
	ErrDecodeResult               = errorsmod.Register(ModuleName, 8, "cannot decode result")
	ErrRequestNotResolved         = errorsmod.Register(ModuleName, 9, "band request did not resolve successfully")
	ErrWrongChannel               = errorsmod.Register(ModuleName, 10, "received packet coming from the wrong channel")
	ErrInvalidClientID            = errorsmod.Register(ModuleName, 11, "invalid client id")
	ErrLengthMismatch             = errorsmod.Register(ModuleName, 12, "result and calldata length mismatched")
	ErrInvalidPacket              = errorsmod.Register(ModuleName, 13, "invalid oracle packet")
	ErrInvalidPort                = errorsmod.Register(ModuleName, 14, "invalid port")
	ErrChannelNotFound            = errorsmod.Register(ModuleName, 15, "channel not found")
	ErrChannelCapabilityNotFound  = errorsmod.Register(ModuleName, 16, "channel capability not found")
	ErrInvalidGenesis             = errorsmod.Register(ModuleName, 17, "invalid genesis state")
)
