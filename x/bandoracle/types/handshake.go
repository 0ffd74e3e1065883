package types

import (
	errorsmod "cosmossdk.io/errors"
	channeltypes "github.com/cosmos/ibc-go/v6/modules/core/04-channel/types"
)

// ChannelState is the lifecycle stage of the oracle channel as seen by this module.
type ChannelState int

const (
	ChannelStateUnopened ChannelState = iota
	ChannelStateOpening
	ChannelStateOpen
	ChannelStateClosed
)

func (s ChannelState) String() string {
	switch s {
	case ChannelStateOpening:
		return "opening"
	case ChannelStateOpen:
		return "open"
	case ChannelStateClosed:
		return "closed"
	default:
		return "unopened"
	}
}

// ValidateHandshake checks the channel ordering and versions negotiated at
// the open and connect stages. remoteVersion is nil when the counterparty
// version is not known at that stage.
func ValidateHandshake(order channeltypes.Order, localVersion string, remoteVersion *string) error {
	if order != channeltypes.UNORDERED {
		return errorsmod.Wrapf(ErrOrderedChannelNotSupported, "expected %s channel, got %s", channeltypes.UNORDERED, order)
	}

	if localVersion != Version {
		return errorsmod.Wrapf(ErrInvalidVersion, "got (%s), expected (%s)", localVersion, Version)
	}

	if remoteVersion != nil && *remoteVersion != Version {
		return errorsmod.Wrapf(ErrInvalidVersion, "got (%s), expected (%s)", *remoteVersion, Version)
	}

	return nil
}
