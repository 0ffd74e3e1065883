package types

import (
	channeltypes "github.com/cosmos/ibc-go/v6/modules/core/04-channel/types"
)

// AckSuccessMarker is the result carried by every successful acknowledgement.
var AckSuccessMarker = []byte("1")

// NewSuccessAcknowledgement returns the acknowledgement written for a
// response that updated the price store.
func NewSuccessAcknowledgement() channeltypes.Acknowledgement {
	return channeltypes.NewResultAcknowledgement(AckSuccessMarker)
}

// NewErrorAcknowledgement returns an error acknowledgement that keeps the
// full error message. channeltypes.NewErrorAcknowledgement only keeps the
// ABCI code, which is useless to the BandChain side.
func NewErrorAcknowledgement(err error) channeltypes.Acknowledgement {
	return channeltypes.Acknowledgement{
		Response: &channeltypes.Acknowledgement_Error{
			Error: err.Error(),
		},
	}
}
