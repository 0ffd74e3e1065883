package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v6/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v6/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v6/modules/core/24-host"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// SendRequest relays the registered request to BandChain over the bound
// channel and returns the packet sequence. Anyone may trigger it and a
// request can be sent again after a failure or timeout.
func (k Keeper) SendRequest(ctx sdk.Context, sender sdk.AccAddress, requestID string) (uint64, error) {
	config, found := k.GetConfig(ctx)
	if !found || config.Channel == "" {
		return 0, types.ErrChannelNotSet
	}

	request, err := k.GetRequest(ctx, requestID)
	if err != nil {
		return 0, err
	}

	sourcePort := k.GetPort(ctx)
	sourceChannel := config.Channel

	if _, found := k.channelKeeper.GetChannel(ctx, sourcePort, sourceChannel); !found {
		return 0, errorsmod.Wrapf(types.ErrChannelNotFound, "port ID (%s) channel ID (%s)", sourcePort, sourceChannel)
	}

	chanCap, ok := k.scopedKeeper.GetCapability(ctx, host.ChannelCapabilityPath(sourcePort, sourceChannel))
	if !ok {
		return 0, errorsmod.Wrapf(types.ErrChannelCapabilityNotFound, "port ID (%s) channel ID (%s)", sourcePort, sourceChannel)
	}

	packetData := types.NewOracleRequestPacketData(requestID, request)
	if err := packetData.ValidateBasic(); err != nil {
		return 0, err
	}

	timeoutTimestamp := uint64(ctx.BlockTime().Add(types.PacketTimeout).UnixNano())

	sequence, err := k.ics4Wrapper.SendPacket(
		ctx,
		chanCap,
		sourcePort,
		sourceChannel,
		clienttypes.ZeroHeight(),
		timeoutTimestamp,
		packetData.GetBytes(),
	)
	if err != nil {
		return 0, err
	}

	defer telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "request", "send"},
		1,
		[]metrics.Label{telemetry.NewLabel("source-channel", sourceChannel)},
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSendRequest,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyChannel, sourceChannel),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
		),
	)

	k.Logger(ctx).Info("oracle request sent", "request-id", requestID, "channel", sourceChannel, "sequence", sequence)
	return sequence, nil
}

// OnRecvPacket resolves a BandChain response. No price is written unless
// every check passes, so a rejected response leaves the store untouched.
func (k Keeper) OnRecvPacket(ctx sdk.Context, packet channeltypes.Packet, data types.OracleResponsePacketData) (err error) {
	defer func() {
		status := "success"
		if err != nil {
			status = "failure"
		}
		telemetry.IncrCounterWithLabels(
			[]string{types.ModuleName, "request", "resolve"},
			1,
			[]metrics.Label{telemetry.NewLabel("status", status)},
		)
	}()

	if data.ResolveStatus != types.ResolveStatusSuccess {
		return errorsmod.Wrapf(types.ErrRequestNotResolved, "status %s", data.ResolveStatus)
	}

	config, _ := k.GetConfig(ctx)
	if packet.GetDestChannel() != config.Channel {
		return errorsmod.Wrapf(types.ErrWrongChannel, "got %s, bound %s", packet.GetDestChannel(), config.Channel)
	}

	rates, err := types.DecodeResult(data.Result)
	if err != nil {
		return err
	}

	request, err := k.GetRequest(ctx, data.ClientID)
	if err != nil {
		return errorsmod.Wrap(types.ErrInvalidClientID, data.ClientID)
	}

	if len(rates) != len(request.Symbols) {
		return errorsmod.Wrapf(types.ErrLengthMismatch, "got %d rates for %d symbols", len(rates), len(request.Symbols))
	}

	bandRequestID, err := strconv.ParseUint(data.RequestID, 10, 64)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidPacket, "invalid request id %q", data.RequestID)
	}

	resolveTime, err := strconv.ParseUint(data.ResolveTime, 10, 64)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidPacket, "invalid resolve time %q", data.ResolveTime)
	}

	if request.Multiplier == 0 {
		return errorsmod.Wrapf(types.ErrInvalidPacket, "request %s has a zero multiplier", data.ClientID)
	}
	multiplier := math.NewIntFromUint64(request.Multiplier)

	for i, symbol := range request.Symbols {
		k.SetPrice(ctx, symbol, types.PriceData{
			Rate:                 sdk.NewDecFromInt(math.NewIntFromUint64(rates[i])).QuoInt(multiplier),
			BandchainRequestID:   bandRequestID,
			BandchainResolveTime: resolveTime,
		})
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestResolved,
			sdk.NewAttribute(types.AttributeKeyRequestID, data.ClientID),
			sdk.NewAttribute(types.AttributeKeyBandRequestID, data.RequestID),
			sdk.NewAttribute(types.AttributeKeyResolveTime, data.ResolveTime),
			sdk.NewAttribute(types.AttributeKeyChannel, packet.GetDestChannel()),
		),
	)

	k.Logger(ctx).Info("oracle request resolved", "request-id", data.ClientID, "bandchain-request-id", bandRequestID)
	return nil
}

// OnAcknowledgementPacket records the BandChain acknowledgement of a sent
// request. Prices only change on the response packet, so nothing is stored.
func (k Keeper) OnAcknowledgementPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	data types.OracleRequestPacketData,
	ack channeltypes.Acknowledgement,
) error {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyRequestID, data.ClientID),
		sdk.NewAttribute(types.AttributeKeyChannel, packet.GetSourceChannel()),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.GetSequence(), 10)),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(ack.Success())),
	}

	switch resp := ack.Response.(type) {
	case *channeltypes.Acknowledgement_Result:
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyAcknowledgement, string(resp.Result)))
		k.Logger(ctx).Info("oracle request acknowledged", "request-id", data.ClientID)
	case *channeltypes.Acknowledgement_Error:
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyError, resp.Error))
		k.Logger(ctx).Error("oracle request rejected", "request-id", data.ClientID, "error", resp.Error)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeRequestAcknowledged, attributes...))
	return nil
}

// OnTimeoutPacket records that a sent request was never delivered. The
// request stays registered and can be sent again.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, packet channeltypes.Packet, data types.OracleRequestPacketData) error {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestTimeout,
			sdk.NewAttribute(types.AttributeKeyRequestID, data.ClientID),
			sdk.NewAttribute(types.AttributeKeyChannel, packet.GetSourceChannel()),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.GetSequence(), 10)),
		),
	)

	k.Logger(ctx).Error("oracle request timed out", "request-id", data.ClientID, "sequence", packet.GetSequence())
	return nil
}
