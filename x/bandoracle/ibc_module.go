package bandoracle

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"
	channeltypes "github.com/cosmos/ibc-go/v6/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v6/modules/core/05-port/types"
	host "github.com/cosmos/ibc-go/v6/modules/core/24-host"
	ibcexported "github.com/cosmos/ibc-go/v6/modules/core/exported"

	"github.com/GPTx-global/bandoracle/x/bandoracle/keeper"
	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

var _ porttypes.IBCModule = IBCModule{}

// IBCModule implements the ICS26 interface for the BandChain oracle channel
type IBCModule struct {
	keeper        keeper.Keeper
	channelKeeper types.ChannelKeeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper, channelKeeper types.ChannelKeeper) IBCModule {
	return IBCModule{
		keeper:        k,
		channelKeeper: channelKeeper,
	}
}

// validateOpen performs the checks shared by both ends of the open stage
func (im IBCModule) validateOpen(
	ctx sdk.Context,
	order channeltypes.Order,
	portID string,
	channelID string,
	version string,
	counterpartyVersion *string,
) error {
	if err := types.ValidateHandshake(order, version, counterpartyVersion); err != nil {
		return err
	}

	if boundPort := im.keeper.GetPort(ctx); boundPort != portID {
		return errorsmod.Wrapf(types.ErrInvalidPort, "invalid port: %s, expected %s", portID, boundPort)
	}

	return host.ChannelIdentifierValidator(channelID)
}

// validateConnect checks the stored channel against the counterparty version
func (im IBCModule) validateConnect(ctx sdk.Context, portID, channelID string, counterpartyVersion *string) error {
	channel, found := im.channelKeeper.GetChannel(ctx, portID, channelID)
	if !found {
		return errorsmod.Wrapf(types.ErrChannelNotFound, "port ID (%s) channel ID (%s)", portID, channelID)
	}

	return types.ValidateHandshake(channel.Ordering, channel.Version, counterpartyVersion)
}

func (im IBCModule) emitChannelEvent(ctx sdk.Context, eventType, portID, channelID string, state types.ChannelState) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyPort, portID),
			sdk.NewAttribute(types.AttributeKeyChannel, channelID),
			sdk.NewAttribute(types.AttributeKeyChannelState, state.String()),
		),
	)
}

// OnChanOpenInit implements the IBCModule interface
func (im IBCModule) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	chanCap *capabilitytypes.Capability,
	counterparty channeltypes.Counterparty,
	version string,
) (string, error) {
	if version == "" {
		version = types.Version
	}

	if err := im.validateOpen(ctx, order, portID, channelID, version, nil); err != nil {
		return "", err
	}

	// claim channel capability passed back by IBC module
	if err := im.keeper.ClaimCapability(ctx, chanCap, host.ChannelCapabilityPath(portID, channelID)); err != nil {
		return "", err
	}

	im.emitChannelEvent(ctx, types.EventTypeChannelOpen, portID, channelID, types.ChannelStateOpening)
	return version, nil
}

// OnChanOpenTry implements the IBCModule interface
func (im IBCModule) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	chanCap *capabilitytypes.Capability,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if err := im.validateOpen(ctx, order, portID, channelID, types.Version, &counterpartyVersion); err != nil {
		return "", err
	}

	// OpenTry must claim the channelCapability that IBC passes into the callback
	if err := im.keeper.ClaimCapability(ctx, chanCap, host.ChannelCapabilityPath(portID, channelID)); err != nil {
		return "", err
	}

	im.emitChannelEvent(ctx, types.EventTypeChannelOpen, portID, channelID, types.ChannelStateOpening)
	return types.Version, nil
}

// OnChanOpenAck implements the IBCModule interface
func (im IBCModule) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	_ string,
	counterpartyVersion string,
) error {
	if err := im.validateConnect(ctx, portID, channelID, &counterpartyVersion); err != nil {
		return err
	}

	im.onChannelConnected(ctx, portID, channelID)
	return nil
}

// OnChanOpenConfirm implements the IBCModule interface
func (im IBCModule) OnChanOpenConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	if err := im.validateConnect(ctx, portID, channelID, nil); err != nil {
		return err
	}

	im.onChannelConnected(ctx, portID, channelID)
	return nil
}

func (im IBCModule) onChannelConnected(ctx sdk.Context, portID, channelID string) {
	im.emitChannelEvent(ctx, types.EventTypeChannelConnected, portID, channelID, types.ChannelStateOpen)
	im.keeper.Logger(ctx).Info("oracle channel connected", "port", portID, "channel", channelID)
}

// OnChanCloseInit implements the IBCModule interface
func (im IBCModule) OnChanCloseInit(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	im.onChannelClosed(ctx, portID, channelID)
	return nil
}

// OnChanCloseConfirm implements the IBCModule interface
func (im IBCModule) OnChanCloseConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	im.onChannelClosed(ctx, portID, channelID)
	return nil
}

// onChannelClosed unbinds the oracle channel when it is the one closing so
// that no request is sent on a torn down channel.
func (im IBCModule) onChannelClosed(ctx sdk.Context, portID, channelID string) {
	im.emitChannelEvent(ctx, types.EventTypeChannelClosed, portID, channelID, types.ChannelStateClosed)
	im.keeper.ClearChannel(ctx, channelID)
	im.keeper.Logger(ctx).Info("oracle channel closed", "port", portID, "channel", channelID)
}

// OnRecvPacket implements the IBCModule interface. Every failure is turned
// into an error acknowledgement carrying the error message.
func (im IBCModule) OnRecvPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) ibcexported.Acknowledgement {
	data, err := types.DecodeOracleResponsePacketData(packet.GetData())
	if err == nil {
		err = im.keeper.OnRecvPacket(ctx, packet, data)
	}

	if err != nil {
		im.keeper.Logger(ctx).Error(
			"failed to resolve oracle response",
			"channel", packet.GetDestChannel(),
			"sequence", packet.GetSequence(),
			"error", err.Error(),
		)
		return types.NewErrorAcknowledgement(err)
	}

	return types.NewSuccessAcknowledgement()
}

// OnAcknowledgementPacket implements the IBCModule interface
func (im IBCModule) OnAcknowledgementPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	var ack channeltypes.Acknowledgement
	if err := channeltypes.SubModuleCdc.UnmarshalJSON(acknowledgement, &ack); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "cannot unmarshal oracle packet acknowledgement: %v", err)
	}

	data, err := types.DecodeOracleRequestPacketData(packet.GetData())
	if err != nil {
		return err
	}

	return im.keeper.OnAcknowledgementPacket(ctx, packet, data, ack)
}

// OnTimeoutPacket implements the IBCModule interface
func (im IBCModule) OnTimeoutPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) error {
	data, err := types.DecodeOracleRequestPacketData(packet.GetData())
	if err != nil {
		return err
	}

	return im.keeper.OnTimeoutPacket(ctx, packet, data)
}
