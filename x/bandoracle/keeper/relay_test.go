package keeper

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"
	clienttypes "github.com/cosmos/ibc-go/v6/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v6/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v6/modules/core/24-host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

const bandPort = "oracle"

func responsePacket(destChannel string, data types.OracleResponsePacketData) channeltypes.Packet {
	return channeltypes.NewPacket(
		data.GetBytes(), 1,
		bandPort, "channel-0",
		types.PortID, destChannel,
		clienttypes.ZeroHeight(), 0,
	)
}

func successResponse(clientID, result string) types.OracleResponsePacketData {
	return types.OracleResponsePacketData{
		ClientID:      clientID,
		RequestID:     "2037918",
		AnsCount:      "16",
		RequestTime:   "1699999990",
		ResolveTime:   "1700000000",
		ResolveStatus: types.ResolveStatusSuccess,
		Result:        result,
	}
}

func TestSendRequest(t *testing.T) {
	keeper, ctx, m := setupKeeper(t)
	chanCap := capabilitytypes.NewCapability(3)

	requestID, err := keeper.RegisterRequest(ctx, owner, 37, []string{"LUNA"}, 1000000, 16, 10)
	require.NoError(t, err)

	_, err = keeper.SendRequest(ctx, stranger, requestID)
	require.ErrorIs(t, err, types.ErrChannelNotSet)

	require.NoError(t, keeper.SetChannel(ctx, owner, "channel-7"))

	_, err = keeper.SendRequest(ctx, stranger, "tvl-9")
	require.ErrorIs(t, err, types.ErrRequestNotFound)

	expectedData := `{"ask_count":"16","calldata":"AAAAAQAAAARMVU5BAAAAAAAPQkA=","client_id":"tvl-1",` +
		`"execute_gas":"4000000","fee_limit":[{"amount":"1000000","denom":"uband"}],` +
		`"min_count":"10","oracle_script_id":"37","prepare_gas":"100000"}`
	expectedTimeout := uint64(ctx.BlockTime().Add(300 * time.Second).UnixNano())

	m.channelKeeper.On("GetChannel", mock.Anything, types.PortID, "channel-7").Return(channeltypes.Channel{}, true)
	m.scopedKeeper.On("GetCapability", mock.Anything, host.ChannelCapabilityPath(types.PortID, "channel-7")).Return(chanCap, true)
	m.ics4Wrapper.On(
		"SendPacket", mock.Anything, chanCap, types.PortID, "channel-7",
		clienttypes.ZeroHeight(), expectedTimeout, []byte(expectedData),
	).Return(uint64(1), nil).Once()
	m.ics4Wrapper.On(
		"SendPacket", mock.Anything, chanCap, types.PortID, "channel-7",
		clienttypes.ZeroHeight(), expectedTimeout, []byte(expectedData),
	).Return(uint64(2), nil).Once()

	sequence, err := keeper.SendRequest(ctx, stranger, requestID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sequence)

	// a request can be sent again, the calldata is replayed as is
	sequence, err = keeper.SendRequest(ctx, owner, requestID)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), sequence)

	m.ics4Wrapper.AssertExpectations(t)
}

func TestSendRequestChannelNotOpen(t *testing.T) {
	keeper, ctx, m := setupKeeper(t)

	requestID, err := keeper.RegisterRequest(ctx, owner, 37, []string{"LUNA"}, 1000000, 16, 10)
	require.NoError(t, err)
	require.NoError(t, keeper.SetChannel(ctx, owner, "channel-7"))

	m.channelKeeper.On("GetChannel", mock.Anything, types.PortID, "channel-7").Return(channeltypes.Channel{}, false).Once()
	_, err = keeper.SendRequest(ctx, owner, requestID)
	require.ErrorIs(t, err, types.ErrChannelNotFound)

	m.channelKeeper.On("GetChannel", mock.Anything, types.PortID, "channel-7").Return(channeltypes.Channel{}, true)
	m.scopedKeeper.On("GetCapability", mock.Anything, mock.Anything).Return(nil, false)
	_, err = keeper.SendRequest(ctx, owner, requestID)
	require.ErrorIs(t, err, types.ErrChannelCapabilityNotFound)

	m.ics4Wrapper.AssertNumberOfCalls(t, "SendPacket", 0)
}

func TestOnRecvPacket(t *testing.T) {
	stale := types.PriceData{
		Rate:                 sdk.MustNewDecFromStr("12.5"),
		BandchainRequestID:   1,
		BandchainResolveTime: 1,
	}

	testCases := []struct {
		name     string
		channel  string
		malleate func(data *types.OracleResponsePacketData)
		expErr   error
		errMsg   string
	}{
		{
			"resolve status not success",
			"channel-7",
			func(data *types.OracleResponsePacketData) {
				data.ResolveStatus = "RESOLVE_STATUS_EXPIRED"
			},
			types.ErrRequestNotResolved,
			"did not resolve successfully",
		},
		{
			"wrong channel",
			"channel-3",
			func(data *types.OracleResponsePacketData) {},
			types.ErrWrongChannel,
			"wrong channel",
		},
		{
			"result is not base64",
			"channel-7",
			func(data *types.OracleResponsePacketData) {
				data.Result = "not base64!"
			},
			types.ErrDecodeResult,
			"cannot decode result",
		},
		{
			"result shorter than its prefix",
			"channel-7",
			func(data *types.OracleResponsePacketData) {
				data.Result = "AAAAAg=="
			},
			types.ErrDecodeResult,
			"cannot decode result",
		},
		{
			"unknown client id",
			"channel-7",
			func(data *types.OracleResponsePacketData) {
				data.ClientID = "tvl-9"
			},
			types.ErrInvalidClientID,
			"invalid client id",
		},
		{
			"arity mismatch",
			"channel-7",
			func(data *types.OracleResponsePacketData) {
				data.Result = twoRatesResult
			},
			types.ErrLengthMismatch,
			"result and calldata length mismatched",
		},
		{
			"request id not numeric",
			"channel-7",
			func(data *types.OracleResponsePacketData) {
				data.RequestID = "abc"
			},
			types.ErrInvalidPacket,
			"invalid request id",
		},
		{
			"resolve time not numeric",
			"channel-7",
			func(data *types.OracleResponsePacketData) {
				data.ResolveTime = ""
			},
			types.ErrInvalidPacket,
			"invalid resolve time",
		},
		{
			"success",
			"channel-7",
			func(data *types.OracleResponsePacketData) {},
			nil,
			"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			keeper, ctx, _ := setupKeeper(t)
			require.NoError(t, keeper.SetChannel(ctx, owner, "channel-7"))

			requestID, err := keeper.RegisterRequest(ctx, owner, 37, []string{"LUNA"}, 1000000, 16, 10)
			require.NoError(t, err)
			keeper.SetPrice(ctx, "LUNA", stale)

			data := successResponse(requestID, lunaResult)
			tc.malleate(&data)

			err = keeper.OnRecvPacket(ctx, responsePacket(tc.channel, data), data)
			price, found := keeper.GetPrice(ctx, "LUNA")
			require.True(t, found)

			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				assert.Contains(t, err.Error(), tc.errMsg)
				assert.True(t, stale.Rate.Equal(price.Rate))
				assert.Equal(t, stale.BandchainRequestID, price.BandchainRequestID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "31.000000000000000000", price.Rate.String())
			assert.Equal(t, uint64(2037918), price.BandchainRequestID)
			assert.Equal(t, uint64(1700000000), price.BandchainResolveTime)
		})
	}
}

func TestOnRecvPacketChannelNotSet(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)

	requestID, err := keeper.RegisterRequest(ctx, owner, 37, []string{"LUNA"}, 1000000, 16, 10)
	require.NoError(t, err)

	data := successResponse(requestID, lunaResult)
	err = keeper.OnRecvPacket(ctx, responsePacket("channel-7", data), data)
	require.ErrorIs(t, err, types.ErrWrongChannel)

	_, found := keeper.GetPrice(ctx, "LUNA")
	assert.False(t, found)
}

func TestOnRecvPacketMultipleSymbols(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	require.NoError(t, keeper.SetChannel(ctx, owner, "channel-7"))

	requestID, err := keeper.RegisterRequest(ctx, owner, 37, []string{"LUNA", "DUST"}, 1000000, 16, 10)
	require.NoError(t, err)

	data := successResponse(requestID, twoRatesResult)
	require.NoError(t, keeper.OnRecvPacket(ctx, responsePacket("channel-7", data), data))

	luna, found := keeper.GetPrice(ctx, "LUNA")
	require.True(t, found)
	assert.Equal(t, "31.000000000000000000", luna.Rate.String())

	// 5 / 1000000
	dust, found := keeper.GetPrice(ctx, "DUST")
	require.True(t, found)
	assert.Equal(t, "0.000005000000000000", dust.Rate.String())
}

func TestOnAcknowledgementPacket(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	data := types.OracleRequestPacketData{ClientID: "tvl-1"}
	packet := channeltypes.NewPacket(data.GetBytes(), 4, types.PortID, "channel-7", bandPort, "channel-0", clienttypes.ZeroHeight(), 0)

	ctx = ctx.WithEventManager(sdk.NewEventManager())
	require.NoError(t, keeper.OnAcknowledgementPacket(ctx, packet, data, channeltypes.NewErrorAcknowledgement(types.ErrInvalidPacket)))

	events := ctx.EventManager().Events()
	require.Len(t, events, 1)
	assert.Equal(t, types.EventTypeRequestAcknowledged, events[0].Type)
	assertAttribute(t, events[0], types.AttributeKeyAckSuccess, "false")
	assertAttribute(t, events[0], types.AttributeKeyRequestID, "tvl-1")

	ctx = ctx.WithEventManager(sdk.NewEventManager())
	require.NoError(t, keeper.OnAcknowledgementPacket(ctx, packet, data, types.NewSuccessAcknowledgement()))
	events = ctx.EventManager().Events()
	require.Len(t, events, 1)
	assertAttribute(t, events[0], types.AttributeKeyAckSuccess, "true")
}

func TestOnTimeoutPacket(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	data := types.OracleRequestPacketData{ClientID: "tvl-1"}
	packet := channeltypes.NewPacket(data.GetBytes(), 4, types.PortID, "channel-7", bandPort, "channel-0", clienttypes.ZeroHeight(), 0)

	ctx = ctx.WithEventManager(sdk.NewEventManager())
	require.NoError(t, keeper.OnTimeoutPacket(ctx, packet, data))

	events := ctx.EventManager().Events()
	require.Len(t, events, 1)
	assert.Equal(t, types.EventTypeRequestTimeout, events[0].Type)
	assertAttribute(t, events[0], types.AttributeKeySequence, "4")
}

func assertAttribute(t *testing.T, event sdk.Event, key, value string) {
	t.Helper()
	for _, attr := range event.Attributes {
		if string(attr.Key) == key {
			assert.Equal(t, value, string(attr.Value))
			return
		}
	}
	t.Errorf("attribute %s not found in event %s", key, event.Type)
}
