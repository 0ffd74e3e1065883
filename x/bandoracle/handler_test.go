package bandoracle

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"
	channeltypes "github.com/cosmos/ibc-go/v6/modules/core/04-channel/types"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/bandoracle/x/bandoracle/keeper"
	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

func TestNewHandler(t *testing.T) {
	f := setupTest(t)
	handler := NewHandler(keeper.NewMsgServerImpl(f.keeper))

	chanCap := capabilitytypes.NewCapability(3)
	f.channelKeeper.On("GetChannel", mock.Anything, types.PortID, "channel-7").Return(channeltypes.Channel{}, true)
	f.scopedKeeper.On("GetCapability", mock.Anything, "capabilities/ports/"+types.PortID+"/channels/channel-7").Return(chanCap, true)
	f.ics4Wrapper.On("SendPacket", mock.Anything, chanCap, types.PortID, "channel-7", mock.Anything, mock.Anything, mock.Anything).
		Return(uint64(9), nil)

	tests := []struct {
		name    string
		msg     sdk.Msg
		wantErr error
		expRes  proto.Message
	}{
		{
			name:    "send request before channel is set",
			msg:     types.NewMsgSendRequest(stranger.String(), "tvl-1"),
			wantErr: types.ErrChannelNotSet,
		},
		{
			name:    "set channel by stranger",
			msg:     types.NewMsgSetChannel(stranger.String(), "channel-7"),
			wantErr: types.ErrUnauthorized,
		},
		{
			name:   "set channel by owner",
			msg:    types.NewMsgSetChannel(owner.String(), "channel-7"),
			expRes: &types.MsgSetChannelResponse{},
		},
		{
			name:    "register request by stranger",
			msg:     types.NewMsgRegisterRequest(stranger.String(), 37, []string{"LUNA"}, 1000000, 16, 10),
			wantErr: types.ErrUnauthorized,
		},
		{
			name:   "register request by owner",
			msg:    types.NewMsgRegisterRequest(owner.String(), 37, []string{"LUNA"}, 1000000, 16, 10),
			expRes: &types.MsgRegisterRequestResponse{RequestID: "tvl-1"},
		},
		{
			name:    "send unknown request",
			msg:     types.NewMsgSendRequest(stranger.String(), "tvl-2"),
			wantErr: types.ErrRequestNotFound,
		},
		{
			name:   "send request by anyone",
			msg:    types.NewMsgSendRequest(stranger.String(), "tvl-1"),
			expRes: &types.MsgSendRequestResponse{Sequence: 9},
		},
		{
			name:    "unknown msg",
			msg:     &channeltypes.MsgChannelOpenInit{},
			wantErr: sdkerrors.ErrUnknownRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := handler(f.ctx, tt.msg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, res.MsgResponses, 1)
			require.Equal(t, "/"+proto.MessageName(tt.expRes), res.MsgResponses[0].TypeUrl)
			require.Equal(t, tt.expRes, res.MsgResponses[0].GetCachedValue())
			require.NotEmpty(t, res.Events)
		})
	}
}
