package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SetChannel binds the oracle channel. Owner only.
func (k msgServer) SetChannel(goCtx context.Context, msg *types.MsgSetChannel) (*types.MsgSetChannelResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	if err := k.Keeper.SetChannel(ctx, owner, msg.Channel); err != nil {
		return nil, err
	}

	return &types.MsgSetChannelResponse{}, nil
}

// RegisterRequest stores a new request template. Owner only.
func (k msgServer) RegisterRequest(goCtx context.Context, msg *types.MsgRegisterRequest) (*types.MsgRegisterRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	requestID, err := k.Keeper.RegisterRequest(
		ctx,
		owner,
		msg.OracleScriptID,
		msg.Symbols,
		msg.Multiplier,
		msg.AskCount,
		msg.MinCount,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgRegisterRequestResponse{RequestID: requestID}, nil
}

// SendRequest relays a registered request to BandChain.
func (k msgServer) SendRequest(goCtx context.Context, msg *types.MsgSendRequest) (*types.MsgSendRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}

	sequence, err := k.Keeper.SendRequest(ctx, sender, msg.RequestID)
	if err != nil {
		return nil, err
	}

	return &types.MsgSendRequestResponse{Sequence: sequence}, nil
}
