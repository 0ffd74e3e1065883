package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
	host "github.com/cosmos/ibc-go/v6/modules/core/24-host"
)

const (
	TypeMsgSetChannel      = "set_channel"
	TypeMsgRegisterRequest = "register_request"
	TypeMsgSendRequest     = "send_request"
)

var (
	_ sdk.Msg            = &MsgSetChannel{}
	_ sdk.Msg            = &MsgRegisterRequest{}
	_ sdk.Msg            = &MsgSendRequest{}
	_ legacytx.LegacyMsg = &MsgSetChannel{}
	_ legacytx.LegacyMsg = &MsgRegisterRequest{}
	_ legacytx.LegacyMsg = &MsgSendRequest{}
)

// NewMsgSetChannel creates a new MsgSetChannel instance
func NewMsgSetChannel(owner, channel string) *MsgSetChannel {
	return &MsgSetChannel{
		Owner:   owner,
		Channel: channel,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSetChannel) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetChannel) Type() string { return TypeMsgSetChannel }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetChannel) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetChannel) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetChannel) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address (%s)", err)
	}
	if err := host.ChannelIdentifierValidator(msg.Channel); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid channel (%s)", err)
	}
	return nil
}

// NewMsgRegisterRequest creates a new MsgRegisterRequest instance
func NewMsgRegisterRequest(
	owner string,
	oracleScriptID uint64,
	symbols []string,
	multiplier uint64,
	askCount uint64,
	minCount uint64,
) *MsgRegisterRequest {
	return &MsgRegisterRequest{
		Owner:          owner,
		OracleScriptID: oracleScriptID,
		Symbols:        symbols,
		Multiplier:     multiplier,
		AskCount:       askCount,
		MinCount:       minCount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRegisterRequest) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRegisterRequest) Type() string { return TypeMsgRegisterRequest }

// GetSigners implements the sdk.Msg interface
func (msg MsgRegisterRequest) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRegisterRequest) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRegisterRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address (%s)", err)
	}
	if err := ValidateSymbols(msg.Symbols); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	if msg.Multiplier == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "multiplier cannot be zero")
	}
	if msg.AskCount == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "ask count cannot be zero")
	}
	return nil
}

// NewMsgSendRequest creates a new MsgSendRequest instance
func NewMsgSendRequest(sender, requestID string) *MsgSendRequest {
	return &MsgSendRequest{
		Sender:    sender,
		RequestID: requestID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSendRequest) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSendRequest) Type() string { return TypeMsgSendRequest }

// GetSigners implements the sdk.Msg interface
func (msg MsgSendRequest) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSendRequest) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSendRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address (%s)", err)
	}
	if strings.TrimSpace(msg.RequestID) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "request id cannot be blank")
	}
	return nil
}
