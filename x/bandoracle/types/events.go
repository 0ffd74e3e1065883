package types

const (
	// event types
	EventTypeSetChannel           = ModuleName + "_set_channel"
	EventTypeRegisterRequest      = ModuleName + "_register_request"
	EventTypeSendRequest          = ModuleName + "_send_request"
	EventTypeRequestResolved      = ModuleName + "_request_resolved"
	EventTypeRequestAcknowledged  = ModuleName + "_request_acknowledged"
	EventTypeRequestTimeout       = ModuleName + "_request_timeout"
	EventTypeChannelOpen          = ModuleName + "_channel_open"
	EventTypeChannelConnected     = ModuleName + "_channel_connected"
	EventTypeChannelClosed        = ModuleName + "_channel_closed"
	EventTypeChannelConfigCleared = ModuleName + "_channel_config_cleared"

	// event attributes
	AttributeKeyOwner           = "owner"
	AttributeKeySender          = "sender"
	AttributeKeyChannel         = "channel"
	AttributeKeyPort            = "port"
	AttributeKeyChannelState    = "channel_state"
	AttributeKeyRequestID       = "request_id"
	AttributeKeyOracleScriptID  = "oracle_script_id"
	AttributeKeySymbols         = "symbols"
	AttributeKeySequence        = "sequence"
	AttributeKeyBandRequestID   = "bandchain_request_id"
	AttributeKeyResolveTime     = "bandchain_resolve_time"
	AttributeKeyError           = "error"
	AttributeKeyAckSuccess      = "success"
	AttributeKeyAcknowledgement = "acknowledgement"
)
