package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// OracleRequestPacketData is the packet sent to BandChain to request data
// from an oracle script.
type OracleRequestPacketData struct {
	ClientID       string    `json:"client_id"`
	OracleScriptID uint64    `json:"oracle_script_id"`
	Calldata       []byte    `json:"calldata"`
	AskCount       uint64    `json:"ask_count"`
	MinCount       uint64    `json:"min_count"`
	FeeLimit       sdk.Coins `json:"fee_limit"`
	PrepareGas     uint64    `json:"prepare_gas"`
	ExecuteGas     uint64    `json:"execute_gas"`
}

// OracleResponsePacketData is the packet BandChain sends back once a
// request is resolved. Numbers are carried as decimal strings and the
// result as base64 text.
type OracleResponsePacketData struct {
	ClientID      string `json:"client_id"`
	RequestID     string `json:"request_id"`
	AnsCount      string `json:"ans_count"`
	RequestTime   string `json:"request_time"`
	ResolveTime   string `json:"resolve_time"`
	ResolveStatus string `json:"resolve_status"`
	Result        string `json:"result"`
}

// NewOracleRequestPacketData builds the packet for a registered request
// using the fixed fee limit and gas literals.
func NewOracleRequestPacketData(clientID string, request Request) OracleRequestPacketData {
	return OracleRequestPacketData{
		ClientID:       clientID,
		OracleScriptID: request.OracleScriptID,
		Calldata:       request.Calldata,
		AskCount:       request.AskCount,
		MinCount:       request.MinCount,
		FeeLimit:       DefaultFeeLimit(),
		PrepareGas:     PrepareGas,
		ExecuteGas:     ExecuteGas,
	}
}

func (p OracleRequestPacketData) ValidateBasic() error {
	if strings.TrimSpace(p.ClientID) == "" {
		return errorsmod.Wrap(ErrInvalidPacket, "client id cannot be blank")
	}
	if len(p.Calldata) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "calldata cannot be empty")
	}
	if !p.FeeLimit.IsValid() {
		return errorsmod.Wrapf(ErrInvalidPacket, "invalid fee limit %s", p.FeeLimit)
	}
	return nil
}

// GetBytes returns the sorted JSON encoding of the packet.
func (p OracleRequestPacketData) GetBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&p))
}

// GetBytes returns the sorted JSON encoding of the packet.
func (p OracleResponsePacketData) GetBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&p))
}

// DecodeOracleResponsePacketData parses the JSON data of an inbound packet.
func DecodeOracleResponsePacketData(bz []byte) (OracleResponsePacketData, error) {
	var data OracleResponsePacketData
	if err := ModuleCdc.UnmarshalJSON(bz, &data); err != nil {
		return OracleResponsePacketData{}, errorsmod.Wrapf(ErrInvalidPacket, "cannot unmarshal oracle response packet data: %s", err)
	}
	return data, nil
}

// DecodeOracleRequestPacketData parses the JSON data of an outbound packet.
func DecodeOracleRequestPacketData(bz []byte) (OracleRequestPacketData, error) {
	var data OracleRequestPacketData
	if err := ModuleCdc.UnmarshalJSON(bz, &data); err != nil {
		return OracleRequestPacketData{}, errorsmod.Wrapf(ErrInvalidPacket, "cannot unmarshal oracle request packet data: %s", err)
	}
	return data, nil
}
