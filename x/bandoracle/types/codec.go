package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc encodes store values, packets, querier responses and the
	// amino JSON sign bytes of the module msgs.
	ModuleCdc = amino
)

func init() {
	RegisterLegacyAminoCodec(amino)
	cryptocodec.RegisterCrypto(amino)
	amino.Seal()
}

// RegisterLegacyAminoCodec registers the module msgs on the given amino codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSetChannel{}, "bandoracle/SetChannel", nil)
	cdc.RegisterConcrete(&MsgRegisterRequest{}, "bandoracle/RegisterRequest", nil)
	cdc.RegisterConcrete(&MsgSendRequest{}, "bandoracle/SendRequest", nil)
}

// RegisterInterfaces registers the module msgs as sdk.Msg implementations
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgSetChannel{},
		&MsgRegisterRequest{},
		&MsgSendRequest{},
	)
}
