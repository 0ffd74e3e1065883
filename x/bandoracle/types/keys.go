package types

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "bandoracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's legacy query routing key
	QuerierRoute = ModuleName

	// PortID is the default port the module binds to
	PortID = ModuleName

	// Version is the only IBC channel version accepted on either end
	Version = "bandchain-1"

	// RequestIDPrefix is prepended to the request counter to build client ids
	RequestIDPrefix = "tvl"
)

// Literals carried by every outbound oracle request packet.
const (
	FeeLimitDenom  = "uband"
	FeeLimitAmount = 1000000
	PrepareGas     = uint64(100000)
	ExecuteGas     = uint64(4000000)
	PacketTimeout  = 300 * time.Second
)

// ResolveStatusSuccess is the BandChain resolve status of a successful request.
const ResolveStatusSuccess = "RESOLVE_STATUS_SUCCESS"

// KV Store key prefix bytes
const (
	prefixConfig = iota + 1
	prefixRequestCount
	prefixRequest
	prefixPrice
	prefixPort
)

// KV Store key prefixes
var (
	KeyConfig       = []byte{prefixConfig}
	KeyRequestCount = []byte{prefixRequestCount}
	KeyRequest      = []byte{prefixRequest}
	KeyPrice        = []byte{prefixPrice}
	KeyPort         = []byte{prefixPort}
)

// GetRequestKey returns the store key of a request
func GetRequestKey(requestID string) []byte {
	return append(append([]byte{}, KeyRequest...), []byte(requestID)...)
}

// GetPriceKey returns the store key of the price of a symbol
func GetPriceKey(symbol string) []byte {
	return append(append([]byte{}, KeyPrice...), []byte(symbol)...)
}

// DefaultFeeLimit is the fee limit attached to every oracle request.
func DefaultFeeLimit() sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(FeeLimitDenom, math.NewInt(FeeLimitAmount)))
}
