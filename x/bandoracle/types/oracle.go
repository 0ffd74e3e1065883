package types

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	host "github.com/cosmos/ibc-go/v6/modules/core/24-host"
)

// Config holds the module owner and the channel bound for oracle requests.
type Config struct {
	Owner   string `json:"owner" yaml:"owner"`
	Channel string `json:"channel" yaml:"channel"`
}

// Request is a registered oracle request. Calldata is computed once at
// registration and replayed on every send.
type Request struct {
	OracleScriptID uint64   `json:"oracle_script_id" yaml:"oracle_script_id"`
	Symbols        []string `json:"symbols" yaml:"symbols"`
	Multiplier     uint64   `json:"multiplier" yaml:"multiplier"`
	Calldata       []byte   `json:"calldata" yaml:"calldata"`
	AskCount       uint64   `json:"ask_count" yaml:"ask_count"`
	MinCount       uint64   `json:"min_count" yaml:"min_count"`
}

// PriceData is the latest resolved rate of a symbol.
type PriceData struct {
	Rate                 sdk.Dec `json:"rate" yaml:"rate"`
	BandchainRequestID   uint64  `json:"bandchain_request_id" yaml:"bandchain_request_id"`
	BandchainResolveTime uint64  `json:"bandchain_resolve_time" yaml:"bandchain_resolve_time"`
}

// RequestRecord pairs a request with its client id for genesis.
type RequestRecord struct {
	RequestID string  `json:"request_id" yaml:"request_id"`
	Request   Request `json:"request" yaml:"request"`
}

// PriceRecord pairs a price with its symbol for genesis.
type PriceRecord struct {
	Symbol string    `json:"symbol" yaml:"symbol"`
	Price  PriceData `json:"price" yaml:"price"`
}

func NewRequest(oracleScriptID uint64, symbols []string, multiplier, askCount, minCount uint64) (Request, error) {
	calldata, err := EncodeCalldata(symbols, multiplier)
	if err != nil {
		return Request{}, err
	}
	return Request{
		OracleScriptID: oracleScriptID,
		Symbols:        symbols,
		Multiplier:     multiplier,
		Calldata:       calldata,
		AskCount:       askCount,
		MinCount:       minCount,
	}, nil
}

// RequestID formats the client id of the n-th registered request.
func RequestID(n uint64) string {
	return fmt.Sprintf("%s-%d", RequestIDPrefix, n)
}

// ParseRequestID returns the counter value of a client id built by RequestID.
func ParseRequestID(requestID string) (uint64, error) {
	digits := strings.TrimPrefix(requestID, RequestIDPrefix+"-")
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || RequestID(n) != requestID {
		return 0, fmt.Errorf("invalid request id %s", requestID)
	}
	return n, nil
}

// ValidateSymbols checks the symbol list of a request.
func ValidateSymbols(symbols []string) error {
	if len(symbols) == 0 {
		return fmt.Errorf("symbols cannot be empty")
	}
	for _, symbol := range symbols {
		if strings.TrimSpace(symbol) == "" {
			return fmt.Errorf("symbol cannot be blank")
		}
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	if c.Channel != "" {
		if err := host.ChannelIdentifierValidator(c.Channel); err != nil {
			return fmt.Errorf("invalid channel: %w", err)
		}
	}
	return nil
}

func (r Request) Validate() error {
	if err := ValidateSymbols(r.Symbols); err != nil {
		return err
	}
	if r.Multiplier == 0 {
		return fmt.Errorf("multiplier cannot be zero")
	}
	calldata, err := EncodeCalldata(r.Symbols, r.Multiplier)
	if err != nil {
		return err
	}
	if !bytes.Equal(calldata, r.Calldata) {
		return fmt.Errorf("calldata does not match symbols and multiplier")
	}
	return nil
}

func (p PriceData) Validate() error {
	if p.Rate.IsNil() || p.Rate.IsNegative() {
		return fmt.Errorf("rate must be a non-negative decimal")
	}
	return nil
}
