package types

import (
	"fmt"

	host "github.com/cosmos/ibc-go/v6/modules/core/24-host"
)

// GenesisState defines the bandoracle module's genesis state.
type GenesisState struct {
	PortID       string          `json:"port_id" yaml:"port_id"`
	Config       Config          `json:"config" yaml:"config"`
	RequestCount uint64          `json:"request_count" yaml:"request_count"`
	Requests     []RequestRecord `json:"requests" yaml:"requests"`
	Prices       []PriceRecord   `json:"prices" yaml:"prices"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(portID string, config Config, requestCount uint64, requests []RequestRecord, prices []PriceRecord) GenesisState {
	return GenesisState{
		PortID:       portID,
		Config:       config,
		RequestCount: requestCount,
		Requests:     requests,
		Prices:       prices,
	}
}

// DefaultGenesisState returns a default genesis state. The owner is left
// empty and must be set by the chain operator.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		PortID:   PortID,
		Config:   Config{},
		Requests: []RequestRecord{},
		Prices:   []PriceRecord{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := host.PortIdentifierValidator(gs.PortID); err != nil {
		return fmt.Errorf("invalid port id: %w", err)
	}

	// an empty owner is only allowed for the default genesis
	if gs.Config.Owner != "" || gs.Config.Channel != "" {
		if err := gs.Config.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	seenRequests := make(map[string]bool, len(gs.Requests))
	for _, record := range gs.Requests {
		if seenRequests[record.RequestID] {
			return fmt.Errorf("duplicate request id %s", record.RequestID)
		}
		seenRequests[record.RequestID] = true

		n, err := ParseRequestID(record.RequestID)
		if err != nil {
			return err
		}
		if n == 0 || n > gs.RequestCount {
			return fmt.Errorf("request id %s exceeds request count %d", record.RequestID, gs.RequestCount)
		}
		if err := record.Request.Validate(); err != nil {
			return fmt.Errorf("invalid request %s: %w", record.RequestID, err)
		}
	}

	seenSymbols := make(map[string]bool, len(gs.Prices))
	for _, record := range gs.Prices {
		if record.Symbol == "" {
			return fmt.Errorf("price symbol cannot be blank")
		}
		if seenSymbols[record.Symbol] {
			return fmt.Errorf("duplicate price for symbol %s", record.Symbol)
		}
		seenSymbols[record.Symbol] = true

		if err := record.Price.Validate(); err != nil {
			return fmt.Errorf("invalid price for %s: %w", record.Symbol, err)
		}
	}

	return nil
}
