package types

// legacy querier paths
const (
	QueryConfig  = "config"
	QueryRequest = "request"
	QueryPrice   = "price"
)

// QueryRequestParams are the params of the request query
type QueryRequestParams struct {
	RequestID string `json:"request_id" yaml:"request_id"`
}

// QueryPriceParams are the params of the price query
type QueryPriceParams struct {
	Symbol string `json:"symbol" yaml:"symbol"`
}

// NewQueryRequestParams creates a new QueryRequestParams instance
func NewQueryRequestParams(requestID string) QueryRequestParams {
	return QueryRequestParams{RequestID: requestID}
}

// NewQueryPriceParams creates a new QueryPriceParams instance
func NewQueryPriceParams(symbol string) QueryPriceParams {
	return QueryPriceParams{Symbol: symbol}
}
