package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// NewQuerier returns the legacy querier of the module
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, errorsmod.Wrap(sdkerrors.ErrUnknownRequest, "empty query path")
		}

		switch path[0] {
		case types.QueryConfig:
			return queryConfig(ctx, k, legacyQuerierCdc)
		case types.QueryRequest:
			return queryRequest(ctx, req, k, legacyQuerierCdc)
		case types.QueryPrice:
			return queryPrice(ctx, req, k, legacyQuerierCdc)
		default:
			return nil, errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
	}
}

func queryConfig(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	config, _ := k.GetConfig(ctx)

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, config)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryRequest(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryRequestParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	request, err := k.GetRequest(ctx, params.RequestID)
	if err != nil {
		return nil, err
	}

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, request)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryPrice(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryPriceParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	price, found := k.GetPrice(ctx, params.Symbol)
	if !found {
		return nil, errorsmod.Wrapf(sdkerrors.ErrNotFound, "no price for symbol %s", params.Symbol)
	}

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, price)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}
