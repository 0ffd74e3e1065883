package keeper

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

func TestQuerier(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	cdc := codec.NewLegacyAmino()
	querier := NewQuerier(keeper, cdc)

	require.NoError(t, keeper.SetChannel(ctx, owner, "channel-7"))
	requestID, err := keeper.RegisterRequest(ctx, owner, 37, []string{"LUNA"}, 1000000, 16, 10)
	require.NoError(t, err)
	keeper.SetPrice(ctx, "LUNA", types.PriceData{
		Rate:                 sdk.MustNewDecFromStr("31"),
		BandchainRequestID:   2037918,
		BandchainResolveTime: 1700000000,
	})

	bz, err := querier(ctx, []string{types.QueryConfig}, abci.RequestQuery{})
	require.NoError(t, err)
	var config types.Config
	require.NoError(t, cdc.UnmarshalJSON(bz, &config))
	assert.Equal(t, types.Config{Owner: owner.String(), Channel: "channel-7"}, config)

	bz, err = querier(ctx, []string{types.QueryRequest}, abci.RequestQuery{
		Data: cdc.MustMarshalJSON(types.NewQueryRequestParams(requestID)),
	})
	require.NoError(t, err)
	var request types.Request
	require.NoError(t, cdc.UnmarshalJSON(bz, &request))
	assert.Equal(t, []string{"LUNA"}, request.Symbols)
	assert.Equal(t, uint64(1000000), request.Multiplier)

	_, err = querier(ctx, []string{types.QueryRequest}, abci.RequestQuery{
		Data: cdc.MustMarshalJSON(types.NewQueryRequestParams("tvl-2")),
	})
	require.ErrorIs(t, err, types.ErrRequestNotFound)

	bz, err = querier(ctx, []string{types.QueryPrice}, abci.RequestQuery{
		Data: cdc.MustMarshalJSON(types.NewQueryPriceParams("LUNA")),
	})
	require.NoError(t, err)
	var price types.PriceData
	require.NoError(t, cdc.UnmarshalJSON(bz, &price))
	assert.Equal(t, "31.000000000000000000", price.Rate.String())
	assert.Equal(t, uint64(2037918), price.BandchainRequestID)

	_, err = querier(ctx, []string{types.QueryPrice}, abci.RequestQuery{
		Data: cdc.MustMarshalJSON(types.NewQueryPriceParams("BTC")),
	})
	require.ErrorIs(t, err, sdkerrors.ErrNotFound)

	_, err = querier(ctx, []string{"unknown"}, abci.RequestQuery{})
	require.ErrorIs(t, err, sdkerrors.ErrUnknownRequest)
}
