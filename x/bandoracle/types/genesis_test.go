package types_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

func (suite *TypesTestSuite) TestGenesisStateValidate() {
	request, err := types.NewRequest(37, []string{"LUNA"}, 1000000, 16, 10)
	suite.Require().NoError(err)

	price := types.PriceData{
		Rate:                 sdk.MustNewDecFromStr("31"),
		BandchainRequestID:   1337,
		BandchainResolveTime: 1700000010,
	}

	testCases := []struct {
		name     string
		genState func() types.GenesisState
		expPass  bool
	}{
		{
			"default",
			func() types.GenesisState { return *types.DefaultGenesisState() },
			true,
		},
		{
			"valid state",
			func() types.GenesisState {
				return types.NewGenesisState(
					types.PortID,
					types.Config{Owner: suite.owner, Channel: "channel-0"},
					2,
					[]types.RequestRecord{{RequestID: "tvl-2", Request: request}},
					[]types.PriceRecord{{Symbol: "LUNA", Price: price}},
				)
			},
			true,
		},
		{
			"invalid port",
			func() types.GenesisState {
				gs := *types.DefaultGenesisState()
				gs.PortID = ""
				return gs
			},
			false,
		},
		{
			"channel without owner",
			func() types.GenesisState {
				gs := *types.DefaultGenesisState()
				gs.Config.Channel = "channel-0"
				return gs
			},
			false,
		},
		{
			"request beyond counter",
			func() types.GenesisState {
				return types.NewGenesisState(types.PortID, types.Config{Owner: suite.owner}, 1,
					[]types.RequestRecord{{RequestID: "tvl-2", Request: request}}, nil)
			},
			false,
		},
		{
			"duplicate request",
			func() types.GenesisState {
				return types.NewGenesisState(types.PortID, types.Config{Owner: suite.owner}, 1,
					[]types.RequestRecord{
						{RequestID: "tvl-1", Request: request},
						{RequestID: "tvl-1", Request: request},
					}, nil)
			},
			false,
		},
		{
			"malformed request id",
			func() types.GenesisState {
				return types.NewGenesisState(types.PortID, types.Config{Owner: suite.owner}, 1,
					[]types.RequestRecord{{RequestID: "req-1", Request: request}}, nil)
			},
			false,
		},
		{
			"stale calldata",
			func() types.GenesisState {
				stale := request
				stale.Multiplier = 100
				return types.NewGenesisState(types.PortID, types.Config{Owner: suite.owner}, 1,
					[]types.RequestRecord{{RequestID: "tvl-1", Request: stale}}, nil)
			},
			false,
		},
		{
			"duplicate price",
			func() types.GenesisState {
				return types.NewGenesisState(types.PortID, types.Config{Owner: suite.owner}, 0, nil,
					[]types.PriceRecord{{Symbol: "LUNA", Price: price}, {Symbol: "LUNA", Price: price}})
			},
			false,
		},
		{
			"negative rate",
			func() types.GenesisState {
				negative := price
				negative.Rate = sdk.MustNewDecFromStr("-1")
				return types.NewGenesisState(types.PortID, types.Config{Owner: suite.owner}, 0, nil,
					[]types.PriceRecord{{Symbol: "LUNA", Price: negative}})
			},
			false,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.genState().Validate()
			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}
