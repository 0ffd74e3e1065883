package bandoracle

import (
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/bandoracle/x/bandoracle/keeper"
	"github.com/GPTx-global/bandoracle/x/bandoracle/testutil"
	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

var (
	owner    = testutil.AccAddress("owner")
	stranger = testutil.AccAddress("stranger")
)

type testFixture struct {
	ctx           sdk.Context
	keeper        keeper.Keeper
	ics4Wrapper   *testutil.MockICS4Wrapper
	channelKeeper *testutil.MockChannelKeeper
	portKeeper    *testutil.MockPortKeeper
	scopedKeeper  *testutil.MockScopedKeeper
}

// setupTest builds a keeper over an in-memory store with mocked IBC keepers
// and runs InitGenesis with owner as the configured owner.
func setupTest(t require.TestingT) *testFixture {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)

	f := &testFixture{
		ctx:           testutil.NewContext(t, storeKey).WithBlockTime(time.Unix(1700000000, 0)),
		ics4Wrapper:   &testutil.MockICS4Wrapper{},
		channelKeeper: &testutil.MockChannelKeeper{},
		portKeeper:    &testutil.MockPortKeeper{},
		scopedKeeper:  &testutil.MockScopedKeeper{},
	}
	f.keeper = keeper.NewKeeper(
		codec.NewLegacyAmino(),
		storeKey,
		f.ics4Wrapper,
		f.channelKeeper,
		f.portKeeper,
		f.scopedKeeper,
	)

	// port is already bound by the capability genesis
	f.scopedKeeper.On("GetCapability", mock.Anything, "ports/"+types.PortID).Return(nil, true).Maybe()

	genesis := types.DefaultGenesisState()
	genesis.Config.Owner = owner.String()
	InitGenesis(f.ctx, f.keeper, *genesis)

	return f
}
