package testutil

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"
	clienttypes "github.com/cosmos/ibc-go/v6/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v6/modules/core/04-channel/types"
	"github.com/stretchr/testify/mock"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

var (
	_ types.ICS4Wrapper   = &MockICS4Wrapper{}
	_ types.ChannelKeeper = &MockChannelKeeper{}
	_ types.PortKeeper    = &MockPortKeeper{}
	_ types.ScopedKeeper  = &MockScopedKeeper{}
)

// MockICS4Wrapper records outbound packets
type MockICS4Wrapper struct {
	mock.Mock
}

func (m *MockICS4Wrapper) SendPacket(
	ctx sdk.Context,
	chanCap *capabilitytypes.Capability,
	sourcePort string,
	sourceChannel string,
	timeoutHeight clienttypes.Height,
	timeoutTimestamp uint64,
	data []byte,
) (uint64, error) {
	args := m.Called(ctx, chanCap, sourcePort, sourceChannel, timeoutHeight, timeoutTimestamp, data)
	return args.Get(0).(uint64), args.Error(1)
}

type MockChannelKeeper struct {
	mock.Mock
}

func (m *MockChannelKeeper) GetChannel(ctx sdk.Context, srcPort, srcChan string) (channeltypes.Channel, bool) {
	args := m.Called(ctx, srcPort, srcChan)
	return args.Get(0).(channeltypes.Channel), args.Bool(1)
}

type MockPortKeeper struct {
	mock.Mock
}

func (m *MockPortKeeper) BindPort(ctx sdk.Context, portID string) *capabilitytypes.Capability {
	args := m.Called(ctx, portID)
	capability, _ := args.Get(0).(*capabilitytypes.Capability)
	return capability
}

type MockScopedKeeper struct {
	mock.Mock
}

func (m *MockScopedKeeper) GetCapability(ctx sdk.Context, name string) (*capabilitytypes.Capability, bool) {
	args := m.Called(ctx, name)
	capability, _ := args.Get(0).(*capabilitytypes.Capability)
	return capability, args.Bool(1)
}

func (m *MockScopedKeeper) AuthenticateCapability(ctx sdk.Context, capability *capabilitytypes.Capability, name string) bool {
	args := m.Called(ctx, capability, name)
	return args.Bool(0)
}

func (m *MockScopedKeeper) ClaimCapability(ctx sdk.Context, capability *capabilitytypes.Capability, name string) error {
	args := m.Called(ctx, capability, name)
	return args.Error(0)
}
