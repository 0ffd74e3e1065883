package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"
	host "github.com/cosmos/ibc-go/v6/modules/core/24-host"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// Keeper of the bandoracle store
type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey storetypes.StoreKey

	ics4Wrapper   types.ICS4Wrapper
	channelKeeper types.ChannelKeeper
	portKeeper    types.PortKeeper
	scopedKeeper  types.ScopedKeeper
}

// NewKeeper creates a new bandoracle Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	storeKey storetypes.StoreKey,
	ics4Wrapper types.ICS4Wrapper,
	channelKeeper types.ChannelKeeper,
	portKeeper types.PortKeeper,
	scopedKeeper types.ScopedKeeper,
) Keeper {
	return Keeper{
		cdc:           cdc,
		storeKey:      storeKey,
		ics4Wrapper:   ics4Wrapper,
		channelKeeper: channelKeeper,
		portKeeper:    portKeeper,
		scopedKeeper:  scopedKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetConfig returns the channel configuration singleton
func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyConfig)
	if len(bz) == 0 {
		return types.Config{}, false
	}

	var config types.Config
	k.cdc.MustUnmarshal(bz, &config)
	return config, true
}

// SetConfig stores the channel configuration singleton
func (k Keeper) SetConfig(ctx sdk.Context, config types.Config) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyConfig, k.cdc.MustMarshal(&config))
}

// IsOwner reports whether addr is the configured owner.
func (k Keeper) IsOwner(ctx sdk.Context, addr sdk.AccAddress) bool {
	config, found := k.GetConfig(ctx)
	if !found || config.Owner == "" {
		return false
	}
	return config.Owner == addr.String()
}

// SetChannel binds the channel used for outbound requests. Only the owner
// may change it.
func (k Keeper) SetChannel(ctx sdk.Context, owner sdk.AccAddress, channel string) error {
	if !k.IsOwner(ctx, owner) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the owner", owner)
	}

	config, _ := k.GetConfig(ctx)
	config.Channel = channel
	k.SetConfig(ctx, config)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetChannel,
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyChannel, channel),
		),
	)

	k.Logger(ctx).Info("oracle channel set", "channel", channel)
	return nil
}

// ClearChannel unbinds channel if it is the one currently bound. It
// returns true when the configuration changed.
func (k Keeper) ClearChannel(ctx sdk.Context, channel string) bool {
	config, found := k.GetConfig(ctx)
	if !found || config.Channel == "" || config.Channel != channel {
		return false
	}

	config.Channel = ""
	k.SetConfig(ctx, config)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChannelConfigCleared,
			sdk.NewAttribute(types.AttributeKeyChannel, channel),
		),
	)

	k.Logger(ctx).Info("oracle channel cleared", "channel", channel)
	return true
}

// GetPort returns the portID of the module.
func (k Keeper) GetPort(ctx sdk.Context) string {
	store := ctx.KVStore(k.storeKey)
	return string(store.Get(types.KeyPort))
}

// SetPort sets the portID of the module.
func (k Keeper) SetPort(ctx sdk.Context, portID string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyPort, []byte(portID))
}

// IsBound checks if the module is already bound to the desired port
func (k Keeper) IsBound(ctx sdk.Context, portID string) bool {
	_, ok := k.scopedKeeper.GetCapability(ctx, host.PortPath(portID))
	return ok
}

// BindPort defines a wrapper function for the port Keeper's function in
// order to expose it to the module's InitGenesis function
func (k Keeper) BindPort(ctx sdk.Context, portID string) error {
	capability := k.portKeeper.BindPort(ctx, portID)
	return k.ClaimCapability(ctx, capability, host.PortPath(portID))
}

// AuthenticateCapability wraps the scopedKeeper's AuthenticateCapability function
func (k Keeper) AuthenticateCapability(ctx sdk.Context, capability *capabilitytypes.Capability, name string) bool {
	return k.scopedKeeper.AuthenticateCapability(ctx, capability, name)
}

// ClaimCapability allows the module to claim a capability that the IBC
// module passes to it
func (k Keeper) ClaimCapability(ctx sdk.Context, capability *capabilitytypes.Capability, name string) error {
	return k.scopedKeeper.ClaimCapability(ctx, capability, name)
}
