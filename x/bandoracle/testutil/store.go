package testutil

import (
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"
)

// NewContext mounts storeKey on an in-memory multistore and returns a
// context over it.
func NewContext(t require.TestingT, storeKey storetypes.StoreKey) sdk.Context {
	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	return sdk.NewContext(stateStore, tmproto.Header{}, false, log.NewNopLogger())
}

// AccAddress returns a deterministic 20 byte address derived from name.
func AccAddress(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}
