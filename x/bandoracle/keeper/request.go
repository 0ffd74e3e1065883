package keeper

import (
	"encoding/binary"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// GetRequestCount returns the number of requests ever registered
func (k Keeper) GetRequestCount(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyRequestCount)
	if len(bz) == 0 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetRequestCount stores the request counter
func (k Keeper) SetRequestCount(ctx sdk.Context, count uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(types.KeyRequestCount, bz)
}

// RegisterRequest authorizes owner, mints the next client id and stores
// the request with its precomputed calldata.
func (k Keeper) RegisterRequest(
	ctx sdk.Context,
	owner sdk.AccAddress,
	oracleScriptID uint64,
	symbols []string,
	multiplier uint64,
	askCount uint64,
	minCount uint64,
) (string, error) {
	// authorize before reading the counter so a rejected call never burns an id
	if !k.IsOwner(ctx, owner) {
		return "", errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the owner", owner)
	}

	request, err := types.NewRequest(oracleScriptID, symbols, multiplier, askCount, minCount)
	if err != nil {
		return "", err
	}

	count := k.GetRequestCount(ctx) + 1
	requestID := types.RequestID(count)

	k.SetRequestCount(ctx, count)
	k.SetRequest(ctx, requestID, request)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterRequest,
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyOracleScriptID, strconv.FormatUint(oracleScriptID, 10)),
			sdk.NewAttribute(types.AttributeKeySymbols, strings.Join(symbols, ",")),
		),
	)

	k.Logger(ctx).Info("oracle request registered", "request-id", requestID, "symbols", symbols)
	return requestID, nil
}

// GetRequest returns the request registered under requestID
func (k Keeper) GetRequest(ctx sdk.Context, requestID string) (types.Request, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetRequestKey(requestID))
	if len(bz) == 0 {
		return types.Request{}, errorsmod.Wrapf(types.ErrRequestNotFound, "request id %s", requestID)
	}

	var request types.Request
	k.cdc.MustUnmarshal(bz, &request)
	return request, nil
}

// HasRequest reports whether requestID was registered
func (k Keeper) HasRequest(ctx sdk.Context, requestID string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetRequestKey(requestID))
}

// SetRequest stores a request under requestID
func (k Keeper) SetRequest(ctx sdk.Context, requestID string, request types.Request) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetRequestKey(requestID), k.cdc.MustMarshal(&request))
}

// IterateRequests iterates over all requests in key order and stops when cb returns true
func (k Keeper) IterateRequests(ctx sdk.Context, cb func(requestID string, request types.Request) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRequest)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var request types.Request
		k.cdc.MustUnmarshal(iterator.Value(), &request)
		if cb(string(iterator.Key()), request) {
			break
		}
	}
}

// GetAllRequests returns every registered request
func (k Keeper) GetAllRequests(ctx sdk.Context) []types.RequestRecord {
	records := []types.RequestRecord{}
	k.IterateRequests(ctx, func(requestID string, request types.Request) bool {
		records = append(records, types.RequestRecord{RequestID: requestID, Request: request})
		return false
	})
	return records
}
