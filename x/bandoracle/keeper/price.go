package keeper

import (
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// GetPrice returns the latest resolved price of symbol
func (k Keeper) GetPrice(ctx sdk.Context, symbol string) (types.PriceData, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetPriceKey(symbol))
	if len(bz) == 0 {
		return types.PriceData{}, false
	}

	var price types.PriceData
	k.cdc.MustUnmarshal(bz, &price)
	return price, true
}

// SetPrice overwrites the price of symbol
func (k Keeper) SetPrice(ctx sdk.Context, symbol string, price types.PriceData) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetPriceKey(symbol), k.cdc.MustMarshal(&price))
}

// IteratePrices iterates over all prices in symbol order and stops when cb returns true
func (k Keeper) IteratePrices(ctx sdk.Context, cb func(symbol string, price types.PriceData) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrice)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var price types.PriceData
		k.cdc.MustUnmarshal(iterator.Value(), &price)
		if cb(string(iterator.Key()), price) {
			break
		}
	}
}

// GetAllPrices returns every stored price
func (k Keeper) GetAllPrices(ctx sdk.Context) []types.PriceRecord {
	records := []types.PriceRecord{}
	k.IteratePrices(ctx, func(symbol string, price types.PriceData) bool {
		records = append(records, types.PriceRecord{Symbol: symbol, Price: price})
		return false
	})
	return records
}
