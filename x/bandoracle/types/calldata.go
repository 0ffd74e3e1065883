package types

import (
	"encoding/base64"

	errorsmod "cosmossdk.io/errors"

	"github.com/GPTx-global/bandoracle/x/bandoracle/obi"
)

// PriceDataInput is the calldata schema of the price oracle script:
// {symbols:[string],multiplier:u64}
type PriceDataInput struct {
	Symbols    []string
	Multiplier uint64
}

// PriceDataOutput is the result schema of the price oracle script: {rates:[u64]}
type PriceDataOutput struct {
	Rates []uint64
}

// EncodeOBI returns the OBI encoding of the input.
func (in PriceDataInput) EncodeOBI() ([]byte, error) {
	if len(in.Symbols) == 0 {
		return nil, errorsmod.Wrap(ErrEncodeCalldata, "symbols cannot be empty")
	}

	enc := obi.NewEncoder()
	if err := enc.EncodeStrings(in.Symbols); err != nil {
		return nil, errorsmod.Wrap(ErrEncodeCalldata, err.Error())
	}
	enc.EncodeU64(in.Multiplier)

	return enc.GetEncodedData(), nil
}

// DecodePriceDataOutput decodes an OBI encoded result. Trailing bytes are an error.
func DecodePriceDataOutput(bz []byte) (PriceDataOutput, error) {
	dec := obi.NewDecoder(bz)
	rates, err := dec.DecodeU64s()
	if err != nil {
		return PriceDataOutput{}, errorsmod.Wrap(ErrDecodeResult, err.Error())
	}
	if err := dec.Done(); err != nil {
		return PriceDataOutput{}, errorsmod.Wrap(ErrDecodeResult, err.Error())
	}
	return PriceDataOutput{Rates: rates}, nil
}

// EncodeCalldata builds the calldata sent to the oracle script.
func EncodeCalldata(symbols []string, multiplier uint64) ([]byte, error) {
	return PriceDataInput{Symbols: symbols, Multiplier: multiplier}.EncodeOBI()
}

// DecodeResult decodes the base64 result field of a response packet into rates.
func DecodeResult(result string) ([]uint64, error) {
	bz, err := base64.StdEncoding.DecodeString(result)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrDecodeResult, "invalid base64: %s", err)
	}
	out, err := DecodePriceDataOutput(bz)
	if err != nil {
		return nil, err
	}
	return out.Rates, nil
}
