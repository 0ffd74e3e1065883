// Package obi implements the Oracle Binary Interface used by BandChain
// oracle scripts: fixed-width big-endian integers, u32 length-prefixed
// byte strings and u32 count-prefixed vectors.
package obi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

var (
	// ErrInsufficientData is returned when a read goes past the end of the input.
	ErrInsufficientData = errors.New("obi: insufficient data")

	// ErrNotFinished is returned when bytes remain after the expected value was read.
	ErrNotFinished = errors.New("obi: not all data was consumed")

	// ErrTooLong is returned when a length prefix does not fit in a u32.
	ErrTooLong = errors.New("obi: length does not fit in u32")

	// ErrInvalidUTF8 is returned for strings that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("obi: string is not valid utf-8")
)

// Encoder appends OBI encoded values to an internal buffer.
type Encoder struct {
	data []byte
}

func NewEncoder() *Encoder {
	return &Encoder{data: []byte{}}
}

// GetEncodedData returns the bytes written so far.
func (e *Encoder) GetEncodedData() []byte {
	return e.data
}

func (e *Encoder) EncodeU8(v uint8) {
	e.data = append(e.data, v)
}

func (e *Encoder) EncodeU16(v uint16) {
	e.data = binary.BigEndian.AppendUint16(e.data, v)
}

func (e *Encoder) EncodeU32(v uint32) {
	e.data = binary.BigEndian.AppendUint32(e.data, v)
}

func (e *Encoder) EncodeU64(v uint64) {
	e.data = binary.BigEndian.AppendUint64(e.data, v)
}

func (e *Encoder) encodeLength(n int) error {
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrTooLong, n)
	}
	e.EncodeU32(uint32(n))
	return nil
}

// EncodeBytes writes a u32 length prefix followed by the raw bytes.
func (e *Encoder) EncodeBytes(v []byte) error {
	if err := e.encodeLength(len(v)); err != nil {
		return err
	}
	e.data = append(e.data, v...)
	return nil
}

// EncodeString writes a UTF-8 string the same way as EncodeBytes.
func (e *Encoder) EncodeString(v string) error {
	if !utf8.ValidString(v) {
		return fmt.Errorf("%w: %q", ErrInvalidUTF8, v)
	}
	return e.EncodeBytes([]byte(v))
}

// EncodeStrings writes a u32 element count followed by every string.
func (e *Encoder) EncodeStrings(vs []string) error {
	if err := e.encodeLength(len(vs)); err != nil {
		return err
	}
	for _, v := range vs {
		if err := e.EncodeString(v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeU64s writes a u32 element count followed by every integer.
func (e *Encoder) EncodeU64s(vs []uint64) error {
	if err := e.encodeLength(len(vs)); err != nil {
		return err
	}
	for _, v := range vs {
		e.EncodeU64(v)
	}
	return nil
}
