package obi

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Decoder reads OBI encoded values from a byte slice, front to back.
type Decoder struct {
	data []byte
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Finished reports whether every input byte has been consumed.
func (d *Decoder) Finished() bool {
	return len(d.data) == 0
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data)
}

func (d *Decoder) read(n uint64) ([]byte, error) {
	if uint64(len(d.data)) < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientData, n, len(d.data))
	}
	res := d.data[:n]
	d.data = d.data[n:]
	return res, nil
}

func (d *Decoder) DecodeU8() (uint8, error) {
	bz, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return bz[0], nil
}

func (d *Decoder) DecodeU16() (uint16, error) {
	bz, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(bz), nil
}

func (d *Decoder) DecodeU32() (uint32, error) {
	bz, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bz), nil
}

func (d *Decoder) DecodeU64() (uint64, error) {
	bz, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(bz), nil
}

// DecodeBytes reads a u32 length prefix and that many bytes. The returned
// slice is a copy.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	length, err := d.DecodeU32()
	if err != nil {
		return nil, err
	}
	bz, err := d.read(uint64(length))
	if err != nil {
		return nil, err
	}
	res := make([]byte, len(bz))
	copy(res, bz)
	return res, nil
}

func (d *Decoder) DecodeString() (string, error) {
	bz, err := d.DecodeBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bz) {
		return "", ErrInvalidUTF8
	}
	return string(bz), nil
}

func (d *Decoder) DecodeStrings() ([]string, error) {
	count, err := d.DecodeU32()
	if err != nil {
		return nil, err
	}
	// every string takes at least its 4 byte prefix
	if uint64(count)*4 > uint64(len(d.data)) {
		return nil, fmt.Errorf("%w: %d strings declared, %d bytes left", ErrInsufficientData, count, len(d.data))
	}
	res := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		s, err := d.DecodeString()
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

func (d *Decoder) DecodeU64s() ([]uint64, error) {
	count, err := d.DecodeU32()
	if err != nil {
		return nil, err
	}
	if uint64(count)*8 > uint64(len(d.data)) {
		return nil, fmt.Errorf("%w: %d integers declared, %d bytes left", ErrInsufficientData, count, len(d.data))
	}
	res := make([]uint64, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := d.DecodeU64()
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// Done returns ErrNotFinished if any input is left unread.
func (d *Decoder) Done() error {
	if !d.Finished() {
		return fmt.Errorf("%w: %d trailing bytes", ErrNotFinished, len(d.data))
	}
	return nil
}
