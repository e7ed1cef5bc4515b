// Package scale implements the subset of the SCALE codec the engine shares
// with compiled contracts: compact-encoded unsigned integers, fixed-width
// little-endian integers and length-prefixed byte vectors.
package scale

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

const (
	modeSingleByte = 0b00
	modeTwoBytes   = 0b01
	modeFourBytes  = 0b10
	modeBigInteger = 0b11

	modeMask = 0b11
)

// EncodeCompactU32 encodes v with the compact (general integer) encoding.
func EncodeCompactU32(v uint32) []byte {
	switch {
	case v < 1<<6:
		return []byte{byte(v) << 2}
	case v < 1<<14:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(v)<<2|modeTwoBytes)
		return buf
	case v < 1<<30:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, v<<2|modeFourBytes)
		return buf
	default:
		buf := make([]byte, 5)
		buf[0] = modeBigInteger
		binary.LittleEndian.PutUint32(buf[1:], v)
		return buf
	}
}

// DecodeCompactU32 decodes a compact-encoded u32 from the front of data.
// It returns the value and the number of bytes consumed.
func DecodeCompactU32(data []byte) (uint32, int, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("compact integer: empty input")
	}
	switch data[0] & modeMask {
	case modeSingleByte:
		return uint32(data[0] >> 2), 1, nil
	case modeTwoBytes:
		if len(data) < 2 {
			return 0, 0, fmt.Errorf("compact integer: need 2 bytes, have %d", len(data))
		}
		return uint32(binary.LittleEndian.Uint16(data) >> 2), 2, nil
	case modeFourBytes:
		if len(data) < 4 {
			return 0, 0, fmt.Errorf("compact integer: need 4 bytes, have %d", len(data))
		}
		return binary.LittleEndian.Uint32(data) >> 2, 4, nil
	default:
		n := int(data[0]>>2) + 4
		if n != 4 {
			return 0, 0, fmt.Errorf("compact integer: %d-byte big-integer mode exceeds u32", n)
		}
		if len(data) < 5 {
			return 0, 0, fmt.Errorf("compact integer: need 5 bytes, have %d", len(data))
		}
		return binary.LittleEndian.Uint32(data[1:]), 5, nil
	}
}

// EncodeUint32 encodes v as 4 little-endian bytes.
func EncodeUint32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

// EncodeUint64 encodes v as 8 little-endian bytes.
func EncodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

// DecodeUint64 decodes 8 little-endian bytes.
func DecodeUint64(data []byte) (uint64, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("u64: need 8 bytes, have %d", len(data))
	}
	return binary.LittleEndian.Uint64(data), nil
}

const Uint128Size = 16

// EncodeUint128 encodes the low 128 bits of v as 16 little-endian bytes.
// v must fit into 128 bits.
func EncodeUint128(v *uint256.Int) []byte {
	if v[2] != 0 || v[3] != 0 {
		panic(fmt.Sprintf("u128: value %s exceeds 128 bits", v))
	}
	buf := make([]byte, Uint128Size)
	binary.LittleEndian.PutUint64(buf[0:8], v[0])
	binary.LittleEndian.PutUint64(buf[8:16], v[1])
	return buf
}

// DecodeUint128 decodes 16 little-endian bytes.
func DecodeUint128(data []byte) (*uint256.Int, error) {
	if len(data) < Uint128Size {
		return nil, fmt.Errorf("u128: need %d bytes, have %d", Uint128Size, len(data))
	}
	v := new(uint256.Int)
	v[0] = binary.LittleEndian.Uint64(data[0:8])
	v[1] = binary.LittleEndian.Uint64(data[8:16])
	return v, nil
}

// EncodeBytes encodes b as a byte vector: compact length followed by the bytes.
func EncodeBytes(b []byte) []byte {
	out := EncodeCompactU32(uint32(len(b)))
	return append(out, b...)
}

// DecodeBytes decodes a length-prefixed byte vector from the front of data.
// It returns the vector and the number of bytes consumed.
func DecodeBytes(data []byte) ([]byte, int, error) {
	length, n, err := DecodeCompactU32(data)
	if err != nil {
		return nil, 0, err
	}
	end := n + int(length)
	if len(data) < end {
		return nil, 0, fmt.Errorf("byte vector: need %d bytes, have %d", end, len(data))
	}
	out := make([]byte, length)
	copy(out, data[n:end])
	return out, end, nil
}
