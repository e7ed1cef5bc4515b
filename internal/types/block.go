package types

import "github.com/Brushfam/ink/internal/scale"

// BlockNumber is the simulated chain height.
type BlockNumber uint32

func (n BlockNumber) Uint32() uint32 {
	return uint32(n)
}

func (n BlockNumber) Encode() []byte {
	return scale.EncodeUint32(uint32(n))
}

// BlockTimestamp is the simulated chain clock, in milliseconds.
type BlockTimestamp uint64

func (t BlockTimestamp) Uint64() uint64 {
	return uint64(t)
}

func (t BlockTimestamp) Encode() []byte {
	return scale.EncodeUint64(uint64(t))
}
