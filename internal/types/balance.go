package types

import (
	"github.com/Brushfam/ink/common/check"
	"github.com/Brushfam/ink/internal/scale"
	"github.com/holiman/uint256"
)

// Balance is an unsigned 128-bit quantity. It is backed by a uint256 word
// whose upper half must stay zero; every constructor and arithmetic helper
// maintains that invariant.
type Balance struct {
	v uint256.Int
}

// MaxBalance is 2^128 - 1, the largest representable balance.
var MaxBalance = Balance{v: uint256.Int{^uint64(0), ^uint64(0), 0, 0}}

var Balance0 = NewBalanceFromUint64(0)

func NewBalance(val *uint256.Int) Balance {
	check.PanicIfNotf(val[2] == 0 && val[3] == 0, "balance %s exceeds 128 bits", val)
	return Balance{v: *val}
}

func NewBalanceFromUint64(val uint64) Balance {
	return Balance{v: *uint256.NewInt(val)}
}

// DecodeBalance decodes a 16-byte little-endian balance.
func DecodeBalance(data []byte) (Balance, error) {
	v, err := scale.DecodeUint128(data)
	if err != nil {
		return Balance{}, err
	}
	return Balance{v: *v}, nil
}

// Encode returns the 16-byte little-endian form.
func (b Balance) Encode() []byte {
	return scale.EncodeUint128(&b.v)
}

func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

func (b Balance) Uint64() uint64 {
	return b.v.Uint64()
}

func (b Balance) Cmp(other Balance) int {
	return b.v.Cmp(&other.v)
}

func (b Balance) Eq(other Balance) bool {
	return b.v.Eq(&other.v)
}

func (b Balance) Lt(other Balance) bool {
	return b.v.Lt(&other.v)
}

func (b Balance) Add(other Balance) Balance {
	res, overflow := b.AddOverflow(other)
	check.PanicIfNot(!overflow)
	return res
}

func (b Balance) AddOverflow(other Balance) (Balance, bool) {
	var res uint256.Int
	res.Add(&b.v, &other.v)
	if res[2] != 0 || res[3] != 0 {
		return Balance{}, true
	}
	return Balance{v: res}, false
}

func (b Balance) Sub(other Balance) Balance {
	res, underflow := b.SubOverflow(other)
	check.PanicIfNot(!underflow)
	return res
}

func (b Balance) SubOverflow(other Balance) (Balance, bool) {
	var res uint256.Int
	_, underflow := res.SubOverflow(&b.v, &other.v)
	if underflow {
		return Balance{}, true
	}
	return Balance{v: res}, false
}

func (b Balance) Add64(other uint64) Balance {
	return b.Add(NewBalanceFromUint64(other))
}

func (b Balance) Sub64(other uint64) Balance {
	return b.Sub(NewBalanceFromUint64(other))
}

// SaturatingMul64 multiplies by a uint64 factor, saturating at MaxBalance.
func (b Balance) SaturatingMul64(factor uint64) Balance {
	var res uint256.Int
	res.Mul(&b.v, uint256.NewInt(factor))
	// uint256 multiplication itself wraps at 2^256; two 128-bit operands
	// cannot reach that, so checking the upper half suffices.
	if res[2] != 0 || res[3] != 0 {
		return MaxBalance
	}
	return Balance{v: res}
}

func (b Balance) String() string {
	return b.v.Dec()
}
