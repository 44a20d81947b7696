package codec

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"

	bin "github.com/gagliardetto/binary"
)

// U128 is an unsigned 128-bit integer encoded as 16 little-endian bytes.
// Borsh encoding, BigInt and String come from the embedded bin.Uint128. The
// constructors leave its Endianness unset so decoded and built values compare
// equal.
type U128 struct {
	bin.Uint128
}

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// NewU128 widens v.
func NewU128(v uint64) U128 {
	return U128FromWords(v, 0)
}

// U128FromWords builds the value lo + hi<<64.
func U128FromWords(lo, hi uint64) U128 {
	return U128{bin.Uint128{Lo: lo, Hi: hi}}
}

// U128FromBig converts b, failing when it is negative or wider than 128 bits.
func U128FromBig(b *big.Int) (U128, error) {
	if b.Sign() < 0 || b.Cmp(maxU128) > 0 {
		return U128{}, fmt.Errorf("value %s out of u128 range", b)
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return U128FromWords(lo.Uint64(), hi.Uint64()), nil
}

// ParseU128 parses a base-10 string.
func ParseU128(s string) (U128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return U128{}, fmt.Errorf("invalid u128 %q", s)
	}
	return U128FromBig(b)
}

// Bytes returns the little-endian wire form.
func (u U128) Bytes() [16]byte {
	var out [16]byte
	binary.LittleEndian.PutUint64(out[:8], u.Lo)
	binary.LittleEndian.PutUint64(out[8:], u.Hi)
	return out
}

// UnmarshalJSON accepts a decimal string and rejects values outside the u128
// range instead of letting big.Int.FillBytes panic.
func (u *U128) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseU128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalYAML renders the value as a decimal string.
func (u U128) MarshalYAML() (any, error) {
	return u.String(), nil
}
