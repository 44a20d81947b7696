// Package codec implements the discriminator-tagged envelope used by Anchor-style
// programs: a fixed-width tag followed by the borsh encoding of the case payload.
package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	bin "github.com/gagliardetto/binary"
)

// MaxWidth is the widest discriminator any program uses.
const MaxWidth = 8

// Supported discriminator widths.
const (
	WidthByte   = 1
	WidthAnchor = 8
)

// Namespaces hashed into Anchor sighashes.
const (
	NamespaceGlobal  = bin.SIGHASH_GLOBAL_NAMESPACE
	NamespaceEvent   = "event"
	NamespaceAccount = bin.SIGHASH_ACCOUNT_NAMESPACE
)

// Discriminator is the tag written in front of every envelope payload.
type Discriminator []byte

// String returns the hex form of the tag.
func (d Discriminator) String() string {
	return hex.EncodeToString(d)
}

// Equal reports whether both tags hold the same bytes.
func (d Discriminator) Equal(other Discriminator) bool {
	return bytes.Equal(d, other)
}

// Width returns the tag length in bytes.
func (d Discriminator) Width() int {
	return len(d)
}

// Truncate returns the first n bytes of the tag.
func (d Discriminator) Truncate(n int) Discriminator {
	if n >= len(d) {
		return d
	}
	return d[:n:n]
}

// Ints returns the tag as a list of byte values, the way IDLs print it.
func (d Discriminator) Ints() []int {
	out := make([]int, len(d))
	for i, b := range d {
		out[i] = int(b)
	}
	return out
}

// MarshalJSON renders the tag as a number array instead of base64.
func (d Discriminator) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Ints())
}

// MarshalYAML renders the tag as a number array.
func (d Discriminator) MarshalYAML() (any, error) {
	return d.Ints(), nil
}

// InstructionSighash returns sha256("global:<name>")[:8]. name must already be in
// snake case.
func InstructionSighash(name string) Discriminator {
	return Discriminator(bin.Sighash(NamespaceGlobal, name))
}

// EventSighash returns sha256("event:<Name>")[:8]. name keeps its declared casing.
func EventSighash(name string) Discriminator {
	return Discriminator(bin.Sighash(NamespaceEvent, name))
}

// AccountSighash returns sha256("account:<Name>")[:8], the tag Anchor writes
// at the start of account data.
func AccountSighash(name string) Discriminator {
	return Discriminator(bin.Sighash(NamespaceAccount, name))
}

// EventIxTag prefixes events emitted through Anchor's self-CPI (emit_cpi!).
var EventIxTag = Discriminator{0xe4, 0x45, 0xa5, 0x2e, 0x51, 0xcb, 0x9a, 0x1d}
