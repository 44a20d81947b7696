package codec

import (
	"fmt"
	"io"
	"reflect"

	bin "github.com/gagliardetto/binary"

	"github.com/lugondev/go-ammix/pkg/errors"
)

// Case declares one variant of a closed sum type T. Prototype is a typed nil pointer
// to the payload struct, e.g. (*AddLiquidity)(nil); it is only used for its type.
type Case[T any] struct {
	Name          string
	Discriminator Discriminator
	Prototype     T
}

type caseInfo struct {
	name string
	elem reflect.Type
}

// Envelope encodes and decodes a closed sum type T. Every case of T is a distinct
// pointer-to-struct type whose fields are borsh-encoded in declaration order after
// the case discriminator.
//
// An Envelope is immutable after construction and safe for concurrent use.
type Envelope[T any] struct {
	table  *Table
	cases  []caseInfo
	byType map[reflect.Type]int
}

// NewEnvelope builds an envelope of the given discriminator width over cases.
func NewEnvelope[T any](program string, width int, cases ...Case[T]) (*Envelope[T], error) {
	entries := make([]Entry, len(cases))
	for i, c := range cases {
		entries[i] = Entry{Name: c.Name, Discriminator: c.Discriminator}
	}
	table, err := NewTable(program, width, entries)
	if err != nil {
		return nil, err
	}

	e := &Envelope[T]{
		table:  table,
		cases:  make([]caseInfo, len(cases)),
		byType: make(map[reflect.Type]int, len(cases)),
	}
	for i, c := range cases {
		rt := reflect.TypeOf(c.Prototype)
		if rt == nil || rt.Kind() != reflect.Pointer || rt.Elem().Kind() != reflect.Struct {
			return nil, errors.InvalidTable(program, fmt.Sprintf("%s: prototype must be a pointer to struct, got %v", c.Name, rt))
		}
		if prev, dup := e.byType[rt]; dup {
			return nil, errors.InvalidTable(program, fmt.Sprintf("%s and %s share payload type %s", cases[prev].Name, c.Name, rt))
		}
		e.byType[rt] = i
		e.cases[i] = caseInfo{name: c.Name, elem: rt.Elem()}
	}
	return e, nil
}

// MustEnvelope is like NewEnvelope but panics on error. Use it for package-level
// program tables.
func MustEnvelope[T any](program string, width int, cases ...Case[T]) *Envelope[T] {
	e, err := NewEnvelope(program, width, cases...)
	if err != nil {
		panic(err)
	}
	return e
}

// Program returns the program label used in errors.
func (e *Envelope[T]) Program() string { return e.table.Program() }

// Width returns the discriminator width in bytes.
func (e *Envelope[T]) Width() int { return e.table.Width() }

// Table returns the underlying discriminator table.
func (e *Envelope[T]) Table() *Table { return e.table }

// Cases lists every case in declaration order.
func (e *Envelope[T]) Cases() []Entry { return e.table.Entries() }

func (e *Envelope[T]) indexOf(v T) (int, error) {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return -1, errors.UnknownVariant(e.Program(), "<nil>")
	}
	idx, ok := e.byType[rt]
	if !ok {
		return -1, errors.UnknownVariant(e.Program(), rt.String())
	}
	return idx, nil
}

// Name returns the case name of v.
func (e *Envelope[T]) Name(v T) (string, error) {
	idx, err := e.indexOf(v)
	if err != nil {
		return "", err
	}
	return e.cases[idx].name, nil
}

// Discriminator returns the tag that Encode writes for v.
func (e *Envelope[T]) Discriminator(v T) (Discriminator, error) {
	idx, err := e.indexOf(v)
	if err != nil {
		return nil, err
	}
	return e.table.Entry(idx).Discriminator, nil
}

// Encode writes the discriminator of v's case followed by the borsh encoding of its
// payload. A nil case pointer encodes as its zero payload.
func (e *Envelope[T]) Encode(v T) ([]byte, error) {
	idx, err := e.indexOf(v)
	if err != nil {
		return nil, err
	}

	payload, err := bin.MarshalBorsh(v)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("%s: encode %s", e.Program(), e.cases[idx].name))
	}

	disc := e.table.Entry(idx).Discriminator
	out := make([]byte, 0, len(disc)+len(payload))
	out = append(out, disc...)
	return append(out, payload...), nil
}

// Identify returns the case name of data without decoding the payload.
func (e *Envelope[T]) Identify(data []byte) (string, error) {
	idx, err := e.match(data)
	if err != nil {
		return "", err
	}
	return e.cases[idx].name, nil
}

func (e *Envelope[T]) match(data []byte) (int, error) {
	w := e.Width()
	if len(data) < w {
		return -1, errors.MalformedInput(e.Program()+" discriminator", len(data), io.ErrUnexpectedEOF)
	}
	idx := e.table.Match(data)
	if idx < 0 {
		return -1, errors.UnknownDiscriminator(e.Program(), data[:w])
	}
	return idx, nil
}

// Decode reads the discriminator, resolves the case and decodes the payload from the
// remaining bytes. Bytes left over after the payload are ignored.
func (e *Envelope[T]) Decode(data []byte) (T, error) {
	return e.decode(data, false)
}

// DecodeStrict is like Decode but fails when the payload does not consume the whole
// buffer.
func (e *Envelope[T]) DecodeStrict(data []byte) (T, error) {
	return e.decode(data, true)
}

func (e *Envelope[T]) decode(data []byte, strict bool) (T, error) {
	var zero T

	idx, err := e.match(data)
	if err != nil {
		return zero, err
	}

	c := e.cases[idx]
	w := e.Width()
	what := e.Program() + " " + c.name

	ptr := reflect.New(c.elem)
	dec := bin.NewBorshDecoder(data[w:])
	if err := dec.Decode(ptr.Interface()); err != nil {
		return zero, errors.MalformedInput(what, w+int(dec.Position()), err)
	}
	if strict && dec.HasRemaining() {
		return zero, errors.MalformedInput(what, w+int(dec.Position()),
			fmt.Errorf("%d trailing bytes", dec.Remaining()))
	}

	v, ok := ptr.Interface().(T)
	if !ok {
		return zero, errors.UnknownVariant(e.Program(), ptr.Type().String())
	}
	return v, nil
}

// New returns a zero payload of the named case.
func (e *Envelope[T]) New(name string) (T, bool) {
	var zero T
	for _, c := range e.cases {
		if c.name != name {
			continue
		}
		v, ok := reflect.New(c.elem).Interface().(T)
		return v, ok
	}
	return zero, false
}
