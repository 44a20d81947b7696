package codec

import (
	"fmt"

	"github.com/lugondev/go-ammix/pkg/errors"
)

// EventDecoder decodes events emitted by a program. Event discriminators are always
// eight bytes wide, sha256("event:<Name>")[:8], whatever width the program uses for
// instructions.
type EventDecoder[T any] struct {
	env *Envelope[T]
}

// NewEventDecoder builds a decoder over the program's event cases.
func NewEventDecoder[T any](program string, cases ...Case[T]) (*EventDecoder[T], error) {
	env, err := NewEnvelope(program+" event", WidthAnchor, cases...)
	if err != nil {
		return nil, err
	}
	return &EventDecoder[T]{env: env}, nil
}

// MustEventDecoder is like NewEventDecoder but panics on error.
func MustEventDecoder[T any](program string, cases ...Case[T]) *EventDecoder[T] {
	d, err := NewEventDecoder(program, cases...)
	if err != nil {
		panic(err)
	}
	return d
}

// Decode decodes a "Program data:" payload: discriminator followed by the event.
func (d *EventDecoder[T]) Decode(data []byte) (T, error) {
	return d.env.Decode(data)
}

// DecodeCPI decodes the instruction data of an Anchor self-CPI event, which wraps
// the regular event payload in EventIxTag.
func (d *EventDecoder[T]) DecodeCPI(data []byte) (T, error) {
	var zero T
	if len(data) < len(EventIxTag) || !EventIxTag.Equal(data[:len(EventIxTag)]) {
		return zero, errors.MalformedInput(d.env.Program()+" cpi tag", 0,
			fmt.Errorf("data does not start with %s", EventIxTag))
	}
	return d.env.Decode(data[len(EventIxTag):])
}

// IsCPI reports whether data carries the self-CPI event tag.
func IsCPI(data []byte) bool {
	return len(data) >= len(EventIxTag) && EventIxTag.Equal(data[:len(EventIxTag)])
}

// Encode frames v as a "Program data:" payload.
func (d *EventDecoder[T]) Encode(v T) ([]byte, error) {
	return d.env.Encode(v)
}

// EncodeCPI frames v as self-CPI event instruction data.
func (d *EventDecoder[T]) EncodeCPI(v T) ([]byte, error) {
	data, err := d.env.Encode(v)
	if err != nil {
		return nil, err
	}
	return append(append(make([]byte, 0, len(EventIxTag)+len(data)), EventIxTag...), data...), nil
}

// Identify returns the event name without decoding the payload.
func (d *EventDecoder[T]) Identify(data []byte) (string, error) {
	return d.env.Identify(data)
}

// Name returns the event name of v.
func (d *EventDecoder[T]) Name(v T) (string, error) {
	return d.env.Name(v)
}

// Cases lists every event in declaration order.
func (d *EventDecoder[T]) Cases() []Entry {
	return d.env.Cases()
}

// Table returns the event discriminator table.
func (d *EventDecoder[T]) Table() *Table {
	return d.env.Table()
}
