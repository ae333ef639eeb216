package enums

import (
	"slices"
	"strings"
)

// NoMatch is the code returned by Encode when a name is not registered.
// No stored row carries it, so it is never a valid filter value.
const NoMatch = -1

// Domain is a closed set of symbolic names backed by stable integer codes.
// Codes are fixed in the table passed to newDomain; new entries must take
// a code that has never been used.
type Domain[T ~int] struct {
	name  string
	names map[T]string
	codes []T
}

func newDomain[T ~int](name string, table map[T]string) Domain[T] {
	d := Domain[T]{name: name, names: make(map[T]string, len(table))}
	for code, label := range table {
		d.names[code] = label
		d.codes = append(d.codes, code)
	}
	// encode scans in ascending code order so the first match is deterministic
	slices.Sort(d.codes)
	return d
}

// Name is the domain name, used in error messages.
func (d Domain[T]) Name() string {
	return d.name
}

// Decode returns the symbolic name stored under code.
func (d Domain[T]) Decode(code T) (string, bool) {
	label, ok := d.names[code]
	return label, ok
}

// Encode returns the code of the first name matching label case-insensitively.
// When nothing matches it returns NoMatch and false.
func (d Domain[T]) Encode(label string) (T, bool) {
	for _, code := range d.codes {
		if strings.EqualFold(d.names[code], label) {
			return code, true
		}
	}
	return NoMatch, false
}

// Codes lists every registered code in ascending order.
func (d Domain[T]) Codes() []T {
	out := make([]T, len(d.codes))
	copy(out, d.codes)
	return out
}

// DecodePtr decodes an optional stored code. Absent or unknown codes yield nil.
func DecodePtr[T ~int](d Domain[T], code *int) *string {
	if code == nil {
		return nil
	}
	label, ok := d.Decode(T(*code))
	if !ok {
		return nil
	}
	return &label
}
