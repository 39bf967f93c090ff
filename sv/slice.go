// Package sv provides a read-only byte view (Slice) and a growable byte
// buffer (Builder) for simple text processing: splitting input into lines
// and fields, trimming and parsing integers, without copying until a value
// has to be owned.
package sv

import (
	"bytes"
	"unsafe"
)

// Slice is a read-only view over bytes owned by someone else.
// Chopping and trimming move the view, never the bytes.
type Slice struct {
	data []byte
}

// Null returns the empty view which points at nothing.
func Null() Slice {
	return Slice{}
}

// FromBytes returns a view over p. p must not be modified while the view
// is in use.
func FromBytes(p []byte) Slice {
	return Slice{data: p}
}

// FromString returns a view over s without copying it.
func FromString(s string) Slice {
	return Slice{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromBuilder returns a view over the current contents of b.
// It's invalidated by the next write to b.
func FromBuilder(b *Builder) Slice {
	return Slice{data: b.Bytes()}
}

func (s Slice) Len() int {
	return len(s.data)
}

// IsNull reports whether the view points at nothing.
func (s Slice) IsNull() bool {
	return s.data == nil
}

// Bytes returns the viewed bytes. They must not be modified.
func (s Slice) Bytes() []byte {
	return s.data
}

// String returns an owned copy of the viewed bytes.
// Use it to turn a view into a map key.
func (s Slice) String() string {
	return string(s.data)
}

func (s Slice) Equal(other Slice) bool {
	return bytes.Equal(s.data, other.data)
}

// ChopByDelim splits off and returns the bytes before the first delim,
// advancing the view past the delimiter.
//
// If there is no delim left, the whole remainder is returned and the view
// becomes Null.
func (s *Slice) ChopByDelim(delim byte) Slice {
	if i := bytes.IndexByte(s.data, delim); i >= 0 {
		head := Slice{data: s.data[:i:i]}
		s.data = s.data[i+1:]

		return head
	}

	head := *s
	*s = Null()

	return head
}

func (s *Slice) ChopLine() Slice {
	return s.ChopByDelim('\n')
}

func (s *Slice) ChopBySpace() Slice {
	return s.ChopByDelim(' ')
}

func (s *Slice) TrimLeft(sym byte) {
	i := 0
	for i < len(s.data) && s.data[i] == sym {
		i++
	}

	s.data = s.data[i:]
}

func (s *Slice) TrimRight(sym byte) {
	n := len(s.data)
	for n > 0 && s.data[n-1] == sym {
		n--
	}

	s.data = s.data[:n]
}

// StripSpace trims spaces from both ends.
func (s *Slice) StripSpace() {
	s.TrimLeft(' ')
	s.TrimRight(' ')
}

// ParseInt parses an optionally negative decimal integer.
//
// Any byte other than a digit after the sign makes it return 0, so a
// malformed input can't be told apart from a parsed zero.
func (s Slice) ParseInt() int {
	digits := s.data
	neg := false

	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
		neg = true
	}

	n := 0
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0
		}

		n = n*10 + int(c-'0')
	}

	if neg {
		n = -n
	}

	return n
}
