package sv

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// DefaultBuilderCapacity is the capacity allocated on the first growth
// of an empty Builder.
const DefaultBuilderCapacity = 256

// Builder is a growable byte buffer.
// Its capacity starts at DefaultBuilderCapacity and doubles when full.
// The zero value is an empty Builder ready to use.
type Builder struct {
	data []byte
}

var _ io.Writer = (*Builder)(nil)

// NewBuilder returns an empty Builder with the given capacity preallocated.
func NewBuilder(capacity int) *Builder {
	return &Builder{data: make([]byte, 0, max(capacity, 0))}
}

// FromFile reads the whole file at path into a Builder sized to the file.
func FromFile(fs afero.Fs, path string) (*Builder, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	b := NewBuilder(int(info.Size()))
	if _, err := io.Copy(b, f); err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	return b, nil
}

func (b *Builder) grow() {
	newCap := cap(b.data) * 2
	if newCap == 0 {
		newCap = DefaultBuilderCapacity
	}

	data := make([]byte, len(b.data), newCap)
	copy(data, b.data)
	b.data = data
}

func (b *Builder) Len() int {
	return len(b.data)
}

func (b *Builder) Cap() int {
	return cap(b.data)
}

func (b *Builder) AppendByte(c byte) {
	if len(b.data)+1 > cap(b.data) {
		b.grow()
	}

	b.data = append(b.data, c)
}

// Write appends p, growing by doubling. It never fails.
func (b *Builder) Write(p []byte) (int, error) {
	for len(b.data)+len(p) > cap(b.data) {
		b.grow()
	}

	b.data = append(b.data, p...)

	return len(p), nil
}

func (b *Builder) Concat(s string) {
	for len(b.data)+len(s) > cap(b.data) {
		b.grow()
	}

	b.data = append(b.data, s...)
}

// Concatf appends the formatted string.
func (b *Builder) Concatf(format string, args ...any) {
	fmt.Fprintf(b, format, args...)
}

// Bytes returns the buffer contents. The slice aliases the buffer and is
// only valid until the next modification.
func (b *Builder) Bytes() []byte {
	return b.data
}

// String returns a copy of the buffer contents.
func (b *Builder) String() string {
	return string(b.data)
}

// Reset empties the buffer, keeping its capacity.
func (b *Builder) Reset() {
	b.data = b.data[:0]
}

// Free releases the buffer.
func (b *Builder) Free() {
	b.data = nil
}
