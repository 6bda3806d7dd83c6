package buffer

import "errors"

const (
	// InitialCap 初始容量 8 KiB
	InitialCap = 8 * 1024
	// MaxCap 容量硬上限 16 MiB
	MaxCap = 16 * 1024 * 1024
)

// ErrOutOfMemory is returned when an append would require more than MaxCap bytes.
var ErrOutOfMemory = errors.New("buffer: capacity limit exceeded")

// Buffer 可增长的字节缓冲区，读偏移始终为 0
type Buffer struct {
	data   []byte
	length int
}

func New() *Buffer {
	return &Buffer{}
}

// Append copies p onto the end of the buffer, growing capacity by doubling.
func (b *Buffer) Append(p []byte) error {
	need := b.length + len(p)
	if need > MaxCap {
		return ErrOutOfMemory
	}
	if need > cap(b.data) {
		newCap := cap(b.data)
		if newCap == 0 {
			newCap = InitialCap
		}
		for newCap < need {
			newCap *= 2
		}
		if newCap > MaxCap {
			newCap = MaxCap
		}
		grown := make([]byte, newCap)
		copy(grown, b.data[:b.length])
		b.data = grown
	}
	copy(b.data[b.length:], p)
	b.length = need
	return nil
}

// Consume removes the first n bytes by shifting the suffix to offset 0.
func (b *Buffer) Consume(n int) {
	if n >= b.length {
		b.length = 0
		return
	}
	copy(b.data, b.data[n:b.length])
	b.length -= n
}

// Bytes returns a view of the unconsumed bytes. The view is invalidated by
// the next Append or Consume.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length]
}

func (b *Buffer) Len() int {
	return b.length
}

func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Clear releases the backing storage, the next Append reallocates.
func (b *Buffer) Clear() {
	b.data = nil
	b.length = 0
}
