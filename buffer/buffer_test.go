package buffer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_Append(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.Len())

	err := b.Append([]byte("hello"))
	assert.Nil(t, err)
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, []byte("hello"), b.Bytes())
	assert.Equal(t, InitialCap, b.Cap())

	err = b.Append([]byte(" world"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("hello world"), b.Bytes())
}

func TestBuffer_Grow(t *testing.T) {
	b := New()
	chunk := bytes.Repeat([]byte("x"), InitialCap)

	err := b.Append(chunk)
	assert.Nil(t, err)
	assert.Equal(t, InitialCap, b.Cap())

	// crossing the initial capacity doubles it
	err = b.Append([]byte("y"))
	assert.Nil(t, err)
	assert.Equal(t, 2*InitialCap, b.Cap())
	assert.Equal(t, InitialCap+1, b.Len())
}

func TestBuffer_OutOfMemory(t *testing.T) {
	b := New()
	big := make([]byte, MaxCap)
	err := b.Append(big)
	assert.Nil(t, err)
	assert.Equal(t, MaxCap, b.Len())

	err = b.Append([]byte("x"))
	assert.Equal(t, ErrOutOfMemory, err)
	// failed append leaves the buffer intact
	assert.Equal(t, MaxCap, b.Len())
}

func TestBuffer_Consume(t *testing.T) {
	b := New()
	assert.Nil(t, b.Append([]byte("abcdef")))

	b.Consume(2)
	assert.Equal(t, []byte("cdef"), b.Bytes())

	b.Consume(100)
	assert.Equal(t, 0, b.Len())

	assert.Nil(t, b.Append([]byte("again")))
	assert.Equal(t, []byte("again"), b.Bytes())
}

func TestBuffer_Clear(t *testing.T) {
	b := New()
	assert.Nil(t, b.Append([]byte("abc")))
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())

	assert.Nil(t, b.Append([]byte("abc")))
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, InitialCap, b.Cap())
}
