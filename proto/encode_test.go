package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_Ping(t *testing.T) {
	b, err := Encode("ping")
	assert.Nil(t, err)
	assert.Equal(t, []byte("4\nping\n\n"), b)
}

func TestEncode_Set(t *testing.T) {
	b, err := Encode("set", "foo", "bar")
	assert.Nil(t, err)
	assert.Equal(t, []byte("3\nset\n3\nfoo\n3\nbar\n\n"), b)
}

func TestEncode_DeleteRename(t *testing.T) {
	b, err := Encode("delete", "foo")
	assert.Nil(t, err)
	assert.Equal(t, []byte("3\ndel\n3\nfoo\n\n"), b)
}

func TestEncode_ArgTypes(t *testing.T) {
	b, err := Encode("setx", []byte("k"), "v", 60)
	assert.Nil(t, err)
	assert.Equal(t, []byte("4\nsetx\n1\nk\n1\nv\n2\n60\n\n"), b)

	b, err = Encode("zset", "z", "m", int64(-7))
	assert.Nil(t, err)
	assert.Equal(t, []byte("4\nzset\n1\nz\n1\nm\n2\n-7\n\n"), b)

	b, err = Encode("incr", "k", uint64(3))
	assert.Nil(t, err)
	assert.Equal(t, []byte("4\nincr\n1\nk\n1\n3\n\n"), b)
}

func TestEncode_BinarySafe(t *testing.T) {
	b, err := Encode("set", "k", []byte{0, '\n', 0xff})
	assert.Nil(t, err)
	assert.Equal(t, append([]byte("3\nset\n1\nk\n3\n"), 0, '\n', 0xff, '\n', '\n'), b)
}

func TestEncode_RejectsUnsupported(t *testing.T) {
	_, err := Encode("set", "k", 3.14)
	assert.ErrorIs(t, err, ErrEncoding)

	_, err = Encode("set", "k", struct{}{})
	assert.ErrorIs(t, err, ErrEncoding)
}
