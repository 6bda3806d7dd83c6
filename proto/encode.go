package proto

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ErrEncoding is returned for argument types that have no wire representation.
var ErrEncoding = errors.New("proto: unsupported argument type")

// Encode serializes a command and its arguments to request wire bytes:
// `<len>\n<token>\n` per token, then a bare `\n` terminator.
//
// The command name "delete" is rewritten to "del", the server's native
// spelling.
func Encode(name string, args ...interface{}) ([]byte, error) {
	if name == "delete" {
		name = "del"
	}

	var buf bytes.Buffer
	writeToken(&buf, []byte(name))
	for _, arg := range args {
		tok, err := coerce(arg)
		if err != nil {
			return nil, err
		}
		writeToken(&buf, tok)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeToken(buf *bytes.Buffer, tok []byte) {
	buf.WriteString(strconv.Itoa(len(tok)))
	buf.WriteByte('\n')
	buf.Write(tok)
	buf.WriteByte('\n')
}

// coerce 参数统一转成字节串：文本、整数、字节
func coerce(arg interface{}) ([]byte, error) {
	switch v := arg.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case int:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int64:
		return strconv.AppendInt(nil, v, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint64:
		return strconv.AppendUint(nil, v, 10), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrEncoding, arg)
	}
}
