package proto

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrConnectionClosed means the server returned an empty frame, which
	// only happens when the peer shut the stream down mid-response.
	ErrConnectionClosed = errors.New("proto: connection closed by server")
	// ErrProtocol flags a structurally invalid response body.
	ErrProtocol = errors.New("proto: malformed response")
	// ErrUnknownCommand means the command is in no response class.
	ErrUnknownCommand = errors.New("proto: unknown command")
)

// RemoteError carries a non-ok status string reported by the server.
type RemoteError struct {
	Status string
}

func (e *RemoteError) Error() string {
	return "ssdb: " + e.Status
}

// Pair 有序映射的一项，保留服务端返回顺序
type Pair struct {
	Key   []byte
	Value []byte
}

// IntPair is a Pair whose value has been coerced to an integer.
type IntPair struct {
	Key   []byte
	Value int64
}

// Scan is the result of a cursor-style command: the key to resume from and
// the pairs of this page. NextStart is nil when the page was empty.
type Scan struct {
	NextStart []byte
	Pairs     []Pair
}

// IntScan is Scan with integer-coerced values.
type IntScan struct {
	NextStart []byte
	Pairs     []IntPair
}

// Class 响应体的形状
type Class int

const (
	ClassNone Class = iota
	ClassInt
	ClassFloat
	ClassBytes
	ClassList
	ClassStrMap
	ClassIntMap
	ClassStrMapScan
	ClassIntMapScan
)

var classCommands = map[Class][]string{
	ClassNone: {"ping", "qset"},
	ClassInt: {
		"auth", "dbsize",
		"set", "setx", "setnx", "expire", "ttl", "del", "incr", "decr",
		"exists", "getbit", "setbit", "bitcount", "countbit", "strlen",
		"multi_set", "multi_del",
		"hset", "hdel", "hincr", "hdecr", "hexists", "hsize", "hclear",
		"multi_hset", "multi_hdel",
		"zset", "zget", "zdel", "zincr", "zdecr", "zexists", "zsize",
		"zrank", "zrrank", "zclear", "zcount", "zsum",
		"zremrangebyrank", "zremrangebyscore",
		"multi_zset", "multi_zdel",
		"qsize", "qclear", "qpush", "qpush_front", "qpush_back",
		"qtrim_front", "qtrim_back",
	},
	ClassFloat: {"zavg"},
	ClassBytes: {"version", "get", "getset", "substr", "hget", "qfront", "qback", "qget"},
	ClassList: {
		"info", "keys", "rkeys", "hlist", "hrlist", "hkeys",
		"zlist", "zrlist", "zkeys", "qlist", "qrlist",
		"qrange", "qslice", "qpop", "qpop_front", "qpop_back",
	},
	ClassStrMap: {"multi_get", "hgetall", "multi_hget"},
	ClassIntMap: {
		"multi_exists", "multi_hexists", "multi_hsize",
		"zrange", "zrrange", "zpop_front", "zpop_back",
		"multi_zget", "multi_zexists", "multi_zsize",
	},
	ClassStrMapScan: {"scan", "rscan", "hscan", "hrscan"},
	ClassIntMapScan: {"zscan", "zrscan"},
}

// classOf 命令到响应类别的静态映射，初始化时构建一次
var classOf = buildClassTable()

func buildClassTable() map[string]Class {
	table := make(map[string]Class, 128)
	for class, cmds := range classCommands {
		for _, cmd := range cmds {
			if _, dup := table[cmd]; dup {
				panic("proto: command registered twice: " + cmd)
			}
			table[cmd] = class
		}
	}
	return table
}

// ClassOf returns the response class of a command.
func ClassOf(cmd string) (Class, bool) {
	c, ok := classOf[cmd]
	return c, ok
}

// Interpret shapes a response frame according to the command that produced
// it. A nil result with a nil error is the absent-value sentinel (the server
// answered not_found, or the command has no response body).
func Interpret(cmd string, frame [][]byte) (interface{}, error) {
	if len(frame) == 0 {
		return nil, ErrConnectionClosed
	}

	status := string(frame[0])
	body := frame[1:]

	if status == "not_found" {
		return nil, nil
	}
	if status != "ok" {
		return nil, &RemoteError{Status: status}
	}

	if cmd == "delete" {
		cmd = "del"
	}
	class, ok := classOf[cmd]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	switch class {
	case ClassNone:
		return nil, nil
	case ClassInt:
		if len(body) == 0 {
			return nil, fmt.Errorf("%w: %s: missing integer reply", ErrProtocol, cmd)
		}
		n, err := strconv.ParseInt(string(body[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad integer %q", ErrProtocol, cmd, body[0])
		}
		return n, nil
	case ClassFloat:
		if len(body) == 0 {
			return nil, fmt.Errorf("%w: %s: missing float reply", ErrProtocol, cmd)
		}
		f, err := strconv.ParseFloat(string(body[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad float %q", ErrProtocol, cmd, body[0])
		}
		return f, nil
	case ClassBytes:
		if len(body) == 0 {
			return nil, fmt.Errorf("%w: %s: missing bulk reply", ErrProtocol, cmd)
		}
		return body[0], nil
	case ClassList:
		return body, nil
	case ClassStrMap:
		return strPairs(cmd, body)
	case ClassIntMap:
		return intPairs(cmd, body)
	case ClassStrMapScan:
		pairs, err := strPairs(cmd, body)
		if err != nil {
			return nil, err
		}
		return &Scan{NextStart: nextStart(body), Pairs: pairs}, nil
	case ClassIntMapScan:
		pairs, err := intPairs(cmd, body)
		if err != nil {
			return nil, err
		}
		return &IntScan{NextStart: nextStart(body), Pairs: pairs}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

func strPairs(cmd string, body [][]byte) ([]Pair, error) {
	if len(body)%2 != 0 {
		return nil, fmt.Errorf("%w: %s: odd-length map body", ErrProtocol, cmd)
	}
	pairs := make([]Pair, 0, len(body)/2)
	for i := 0; i < len(body); i += 2 {
		pairs = append(pairs, Pair{Key: body[i], Value: body[i+1]})
	}
	return pairs, nil
}

// intPairs coerces map values to integers, substituting -1 for anything
// that is not all-digit. The lax fallback is kept for wire compatibility
// with existing deployments.
func intPairs(cmd string, body [][]byte) ([]IntPair, error) {
	if len(body)%2 != 0 {
		return nil, fmt.Errorf("%w: %s: odd-length map body", ErrProtocol, cmd)
	}
	pairs := make([]IntPair, 0, len(body)/2)
	for i := 0; i < len(body); i += 2 {
		pairs = append(pairs, IntPair{Key: body[i], Value: coerceInt(body[i+1])})
	}
	return pairs, nil
}

func coerceInt(v []byte) int64 {
	if len(v) == 0 {
		return -1
	}
	var n int64
	for _, c := range v {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int64(c-'0')
	}
	return n
}

func nextStart(body [][]byte) []byte {
	if len(body) < 2 {
		return nil
	}
	return body[len(body)-2]
}
