package gossdb

import (
	"errors"

	"gossdb/buffer"
	"gossdb/proto"
)

var (
	// ErrAuth 认证失败
	ErrAuth = errors.New("gossdb: auth failed")
	// ErrPoolExhausted means max_connections are all leased and the lease
	// timeout expired.
	ErrPoolExhausted = errors.New("gossdb: connection pool exhausted")
	// ErrConnectionNotReady means a connection still saw stray inbound
	// data after a reconnect.
	ErrConnectionNotReady = errors.New("gossdb: connection not ready")
	// ErrChildDeadlock means the fork lock could not be taken within the
	// timeout after a PID change.
	ErrChildDeadlock = errors.New("gossdb: fork lock timeout")
	// ErrNotConnected 连接未建立
	ErrNotConnected = errors.New("gossdb: not connected")
)

// Errors raised by the lower layers, re-exported for callers.
var (
	ErrOutOfMemory      = buffer.ErrOutOfMemory
	ErrProtocol         = proto.ErrProtocol
	ErrConnectionClosed = proto.ErrConnectionClosed
	ErrUnknownCommand   = proto.ErrUnknownCommand
)

// RemoteError is a non-ok status reported by the server.
type RemoteError = proto.RemoteError
