package gossdb

import (
	"sync"

	"gossdb/proto"
)

// Client 面向用户的 SSDB 客户端
//
// In the default pooled mode every command leases a connection for the
// duration of one request/response exchange. With SingleConnection set, the
// first command pins one connection that later commands reuse, one at a
// time under the client's mutex. The pin is dropped when the connection
// breaks mid-request (the next command leases a new one) and on Close.
type Client struct {
	opt  *Options
	pool *Pool

	mu     sync.Mutex
	pinned *Conn
}

// New creates a client. A nil opt uses defaults (localhost:7036, unbounded
// pool).
func New(opt *Options) *Client {
	if opt == nil {
		opt = DefaultOptions()
	}
	return &Client{opt: opt, pool: NewPool(opt)}
}

// Pool exposes the underlying connection pool, mainly for introspection.
func (c *Client) Pool() *Pool {
	return c.pool
}

// Do sends one command and interprets the response by the command's
// response class. The result is nil (absent), int64, float64, []byte,
// [][]byte, []proto.Pair, []proto.IntPair, *proto.Scan or *proto.IntScan.
func (c *Client) Do(cmd string, args ...interface{}) (interface{}, error) {
	if c.opt.SingleConnection {
		return c.doSingle(cmd, args...)
	}
	conn, err := c.pool.Lease()
	if err != nil {
		return nil, err
	}
	defer c.pool.Release(conn)
	return exchange(conn, cmd, args...)
}

func (c *Client) doSingle(cmd string, args ...interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinned == nil {
		conn, err := c.pool.Lease()
		if err != nil {
			return nil, err
		}
		c.pinned = conn
	}
	res, err := exchange(c.pinned, cmd, args...)
	if err != nil && !c.pinned.Connected() {
		// poisoned mid-flight, hand it back so the pool drops it
		c.pool.Release(c.pinned)
		c.pinned = nil
	}
	return res, err
}

func exchange(conn *Conn, cmd string, args ...interface{}) (interface{}, error) {
	if err := conn.Send(cmd, args...); err != nil {
		return nil, err
	}
	frame, err := conn.ReadResponse()
	if err != nil {
		return nil, err
	}
	return proto.Interpret(cmd, frame)
}

// Close releases the pinned connection if any, then closes every
// connection the pool tracks.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.pinned != nil {
		c.pool.Release(c.pinned)
		c.pinned = nil
	}
	c.mu.Unlock()
	return c.pool.DisconnectAll()
}
