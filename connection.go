package gossdb

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"gossdb/lib/logger"
	"gossdb/parser"
	"gossdb/proto"
	"gossdb/sockio"
)

// aLongTimeAgo turns the next read non-blocking.
var aLongTimeAgo = time.Unix(1, 0)

// Conn owns one TCP socket to the server and carries one request at a time:
// a Send must be followed by a ReadResponse before the next Send. Conn does
// not track this itself; Send writes its request even when an earlier
// response has not been read.
//
// A Conn is not internally synchronized, the pool's lease protocol
// guarantees single-caller access.
type Conn struct {
	opt      *Options
	ownerPID int

	stream  sockio.Stream
	parser  *parser.Parser
	readBuf []byte
	log     *logger.Logger

	// pending holds one parsed-but-unconsumed frame picked up by
	// ProbeIdle, taken by the next ReadResponse.
	pending    [][]byte
	hasPending bool
}

func newConn(opt *Options) *Conn {
	return &Conn{
		opt:      opt,
		ownerPID: os.Getpid(),
		parser:   parser.New(),
		readBuf:  make([]byte, opt.RecvChunkSize),
		log:      logger.DefaultLogger.WithScope(opt.addr()),
	}
}

// Connected reports whether the socket is currently established.
func (c *Conn) Connected() bool {
	return c.stream != nil
}

// Connect dials the server, idempotent. When a password is configured an
// auth round-trip runs before the connection is usable; any failure there
// surfaces ErrAuth and tears the socket down.
func (c *Conn) Connect() error {
	if c.stream != nil {
		return nil
	}
	stream, err := sockio.DialTCP(c.opt.addr(), sockio.Options{
		Keepalive:       c.opt.SocketKeepalive,
		KeepalivePeriod: c.opt.KeepalivePeriod,
		DialTimeout:     c.opt.DialTimeout,
	})
	if err != nil {
		return fmt.Errorf("gossdb: connect %s: %w", c.opt.addr(), err)
	}
	c.stream = stream
	c.parser.Reset()
	c.pending, c.hasPending = nil, false

	if c.opt.Auth != "" {
		if err := c.handshake(); err != nil {
			_ = c.Disconnect()
			return err
		}
	}
	return nil
}

func (c *Conn) handshake() error {
	if err := c.Send("auth", c.opt.Auth); err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	frame, err := c.ReadResponse()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if len(frame) == 0 || string(frame[0]) != "ok" {
		return ErrAuth
	}
	return nil
}

// Send encodes and writes one request. 写失败即断开
func (c *Conn) Send(cmd string, args ...interface{}) error {
	if err := c.Connect(); err != nil {
		return err
	}
	req, err := proto.Encode(cmd, args...)
	if err != nil {
		return err
	}
	if _, err := c.stream.Write(req); err != nil {
		_ = c.Disconnect()
		return fmt.Errorf("gossdb: write: %w", err)
	}
	return nil
}

// ReadResponse blocks until one complete frame is available. A pending
// frame left behind by ProbeIdle is consumed first.
func (c *Conn) ReadResponse() ([][]byte, error) {
	if c.hasPending {
		frame := c.pending
		c.pending, c.hasPending = nil, false
		return frame, nil
	}
	if c.stream == nil {
		return nil, ErrNotConnected
	}
	for {
		frame, err := c.parser.TryParse()
		if err == nil {
			return frame, nil
		}
		if errors.Is(err, parser.ErrBadFormat) {
			_ = c.Disconnect()
			return nil, fmt.Errorf("%w: bad frame", ErrProtocol)
		}

		n, rerr := c.stream.Read(c.readBuf)
		if n > 0 {
			if ferr := c.parser.Feed(c.readBuf[:n]); ferr != nil {
				_ = c.Disconnect()
				return nil, ferr
			}
			continue
		}
		_ = c.Disconnect()
		if rerr == nil || errors.Is(rerr, io.EOF) {
			return nil, ErrConnectionClosed
		}
		return nil, fmt.Errorf("gossdb: read: %w", rerr)
	}
}

// ProbeIdle checks for a stale socket before a new command goes out. It
// reports true when inbound data is waiting, which means the previous
// response was never fully drained and the connection needs a reconnect
// before it can carry a fresh request.
func (c *Conn) ProbeIdle() (bool, error) {
	if c.stream == nil {
		return false, ErrNotConnected
	}
	if !c.hasPending {
		frame, err := c.parser.TryParse()
		switch {
		case err == nil:
			c.pending, c.hasPending = frame, true
		case errors.Is(err, parser.ErrIncomplete):
			// fall through to the non-blocking read
		default:
			_ = c.Disconnect()
			return false, fmt.Errorf("%w: bad frame", ErrProtocol)
		}
	}
	if c.hasPending {
		return true, nil
	}

	_ = c.stream.SetReadDeadline(aLongTimeAgo)
	n, err := c.stream.Read(c.readBuf)
	_ = c.stream.SetReadDeadline(time.Time{})

	if n > 0 {
		if ferr := c.parser.Feed(c.readBuf[:n]); ferr != nil {
			_ = c.Disconnect()
			return false, ferr
		}
		return true, nil
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return false, nil
	}
	_ = c.Disconnect()
	if err == nil || errors.Is(err, io.EOF) {
		return false, ErrConnectionClosed
	}
	return false, fmt.Errorf("gossdb: probe: %w", err)
}

// Disconnect drops the socket, idempotent. Only the PID that created the
// connection performs an orderly close, a forked child must not shut down
// a socket it inherited from the parent.
func (c *Conn) Disconnect() error {
	if c.stream == nil {
		return nil
	}
	var err error
	if os.Getpid() == c.ownerPID {
		err = c.stream.Close()
	} else {
		c.log.Debugf("abandoning socket inherited from pid %d", c.ownerPID)
	}
	c.stream = nil
	c.parser.Reset()
	c.pending, c.hasPending = nil, false
	return err
}
