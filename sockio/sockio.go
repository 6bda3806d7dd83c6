package sockio

import (
	"fmt"
	"io"
	"net"
	"time"
)

type StreamType = byte

const (
	// TCPStream 标准 TCP 字节流
	TCPStream StreamType = iota
)

// Options 建立连接时应用的套接字参数
type Options struct {
	Keepalive       bool
	KeepalivePeriod time.Duration
	DialTimeout     time.Duration
}

// Stream 抽象字节流接口，阻塞与非阻塞读通过读截止时间切换
type Stream interface {
	io.ReadWriteCloser

	// SetReadDeadline bounds the next Read. A deadline in the past turns
	// the read non-blocking.
	SetReadDeadline(t time.Time) error

	// RemoteAddr 对端地址（用于日志）
	RemoteAddr() string
}

// NewStream dials the given address, currently only TCP is supported.
func NewStream(streamType StreamType, addr string, opt Options) (Stream, error) {
	switch streamType {
	case TCPStream:
		return DialTCP(addr, opt)
	default:
		panic("unsupported stream type")
	}
}

type tcpStream struct {
	conn *net.TCPConn
}

// DialTCP connects to addr and applies TCP_NODELAY plus the keepalive
// options from opt.
func DialTCP(addr string, opt Options) (Stream, error) {
	raw, err := net.DialTimeout("tcp", addr, opt.DialTimeout)
	if err != nil {
		return nil, err
	}
	conn, ok := raw.(*net.TCPConn)
	if !ok {
		_ = raw.Close()
		return nil, fmt.Errorf("sockio: %s is not a tcp address", addr)
	}

	if err := conn.SetNoDelay(true); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if opt.Keepalive {
		if err := conn.SetKeepAlive(true); err != nil {
			_ = conn.Close()
			return nil, err
		}
		if opt.KeepalivePeriod > 0 {
			if err := conn.SetKeepAlivePeriod(opt.KeepalivePeriod); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
	}
	return &tcpStream{conn: conn}, nil
}

func (s *tcpStream) Read(p []byte) (int, error) {
	return s.conn.Read(p)
}

func (s *tcpStream) Write(p []byte) (int, error) {
	return s.conn.Write(p)
}

func (s *tcpStream) Close() error {
	return s.conn.Close()
}

func (s *tcpStream) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

func (s *tcpStream) RemoteAddr() string {
	return s.conn.RemoteAddr().String()
}
