package gossdb

import (
	"errors"
	"net"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"gossdb/parser"
)

// stubServer speaks just enough of the wire protocol to drive the client.
// A handler returning a nil frame makes the server drop the connection,
// which is how the tests simulate a server-side close.
type stubServer struct {
	t      *testing.T
	ln     net.Listener
	handle func(cmd string, args [][]byte) [][]byte

	mu    sync.Mutex
	conns []net.Conn
}

// okHandler answers every command with ok/1.
func okHandler(cmd string, args [][]byte) [][]byte {
	return [][]byte{[]byte("ok"), []byte("1")}
}

func newStubServer(t *testing.T, handle func(cmd string, args [][]byte) [][]byte) *stubServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Nil(t, err)
	s := &stubServer{t: t, ln: ln, handle: handle}
	go s.acceptLoop()
	t.Cleanup(s.close)
	return s
}

func (s *stubServer) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns = append(s.conns, conn)
		s.mu.Unlock()
		go s.serve(conn)
	}
}

func (s *stubServer) serve(conn net.Conn) {
	defer conn.Close()
	p := parser.New()
	buf := make([]byte, 4096)
	for {
		frame, err := p.TryParse()
		if errors.Is(err, parser.ErrIncomplete) {
			n, rerr := conn.Read(buf)
			if n > 0 {
				if p.Feed(buf[:n]) != nil {
					return
				}
				continue
			}
			if rerr != nil {
				return
			}
			continue
		}
		if err != nil || len(frame) == 0 {
			return
		}
		resp := s.handle(string(frame[0]), frame[1:])
		if resp == nil {
			return
		}
		if _, err := conn.Write(encodeFrame(resp)); err != nil {
			return
		}
	}
}

// connCount reports how many connections the server has accepted so far.
func (s *stubServer) connCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// lastConn exposes the newest server-side socket so tests can push
// unsolicited bytes or close it.
func (s *stubServer) lastConn() net.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.conns) == 0 {
		return nil
	}
	return s.conns[len(s.conns)-1]
}

func (s *stubServer) options() *Options {
	host, portStr, err := net.SplitHostPort(s.ln.Addr().String())
	assert.Nil(s.t, err)
	port, err := strconv.Atoi(portStr)
	assert.Nil(s.t, err)
	opt := DefaultOptions()
	opt.Host = host
	opt.Port = port
	return opt
}

func (s *stubServer) close() {
	_ = s.ln.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conns {
		_ = c.Close()
	}
}

func encodeFrame(blobs [][]byte) []byte {
	var out []byte
	for _, b := range blobs {
		out = append(out, []byte(strconv.Itoa(len(b)))...)
		out = append(out, '\n')
		out = append(out, b...)
		out = append(out, '\n')
	}
	return append(out, '\n')
}
