package gossdb

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPool_LeaseRelease(t *testing.T) {
	srv := newStubServer(t, okHandler)
	p := NewPool(srv.options())
	defer p.DisconnectAll()

	conn, err := p.Lease()
	assert.Nil(t, err)
	assert.True(t, conn.Connected())
	assert.Equal(t, Stats{Created: 1, Available: 0, InUse: 1, MaxConnections: 1<<31 - 1}, p.Stats())

	p.Release(conn)
	assert.Equal(t, Stats{Created: 1, Available: 1, InUse: 0, MaxConnections: 1<<31 - 1}, p.Stats())
}

func TestPool_LIFOReuse(t *testing.T) {
	srv := newStubServer(t, okHandler)
	p := NewPool(srv.options())
	defer p.DisconnectAll()

	a, err := p.Lease()
	assert.Nil(t, err)
	b, err := p.Lease()
	assert.Nil(t, err)
	p.Release(a)
	p.Release(b)

	// most recently released comes back first
	c, err := p.Lease()
	assert.Nil(t, err)
	assert.Equal(t, b, c)
	p.Release(c)
}

func TestPool_MaxConnections(t *testing.T) {
	srv := newStubServer(t, okHandler)
	opt := srv.options()
	opt.MaxConnections = 1
	opt.LeaseTimeout = 50 * time.Millisecond
	p := NewPool(opt)
	defer p.DisconnectAll()

	conn, err := p.Lease()
	assert.Nil(t, err)

	_, err = p.Lease()
	assert.ErrorIs(t, err, ErrPoolExhausted)

	p.Release(conn)
	conn2, err := p.Lease()
	assert.Nil(t, err)
	p.Release(conn2)
}

func TestPool_LeaseBlocksUntilRelease(t *testing.T) {
	srv := newStubServer(t, okHandler)
	opt := srv.options()
	opt.MaxConnections = 1
	p := NewPool(opt)
	defer p.DisconnectAll()

	conn, err := p.Lease()
	assert.Nil(t, err)

	released := make(chan struct{})
	go func() {
		time.Sleep(100 * time.Millisecond)
		close(released)
		p.Release(conn)
	}()

	start := time.Now()
	conn2, err := p.Lease()
	assert.Nil(t, err)
	select {
	case <-released:
	default:
		t.Fatal("second lease returned before the first was released")
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	p.Release(conn2)
}

func TestPool_LeaseExclusivity(t *testing.T) {
	srv := newStubServer(t, okHandler)
	opt := srv.options()
	opt.MaxConnections = 4
	p := NewPool(opt)
	defer p.DisconnectAll()

	var held sync.Map
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				conn, err := p.Lease()
				assert.Nil(t, err)
				_, loaded := held.LoadOrStore(conn, true)
				assert.False(t, loaded, "connection leased twice concurrently")
				time.Sleep(time.Millisecond)
				held.Delete(conn)
				p.Release(conn)
			}
		}()
	}
	wg.Wait()

	stats := p.Stats()
	assert.Equal(t, 0, stats.InUse)
	assert.Equal(t, stats.Created, stats.Available)
	assert.LessOrEqual(t, stats.Created, 4)
}

func TestPool_BrokenConnectionDropped(t *testing.T) {
	srv := newStubServer(t, func(cmd string, args [][]byte) [][]byte {
		return nil // close instead of answering
	})
	p := NewPool(srv.options())
	defer p.DisconnectAll()

	conn, err := p.Lease()
	assert.Nil(t, err)
	assert.Nil(t, conn.Send("get", "foo"))
	_, err = conn.ReadResponse()
	assert.ErrorIs(t, err, ErrConnectionClosed)

	p.Release(conn)
	assert.Equal(t, Stats{Created: 0, Available: 0, InUse: 0, MaxConnections: 1<<31 - 1}, p.Stats())
}

func TestPool_ReconnectOnStrayData(t *testing.T) {
	srv := newStubServer(t, okHandler)
	p := NewPool(srv.options())
	defer p.DisconnectAll()

	conn, err := p.Lease()
	assert.Nil(t, err)
	p.Release(conn)

	// leave an undrained response behind on the pooled connection
	_, err = srv.lastConn().Write(encodeFrame([][]byte{[]byte("ok")}))
	assert.Nil(t, err)
	waitFor(t, func() bool {
		busy, _ := conn.ProbeIdle()
		return busy
	})

	leased, err := p.Lease()
	assert.Nil(t, err)
	assert.Equal(t, conn, leased)
	assert.True(t, leased.Connected())
	// the reconnect opened a second server-side socket
	waitFor(t, func() bool { return srv.connCount() == 2 })

	busy, err := leased.ProbeIdle()
	assert.Nil(t, err)
	assert.False(t, busy)
	p.Release(leased)
}

func TestPool_ForkReset(t *testing.T) {
	srv := newStubServer(t, okHandler)
	p := NewPool(srv.options())
	defer p.DisconnectAll()

	parentConn, err := p.Lease()
	assert.Nil(t, err)
	p.Release(parentConn)
	assert.Equal(t, 1, p.Stats().Created)

	// simulate a fork: the current PID no longer matches the pool's
	realPID := p.getpid()
	p.getpid = func() int { return realPID + 1 }

	childConn, err := p.Lease()
	assert.Nil(t, err)
	stats := p.Stats()
	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 1, stats.InUse)
	assert.NotEqual(t, parentConn, childConn)

	// releasing the parent's connection must not re-enter the pool
	p.Release(parentConn)
	assert.Equal(t, 1, p.Stats().Created)

	p.Release(childConn)
	// the child's connection is dropped too: it was created under the
	// parent PID as far as the connection is concerned
	assert.Equal(t, Stats{Created: 0, Available: 0, InUse: 0, MaxConnections: 1<<31 - 1}, p.Stats())
}

func TestPool_DisconnectAll(t *testing.T) {
	srv := newStubServer(t, okHandler)
	p := NewPool(srv.options())

	a, err := p.Lease()
	assert.Nil(t, err)
	b, err := p.Lease()
	assert.Nil(t, err)
	p.Release(a)

	assert.Nil(t, p.DisconnectAll())
	assert.False(t, a.Connected())
	assert.False(t, b.Connected())
}

func TestPool_Stats(t *testing.T) {
	srv := newStubServer(t, okHandler)
	opt := srv.options()
	opt.MaxConnections = 7
	p := NewPool(opt)
	defer p.DisconnectAll()

	assert.Equal(t, Stats{MaxConnections: 7}, p.Stats())
	conn, err := p.Lease()
	assert.Nil(t, err)
	assert.Equal(t, Stats{Created: 1, InUse: 1, MaxConnections: 7}, p.Stats())
	p.Release(conn)
}
