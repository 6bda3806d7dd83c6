package gossdb

import (
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"gossdb/lib/logger"
)

const forkLockTimeout = 5 * time.Second

// Stats is a point-in-time snapshot of pool accounting.
type Stats struct {
	Created        int
	Available      int
	InUse          int
	MaxConnections int
}

// Pool is a bounded LIFO pool of connections. All socket I/O happens
// outside the pool mutex so a slow connect never serializes other leases.
//
// Pool identity is tied to the PID that created it: after a fork the child
// abandons every inherited connection and starts over.
type Pool struct {
	opt *Options

	mu   sync.Mutex
	cond *sync.Cond

	// forkLock serializes the one-time reset across sibling goroutines
	// after a PID change. Separate from mu so it stays takable even when
	// mu was held by the parent at fork time.
	forkLock chan struct{}
	pid      atomic.Int64
	getpid   func() int

	maxConnections int
	created        int
	available      []*Conn
	inUse          map[*Conn]struct{}

	log *logger.Logger
}

func NewPool(opt *Options) *Pool {
	if opt == nil {
		opt = DefaultOptions()
	}
	opt.normalize()

	max := opt.MaxConnections
	if max <= 0 {
		max = math.MaxInt32
	}
	p := &Pool{
		opt:            opt,
		forkLock:       make(chan struct{}, 1),
		getpid:         os.Getpid,
		maxConnections: max,
		inUse:          make(map[*Conn]struct{}),
		log:            logger.DefaultLogger.WithScope("pool"),
	}
	p.cond = sync.NewCond(&p.mu)
	p.pid.Store(int64(os.Getpid()))
	return p
}

// Lease hands out a connected, idle connection. A stale or busy connection
// gets exactly one reconnect before the lease fails.
func (p *Pool) Lease() (*Conn, error) {
	if err := p.checkPID(); err != nil {
		return nil, err
	}
	conn, err := p.acquire()
	if err != nil {
		return nil, err
	}

	busy := false
	if err = conn.Connect(); err == nil {
		busy, err = conn.ProbeIdle()
	}
	if err != nil || busy {
		// 一次性重连
		p.log.Debugf("reconnecting stale connection to %s", p.opt.addr())
		_ = conn.Disconnect()
		if err = conn.Connect(); err != nil {
			p.Release(conn)
			return nil, err
		}
		busy, err = conn.ProbeIdle()
		if err != nil {
			p.Release(conn)
			return nil, err
		}
		if busy {
			p.Release(conn)
			return nil, ErrConnectionNotReady
		}
	}
	return conn, nil
}

// acquire pops the most recently used connection or creates a fresh one,
// waiting when the pool is saturated.
func (p *Pool) acquire() (*Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	timedOut := false
	if p.opt.LeaseTimeout > 0 {
		timer := time.AfterFunc(p.opt.LeaseTimeout, func() {
			p.mu.Lock()
			timedOut = true
			p.cond.Broadcast()
			p.mu.Unlock()
		})
		defer timer.Stop()
	}

	for {
		if n := len(p.available); n > 0 {
			conn := p.available[n-1]
			p.available = p.available[:n-1]
			p.inUse[conn] = struct{}{}
			return conn, nil
		}
		if p.created < p.maxConnections {
			p.created++
			conn := newConn(p.opt)
			p.inUse[conn] = struct{}{}
			return conn, nil
		}
		if timedOut {
			return nil, ErrPoolExhausted
		}
		p.cond.Wait()
	}
}

// Release surrenders a lease. Connections the pool no longer owns (other
// PID) and broken connections are dropped instead of pooled.
func (p *Pool) Release(conn *Conn) {
	if conn == nil {
		return
	}
	if err := p.checkPID(); err != nil {
		_ = conn.Disconnect()
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, leased := p.inUse[conn]; !leased {
		// leased before a fork reset, no longer tracked here
		_ = conn.Disconnect()
		return
	}
	delete(p.inUse, conn)

	if conn.ownerPID == int(p.pid.Load()) && conn.Connected() {
		p.available = append(p.available, conn)
	} else {
		p.created--
		_ = conn.Disconnect()
	}
	p.cond.Signal()
}

// DisconnectAll closes every pooled and leased connection, attempting all
// of them and surfacing the last error seen.
func (p *Pool) DisconnectAll() error {
	if err := p.checkPID(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for _, conn := range p.available {
		if err := conn.Disconnect(); err != nil {
			lastErr = err
		}
	}
	for conn := range p.inUse {
		if err := conn.Disconnect(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Stats snapshots the accounting counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Created:        p.created,
		Available:      len(p.available),
		InUse:          len(p.inUse),
		MaxConnections: p.maxConnections,
	}
}

// checkPID detects a fork and resets the pool exactly once.
func (p *Pool) checkPID() error {
	if p.getpid() == int(p.pid.Load()) {
		return nil
	}
	select {
	case p.forkLock <- struct{}{}:
	case <-time.After(forkLockTimeout):
		return ErrChildDeadlock
	}
	defer func() { <-p.forkLock }()

	if p.getpid() != int(p.pid.Load()) {
		p.reset()
	}
	return nil
}

// reset re-initializes all pool state, dropping references to connections
// owned by the parent process without closing their sockets.
func (p *Pool) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pid.Store(int64(p.getpid()))
	p.created = 0
	p.available = nil
	p.inUse = make(map[*Conn]struct{})
	p.cond.Broadcast()
	p.log.Warnf("pid changed, connection pool reset (pid %d)", p.getpid())
}
