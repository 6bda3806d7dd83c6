package gossdb

import (
	"net"
	"strconv"
	"time"

	"gossdb/settings"
)

const (
	DefaultHost          = "localhost"
	DefaultPort          = 7036
	DefaultRecvChunkSize = 64 * 1024
)

// Options configures a Client and its connection pool.
type Options struct {
	Host string
	Port int
	// Auth 为空表示不认证
	Auth string

	// MaxConnections caps the pool size, 0 means unbounded.
	MaxConnections int
	// LeaseTimeout bounds how long a lease waits on a saturated pool
	// before failing with ErrPoolExhausted. 0 waits indefinitely.
	LeaseTimeout time.Duration

	SocketKeepalive bool
	KeepalivePeriod time.Duration
	RecvChunkSize   int
	DialTimeout     time.Duration

	// SingleConnection pins one pooled connection to the client instead
	// of leasing per command.
	SingleConnection bool
}

func DefaultOptions() *Options {
	return &Options{
		Host:            DefaultHost,
		Port:            DefaultPort,
		SocketKeepalive: true,
		RecvChunkSize:   DefaultRecvChunkSize,
	}
}

// OptionsFromSettings builds Options from a loaded settings file.
func OptionsFromSettings(conf *settings.AppConfig) *Options {
	opt := DefaultOptions()
	if conf.ClientConfig != nil {
		if conf.ClientConfig.Host != "" {
			opt.Host = conf.ClientConfig.Host
		}
		if conf.ClientConfig.Port != 0 {
			opt.Port = conf.ClientConfig.Port
		}
		opt.Auth = conf.ClientConfig.Auth
	}
	if conf.PoolConfig != nil {
		opt.MaxConnections = conf.PoolConfig.MaxConnections
		opt.LeaseTimeout = time.Duration(conf.PoolConfig.LeaseTimeoutMs) * time.Millisecond
	}
	if conf.SocketConfig != nil {
		opt.SocketKeepalive = conf.SocketConfig.Keepalive
		opt.KeepalivePeriod = time.Duration(conf.SocketConfig.KeepalivePeriodMs) * time.Millisecond
		if conf.SocketConfig.RecvChunkSize > 0 {
			opt.RecvChunkSize = conf.SocketConfig.RecvChunkSize
		}
		opt.DialTimeout = time.Duration(conf.SocketConfig.DialTimeoutMs) * time.Millisecond
	}
	return opt
}

func (o *Options) normalize() {
	if o.Host == "" {
		o.Host = DefaultHost
	}
	if o.Port == 0 {
		o.Port = DefaultPort
	}
	if o.RecvChunkSize <= 0 {
		o.RecvChunkSize = DefaultRecvChunkSize
	}
}

func (o *Options) addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}
