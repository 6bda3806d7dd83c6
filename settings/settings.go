package settings

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppConfig 客户端配置
type AppConfig struct {
	Name           string `mapstructure:"name"`
	Mode           string `mapstructure:"mode"`
	Version        string `mapstructure:"version"`
	*ClientConfig  `mapstructure:"client"`
	*PoolConfig    `mapstructure:"pool"`
	*SocketConfig  `mapstructure:"socket"`
	*LogConfig     `mapstructure:"log"`
}

// ClientConfig 服务端地址与认证
type ClientConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Auth string `mapstructure:"auth"` // 为空表示不认证
}

// PoolConfig 连接池配置项
type PoolConfig struct {
	// MaxConnections 连接数上限，0 表示不限制
	MaxConnections int `mapstructure:"maxConnections"`
	// LeaseTimeoutMs 池耗尽时租借等待的毫秒数，0 表示一直等待
	LeaseTimeoutMs int `mapstructure:"leaseTimeoutMs"`
}

// SocketConfig 套接字配置项
type SocketConfig struct {
	Keepalive         bool `mapstructure:"keepalive"`
	KeepalivePeriodMs int  `mapstructure:"keepalivePeriodMs"`
	RecvChunkSize     int  `mapstructure:"recvChunkSize"` // 单次读取的最大字节数
	DialTimeoutMs     int  `mapstructure:"dialTimeoutMs"`
}

// LogConfig stores config for logger
type LogConfig struct {
	Path       string `mapstructure:"path"`
	Name       string `mapstructure:"name"`
	Ext        string `mapstructure:"ext"`
	TimeFormat string `mapstructure:"timeFormat"`
}

var Conf = new(AppConfig)

func Init(filepath string) (err error) {
	viper.SetConfigFile(filepath)
	err = viper.ReadInConfig()
	if err != nil {
		fmt.Printf("Fatal viper.ReadInConfig() failed, err: %s \n", err)
		return
	}

	if err = viper.Unmarshal(Conf); err != nil {
		fmt.Printf("viper.Unmarshal failed, err:%v\n", err)
		return
	}

	// 监控配置文件变化
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("config file changed, reloading...")
		if err := viper.Unmarshal(Conf); err != nil {
			fmt.Printf("viper.Unmarshal failed, err:%v\n", err)
		}
	})
	return
}
