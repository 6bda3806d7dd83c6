package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	err := Init("../gossdb.yaml")
	assert.Nil(t, err)
	assert.Equal(t, "gossdb", Conf.Name)
	assert.Equal(t, "localhost", Conf.ClientConfig.Host)
	assert.Equal(t, 7036, Conf.ClientConfig.Port)
	assert.Equal(t, 0, Conf.PoolConfig.MaxConnections)
	assert.Equal(t, 65536, Conf.SocketConfig.RecvChunkSize)
	assert.Equal(t, "log", Conf.LogConfig.Ext)
}
