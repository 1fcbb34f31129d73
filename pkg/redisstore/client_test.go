package redisstore

import (
	"testing"

	"github.com/Eursukkul/partywknd/config"
	"github.com/stretchr/testify/assert"
)

func TestNewClient_EmptyAddrDisables(t *testing.T) {
	assert.Nil(t, NewClient(config.RedisConfig{}))
}

func TestNewClient_UnreachableDisables(t *testing.T) {
	// port 1 is reserved and refuses connections
	assert.Nil(t, NewClient(config.RedisConfig{Addr: "127.0.0.1:1"}))
}
