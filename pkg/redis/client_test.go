package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsAddr(t *testing.T) {
	assert.Equal(t, "cache.local:6380", Options{Host: "cache.local", Port: 6380}.Addr())
}

func TestNewClient_Unreachable(t *testing.T) {
	// 포트 1 은 열려 있지 않음
	_, err := NewClient(context.Background(), Options{Host: "127.0.0.1", Port: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to redis at 127.0.0.1:1")
}
