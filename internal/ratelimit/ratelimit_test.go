package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowBurst(t *testing.T) {
	krl := New(1, 2)

	assert.True(t, krl.Allow("nytimes"))
	assert.True(t, krl.Allow("nytimes"))
	assert.False(t, krl.Allow("nytimes"), "burst exhausted")
}

func TestKeysAreIndependent(t *testing.T) {
	krl := New(1, 1)

	assert.True(t, krl.Allow("nytimes"))
	assert.False(t, krl.Allow("nytimes"))
	assert.True(t, krl.Allow("googlebooks"), "separate key has its own bucket")
}

func TestWaitRespectsContext(t *testing.T) {
	krl := New(0.001, 1)
	require.True(t, krl.Allow("slow"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := krl.Wait(ctx, "slow")
	assert.Error(t, err)
}

func TestWaitImmediate(t *testing.T) {
	krl := New(100, 5)
	err := krl.Wait(context.Background(), "fast")
	assert.NoError(t, err)
}
