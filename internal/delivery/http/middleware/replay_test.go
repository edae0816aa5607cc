package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReplayCache_Seen(t *testing.T) {
	c := NewReplayCache(16, time.Minute)

	assert.False(t, c.Seen([]byte("sig-a")))
	assert.True(t, c.Seen([]byte("sig-a")))
	assert.False(t, c.Seen([]byte("sig-b")))
}

func TestReplayCache_ForgetsAfterTTL(t *testing.T) {
	c := NewReplayCache(16, 20*time.Millisecond)

	assert.False(t, c.Seen([]byte("sig")))
	assert.Eventually(t, func() bool {
		return !c.Seen([]byte("sig"))
	}, time.Second, 10*time.Millisecond)
}
