package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ReplayCache remembers accepted signatures for the signature window so
// the same signed request is served once.
type ReplayCache struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

func NewReplayCache(size int, ttl time.Duration) *ReplayCache {
	return &ReplayCache{seen: expirable.NewLRU[string, struct{}](size, nil, ttl)}
}

// Seen records signature and reports whether it was already recorded.
func (c *ReplayCache) Seen(signature []byte) bool {
	key := string(signature)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.seen.Get(key); ok {
		return true
	}
	c.seen.Add(key, struct{}{})
	return false
}
