package guard

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

const (
	ActionOfferCreate = "offer_create"
	ActionOfferAccept = "offer_accept"
	ActionDisputeOpen = "dispute_open"
)

// Rule allows at most Max actions per caller inside a sliding Window.
type Rule struct {
	Max    int
	Window time.Duration
}

func DefaultRules() map[string]Rule {
	return map[string]Rule{
		ActionOfferCreate: {Max: 5, Window: domain.OfferCreationCooldown},
		ActionOfferAccept: {Max: 3, Window: domain.OfferCreationCooldown},
		ActionDisputeOpen: {Max: 1, Window: domain.DisputeOpeningCooldown},
	}
}

// Limiter keeps its windows in the account store, so a rejected
// instruction never consumes a slot and a committed one always does.
type Limiter struct {
	rules map[string]Rule
}

func NewLimiter(rules map[string]Rule) *Limiter {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Limiter{rules: rules}
}

// Allow records one action of caller at now, or fails with
// ErrTooManyRequests when the window is full. Actions without a rule are
// never limited.
func (l *Limiter) Allow(repo domain.RateLimitRepository, caller domain.Address, action string, now time.Time) error {
	rule, ok := l.rules[action]
	if !ok || rule.Max <= 0 {
		return nil
	}
	key := domain.RateLimitKey(action, caller)
	limit, err := repo.GetRateLimit(key)
	if err != nil {
		return fmt.Errorf("load rate limit %s: %w", key, err)
	}
	recent := limit.Events[:0:0]
	for _, at := range limit.Events {
		if now.Sub(at) < rule.Window {
			recent = append(recent, at)
		}
	}
	if len(recent) >= rule.Max {
		return fmt.Errorf("%s: %d per %s: %w", action, rule.Max, rule.Window, domain.ErrTooManyRequests)
	}
	limit.Key = key
	limit.Events = append(recent, now)
	return repo.SaveRateLimit(limit)
}
