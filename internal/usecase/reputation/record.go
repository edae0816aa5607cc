package reputation

import (
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// LoadOrInit returns the user's reputation, creating the initial record
// inside the current instruction when it does not exist yet.
func LoadOrInit(repo domain.ReputationRepository, user domain.Address, now time.Time) (*domain.Reputation, bool, error) {
	rep, err := repo.GetReputation(user)
	if err == nil {
		return rep, false, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, false, err
	}
	return domain.NewReputation(user, now), true, nil
}

// Record applies outcome to user's reputation as part of another
// instruction. An overflow aborts the whole instruction.
func Record(repo domain.ReputationRepository, out *guard.Outbox, user domain.Address, outcome domain.Outcome, now time.Time) (*domain.Reputation, error) {
	if !outcome.Valid() {
		return nil, fmt.Errorf("outcome %q: %w", outcome, domain.ErrInvalidAmount)
	}
	rep, _, err := LoadOrInit(repo, user, now)
	if err != nil {
		return nil, err
	}
	if err := rep.Apply(outcome, now); err != nil {
		return nil, fmt.Errorf("reputation of %s: %w", user, err)
	}
	if err := repo.SaveReputation(rep); err != nil {
		return nil, err
	}
	out.Add(domain.EventReputationUpdated, user, domain.ReputationUpdatedEvent{
		User:    user,
		Outcome: outcome,
		Rating:  rep.Rating,
	})
	return rep, nil
}
