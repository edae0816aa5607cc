package guard

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

// MultiPublisher hands every event to each publisher in order. One failing
// publisher does not stop the others.
type MultiPublisher []domain.EventPublisher

func (m MultiPublisher) Publish(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
