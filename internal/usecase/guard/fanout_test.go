package guard

import (
	"context"
	"testing"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiPublisher_ContinuesPastFailure(t *testing.T) {
	first, last := memory.NewEventRecorder(), memory.NewEventRecorder()
	failing := &failingPublisher{}
	pub := MultiPublisher{first, failing, last}

	err := pub.Publish(context.Background(), domain.Event{Type: domain.EventOfferCreated})
	require.EqualError(t, err, "broker down")
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, []domain.EventType{domain.EventOfferCreated}, first.Types())
	assert.Equal(t, []domain.EventType{domain.EventOfferCreated}, last.Types())
}

func TestMultiPublisher_Empty(t *testing.T) {
	assert.NoError(t, MultiPublisher(nil).Publish(context.Background(), domain.Event{}))
}
