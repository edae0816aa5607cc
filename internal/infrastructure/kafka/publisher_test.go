package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventMessage(t *testing.T) {
	var key domain.Address
	key[31] = 7
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	event := domain.Event{
		ID:         "evt-1",
		Type:       domain.EventOfferAccepted,
		Key:        key,
		OccurredAt: at,
		Data:       domain.OfferEvent{Offer: key, Amount: 42, Status: domain.StatusAccepted},
	}

	msg, err := NewEventMessage(event)
	require.NoError(t, err)
	assert.Equal(t, key.String(), string(msg.Key))
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "OfferAccepted", string(msg.Headers[0].Value))
	assert.Equal(t, "evt-1", string(msg.Headers[1].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "OfferAccepted", body["type"])
	assert.Equal(t, key.String(), body["key"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(42), data["amount"])
	assert.Equal(t, "ACCEPTED", data["status"])
}

func TestNewEventMessage_UnencodableData(t *testing.T) {
	_, err := NewEventMessage(domain.Event{Type: domain.EventVoteCast, Data: make(chan int)})
	assert.Error(t, err)
}

func TestNewKafkaPublisher_Config(t *testing.T) {
	_, err := NewKafkaPublisher(KafkaConfig{Topic: "t"})
	assert.Error(t, err)

	_, err = NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:9092"}, Username: "u", Mechanism: "GSSAPI"})
	assert.Error(t, err)

	for _, mech := range []string{"", "plain", "SCRAM-SHA-256", "SCRAM-SHA-512"} {
		p, err := NewKafkaPublisher(KafkaConfig{
			Brokers:    []string{"localhost:9092"},
			Topic:      "exchange-events",
			Username:   "u",
			Password:   "p",
			Mechanism:  mech,
			TLSEnabled: true,
		})
		require.NoError(t, err, mech)
		assert.NoError(t, p.Close())
	}
}
