package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

const (
	HeaderSignature = "X-Exchange-Signature"
	HeaderEventType = "X-Exchange-Event"
)

type CallbackPayload struct {
	ID         string           `json:"id"`
	Type       domain.EventType `json:"type"`
	Key        domain.Address   `json:"key"`
	OccurredAt time.Time        `json:"occurred_at"`
	Data       any              `json:"data"`
}

// WebhookPublisher POSTs committed events to a callback URL. When Types is
// non-empty only the listed event types are sent.
type WebhookPublisher struct {
	url    string
	secret []byte
	types  map[domain.EventType]struct{}
	client *http.Client
}

func NewWebhookPublisher(callbackURL, secret string, timeout time.Duration, types []string) (*WebhookPublisher, error) {
	if callbackURL == "" {
		return nil, errors.New("callback url is empty")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	w := &WebhookPublisher{
		url:    callbackURL,
		secret: []byte(secret),
		client: &http.Client{Timeout: timeout},
	}
	if len(types) > 0 {
		w.types = make(map[domain.EventType]struct{}, len(types))
		for _, t := range types {
			w.types[domain.EventType(t)] = struct{}{}
		}
	}
	return w, nil
}

func (w *WebhookPublisher) Publish(ctx context.Context, event domain.Event) error {
	if w.types != nil {
		if _, ok := w.types[event.Type]; !ok {
			return nil
		}
	}
	body, err := json.Marshal(CallbackPayload(event))
	if err != nil {
		return fmt.Errorf("failed to marshal callback: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventType, string(event.Type))
	// HMAC сигнатура тела запроса
	if len(w.secret) > 0 {
		req.Header.Set(HeaderSignature, Sign(w.secret, body))
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("callback request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
	return nil
}

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
