package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"gorm.io/gorm"
)

// EventLogRecord - строка журнала событий (таблица event_log)
type EventLogRecord struct {
	ID         string          `gorm:"primaryKey"`
	Type       string          `gorm:"not null"`
	Key        string          `gorm:"type:char(64);not null;index:idx_event_log_key"`
	OccurredAt time.Time       `gorm:"not null;index:idx_event_log_key"`
	Data       json.RawMessage `gorm:"type:jsonb;not null"`
}

func (EventLogRecord) TableName() string {
	return "event_log"
}

func NewEventLogRecord(event domain.Event) (*EventLogRecord, error) {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event data: %w", event.Type, err)
	}
	return &EventLogRecord{
		ID:         event.ID,
		Type:       string(event.Type),
		Key:        event.Key.String(),
		OccurredAt: event.OccurredAt,
		Data:       data,
	}, nil
}

// PGEventLogger сохраняет каждое опубликованное событие в Postgres
type PGEventLogger struct {
	db *gorm.DB
}

func NewPGEventLogger(db *gorm.DB) *PGEventLogger {
	return &PGEventLogger{db: db}
}

func (l *PGEventLogger) Publish(ctx context.Context, event domain.Event) error {
	record, err := NewEventLogRecord(event)
	if err != nil {
		return err
	}
	return l.db.WithContext(ctx).Create(record).Error
}

// SlogEventLogger пишет события в лог приложения
type SlogEventLogger struct {
	logger *slog.Logger
}

func NewSlogEventLogger(logger *slog.Logger) *SlogEventLogger {
	return &SlogEventLogger{logger: logger}
}

func (l *SlogEventLogger) Publish(ctx context.Context, event domain.Event) error {
	l.logger.InfoContext(ctx, "event",
		"id", event.ID,
		"type", string(event.Type),
		"key", event.Key.String(),
		"occurred_at", event.OccurredAt,
		"data", event.Data,
	)
	return nil
}

var (
	_ domain.EventPublisher = (*PGEventLogger)(nil)
	_ domain.EventPublisher = (*SlogEventLogger)(nil)
)
