package models

import (
	"time"

	"github.com/lib/pq"
)

type AdminModel struct {
	ID        string         `gorm:"primaryKey;type:char(64)"`
	Authority string         `gorm:"type:char(64);not null"`
	Signers   pq.StringArray `gorm:"type:text[];not null"`
	Threshold int            `gorm:"not null"`
	Nonce     uint64         `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (AdminModel) TableName() string {
	return "admins"
}

// RateLimitModel хранит метки последних действий по ключу (action:caller)
type RateLimitModel struct {
	Key    string      `gorm:"primaryKey"`
	Events []time.Time `gorm:"type:jsonb;serializer:json;not null"`
}

func (RateLimitModel) TableName() string {
	return "rate_limits"
}
