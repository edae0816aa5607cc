package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
)

func (tx *Tx) GetAdmin() (*domain.Admin, error) {
	var model models.AdminModel
	if err := tx.take(&model, "admin", "id", domain.AdminAddress().String()); err != nil {
		return nil, err
	}
	return mappers.ToDomainAdmin(&model)
}

func (tx *Tx) CreateAdmin(admin *domain.Admin) error {
	return tx.insert(mappers.ToGORMAdmin(admin), "admin", admin.ID.String())
}

func (tx *Tx) SaveAdmin(admin *domain.Admin) error {
	return tx.save(mappers.ToGORMAdmin(admin), "admin", admin.ID.String())
}

// GetRateLimit creates an empty window row before locking it, so two first
// actions of one caller still serialize.
func (tx *Tx) GetRateLimit(key string) (*domain.RateLimit, error) {
	if tx.lock {
		err := tx.db.Exec(`INSERT INTO rate_limits (key, events) VALUES (?, '[]') ON CONFLICT DO NOTHING`, key).Error
		if err != nil {
			return nil, fmt.Errorf("open rate limit %s: %w", key, err)
		}
	}
	var model models.RateLimitModel
	err := tx.take(&model, "rate limit", "key", key)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return &domain.RateLimit{Key: key}, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainRateLimit(&model), nil
}

func (tx *Tx) SaveRateLimit(limit *domain.RateLimit) error {
	found, err := tx.update(mappers.ToGORMRateLimit(limit), "rate limit", limit.Key)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("rate limit %s: row not locked", limit.Key)
	}
	return nil
}
