package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"gorm.io/gorm"
)

// maxAttempts bounds reruns of an instruction that lost a row-creation race.
const maxAttempts = 3

// Store runs every instruction in one database transaction. Rows read
// inside Atomically are locked FOR UPDATE until commit, so two instructions
// touching the same account serialize on the row lock.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for attempt := 1; ; attempt++ {
		err := s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
			return fn(&Tx{db: db, lock: true})
		})
		if !errors.Is(err, errWriteConflict) || attempt == maxAttempts {
			return err
		}
	}
}

func (s *Store) View(ctx context.Context, fn func(tx domain.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		return fn(&Tx{db: db})
	}, &sql.TxOptions{ReadOnly: true})
}

var (
	_ domain.Store = (*Store)(nil)
	_ domain.Tx    = (*Tx)(nil)
)
