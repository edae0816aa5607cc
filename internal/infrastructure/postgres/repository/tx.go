package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tx implements domain.Tx over an open gorm transaction.
type Tx struct {
	db   *gorm.DB
	lock bool
}

func (tx *Tx) query() *gorm.DB {
	if tx.lock {
		return tx.db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx.db
}

// take loads the row matching column = value into dest.
func (tx *Tx) take(dest any, kind, column, value string) error {
	err := tx.query().Where(column+" = ?", value).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", kind, value, domain.ErrAccountNotFound)
	}
	if err != nil {
		return fmt.Errorf("load %s %s: %w", kind, value, err)
	}
	return nil
}

// insert creates value and fails with ErrAccountAlreadyExists instead of
// touching an existing row.
func (tx *Tx) insert(value any, kind, id string) error {
	res := tx.db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(value)
	if res.Error != nil {
		return fmt.Errorf("create %s %s: %w", kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrAccountAlreadyExists)
	}
	return nil
}

// errWriteConflict marks an insert that lost a race with a concurrent
// insert of the same row. Store.Atomically reruns the instruction, which
// then reads and locks the committed row.
var errWriteConflict = errors.New("row was created concurrently")

// update rewrites every column of an existing row by primary key and
// reports whether the row was there.
func (tx *Tx) update(value any, kind, id string) (bool, error) {
	res := tx.db.Model(value).Select("*").Omit(clause.Associations).Updates(value)
	if res.Error != nil {
		return false, fmt.Errorf("update %s %s: %w", kind, id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// save updates the row or creates it. It never overwrites a row it did not
// read: a concurrent creation fails with errWriteConflict.
func (tx *Tx) save(value any, kind, id string) error {
	found, err := tx.update(value, kind, id)
	if err != nil || found {
		return err
	}
	res := tx.db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(value)
	if res.Error != nil {
		return fmt.Errorf("create %s %s: %w", kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("save %s %s: %w", kind, id, errWriteConflict)
	}
	return nil
}

func offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
