package repository

import (
	"errors"
	"fmt"
	"math"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// balances are stored as bigint; anything above MaxInt64 is an overflow here.
const maxStoredBalance = math.MaxInt64

// balanceRow loads one balance. Inside an instruction the row is created
// first so that FOR UPDATE has a row to lock even for a fresh owner.
func (tx *Tx) balanceRow(asset domain.Asset, owner domain.Address) (*models.LedgerBalanceModel, error) {
	row := models.LedgerBalanceModel{Asset: string(asset), Owner: owner.String()}
	if tx.lock {
		err := tx.db.Exec(`INSERT INTO ledger_balances (asset, owner, amount) VALUES (?, ?, 0) ON CONFLICT DO NOTHING`,
			row.Asset, row.Owner).Error
		if err != nil {
			return nil, fmt.Errorf("open %s balance of %s: %w", asset, owner, err)
		}
	}
	err := tx.query().Where("asset = ? AND owner = ?", row.Asset, row.Owner).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &row, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s balance of %s: %w", asset, owner, err)
	}
	return &row, nil
}

func (tx *Tx) putBalance(row *models.LedgerBalanceModel) error {
	if row.Amount > maxStoredBalance {
		return domain.ErrMathOverflow
	}
	res := tx.db.Model(&models.LedgerBalanceModel{}).
		Where("asset = ? AND owner = ?", row.Asset, row.Owner).
		Update("amount", row.Amount)
	if res.Error != nil {
		return fmt.Errorf("store %s balance of %s: %w", row.Asset, row.Owner, res.Error)
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("store %s balance of %s: row not locked", row.Asset, row.Owner)
	}
	return nil
}

func (tx *Tx) Balance(asset domain.Asset, owner domain.Address) (uint64, error) {
	row, err := tx.balanceRow(asset, owner)
	if err != nil {
		return 0, err
	}
	return row.Amount, nil
}

func (tx *Tx) Transfer(asset domain.Asset, from, to domain.Address, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	// Lock both rows in address order so crossing transfers cannot deadlock.
	first, second := from, to
	if to.String() < from.String() {
		first, second = to, from
	}
	a, err := tx.balanceRow(asset, first)
	if err != nil {
		return err
	}
	b, err := tx.balanceRow(asset, second)
	if err != nil {
		return err
	}
	src, dst := a, b
	if first != from {
		src, dst = b, a
	}

	if src.Amount < amount {
		return fmt.Errorf("%s holds %d %s, need %d: %w", from, src.Amount, asset, amount, domain.ErrInsufficientFunds)
	}
	credited, err := domain.CheckedAdd(dst.Amount, amount)
	if err != nil {
		return err
	}
	src.Amount -= amount
	dst.Amount = credited
	if err := tx.putBalance(src); err != nil {
		return err
	}
	return tx.putBalance(dst)
}

func (tx *Tx) Mint(asset domain.Asset, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	row, err := tx.balanceRow(asset, to)
	if err != nil {
		return err
	}
	if row.Amount, err = domain.CheckedAdd(row.Amount, amount); err != nil {
		return err
	}
	return tx.putBalance(row)
}
