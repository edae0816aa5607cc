package repository

import (
	"fmt"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

func (tx *Tx) GetDispute(id domain.Address) (*domain.Dispute, error) {
	var model models.DisputeModel
	if err := tx.take(&model, "dispute", "id", id.String()); err != nil {
		return nil, err
	}
	if err := tx.db.Where("dispute_id = ?", model.ID).Order("position").Find(&model.Evidence).Error; err != nil {
		return nil, fmt.Errorf("load evidence of %s: %w", model.ID, err)
	}
	return mappers.ToDomainDispute(&model)
}

func (tx *Tx) CreateDispute(dispute *domain.Dispute) error {
	if err := tx.insert(mappers.ToGORMDispute(dispute), "dispute", dispute.ID.String()); err != nil {
		return err
	}
	return tx.appendEvidence(dispute, 0)
}

// SaveDispute updates the dispute row and appends evidence items not yet
// stored. Evidence is never rewritten.
func (tx *Tx) SaveDispute(dispute *domain.Dispute) error {
	if err := tx.save(mappers.ToGORMDispute(dispute), "dispute", dispute.ID.String()); err != nil {
		return err
	}
	var stored int64
	if err := tx.db.Model(&models.EvidenceModel{}).Where("dispute_id = ?", dispute.ID.String()).Count(&stored).Error; err != nil {
		return fmt.Errorf("count evidence of %s: %w", dispute.ID, err)
	}
	return tx.appendEvidence(dispute, int(stored))
}

func (tx *Tx) appendEvidence(dispute *domain.Dispute, from int) error {
	for i := from; i < len(dispute.Evidence); i++ {
		row := mappers.ToGORMEvidence(dispute.ID, i, dispute.Evidence[i])
		if err := tx.db.Create(row).Error; err != nil {
			return fmt.Errorf("store evidence %d of %s: %w", i, dispute.ID, err)
		}
	}
	return nil
}

func (tx *Tx) ListDisputes(filter domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	where := func(db *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
		if filter.Unresolved {
			db = db.Where("status <> ?", string(domain.DisputeResolved))
		}
		if filter.OpenedBefore != nil {
			db = db.Where("opened_at <= ?", *filter.OpenedBefore)
		}
		return db
	}

	var total int64
	if err := tx.db.Model(&models.DisputeModel{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count disputes: %w", err)
	}

	var rows []models.DisputeModel
	query := tx.db.Model(&models.DisputeModel{}).Scopes(where).Order("opened_at DESC").Order("id")
	if filter.Limit > 0 {
		query = query.Offset(offset(filter.Page, filter.Limit)).Limit(filter.Limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list disputes: %w", err)
	}
	if len(rows) == 0 {
		return []*domain.Dispute{}, total, nil
	}

	ids := make([]string, 0, len(rows))
	byID := make(map[string]*models.DisputeModel, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
		byID[rows[i].ID] = &rows[i]
	}
	var evidence []models.EvidenceModel
	if err := tx.db.Where("dispute_id IN ?", ids).Order("dispute_id").Order("position").Find(&evidence).Error; err != nil {
		return nil, 0, fmt.Errorf("load evidence: %w", err)
	}
	for _, e := range evidence {
		if d, ok := byID[e.DisputeID]; ok {
			d.Evidence = append(d.Evidence, e)
		}
	}

	disputes := make([]*domain.Dispute, 0, len(rows))
	for i := range rows {
		d, err := mappers.ToDomainDispute(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		disputes = append(disputes, d)
	}
	return disputes, total, nil
}

func (tx *Tx) GetVote(id domain.Address) (*domain.Vote, error) {
	var model models.VoteModel
	if err := tx.take(&model, "vote", "id", id.String()); err != nil {
		return nil, err
	}
	return mappers.ToDomainVote(&model)
}

func (tx *Tx) CreateVote(vote *domain.Vote) error {
	return tx.insert(mappers.ToGORMVote(vote), "vote", vote.ID.String())
}
