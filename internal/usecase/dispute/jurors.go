package dispute

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// AssignJurors seats exactly three distinct jurors, none of them a party.
func (uc *DefaultDisputeUsecase) AssignJurors(ctx context.Context, input *disputedto.AssignJurorsInput) (*domain.Dispute, error) {
	var dispute *domain.Dispute
	err := uc.exec.Execute(ctx, "assign_jurors", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		if _, err := guard.RequireAdmin(tx, input.Admin); err != nil {
			return err
		}
		d, err := tx.GetDispute(input.Dispute)
		if err != nil {
			return err
		}
		if d.Status != domain.DisputeOpened {
			return fmt.Errorf("assign jurors in %s: %w", d.Status, domain.ErrInvalidDisputeStatus)
		}
		if len(input.Jurors) != domain.JurorsPerDispute {
			return fmt.Errorf("want %d jurors, got %d: %w", domain.JurorsPerDispute, len(input.Jurors), domain.ErrInvalidAmount)
		}
		seen := make(map[domain.Address]struct{}, len(input.Jurors))
		for _, j := range input.Jurors {
			if j.IsZero() || d.IsParty(j) {
				return fmt.Errorf("juror %s: %w", j, domain.ErrUnauthorized)
			}
			if _, dup := seen[j]; dup {
				return fmt.Errorf("juror %s listed twice: %w", j, domain.ErrInvalidAmount)
			}
			seen[j] = struct{}{}
		}
		d.Jurors = append([]domain.Address(nil), input.Jurors...)
		d.Status = domain.DisputeJurorsAssigned
		if err := tx.SaveDispute(d); err != nil {
			return err
		}
		out.Add(domain.EventJurorsAssigned, d.Offer, domain.DisputeEvent{
			Dispute: d.ID,
			Offer:   d.Offer,
			Actor:   input.Admin,
			Status:  d.Status,
			Jurors:  d.Jurors,
		})
		dispute = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dispute, nil
}
