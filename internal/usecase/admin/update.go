package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	admindto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/admin"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// UpdateAdmin replaces authority and signer set once Threshold distinct
// current signers approved the change for the current nonce.
func (uc *DefaultAdminUsecase) UpdateAdmin(ctx context.Context, input *admindto.UpdateAdminInput) (*domain.Admin, error) {
	var admin *domain.Admin
	err := uc.exec.Execute(ctx, "update_admin", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		current, err := tx.GetAdmin()
		if errors.Is(err, domain.ErrAccountNotFound) {
			return fmt.Errorf("admin not initialized: %w", domain.ErrAdminRequired)
		}
		if err != nil {
			return err
		}
		if input.Nonce != current.Nonce {
			return fmt.Errorf("stale approval nonce %d, current %d: %w", input.Nonce, current.Nonce, domain.ErrUnauthorized)
		}
		if !current.HasQuorum(input.Approvers) {
			return fmt.Errorf("%d of %d signers required: %w", current.Threshold, len(current.Signers), domain.ErrUnauthorized)
		}
		if err := domain.ValidateSignerSet(input.NewAuthority, input.NewSigners, input.NewThreshold); err != nil {
			return err
		}
		current.Authority = input.NewAuthority
		current.Signers = append([]domain.Address(nil), input.NewSigners...)
		current.Threshold = input.NewThreshold
		current.Nonce++
		current.UpdatedAt = now
		if err := tx.SaveAdmin(current); err != nil {
			return err
		}
		admin = current
		out.Add(domain.EventAdminUpdated, current.ID, domain.AdminUpdatedEvent{
			Authority: current.Authority,
			Signers:   current.Signers,
			Threshold: current.Threshold,
			Nonce:     current.Nonce,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.exec.Logger.Info("admin updated",
		"authority", admin.Authority.String(),
		"threshold", admin.Threshold,
		"nonce", admin.Nonce,
	)
	return admin, nil
}
