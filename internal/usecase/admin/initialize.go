package admin

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	admindto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/admin"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// InitializeAdmin creates the admin singleton with the caller as authority.
// Without explicit signers the caller is the only signer.
func (uc *DefaultAdminUsecase) InitializeAdmin(ctx context.Context, input *admindto.InitializeAdminInput) (*domain.Admin, error) {
	signers, threshold := input.Signers, input.Threshold
	if len(signers) == 0 {
		signers, threshold = []domain.Address{input.Caller}, 1
	}

	var admin *domain.Admin
	err := uc.exec.Execute(ctx, "initialize_admin", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		if err := domain.ValidateSignerSet(input.Caller, signers, threshold); err != nil {
			return err
		}
		admin = &domain.Admin{
			ID:        domain.AdminAddress(),
			Authority: input.Caller,
			Signers:   append([]domain.Address(nil), signers...),
			Threshold: threshold,
			UpdatedAt: now,
		}
		if err := tx.CreateAdmin(admin); err != nil {
			return err
		}
		out.Add(domain.EventAdminUpdated, admin.ID, domain.AdminUpdatedEvent{
			Authority: admin.Authority,
			Signers:   admin.Signers,
			Threshold: admin.Threshold,
			Nonce:     admin.Nonce,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.exec.Logger.Info("admin initialized",
		"authority", admin.Authority.String(),
		"signers", len(admin.Signers),
		"threshold", admin.Threshold,
	)
	return admin, nil
}
