package admin

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	admindto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/admin"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

type AdminUsecase interface {
	InitializeAdmin(ctx context.Context, input *admindto.InitializeAdminInput) (*domain.Admin, error)
	UpdateAdmin(ctx context.Context, input *admindto.UpdateAdminInput) (*domain.Admin, error)
	GetAdmin(ctx context.Context) (*domain.Admin, error)
}

type DefaultAdminUsecase struct {
	exec *guard.Executor
}

func NewDefaultAdminUsecase(exec *guard.Executor) *DefaultAdminUsecase {
	return &DefaultAdminUsecase{exec: exec}
}

func (uc *DefaultAdminUsecase) GetAdmin(ctx context.Context) (*domain.Admin, error) {
	var admin *domain.Admin
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		found, err := tx.GetAdmin()
		admin = found
		return err
	})
	return admin, err
}
