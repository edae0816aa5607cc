package mappers

import (
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
)

func ToDomainAdmin(model *models.AdminModel) (*domain.Admin, error) {
	var p addressParser
	admin := &domain.Admin{
		ID:        p.parse("id", model.ID),
		Authority: p.parse("authority", model.Authority),
		Signers:   p.parseAll("signers", model.Signers),
		Threshold: model.Threshold,
		Nonce:     model.Nonce,
		UpdatedAt: model.UpdatedAt,
	}
	return admin, p.err
}

func ToGORMAdmin(admin *domain.Admin) *models.AdminModel {
	return &models.AdminModel{
		ID:        admin.ID.String(),
		Authority: admin.Authority.String(),
		Signers:   addressStrings(admin.Signers),
		Threshold: admin.Threshold,
		Nonce:     admin.Nonce,
		UpdatedAt: admin.UpdatedAt,
	}
}

func ToDomainRateLimit(model *models.RateLimitModel) *domain.RateLimit {
	return &domain.RateLimit{
		Key:    model.Key,
		Events: model.Events,
	}
}

func ToGORMRateLimit(limit *domain.RateLimit) *models.RateLimitModel {
	events := limit.Events
	if events == nil {
		events = []time.Time{}
	}
	return &models.RateLimitModel{
		Key:    limit.Key,
		Events: events,
	}
}
