package mappers

import (
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
)

// ToDomainDispute expects model.Evidence ordered by position.
func ToDomainDispute(model *models.DisputeModel) (*domain.Dispute, error) {
	var p addressParser
	dispute := &domain.Dispute{
		ID:               p.parse("id", model.ID),
		Offer:            p.parse("offer_id", model.OfferID),
		Initiator:        p.parse("initiator", model.Initiator),
		Respondent:       p.parse("respondent", model.Respondent),
		Reason:           model.Reason,
		Status:           domain.DisputeStatus(model.Status),
		Jurors:           p.parseAll("jurors", model.Jurors),
		VotesForBuyer:    model.VotesForBuyer,
		VotesForSeller:   model.VotesForSeller,
		Verdict:          domain.Verdict(model.Verdict),
		OpenedAt:         model.OpenedAt,
		EvidenceDeadline: model.EvidenceDeadline,
		VotingDeadline:   model.VotingDeadline,
		ResolvedAt:       model.ResolvedAt,
	}
	for _, e := range model.Evidence {
		dispute.Evidence = append(dispute.Evidence, domain.Evidence{
			Submitter:   p.parse("submitter", e.Submitter),
			URL:         e.URL,
			SubmittedAt: e.SubmittedAt,
		})
	}
	return dispute, p.err
}

// ToGORMDispute leaves Evidence empty; evidence rows are written separately.
func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:               dispute.ID.String(),
		OfferID:          dispute.Offer.String(),
		Initiator:        dispute.Initiator.String(),
		Respondent:       dispute.Respondent.String(),
		Reason:           dispute.Reason,
		Status:           string(dispute.Status),
		Jurors:           addressStrings(dispute.Jurors),
		VotesForBuyer:    dispute.VotesForBuyer,
		VotesForSeller:   dispute.VotesForSeller,
		Verdict:          string(dispute.Verdict),
		OpenedAt:         dispute.OpenedAt,
		EvidenceDeadline: dispute.EvidenceDeadline,
		VotingDeadline:   dispute.VotingDeadline,
		ResolvedAt:       dispute.ResolvedAt,
	}
}

func ToGORMEvidence(disputeID domain.Address, position int, e domain.Evidence) *models.EvidenceModel {
	return &models.EvidenceModel{
		DisputeID:   disputeID.String(),
		Position:    position,
		Submitter:   e.Submitter.String(),
		URL:         e.URL,
		SubmittedAt: e.SubmittedAt,
	}
}

func ToDomainVote(model *models.VoteModel) (*domain.Vote, error) {
	var p addressParser
	vote := &domain.Vote{
		ID:      p.parse("id", model.ID),
		Dispute: p.parse("dispute_id", model.DisputeID),
		Juror:   p.parse("juror", model.Juror),
		Choice:  domain.VoteChoice(model.Choice),
		CastAt:  model.CastAt,
	}
	return vote, p.err
}

func ToGORMVote(vote *domain.Vote) *models.VoteModel {
	return &models.VoteModel{
		ID:        vote.ID.String(),
		DisputeID: vote.Dispute.String(),
		Juror:     vote.Juror.String(),
		Choice:    string(vote.Choice),
		CastAt:    vote.CastAt,
	}
}
