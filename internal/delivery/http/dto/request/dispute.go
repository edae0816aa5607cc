package request

import "github.com/LavaJover/shvark-p2p-exchange/internal/domain"

type OpenDisputeRequest struct {
	Reason string `json:"reason"`
}

type AssignJurorsRequest struct {
	Jurors []domain.Address `json:"jurors"`
}

type SubmitEvidenceRequest struct {
	URL string `json:"url"`
}

type CastVoteRequest struct {
	Choice domain.VoteChoice `json:"choice"`
}
