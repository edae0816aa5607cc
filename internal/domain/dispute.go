package domain

import "time"

type DisputeStatus string

const (
	DisputeOpened             DisputeStatus = "OPENED"
	DisputeJurorsAssigned     DisputeStatus = "JURORS_ASSIGNED"
	DisputeEvidenceSubmission DisputeStatus = "EVIDENCE_SUBMISSION"
	DisputeVoting             DisputeStatus = "VOTING"
	DisputeVerdictReached     DisputeStatus = "VERDICT_REACHED"
	DisputeResolved           DisputeStatus = "RESOLVED"
)

type Verdict string

const (
	VerdictNone        Verdict = ""
	VerdictFavorBuyer  Verdict = "FAVOR_BUYER"
	VerdictFavorSeller Verdict = "FAVOR_SELLER"
	// VerdictRefund returns every deposit to its depositor.
	VerdictRefund Verdict = "REFUND"
)

type Evidence struct {
	Submitter   Address
	URL         string
	SubmittedAt time.Time
}

type Dispute struct {
	ID               Address
	Offer            Address
	Initiator        Address
	Respondent       Address
	Reason           string
	Status           DisputeStatus
	Evidence         []Evidence
	Jurors           []Address
	VotesForBuyer    uint32
	VotesForSeller   uint32
	Verdict          Verdict
	OpenedAt         time.Time
	EvidenceDeadline time.Time
	VotingDeadline   time.Time
	ResolvedAt       *time.Time
}

func (d *Dispute) IsJuror(a Address) bool {
	for _, j := range d.Jurors {
		if j == a {
			return true
		}
	}
	return false
}

func (d *Dispute) IsParty(a Address) bool {
	return d.Initiator == a || d.Respondent == a
}

func (d *Dispute) VotesCast() uint32 {
	return d.VotesForBuyer + d.VotesForSeller
}

// ForceDeadline is the moment after which anyone may resolve the dispute
// with the default rule.
func (d *Dispute) ForceDeadline() time.Time {
	return d.OpenedAt.Add(TotalDisputeDeadline)
}

func (d *Dispute) Clone() *Dispute {
	c := *d
	c.Evidence = append([]Evidence(nil), d.Evidence...)
	c.Jurors = append([]Address(nil), d.Jurors...)
	if d.ResolvedAt != nil {
		t := *d.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}

type DisputeFilter struct {
	Status *DisputeStatus
	// Unresolved skips disputes already in DisputeResolved.
	Unresolved bool
	// OpenedBefore keeps disputes opened at or before this moment.
	OpenedBefore *time.Time
	Page         int
	Limit        int
}

type VoteChoice string

const (
	VoteFavorBuyer  VoteChoice = "FAVOR_BUYER"
	VoteFavorSeller VoteChoice = "FAVOR_SELLER"
)

func (c VoteChoice) Valid() bool {
	return c == VoteFavorBuyer || c == VoteFavorSeller
}

// Vote is written once per (dispute, juror) and never changed.
type Vote struct {
	ID      Address
	Dispute Address
	Juror   Address
	Choice  VoteChoice
	CastAt  time.Time
}
