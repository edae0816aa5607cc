package models

import (
	"time"

	"github.com/lib/pq"
)

type DisputeModel struct {
	ID               string         `gorm:"primaryKey;type:char(64)"`
	OfferID          string         `gorm:"type:char(64);not null;uniqueIndex"`
	Initiator        string         `gorm:"type:char(64);not null"`
	Respondent       string         `gorm:"type:char(64);not null"`
	Reason           string         `gorm:"not null"`
	Status           string         `gorm:"not null;index"`
	Jurors           pq.StringArray `gorm:"type:text[]"`
	VotesForBuyer    uint32         `gorm:"not null;default:0"`
	VotesForSeller   uint32         `gorm:"not null;default:0"`
	Verdict          string
	Evidence         []EvidenceModel `gorm:"foreignKey:DisputeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	OpenedAt         time.Time       `gorm:"index"`
	EvidenceDeadline time.Time
	VotingDeadline   time.Time
	ResolvedAt       *time.Time
}

func (DisputeModel) TableName() string {
	return "disputes"
}

// EvidenceModel - доказательство стороны спора; записи только добавляются
type EvidenceModel struct {
	DisputeID   string `gorm:"primaryKey;type:char(64)"`
	Position    int    `gorm:"primaryKey"`
	Submitter   string `gorm:"type:char(64);not null"`
	URL         string `gorm:"not null"`
	SubmittedAt time.Time
}

func (EvidenceModel) TableName() string {
	return "dispute_evidence"
}

type VoteModel struct {
	ID        string `gorm:"primaryKey;type:char(64)"`
	DisputeID string `gorm:"type:char(64);not null;uniqueIndex:idx_votes_dispute_juror"`
	Juror     string `gorm:"type:char(64);not null;uniqueIndex:idx_votes_dispute_juror"`
	Choice    string `gorm:"not null"`
	CastAt    time.Time
}

func (VoteModel) TableName() string {
	return "votes"
}
