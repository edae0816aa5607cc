package domain

import (
	"context"
	"time"
)

type EventType string

const (
	EventOfferCreated       EventType = "OfferCreated"
	EventOfferListed        EventType = "OfferListed"
	EventOfferAccepted      EventType = "OfferAccepted"
	EventFiatSent           EventType = "FiatSent"
	EventSolReleased        EventType = "SolReleased"
	EventOfferCancelled     EventType = "OfferCancelled"
	EventDisputeOpened      EventType = "DisputeOpened"
	EventJurorsAssigned     EventType = "JurorsAssigned"
	EventEvidenceSubmitted  EventType = "EvidenceSubmitted"
	EventVoteCast           EventType = "VoteCast"
	EventVerdictReached     EventType = "VerdictReached"
	EventVerdictExecuted    EventType = "VerdictExecuted"
	EventReputationUpdated  EventType = "ReputationUpdated"
	EventRewardsEarned      EventType = "RewardsEarned"
	EventRewardsClaimed     EventType = "RewardsClaimed"
	EventAdminUpdated       EventType = "AdminUpdated"
	EventRewardTokenUpdated EventType = "RewardTokenUpdated"
)

// Event is emitted after an instruction commits. Key groups events of one
// offer (or one user for reputation and reward events).
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Key        Address   `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

type OfferEvent struct {
	Offer    Address     `json:"offer"`
	Seller   Address     `json:"seller"`
	Buyer    *Address    `json:"buyer,omitempty"`
	Amount   uint64      `json:"amount"`
	Status   OfferStatus `json:"status"`
	Currency string      `json:"fiat_currency,omitempty"`
}

type OfferCancelledEvent struct {
	Offer        Address `json:"offer"`
	CancelledBy  Address `json:"cancelled_by"`
	SellerRefund uint64  `json:"seller_refund"`
	BuyerRefund  uint64  `json:"buyer_refund"`
}

type SolReleasedEvent struct {
	Offer        Address `json:"offer"`
	Buyer        Address `json:"buyer"`
	Seller       Address `json:"seller"`
	BuyerPayout  uint64  `json:"buyer_payout"`
	SellerRefund uint64  `json:"seller_refund"`
}

type DisputeEvent struct {
	Dispute Address       `json:"dispute"`
	Offer   Address       `json:"offer"`
	Actor   Address       `json:"actor"`
	Status  DisputeStatus `json:"status"`
	Reason  string        `json:"reason,omitempty"`
	Jurors  []Address     `json:"jurors,omitempty"`
	URL     string        `json:"url,omitempty"`
}

type VoteCastEvent struct {
	Dispute        Address    `json:"dispute"`
	Juror          Address    `json:"juror"`
	Choice         VoteChoice `json:"choice"`
	VotesForBuyer  uint32     `json:"votes_for_buyer"`
	VotesForSeller uint32     `json:"votes_for_seller"`
}

type VerdictEvent struct {
	Dispute      Address `json:"dispute"`
	Offer        Address `json:"offer"`
	Verdict      Verdict `json:"verdict"`
	Forced       bool    `json:"forced,omitempty"`
	BuyerPayout  uint64  `json:"buyer_payout"`
	SellerPayout uint64  `json:"seller_payout"`
}

type ReputationUpdatedEvent struct {
	User    Address `json:"user"`
	Outcome Outcome `json:"outcome"`
	Rating  uint16  `json:"rating"`
}

type RewardsEvent struct {
	User   Address `json:"user"`
	Amount uint64  `json:"amount"`
	Reason string  `json:"reason"`
}

type AdminUpdatedEvent struct {
	Authority Address   `json:"authority"`
	Signers   []Address `json:"signers"`
	Threshold int       `json:"threshold"`
	Nonce     uint64    `json:"nonce"`
}

type RewardTokenUpdatedEvent struct {
	RatePerTrade   uint64 `json:"rate_per_trade"`
	RatePerVote    uint64 `json:"rate_per_vote"`
	MinTradeVolume uint64 `json:"min_trade_volume"`
	MaxSupply      uint64 `json:"max_supply"`
}
