package response

import (
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/pagination"
)

type ErrorResponse struct {
	Code  uint32 `json:"code"`
	Error string `json:"error"`
}

type PaginationResponse struct {
	CurrentPage  int32 `json:"current_page"`
	TotalPages   int32 `json:"total_pages"`
	TotalItems   int32 `json:"total_items"`
	ItemsPerPage int32 `json:"items_per_page"`
}

func NewPagination(p pagination.Pagination) PaginationResponse {
	return PaginationResponse{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
	}
}

type OfferResponse struct {
	ID                 domain.Address     `json:"id"`
	Seller             domain.Address     `json:"seller"`
	Buyer              *domain.Address    `json:"buyer,omitempty"`
	Amount             uint64             `json:"amount"`
	FiatAmount         uint64             `json:"fiat_amount"`
	FiatCurrency       string             `json:"fiat_currency"`
	PaymentMethod      string             `json:"payment_method"`
	UnitPrice          string             `json:"unit_price"`
	Status             domain.OfferStatus `json:"status"`
	SecurityBondBuyer  uint64             `json:"security_bond_buyer"`
	SecurityBondSeller uint64             `json:"security_bond_seller"`
	DisputeID          *domain.Address    `json:"dispute_id,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func NewOffer(o *domain.Offer) OfferResponse {
	return OfferResponse{
		ID:                 o.ID,
		Seller:             o.Seller,
		Buyer:              o.Buyer,
		Amount:             o.Amount,
		FiatAmount:         o.FiatAmount,
		FiatCurrency:       o.FiatCurrency,
		PaymentMethod:      o.PaymentMethod,
		UnitPrice:          o.UnitPrice().String(),
		Status:             o.Status,
		SecurityBondBuyer:  o.SecurityBondBuyer,
		SecurityBondSeller: o.SecurityBondSeller,
		DisputeID:          o.DisputeID,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

type ListOffersResponse struct {
	Offers     []OfferResponse    `json:"offers"`
	Pagination PaginationResponse `json:"pagination"`
}

type EscrowResponse struct {
	ID        domain.Address `json:"id"`
	Offer     domain.Address `json:"offer"`
	Balance   uint64         `json:"balance"`
	CreatedAt time.Time      `json:"created_at"`
	ClosedAt  *time.Time     `json:"closed_at,omitempty"`
}

type EvidenceResponse struct {
	Submitter   domain.Address `json:"submitter"`
	URL         string         `json:"url"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

type DisputeResponse struct {
	ID               domain.Address       `json:"id"`
	Offer            domain.Address       `json:"offer"`
	Initiator        domain.Address       `json:"initiator"`
	Respondent       domain.Address       `json:"respondent"`
	Reason           string               `json:"reason"`
	Status           domain.DisputeStatus `json:"status"`
	Evidence         []EvidenceResponse   `json:"evidence"`
	Jurors           []domain.Address     `json:"jurors"`
	VotesForBuyer    uint32               `json:"votes_for_buyer"`
	VotesForSeller   uint32               `json:"votes_for_seller"`
	Verdict          domain.Verdict       `json:"verdict,omitempty"`
	OpenedAt         time.Time            `json:"opened_at"`
	EvidenceDeadline time.Time            `json:"evidence_deadline"`
	VotingDeadline   time.Time            `json:"voting_deadline"`
	ResolvedAt       *time.Time           `json:"resolved_at,omitempty"`
}

func NewDispute(d *domain.Dispute) DisputeResponse {
	evidence := make([]EvidenceResponse, 0, len(d.Evidence))
	for _, e := range d.Evidence {
		evidence = append(evidence, EvidenceResponse(e))
	}
	jurors := d.Jurors
	if jurors == nil {
		jurors = []domain.Address{}
	}
	return DisputeResponse{
		ID:               d.ID,
		Offer:            d.Offer,
		Initiator:        d.Initiator,
		Respondent:       d.Respondent,
		Reason:           d.Reason,
		Status:           d.Status,
		Evidence:         evidence,
		Jurors:           jurors,
		VotesForBuyer:    d.VotesForBuyer,
		VotesForSeller:   d.VotesForSeller,
		Verdict:          d.Verdict,
		OpenedAt:         d.OpenedAt,
		EvidenceDeadline: d.EvidenceDeadline,
		VotingDeadline:   d.VotingDeadline,
		ResolvedAt:       d.ResolvedAt,
	}
}

type ListDisputesResponse struct {
	Disputes   []DisputeResponse  `json:"disputes"`
	Pagination PaginationResponse `json:"pagination"`
}

type VoteResponse struct {
	ID      domain.Address    `json:"id"`
	Dispute domain.Address    `json:"dispute"`
	Juror   domain.Address    `json:"juror"`
	Choice  domain.VoteChoice `json:"choice"`
	CastAt  time.Time         `json:"cast_at"`
}

type ExecuteVerdictResponse struct {
	Dispute      DisputeResponse `json:"dispute"`
	Offer        OfferResponse   `json:"offer"`
	Forced       bool            `json:"forced"`
	BuyerPayout  uint64          `json:"buyer_payout"`
	SellerPayout uint64          `json:"seller_payout"`
}

type ReputationResponse struct {
	User             domain.Address `json:"user"`
	SuccessfulTrades uint32         `json:"successful_trades"`
	DisputedTrades   uint32         `json:"disputed_trades"`
	DisputesWon      uint32         `json:"disputes_won"`
	DisputesLost     uint32         `json:"disputes_lost"`
	JurorVotes       uint32         `json:"juror_votes"`
	Rating           uint16         `json:"rating"`
	LastUpdated      time.Time      `json:"last_updated"`
}

func NewReputation(r *domain.Reputation) ReputationResponse {
	return ReputationResponse{
		User:             r.User,
		SuccessfulTrades: r.SuccessfulTrades,
		DisputedTrades:   r.DisputedTrades,
		DisputesWon:      r.DisputesWon,
		DisputesLost:     r.DisputesLost,
		JurorVotes:       r.JurorVotes,
		Rating:           r.Rating,
		LastUpdated:      r.LastUpdated,
	}
}

type RewardTokenResponse struct {
	Authority        domain.Address `json:"authority"`
	RatePerTrade     uint64         `json:"rate_per_trade"`
	RatePerVote      uint64         `json:"rate_per_vote"`
	MinTradeVolume   uint64         `json:"min_trade_volume"`
	MaxSupply        uint64         `json:"max_supply"`
	TotalSupply      uint64         `json:"total_supply"`
	TotalOutstanding uint64         `json:"total_outstanding"`
	CreatedAt        time.Time      `json:"created_at"`
	LastUpdated      time.Time      `json:"last_updated"`
}

func NewRewardToken(t *domain.RewardToken) RewardTokenResponse {
	return RewardTokenResponse{
		Authority:        t.Authority,
		RatePerTrade:     t.RatePerTrade,
		RatePerVote:      t.RatePerVote,
		MinTradeVolume:   t.MinTradeVolume,
		MaxSupply:        t.MaxSupply,
		TotalSupply:      t.TotalSupply,
		TotalOutstanding: t.TotalOutstanding,
		CreatedAt:        t.CreatedAt,
		LastUpdated:      t.LastUpdated,
	}
}

type UserRewardsResponse struct {
	User             domain.Address `json:"user"`
	TotalEarned      uint64         `json:"total_earned"`
	TotalClaimed     uint64         `json:"total_claimed"`
	UnclaimedBalance uint64         `json:"unclaimed_balance"`
	TradingVolume    uint64         `json:"trading_volume"`
	GovernanceVotes  uint64         `json:"governance_votes"`
}

func NewUserRewards(u *domain.UserRewards) UserRewardsResponse {
	return UserRewardsResponse{
		User:             u.User,
		TotalEarned:      u.TotalEarned,
		TotalClaimed:     u.TotalClaimed,
		UnclaimedBalance: u.UnclaimedBalance,
		TradingVolume:    u.TradingVolume,
		GovernanceVotes:  u.GovernanceVotes,
	}
}

type ClaimRewardsResponse struct {
	Rewards UserRewardsResponse `json:"rewards"`
	Claimed uint64              `json:"claimed"`
	Balance uint64              `json:"balance"`
}

type AdminResponse struct {
	Authority domain.Address   `json:"authority"`
	Signers   []domain.Address `json:"signers"`
	Threshold int              `json:"threshold"`
	Nonce     uint64           `json:"nonce"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func NewAdmin(a *domain.Admin) AdminResponse {
	return AdminResponse{
		Authority: a.Authority,
		Signers:   a.Signers,
		Threshold: a.Threshold,
		Nonce:     a.Nonce,
		UpdatedAt: a.UpdatedAt,
	}
}

type BalanceResponse struct {
	Owner   domain.Address `json:"owner"`
	Asset   domain.Asset   `json:"asset"`
	Balance uint64         `json:"balance"`
}
