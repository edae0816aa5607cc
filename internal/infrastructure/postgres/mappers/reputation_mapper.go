package mappers

import (
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
)

func ToDomainReputation(model *models.ReputationModel) (*domain.Reputation, error) {
	var p addressParser
	rep := &domain.Reputation{
		ID:               p.parse("id", model.ID),
		User:             p.parse("user_address", model.UserAddress),
		SuccessfulTrades: model.SuccessfulTrades,
		DisputedTrades:   model.DisputedTrades,
		DisputesWon:      model.DisputesWon,
		DisputesLost:     model.DisputesLost,
		JurorVotes:       model.JurorVotes,
		Rating:           model.Rating,
		LastUpdated:      model.LastUpdated,
	}
	return rep, p.err
}

func ToGORMReputation(rep *domain.Reputation) *models.ReputationModel {
	return &models.ReputationModel{
		ID:               rep.ID.String(),
		UserAddress:      rep.User.String(),
		SuccessfulTrades: rep.SuccessfulTrades,
		DisputedTrades:   rep.DisputedTrades,
		DisputesWon:      rep.DisputesWon,
		DisputesLost:     rep.DisputesLost,
		JurorVotes:       rep.JurorVotes,
		Rating:           rep.Rating,
		LastUpdated:      rep.LastUpdated,
	}
}

func ToDomainRewardToken(model *models.RewardTokenModel) (*domain.RewardToken, error) {
	var p addressParser
	token := &domain.RewardToken{
		ID:               p.parse("id", model.ID),
		Authority:        p.parse("authority", model.Authority),
		RatePerTrade:     model.RatePerTrade,
		RatePerVote:      model.RatePerVote,
		MinTradeVolume:   model.MinTradeVolume,
		MaxSupply:        model.MaxSupply,
		TotalSupply:      model.TotalSupply,
		TotalOutstanding: model.TotalOutstanding,
		CreatedAt:        model.CreatedAt,
		LastUpdated:      model.LastUpdated,
	}
	return token, p.err
}

func ToGORMRewardToken(token *domain.RewardToken) *models.RewardTokenModel {
	return &models.RewardTokenModel{
		ID:               token.ID.String(),
		Authority:        token.Authority.String(),
		RatePerTrade:     token.RatePerTrade,
		RatePerVote:      token.RatePerVote,
		MinTradeVolume:   token.MinTradeVolume,
		MaxSupply:        token.MaxSupply,
		TotalSupply:      token.TotalSupply,
		TotalOutstanding: token.TotalOutstanding,
		CreatedAt:        token.CreatedAt,
		LastUpdated:      token.LastUpdated,
	}
}

func ToDomainUserRewards(model *models.UserRewardsModel) (*domain.UserRewards, error) {
	var p addressParser
	rewards := &domain.UserRewards{
		ID:               p.parse("id", model.ID),
		User:             p.parse("user_address", model.UserAddress),
		TotalEarned:      model.TotalEarned,
		TotalClaimed:     model.TotalClaimed,
		UnclaimedBalance: model.UnclaimedBalance,
		TradingVolume:    model.TradingVolume,
		GovernanceVotes:  model.GovernanceVotes,
		LastTradeReward:  model.LastTradeReward,
		LastVoteReward:   model.LastVoteReward,
	}
	return rewards, p.err
}

func ToGORMUserRewards(rewards *domain.UserRewards) *models.UserRewardsModel {
	return &models.UserRewardsModel{
		ID:               rewards.ID.String(),
		UserAddress:      rewards.User.String(),
		TotalEarned:      rewards.TotalEarned,
		TotalClaimed:     rewards.TotalClaimed,
		UnclaimedBalance: rewards.UnclaimedBalance,
		TradingVolume:    rewards.TradingVolume,
		GovernanceVotes:  rewards.GovernanceVotes,
		LastTradeReward:  rewards.LastTradeReward,
		LastVoteReward:   rewards.LastVoteReward,
	}
}
