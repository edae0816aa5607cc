package repository

import (
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
)

func (tx *Tx) GetReputation(user domain.Address) (*domain.Reputation, error) {
	var model models.ReputationModel
	if err := tx.take(&model, "reputation", "id", domain.ReputationAddress(user).String()); err != nil {
		return nil, err
	}
	return mappers.ToDomainReputation(&model)
}

func (tx *Tx) SaveReputation(rep *domain.Reputation) error {
	return tx.save(mappers.ToGORMReputation(rep), "reputation", rep.ID.String())
}

func (tx *Tx) GetRewardToken() (*domain.RewardToken, error) {
	var model models.RewardTokenModel
	if err := tx.take(&model, "reward token", "id", domain.RewardTokenAddress().String()); err != nil {
		return nil, err
	}
	return mappers.ToDomainRewardToken(&model)
}

func (tx *Tx) CreateRewardToken(token *domain.RewardToken) error {
	return tx.insert(mappers.ToGORMRewardToken(token), "reward token", token.ID.String())
}

func (tx *Tx) SaveRewardToken(token *domain.RewardToken) error {
	return tx.save(mappers.ToGORMRewardToken(token), "reward token", token.ID.String())
}

func (tx *Tx) GetUserRewards(user domain.Address) (*domain.UserRewards, error) {
	var model models.UserRewardsModel
	if err := tx.take(&model, "user rewards", "id", domain.UserRewardsAddress(user).String()); err != nil {
		return nil, err
	}
	return mappers.ToDomainUserRewards(&model)
}

func (tx *Tx) SaveUserRewards(rewards *domain.UserRewards) error {
	return tx.save(mappers.ToGORMUserRewards(rewards), "user rewards", rewards.ID.String())
}
