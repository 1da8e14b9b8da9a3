package repository

import (
	"context"
	"time"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
)

type SubscriptionRepository interface {
	Get(ctx context.Context) entity.Subscription
	Set(ctx context.Context, sub entity.Subscription) error
	Mutate(ctx context.Context, fn func(entity.Subscription) entity.Subscription) (entity.Subscription, error)
}

type subscriptionRepository struct{}

func NewSubscriptionRepository() *subscriptionRepository {
	return &subscriptionRepository{}
}

func defaultSubscription() entity.Subscription {
	return entity.Subscription{
		Tier:      entity.TierFree,
		Status:    entity.SubscriptionActive,
		StartDate: time.Now(),
	}
}

func (r *subscriptionRepository) Get(ctx context.Context) entity.Subscription {
	return getJSON(ctx, common.KeySubscription, defaultSubscription())
}

func (r *subscriptionRepository) Set(ctx context.Context, sub entity.Subscription) error {
	return setJSON(ctx, common.KeySubscription, sub)
}

func (r *subscriptionRepository) Mutate(
	ctx context.Context, fn func(entity.Subscription) entity.Subscription,
) (entity.Subscription, error) {
	var result entity.Subscription
	err := updateJSON(ctx, common.KeySubscription, defaultSubscription(),
		func(sub entity.Subscription) (entity.Subscription, error) {
			result = fn(sub)
			return result, nil
		})
	if err != nil {
		return entity.Subscription{}, err
	}

	return result, nil
}
