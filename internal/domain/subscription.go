package domain

import (
	"context"
	"time"

	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/enum"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/simulate"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

// billingPeriod is the span between two billing dates.
const billingPeriod = 30 * 24 * time.Hour

type SubscriptionDomain interface {
	Get(context.Context, *model.GetSubscriptionRequest) (*model.GetSubscriptionResponse, error)
	Update(context.Context, *model.UpdateSubscriptionRequest) (*model.UpdateSubscriptionResponse, error)
	Cancel(context.Context, *model.CancelSubscriptionRequest) (*model.CancelSubscriptionResponse, error)
}

type subscriptionDomain struct {
	subscriptionRepo repository.SubscriptionRepository
	simulator        *simulate.Simulator
}

func NewSubscriptionDomain(
	subscriptionRepo repository.SubscriptionRepository,
	simulator *simulate.Simulator,
) *subscriptionDomain {
	return &subscriptionDomain{
		subscriptionRepo: subscriptionRepo,
		simulator:        simulator,
	}
}

func (d *subscriptionDomain) Get(
	ctx context.Context, req *model.GetSubscriptionRequest,
) (*model.GetSubscriptionResponse, error) {
	return &model.GetSubscriptionResponse{
		Subscription: d.subscriptionRepo.Get(ctx),
	}, nil
}

// Update overwrites the subscription unconditionally. There is no legality
// check on tier transitions; downgrades and upgrades look the same.
func (d *subscriptionDomain) Update(
	ctx context.Context, req *model.UpdateSubscriptionRequest,
) (*model.UpdateSubscriptionResponse, error) {
	tier, err := enum.ToEnum[entity.SubscriptionTier](req.Tier)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid tier: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid tier %s", req.Tier)
	}

	var subscription entity.Subscription
	err = d.simulator.Do(ctx, func() error {
		now := time.Now()
		subscription = entity.Subscription{
			Tier:        tier,
			Status:      entity.SubscriptionActive,
			StartDate:   now,
			NextBilling: now.Add(billingPeriod),
			AutoRenew:   true,
		}

		return d.subscriptionRepo.Set(ctx, subscription)
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update subscription: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateSubscriptionResponse{
		Success:      true,
		Subscription: subscription,
	}, nil
}

// Cancel flips the status and freezes the expiry to the billing date the
// subscriber already paid through.
func (d *subscriptionDomain) Cancel(
	ctx context.Context, req *model.CancelSubscriptionRequest,
) (*model.CancelSubscriptionResponse, error) {
	err := d.simulator.Do(ctx, func() error {
		_, err := d.subscriptionRepo.Mutate(ctx, func(sub entity.Subscription) entity.Subscription {
			expiry := sub.NextBilling
			sub.Status = entity.SubscriptionCancelled
			sub.AutoRenew = false
			sub.ExpiryDate = &expiry
			return sub
		})

		return err
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot cancel subscription: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CancelSubscriptionResponse{
		Success: true,
		Message: "Subscription cancelled successfully",
	}, nil
}
