package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/math"
	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/crypto"
	"github.com/socialai-lab/backend/pkg/dateutil"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/simulate"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

type ChallengeDomain interface {
	GetDaily(context.Context, *model.GetDailyChallengeRequest) (*model.GetDailyChallengeResponse, error)
	UpdateProgress(context.Context, *model.UpdateChallengeProgressRequest) (*model.UpdateChallengeProgressResponse, error)
}

type challengeDomain struct {
	challengeRepo      repository.ChallengeRepository
	notificationDomain NotificationDomain
	simulator          *simulate.Simulator
}

func NewChallengeDomain(
	challengeRepo repository.ChallengeRepository,
	notificationDomain NotificationDomain,
	simulator *simulate.Simulator,
) *challengeDomain {
	return &challengeDomain{
		challengeRepo:      challengeRepo,
		notificationDomain: notificationDomain,
		simulator:          simulator,
	}
}

// GetDaily returns the stored challenge while its day key is still today.
// When the day rolls over the stored instance is replaced wholesale with a
// fresh one; progress never carries across days.
func (d *challengeDomain) GetDaily(
	ctx context.Context, req *model.GetDailyChallengeRequest,
) (*model.GetDailyChallengeResponse, error) {
	var challenge entity.DailyChallenge
	err := d.simulator.Do(ctx, func() error {
		return d.challengeRepo.Mutate(ctx,
			func(stored entity.StoredChallenge) (entity.StoredChallenge, error) {
				now := time.Now()
				today := dateutil.DayKey(now)
				if stored.Date != today {
					stored = entity.StoredChallenge{
						Date:      today,
						Challenge: newDailyChallenge(now),
					}
				}

				challenge = stored.Challenge
				return stored, nil
			})
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load daily challenge: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetDailyChallengeResponse{Challenge: challenge}, nil
}

// UpdateProgress advances the active challenge. An id that does not match the
// active instance is a silent no-op. Progress is capped at the target, and
// the completion notification fires exactly once per instance.
func (d *challengeDomain) UpdateProgress(
	ctx context.Context, req *model.UpdateChallengeProgressRequest,
) (*model.UpdateChallengeProgressResponse, error) {
	increment := req.Increment
	if increment == 0 {
		increment = 1
	}

	var matched, justCompleted bool
	var challenge entity.DailyChallenge
	err := d.simulator.Do(ctx, func() error {
		return d.challengeRepo.Mutate(ctx,
			func(stored entity.StoredChallenge) (entity.StoredChallenge, error) {
				if stored.Date == "" || stored.Challenge.ID != req.ID {
					return stored, nil
				}

				matched = true
				c := stored.Challenge
				c.Progress = math.MinInt(c.Progress+increment, c.Target)
				if c.Progress >= c.Target && !c.Completed {
					c.Completed = true
					justCompleted = true
				}

				stored.Challenge = c
				challenge = c
				return stored, nil
			})
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update challenge progress: %v", err)
		return nil, errorx.Unknown
	}

	if !matched {
		return &model.UpdateChallengeProgressResponse{}, nil
	}

	if justCompleted {
		_, err := d.notificationDomain.Send(ctx, &model.SendNotificationRequest{
			Type:    string(entity.NotificationChallengeComplete),
			Title:   "Challenge Complete!",
			Message: fmt.Sprintf("You earned %d points!", challenge.Reward),
			Icon:    "🎉",
			Points:  challenge.Reward,
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot send completion notification: %v", err)
		}
	}

	return &model.UpdateChallengeProgressResponse{Challenge: &challenge}, nil
}

func newDailyChallenge(now time.Time) entity.DailyChallenge {
	challenge := common.ChallengeTemplates[crypto.RandIntn(len(common.ChallengeTemplates))]
	challenge.Progress = 0
	challenge.Completed = false
	challenge.ExpiresIn = dateutil.UntilEndOfDay(now)
	return challenge
}
