package domain

import (
	"context"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/crypto"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/simulate"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

// moodSampleSize is how many recent posts the analysis looks at.
const moodSampleSize = 5

type MoodDomain interface {
	Analyze(context.Context, *model.AnalyzeMoodRequest) (*model.AnalyzeMoodResponse, error)
}

type moodDomain struct {
	activityRepo repository.ActivityRepository
	simulator    *simulate.Simulator
}

func NewMoodDomain(
	activityRepo repository.ActivityRepository,
	simulator *simulate.Simulator,
) *moodDomain {
	return &moodDomain{
		activityRepo: activityRepo,
		simulator:    simulator,
	}
}

// postPayload is the shape of create_post activity data the sampler reads.
// Fields absent from a payload decode to zero values.
type postPayload struct {
	PostID  string `mapstructure:"post_id"`
	Content string `mapstructure:"content"`
}

// Analyze samples recent create_post activities and returns one of the fixed
// mood descriptors. Detection is decorative; the sample does not influence
// which descriptor is returned.
func (d *moodDomain) Analyze(
	ctx context.Context, req *model.AnalyzeMoodRequest,
) (*model.AnalyzeMoodResponse, error) {
	var result entity.MoodResult
	err := d.simulator.Do(ctx, func() error {
		posts := d.recentPosts(ctx)
		xcontext.Logger(ctx).Debugf("Mood analysis sampled %d recent posts", len(posts))

		detected := common.MoodCatalog[crypto.RandIntn(len(common.MoodCatalog))]
		result = entity.MoodResult{
			Mood:            detected,
			Recommendations: common.MoodRecommendations,
			Timestamp:       time.Now(),
		}

		return nil
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot analyze mood: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AnalyzeMoodResponse{Result: result}, nil
}

func (d *moodDomain) recentPosts(ctx context.Context) []postPayload {
	posts := []postPayload{}
	for _, activity := range d.activityRepo.GetList(ctx) {
		if activity.Action != entity.ActionCreatePost {
			continue
		}

		var payload postPayload
		if err := mapstructure.Decode(activity.Data, &payload); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot decode post payload: %v", err)
			continue
		}

		posts = append(posts, payload)
		if len(posts) == moodSampleSize {
			break
		}
	}

	return posts
}
