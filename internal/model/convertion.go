package model

import (
	"time"

	"github.com/socialai-lab/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

// ConvertSessionUser strips the password from a durable user record and
// merges in the installation's subscription fields.
func ConvertSessionUser(user *entity.User, sub entity.Subscription) entity.SessionUser {
	if user == nil {
		return entity.SessionUser{}
	}

	return entity.SessionUser{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Avatar:             user.Avatar,
		Username:           user.Username,
		Bio:                user.Bio,
		JoinedDate:         user.JoinedDate,
		IsVerified:         user.IsVerified,
		Followers:          user.Followers,
		Following:          user.Following,
		CoverImage:         user.CoverImage,
		SubscriptionTier:   sub.Tier,
		SubscriptionStatus: sub.Status,
	}
}

// ConvertAchievement merges a catalog definition with its unlock state.
func ConvertAchievement(def entity.AchievementDefinition, unlock *entity.AchievementUnlock) Achievement {
	a := Achievement{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
		Points:      def.Points,
	}

	if unlock != nil {
		a.Unlocked = true
		t := unlock.Timestamp
		a.UnlockedAt = &t
	}

	return a
}
