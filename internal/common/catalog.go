package common

import "github.com/socialai-lab/backend/internal/entity"

// AchievementCatalog is the static achievement catalog. Unlock records
// reference these ids.
var AchievementCatalog = []entity.AchievementDefinition{
	{ID: "first_post", Name: "First Step", Description: "Create your first post", Icon: "✨", Points: 10},
	{ID: "popular_creator", Name: "Popular Creator", Description: "Get 100 likes", Icon: "🔥", Points: 50},
	{ID: "social_butterfly", Name: "Social Butterfly", Description: "Follow 50 users", Icon: "🦋", Points: 30},
	{ID: "night_owl", Name: "Night Owl", Description: "Post at 3 AM", Icon: "🦉", Points: 20},
	{ID: "speedster", Name: "Speedster", Description: "Like 100 posts in a day", Icon: "⚡", Points: 40},
	{ID: "influencer", Name: "Influencer", Description: "Reach 1000 followers", Icon: "👑", Points: 100},
	{ID: "ai_artist", Name: "AI Artist", Description: "Generate 50 AI images", Icon: "🎨", Points: 60},
	{ID: "loyal_user", Name: "Loyal User", Description: "Login 30 days in a row", Icon: "💎", Points: 150},
}

// ChallengeTemplates are the candidates for the daily challenge; one is picked
// at random when the day rolls over.
var ChallengeTemplates = []entity.DailyChallenge{
	{ID: "post_3", Task: "Create 3 posts today", Reward: 50, Target: 3},
	{ID: "like_20", Task: "Like 20 posts", Reward: 30, Target: 20},
	{ID: "comment_5", Task: "Comment on 5 posts", Reward: 40, Target: 5},
	{ID: "ai_gen_2", Task: "Generate 2 AI images", Reward: 60, Target: 2},
}

// MoodCatalog is the fixed set of mood descriptors mood analysis draws from.
var MoodCatalog = []entity.Mood{
	{Mood: "Energetic", Emoji: "⚡", Color: "from-yellow-400 to-orange-500", Confidence: 0.85},
	{Mood: "Creative", Emoji: "🎨", Color: "from-purple-400 to-pink-500", Confidence: 0.78},
	{Mood: "Focused", Emoji: "🎯", Color: "from-blue-400 to-cyan-500", Confidence: 0.92},
	{Mood: "Relaxed", Emoji: "😌", Color: "from-green-400 to-teal-500", Confidence: 0.71},
	{Mood: "Excited", Emoji: "🤩", Color: "from-red-400 to-pink-500", Confidence: 0.88},
}

// MoodRecommendations accompany every mood result.
var MoodRecommendations = []string{
	"Try the AI Studio for creative expression",
	"Join trending conversations",
	"Complete your daily challenge",
}
