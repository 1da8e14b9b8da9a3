package entity

import "time"

type ViewPoint struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

type FollowerPoint struct {
	Date      string `json:"date"`
	Followers int    `json:"followers"`
}

type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

type TopPost struct {
	ID         int    `json:"id"`
	Likes      int    `json:"likes"`
	Engagement string `json:"engagement"`
}

// AnalyticsSnapshot is synthetic, generated on demand and cached.
type AnalyticsSnapshot struct {
	ProfileViews      []ViewPoint     `json:"profileViews"`
	Engagement        Engagement      `json:"engagement"`
	FollowerGrowth    []FollowerPoint `json:"followerGrowth"`
	TotalFollowers    int             `json:"totalFollowers"`
	AvgEngagementRate string          `json:"avgEngagementRate"`
	TopPosts          []TopPost       `json:"topPosts"`
}

// CachedAnalytics is the persisted form: the snapshot plus its generation
// time, used for the one-hour freshness check.
type CachedAnalytics struct {
	Analytics AnalyticsSnapshot `json:"analytics"`
	Timestamp time.Time         `json:"timestamp"`
}

// AnalyticsMaxAge is how long a cached snapshot is served before a fresh one
// is generated.
const AnalyticsMaxAge = time.Hour
