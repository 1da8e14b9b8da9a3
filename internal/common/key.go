package common

// Store keys of the persisted namespace. Values under every key are JSON.
const (
	KeyUsers          = "users"
	KeyCurrentUser    = "currentUser"
	KeySubscription   = "subscription"
	KeyTransactions   = "transactions"
	KeyNotifications  = "notifications"
	KeyAchievements   = "achievements"
	KeyDailyChallenge = "dailyChallenge"
	KeyActivities     = "activities"
	KeyAnalytics      = "analytics"
	KeyAPIKey         = "apiKey"
)
