package entity

import "github.com/socialai-lab/backend/pkg/enum"

type SubscriptionTier string

var (
	TierFree  = enum.New(SubscriptionTier("free"))
	TierPro   = enum.New(SubscriptionTier("pro"))
	TierElite = enum.New(SubscriptionTier("elite"))
)

type SubscriptionStatus string

var (
	SubscriptionActive    = enum.New(SubscriptionStatus("active"))
	SubscriptionCancelled = enum.New(SubscriptionStatus("cancelled"))
)

// User is the durable account record. The password travels with it because
// the simulator has no real credential service; it is stripped before the
// record is mirrored into the session.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Avatar     string `json:"avatar"`
	Username   string `json:"username"`
	Bio        string `json:"bio"`
	JoinedDate string `json:"joinedDate"`
	IsVerified bool   `json:"isVerified"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	CoverImage string `json:"coverImage"`

	SubscriptionTier   SubscriptionTier   `json:"subscriptionTier"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
}

// SessionUser is the User mirror kept under the currentUser key: password
// stripped, subscription fields merged in at login or load time.
type SessionUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	Username   string `json:"username"`
	Bio        string `json:"bio"`
	JoinedDate string `json:"joinedDate"`
	IsVerified bool   `json:"isVerified"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	CoverImage string `json:"coverImage"`

	SubscriptionTier   SubscriptionTier   `json:"subscriptionTier"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
}
