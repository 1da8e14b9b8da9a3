package entity

import "time"

// Subscription is one per installation, not per user id. Upgrades overwrite
// it wholesale; cancelling freezes the expiry to the previous billing date.
type Subscription struct {
	Tier        SubscriptionTier   `json:"tier"`
	Status      SubscriptionStatus `json:"status"`
	StartDate   time.Time          `json:"startDate"`
	NextBilling time.Time          `json:"nextBilling"`
	ExpiryDate  *time.Time         `json:"expiryDate,omitempty"`
	AutoRenew   bool               `json:"autoRenew"`
}
