package models

import (
	"time"
)

// Follower is a directed "follows" edge from one identity to a seller.
// The (follower_id, seller_id) pair is unique; self-follows are rejected
// before the write.
type Follower struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID string    `gorm:"size:64;not null;uniqueIndex:idx_follower_seller" json:"follower_id"`
	SellerID   string    `gorm:"size:64;not null;uniqueIndex:idx_follower_seller" json:"seller_id"`
	CreatedAt  time.Time `json:"created_at"`

	Seller Seller `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}

// FollowResult is the outcome of a follow toggle. SelfFollow is a
// recoverable condition reported as data, not as an error, so callers can
// revert an optimistic UI update without a generic failure path.
type FollowResult struct {
	Following  bool `json:"following"`
	SelfFollow bool `json:"self_follow"`
}
