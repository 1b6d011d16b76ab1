package models

import (
	"time"
)

// Favorite is a saved product for one identity. Anonymous visitors keep
// favorites on the device; once a session exists they are synced here so
// they survive across devices, matching the durability of Follower edges.
type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID string    `gorm:"size:64;not null;uniqueIndex:idx_fav_follower_product" json:"follower_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_fav_follower_product" json:"product_id"`
	CreatedAt  time.Time `json:"created_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
