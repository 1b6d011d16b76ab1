// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Seller represents a storefront backed by an identity-provider account.
// ID is the opaque user id issued by the identity provider; Email is the
// join key between the provider's session and our records.
type Seller struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Email           string    `gorm:"unique;not null" json:"email"`
	StoreName       string    `json:"store_name"`
	Phone           string    `json:"phone"`
	Avatar          string    `json:"avatar"`
	Verified        bool      `gorm:"default:false" json:"verified"`
	IsAdmin         bool      `gorm:"default:false" json:"is_admin"`
	AcceptsTransfer bool      `gorm:"default:false" json:"accepts_transfer"`
	TransferAlias   string    `json:"transfer_alias,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:SellerID" json:"products,omitempty"`
}

// CanPublish reports whether the seller has completed contact-info
// onboarding; a listing cannot be created without a phone number.
func (s *Seller) CanPublish() bool {
	return s.Phone != ""
}
