package models

import (
	"strings"
	"time"
)

// Product categories. Wholesale is a separate storefront tier: it is
// excluded from the default feed and only reachable by explicit selection.
const (
	CategoryAll       = "all"
	CategoryWholesale = "wholesale"
)

// Categories lists the selectable product categories.
var Categories = []string{
	"electronics",
	"vehicles",
	"home",
	"fashion",
	"services",
	"pets",
	CategoryWholesale,
}

// Currencies lists the accepted currency codes.
var Currencies = []string{"CUP", "MLC", "USD", "EUR"}

// ValidCategory reports whether c names a selectable category (not "all").
func ValidCategory(c string) bool {
	c = strings.ToLower(c)
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidCurrency reports whether code is one of the accepted currencies.
func ValidCurrency(code string) bool {
	code = strings.ToUpper(code)
	for _, known := range Currencies {
		if code == known {
			return true
		}
	}
	return false
}

// Product is a single marketplace listing. Prices are stored as integer
// minor units (cents); PriceCents must be positive.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	PriceCents  int64  `gorm:"not null" json:"price_cents"`
	Currency    string `gorm:"size:5;not null" json:"currency"`
	Category    string `gorm:"size:50;index;not null" json:"category"`
	Sold        bool   `gorm:"default:false;index" json:"sold"`
	Promoted    bool   `gorm:"default:false;index" json:"promoted"`
	Views       uint   `gorm:"default:0" json:"views"`

	SellerID string `gorm:"size:64;index;not null" json:"seller_id"`
	Seller   Seller `gorm:"foreignKey:SellerID" json:"seller"`

	// Images ordered by Position; the first image is the cover.
	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductImage is one of the ordered image URLs belonging to a product.
// Image bytes live on the external asset host; only URLs are stored.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}
