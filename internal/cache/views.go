package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/observability"
)

// Cached catalog views. Only the unfiltered first page and the promoted
// view are cached; filtered and searched pages go straight to the store.
const (
	HomeFeedKey   = "catalog:home"
	PromotedKey   = "catalog:promoted"
	productKeyFmt = "product:%d"
	sellerViewFmt = "seller:%s:products"
)

const (
	HomeFeedTTL = 2 * time.Minute
	PromotedTTL = 5 * time.Minute
	ProductTTL  = 10 * time.Minute
	SellerTTL   = 5 * time.Minute
)

// ProductKey returns the detail-view cache key for a product.
func ProductKey(productID uint) string {
	return fmt.Sprintf(productKeyFmt, productID)
}

// SellerListingsKey returns the cache key for a seller's own listings view.
func SellerListingsKey(sellerID string) string {
	return fmt.Sprintf(sellerViewFmt, sellerID)
}

// Invalidate removes a key. Invalidation signals are fire-and-forget:
// a reader immediately after a write may still observe stale data.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateHomeFeed(ctx context.Context) {
	Invalidate(ctx, HomeFeedKey)
	observability.CacheInvalidations.WithLabelValues("home").Inc()
}

func InvalidatePromoted(ctx context.Context) {
	Invalidate(ctx, PromotedKey)
	observability.CacheInvalidations.WithLabelValues("promoted").Inc()
}

func InvalidateProduct(ctx context.Context, productID uint) {
	Invalidate(ctx, ProductKey(productID))
	observability.CacheInvalidations.WithLabelValues("product").Inc()
}

func InvalidateSellerListings(ctx context.Context, sellerID string) {
	Invalidate(ctx, SellerListingsKey(sellerID))
	observability.CacheInvalidations.WithLabelValues("seller").Inc()
}
