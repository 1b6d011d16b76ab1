package service

import (
	"context"
	"testing"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSelfFollowIsNotAnError(t *testing.T) {
	follows := noopFollowerRepo()
	created := false
	follows.createFn = func(_ context.Context, _ *models.Follower) error {
		created = true
		return nil
	}
	svc := NewFollowService(follows, noopSellerRepo())

	result, err := svc.Toggle(context.Background(), "seller-a", "seller-a")

	require.NoError(t, err)
	assert.True(t, result.SelfFollow)
	assert.False(t, result.Following)
	assert.False(t, created)
}

func TestToggleUnknownSeller(t *testing.T) {
	sellers := noopSellerRepo()
	sellers.getByIDFn = func(_ context.Context, id string) (*models.Seller, error) {
		return nil, models.NewNotFoundError("Seller", id)
	}
	svc := NewFollowService(noopFollowerRepo(), sellers)

	_, err := svc.Toggle(context.Background(), "seller-a", "ghost")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestToggleTwiceReturnsToOriginalState(t *testing.T) {
	follows := noopFollowerRepo()
	following := false
	follows.existsFn = func(_ context.Context, _, _ string) (bool, error) { return following, nil }
	follows.createFn = func(_ context.Context, _ *models.Follower) error {
		following = true
		return nil
	}
	follows.deleteFn = func(_ context.Context, _, _ string) error {
		following = false
		return nil
	}
	svc := NewFollowService(follows, noopSellerRepo())

	result, err := svc.Toggle(context.Background(), "seller-a", "seller-b")
	require.NoError(t, err)
	assert.True(t, result.Following)

	result, err = svc.Toggle(context.Background(), "seller-a", "seller-b")
	require.NoError(t, err)
	assert.False(t, result.Following)
	assert.False(t, following)
}

func TestToggleRequiresAuth(t *testing.T) {
	svc := NewFollowService(noopFollowerRepo(), noopSellerRepo())

	_, err := svc.Toggle(context.Background(), "", "seller-b")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestIsFollowingAnonymousReadsFalse(t *testing.T) {
	follows := noopFollowerRepo()
	follows.existsFn = func(_ context.Context, _, _ string) (bool, error) {
		t.Fatal("repo should not be queried for anonymous callers")
		return false, nil
	}
	svc := NewFollowService(follows, noopSellerRepo())

	following, err := svc.IsFollowing(context.Background(), "", "seller-b")

	require.NoError(t, err)
	assert.False(t, following)
}
