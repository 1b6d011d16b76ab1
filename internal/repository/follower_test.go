package repository

import (
	"context"
	"testing"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowerEdgeLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowerRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &models.Follower{FollowerID: "a", SellerID: "b"}))

	exists, err = repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, exists)

	// directed edge: the reverse does not exist
	exists, err = repo.Exists(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Delete(ctx, "a", "b"))
	exists, err = repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowerDuplicateEdgeRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Follower{FollowerID: "a", SellerID: "b"}))
	err := repo.Create(ctx, &models.Follower{FollowerID: "a", SellerID: "b"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_UNAVAILABLE", appErr.Code)
}

func TestFollowerCountForSeller(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Follower{FollowerID: "a", SellerID: "x"}))
	require.NoError(t, repo.Create(ctx, &models.Follower{FollowerID: "b", SellerID: "x"}))
	require.NoError(t, repo.Create(ctx, &models.Follower{FollowerID: "a", SellerID: "y"}))

	count, err := repo.CountForSeller(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
