package service

import (
	"context"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/repository"
)

// FollowService manages the follower edge between sellers.
type FollowService struct {
	followerRepo repository.FollowerRepository
	sellerRepo   repository.SellerRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(followerRepo repository.FollowerRepository, sellerRepo repository.SellerRepository) *FollowService {
	return &FollowService{followerRepo: followerRepo, sellerRepo: sellerRepo}
}

// Toggle follows the seller if not followed, unfollows otherwise, and
// returns the resulting state. Following yourself is not an error: it
// is reported as a distinct outcome and changes nothing.
func (s *FollowService) Toggle(ctx context.Context, followerID, sellerID string) (*models.FollowResult, error) {
	if followerID == "" {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if followerID == sellerID {
		return &models.FollowResult{SelfFollow: true}, nil
	}

	if _, err := s.sellerRepo.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	following, err := s.followerRepo.Exists(ctx, followerID, sellerID)
	if err != nil {
		return nil, err
	}

	if following {
		if err := s.followerRepo.Delete(ctx, followerID, sellerID); err != nil {
			return nil, err
		}
		return &models.FollowResult{Following: false}, nil
	}

	if err := s.followerRepo.Create(ctx, &models.Follower{FollowerID: followerID, SellerID: sellerID}); err != nil {
		return nil, err
	}
	return &models.FollowResult{Following: true}, nil
}

// IsFollowing reports whether followerID follows sellerID. An empty
// follower id (anonymous caller) always reads as not following.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, sellerID string) (bool, error) {
	if followerID == "" || followerID == sellerID {
		return false, nil
	}
	return s.followerRepo.Exists(ctx, followerID, sellerID)
}
