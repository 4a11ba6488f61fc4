package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"socialmedia/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	query := `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		RETURNING follow_id
	`

	err := r.db.GetContext(ctx, &follow.FollowID, query, follow.FollowerID, follow.FollowingID)
	if err != nil {
		// concurrent duplicate insert hits the unique (follower_id, following_id) constraint
		if strings.Contains(err.Error(), "duplicate key value") {
			return models.NewConflict("You are already following this user")
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1 AND following_id = $2`

	err := r.db.GetContext(ctx, &count, query, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return count > 0, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	users := []models.User{}

	query := `
		SELECT u.* FROM users u
		JOIN follows f ON u.user_id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY u.user_id
	`

	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get followers: %w", err)
	}

	return users, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	users := []models.User{}

	query := `
		SELECT u.* FROM users u
		JOIN follows f ON u.user_id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY u.user_id
	`

	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get following users: %w", err)
	}

	return users, nil
}
