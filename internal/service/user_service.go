package service

import (
	"context"
	"strings"

	"socialmedia/internal/config"
	"socialmedia/internal/models"
	"socialmedia/internal/repository"
)

type UserService interface {
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	FollowUser(ctx context.Context, followerID, followingID int64) (*models.Follow, error)
	GetFollowers(ctx context.Context, userID int64) ([]models.User, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.User, error)
	SearchUsers(ctx context.Context, keyword string, page, size int) ([]models.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	cfg        *config.Config
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
		cfg:        cfg,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, asAppError(err, "Failed to fetch user")
	}

	return user, nil
}

func (s *userService) FollowUser(ctx context.Context, followerID, followingID int64) (*models.Follow, error) {
	if followerID == followingID {
		return nil, models.NewInvalidInput("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return nil, asAppError(err, "Failed to follow user")
	}

	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return nil, asAppError(err, "Failed to follow user")
	}

	exists, err := s.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return nil, asAppError(err, "Failed to follow user")
	}
	if exists {
		return nil, models.NewConflict("You are already following this user")
	}

	follow := &models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, asAppError(err, "Failed to follow user")
	}

	return follow, nil
}

func (s *userService) GetFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	followers, err := s.followRepo.GetFollowers(ctx, userID)
	if err != nil {
		return nil, asAppError(err, "Failed to fetch followers")
	}

	// an empty list reports NotFound, so zero followers is indistinguishable
	// from an unknown user id
	if len(followers) == 0 {
		return nil, models.NewNotFound("No followers found")
	}

	return followers, nil
}

func (s *userService) GetFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	following, err := s.followRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, asAppError(err, "Failed to fetch following users")
	}

	if len(following) == 0 {
		return nil, models.NewNotFound("No users are being followed")
	}

	return following, nil
}

func (s *userService) SearchUsers(ctx context.Context, keyword string, page, size int) ([]models.User, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, models.NewInvalidInput("Search keyword cannot be blank")
	}

	if size < 1 {
		size = s.cfg.DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	users, err := s.userRepo.Search(ctx, keyword, size, page*size)
	if err != nil {
		return nil, asAppError(err, "Failed to search users")
	}

	if len(users) == 0 {
		return nil, models.NewNotFound("No users found matching the search criteria")
	}

	return users, nil
}
