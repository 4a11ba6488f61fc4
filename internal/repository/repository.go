package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"socialmedia/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error
	GetByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	Search(ctx context.Context, keyword string, limit, offset int) ([]models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Post, error)
	UpdateContent(ctx context.Context, postID int64, content string) error
	Delete(ctx context.Context, postID int64) error
	AddLike(ctx context.Context, postID, userID int64) error
	GetLikes(ctx context.Context, postID int64) ([]int64, error)
	Search(ctx context.Context, keyword string, limit, offset int) ([]models.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	DeleteByPostID(ctx context.Context, postID int64) error
}

type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
	GetFollowers(ctx context.Context, userID int64) ([]models.User, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.User, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, imageID int64) (*models.Image, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Image, error)
	Delete(ctx context.Context, imageID int64) error
	DeleteByPostID(ctx context.Context, postID int64) error
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Follow  FollowRepository
	Image   ImageRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Follow:  NewFollowRepository(db),
		Image:   NewImageRepository(db),
	}
}
