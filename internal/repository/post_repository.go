package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialmedia/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	PostID  int64  `json:"postId"`
	Content string `json:"content"`
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (user_id, content, timestamp)
		VALUES ($1, $2, $3)
		RETURNING post_id
	`

	err := r.db.GetContext(ctx, &post.PostID, query, post.UserID, post.Content, post.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFound("Post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := r.loadRelations(ctx, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	var posts []models.Post

	query := `
		SELECT * FROM posts
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2
	`

	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	for i := range posts {
		if err := r.loadRelations(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (r *postRepository) UpdateContent(ctx context.Context, postID int64, content string) error {
	query := `UPDATE posts SET content = $1 WHERE post_id = $2`

	result, err := r.db.ExecContext(ctx, query, content, postID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewNotFound("Post not found")
	}

	return nil
}

// Delete removes the post together with its comments, likes and images.
// The cascade is explicit: no FK ON DELETE behaviour is relied upon.
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post likes: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post images: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

// AddLike is idempotent: the unique (post_id, user_id) pair makes a repeated
// like by the same user a no-op.
func (r *postRepository) AddLike(ctx context.Context, postID, userID int64) error {
	query := `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}

	return nil
}

func (r *postRepository) GetLikes(ctx context.Context, postID int64) ([]int64, error) {
	likes := []int64{}

	query := `SELECT user_id FROM post_likes WHERE post_id = $1 ORDER BY user_id`

	err := r.db.SelectContext(ctx, &likes, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post likes: %w", err)
	}

	return likes, nil
}

func (r *postRepository) Search(ctx context.Context, keyword string, limit, offset int) ([]models.Post, error) {
	var posts []models.Post

	query := `
		SELECT * FROM posts
		WHERE content ILIKE '%' || $1 || '%'
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3
	`

	err := r.db.SelectContext(ctx, &posts, query, keyword, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	for i := range posts {
		if err := r.loadRelations(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (r *postRepository) loadRelations(ctx context.Context, post *models.Post) error {
	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, `SELECT * FROM comments WHERE post_id = $1 ORDER BY timestamp`, post.PostID)
	if err != nil {
		return fmt.Errorf("failed to get post comments: %w", err)
	}
	post.Comments = comments

	likes, err := r.GetLikes(ctx, post.PostID)
	if err != nil {
		return err
	}
	post.Likes = likes

	images := []models.Image{}
	err = r.db.SelectContext(ctx, &images, `SELECT * FROM images WHERE post_id = $1 ORDER BY created_at`, post.PostID)
	if err != nil {
		return fmt.Errorf("failed to get post images: %w", err)
	}
	post.Images = images

	return nil
}
