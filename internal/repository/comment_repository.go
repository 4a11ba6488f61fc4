package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialmedia/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	PostID  int64  `json:"postId"`
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (user_id, post_id, content, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id
	`

	err := r.db.GetContext(ctx, &comment.CommentID, query,
		comment.UserID,
		comment.PostID,
		comment.Content,
		comment.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments := []models.Comment{}

	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY timestamp`

	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) DeleteByPostID(ctx context.Context, postID int64) error {
	query := `DELETE FROM comments WHERE post_id = $1`

	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	return nil
}
