package models

import (
	"time"
)

type User struct {
	UserID                 int64     `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Email                  string    `json:"email" db:"email"`
	Bio                    string    `json:"bio" db:"bio"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Post struct {
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Comments  []Comment `json:"comments" db:"-"`
	Likes     []int64   `json:"likes" db:"-"`
	Images    []Image   `json:"images" db:"-"`
}

type Comment struct {
	CommentID int64     `json:"commentId" db:"comment_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	Content   string    `json:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type Follow struct {
	FollowID    int64 `json:"followId" db:"follow_id"`
	FollowerID  int64 `json:"followerId" db:"follower_id"`
	FollowingID int64 `json:"followingId" db:"following_id"`
}

type Image struct {
	ImageID   int64     `json:"imageId" db:"image_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
