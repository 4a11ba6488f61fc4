package service

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"socialmedia/internal/config"
	"socialmedia/internal/models"
	"socialmedia/internal/repository"
	"socialmedia/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetAllPosts(ctx context.Context, page, size int) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID int64) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	LikePost(ctx context.Context, postID, userID int64) (*models.Post, error)
	SearchPosts(ctx context.Context, keyword string, page, size int) ([]models.Post, error)
	AddImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error)
	DeleteImage(ctx context.Context, postID, imageID int64) error
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	imageRepo   repository.ImageRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	imageRepo repository.ImageRepository,
	storage storage.Storage,
	cfg *config.Config,
) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		imageRepo:   imageRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	if _, err := p.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, asAppError(err, "Failed to create post")
	}

	post := &models.Post{
		UserID:    req.UserID,
		Content:   req.Content,
		Timestamp: time.Now(),
		Comments:  []models.Comment{},
		Likes:     []int64{},
		Images:    []models.Image{},
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, asAppError(err, "Failed to create post")
	}

	return post, nil
}

func (p *postService) GetAllPosts(ctx context.Context, page, size int) ([]models.Post, error) {
	if size < 1 {
		size = p.cfg.DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	posts, err := p.postRepo.GetAll(ctx, size, page*size)
	if err != nil {
		return nil, asAppError(err, "An error occurred while fetching posts")
	}

	return posts, nil
}

func (p *postService) GetPostByID(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, asAppError(err, "Failed to fetch post")
	}

	return post, nil
}

// UpdatePost replaces only the content field, everything else is immutable
// through this path.
func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, asAppError(err, "Failed to update post")
	}

	if err := p.postRepo.UpdateContent(ctx, req.PostID, req.Content); err != nil {
		return nil, asAppError(err, "Failed to update post")
	}

	post.Content = req.Content
	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return asAppError(err, "Failed to delete post")
	}

	return nil
}

func (p *postService) AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	if _, err := p.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, asAppError(err, "Failed to add comment")
	}

	comment := &models.Comment{
		UserID:    req.UserID,
		PostID:    req.PostID,
		Content:   req.Content,
		Timestamp: time.Now(),
	}

	if err := p.commentRepo.Create(ctx, comment); err != nil {
		return nil, asAppError(err, "Failed to add comment")
	}

	return comment, nil
}

// LikePost is idempotent: liking the same post twice leaves a single entry
// in the like set.
func (p *postService) LikePost(ctx context.Context, postID, userID int64) (*models.Post, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asAppError(err, "Failed to like post")
	}

	if err := p.postRepo.AddLike(ctx, postID, userID); err != nil {
		return nil, asAppError(err, "Failed to like post")
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, asAppError(err, "Failed to like post")
	}

	return post, nil
}

func (p *postService) SearchPosts(ctx context.Context, keyword string, page, size int) ([]models.Post, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, models.NewInvalidInput("Search keyword cannot be blank")
	}

	if size < 1 {
		size = p.cfg.DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	posts, err := p.postRepo.Search(ctx, keyword, size, page*size)
	if err != nil {
		return nil, asAppError(err, "Failed to search posts")
	}

	if len(posts) == 0 {
		return nil, models.NewNotFound("No posts found matching the search criteria")
	}

	return posts, nil
}

func (p *postService) AddImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asAppError(err, "Failed to upload image")
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, asAppError(err, "Failed to upload image")
	}

	image := &models.Image{
		PostID:    postID,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}

	if err := p.imageRepo.Create(ctx, image); err != nil {
		// row insert failed, remove the orphaned object
		if delErr := p.storage.DeleteImage(ctx, objectName); delErr != nil {
			log.Printf("Warning: failed to remove orphaned object %s: %v", objectName, delErr)
		}
		return nil, asAppError(err, "Failed to save image")
	}

	return image, nil
}

func (p *postService) DeleteImage(ctx context.Context, postID, imageID int64) error {
	image, err := p.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return asAppError(err, "Failed to delete image")
	}

	if image.PostID != postID {
		return models.NewNotFound("Image not found")
	}

	if objectName, ok := p.objectNameFromURL(image.ImageURL); ok {
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			log.Printf("Warning: failed to delete object %s: %v", objectName, err)
		}
	}

	if err := p.imageRepo.Delete(ctx, imageID); err != nil {
		return asAppError(err, "Failed to delete image")
	}

	return nil
}

func (p *postService) objectNameFromURL(imageURL string) (string, bool) {
	marker := "/" + p.cfg.MinIO.BucketName + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return "", false
	}
	return imageURL[idx+len(marker):], true
}
