package service

import (
	"errors"

	"socialmedia/internal/config"
	"socialmedia/internal/models"
	"socialmedia/internal/repository"
	"socialmedia/internal/storage"
)

type Service struct {
	Auth AuthService
	User UserService
	Post PostService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, cfg),
		User: NewUserService(repo.User, repo.Follow, cfg),
		Post: NewPostService(repo.Post, repo.Comment, repo.User, repo.Image, storage, cfg),
	}
}

// asAppError passes classified errors through and converts anything else
// into an Internal error with the given message.
func asAppError(err error, message string) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return models.NewInternal(message, err)
}
