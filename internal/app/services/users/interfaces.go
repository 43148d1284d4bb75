package users

import (
	"context"
	"medirecord-service/internal/app/models"
	"medirecord-service/internal/pkg/dto/requests"
	"medirecord-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]responses.User, error)
	DeleteUser(ctx context.Context, request *requests.DeleteUser) error
}
