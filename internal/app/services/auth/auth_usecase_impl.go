package auth

import (
	"context"
	"medirecord-service/internal/app/models"
	"medirecord-service/internal/app/services/shared/jwtmanager"
	"medirecord-service/internal/app/services/users"
	"medirecord-service/internal/pkg/constvars"
	"medirecord-service/internal/pkg/dto/requests"
	"medirecord-service/internal/pkg/dto/responses"
	"medirecord-service/internal/pkg/exceptions"
	"medirecord-service/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	UserRepository users.UserRepository
	JWTManager     *jwtmanager.JWTManager
}

func NewAuthUsecase(userMongoRepository users.UserRepository, jwtManager *jwtmanager.JWTManager) AuthUsecase {
	return &authUsecase{
		UserRepository: userMongoRepository,
		JWTManager:     jwtManager,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	// Uniqueness check must run before any insert is attempted.
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleReceptionist
	}

	now := time.Now()
	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     role,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := uc.JWTManager.Issue(user.Email, user.Role, time.Now())
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{AccessToken: token}, nil
}
