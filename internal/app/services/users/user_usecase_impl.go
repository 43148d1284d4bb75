package users

import (
	"context"
	"medirecord-service/internal/pkg/dto/requests"
	"medirecord-service/internal/pkg/dto/responses"
	"medirecord-service/internal/pkg/exceptions"
)

type userUsecase struct {
	UserRepository UserRepository
}

func NewUserUsecase(userMongoRepository UserRepository) UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
	}
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]responses.User, error) {
	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.User, 0, len(users))
	for _, user := range users {
		response = append(response, responses.User{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
	}
	return response, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, request *requests.DeleteUser) error {
	deleted, err := uc.UserRepository.DeleteByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return exceptions.ErrUserNotExist(nil)
	}
	return nil
}
