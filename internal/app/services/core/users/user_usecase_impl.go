package users

import (
	"context"
	"errors"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var errEmptyUserDocument = errors.New("user document must not be empty")

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]map[string]interface{}, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("userUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.UserRepository.FindAll(ctx, constvars.UserListLimit)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (uc *userUsecase) CreateUser(ctx context.Context, document requests.UserDocument) (*responses.UserCreated, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if len(document) == 0 {
		return nil, exceptions.ErrInputValidation(errEmptyUserDocument)
	}

	// The store assigns the identifier.
	stored := make(map[string]interface{}, len(document))
	for key, value := range document {
		if key == "_id" || key == "id" {
			continue
		}
		stored[key] = value
	}

	userID, err := uc.UserRepository.Insert(ctx, stored)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.UserCreated{ID: userID}, nil
}
