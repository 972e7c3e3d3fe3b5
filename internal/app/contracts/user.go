package contracts

import (
	"context"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]map[string]interface{}, error)
	CreateUser(ctx context.Context, document requests.UserDocument) (*responses.UserCreated, error)
}

type UserRepository interface {
	FindAll(ctx context.Context, limit int64) ([]map[string]interface{}, error)
	Insert(ctx context.Context, document map[string]interface{}) (string, error)
}
