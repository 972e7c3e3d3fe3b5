package users

import (
	"context"
	"errors"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context, limit int64) ([]map[string]interface{}, error) {
	args := m.Called(ctx, limit)
	users, _ := args.Get(0).([]map[string]interface{})
	return users, args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, document map[string]interface{}) (string, error) {
	args := m.Called(ctx, document)
	return args.String(0), args.Error(1)
}

func TestListUsers(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindAll", mock.Anything, int64(constvars.UserListLimit)).
		Return([]map[string]interface{}{{"id": "u1", "name": "Asha"}}, nil)
	uc := NewUserUsecase(repo, zap.NewNop())

	users, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0]["name"])
	repo.AssertExpectations(t)
}

func TestListUsers_StorageError(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindAll", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrStorageUnavailable(errors.New("connection refused")))
	uc := NewUserUsecase(repo, zap.NewNop())

	_, err := uc.ListUsers(context.Background())
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
}

func TestCreateUser(t *testing.T) {
	t.Run("client supplied ids are dropped", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Insert", mock.Anything, map[string]interface{}{"name": "Asha", "role": "patient"}).
			Return("65f0c0ffee0000000000beef", nil)
		uc := NewUserUsecase(repo, zap.NewNop())

		created, err := uc.CreateUser(context.Background(), requests.UserDocument{
			"_id":  "forged",
			"id":   "forged",
			"name": "Asha",
			"role": "patient",
		})
		require.NoError(t, err)
		assert.Equal(t, "65f0c0ffee0000000000beef", created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("empty document is rejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		uc := NewUserUsecase(repo, zap.NewNop())

		_, err := uc.CreateUser(context.Background(), requests.UserDocument{})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}
