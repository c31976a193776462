package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository para testes sem banco real
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) GetUser(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) CreateUser(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestUserUseCase_ListUsers(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	ctx := context.Background()
	expected := []User{*NewUser("Amanda Rocha", "amanda@perfulandia.test", RoleAdmin)}

	mockRepo.On("ListUsers", ctx).Return(expected, nil)
	useCase := NewUserUseCase(mockRepo)

	// Act
	users, err := useCase.ListUsers(ctx)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, expected, users)
	mockRepo.AssertExpectations(t)
}

func TestUserUseCase_GetUser_Found(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	ctx := context.Background()
	stored := NewUser("Bruno Vidal", "bruno@perfulandia.test", RoleUser)
	stored.ID = 42

	mockRepo.On("GetUser", ctx, int64(42)).Return(stored, nil)
	useCase := NewUserUseCase(mockRepo)

	// Act
	user, err := useCase.GetUser(ctx, 42)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, stored, user)
	mockRepo.AssertExpectations(t)
}

func TestUserUseCase_GetUser_NotFound(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	ctx := context.Background()

	mockRepo.On("GetUser", ctx, int64(99)).Return(nil, nil)
	useCase := NewUserUseCase(mockRepo)

	// Act
	user, err := useCase.GetUser(ctx, 99)

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserUseCase_CreateUser(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	ctx := context.Background()

	mockRepo.On("CreateUser", ctx, mock.AnythingOfType("*main.User")).Return(nil)
	useCase := NewUserUseCase(mockRepo)

	// Act
	user, err := useCase.CreateUser(ctx, "Carla Mena", "carla@perfulandia.test", RoleManager)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Carla Mena", user.Name)
	assert.Equal(t, RoleManager, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserUseCase_CreateUser_RepositoryError(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	ctx := context.Background()

	mockRepo.On("CreateUser", ctx, mock.AnythingOfType("*main.User")).Return(errors.New("connection refused"))
	useCase := NewUserUseCase(mockRepo)

	// Act
	user, err := useCase.CreateUser(ctx, "Carla Mena", "carla@perfulandia.test", RoleManager)

	// Assert
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "failed to create user")
	mockRepo.AssertExpectations(t)
}

func TestUserUseCase_DeleteUser(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	ctx := context.Background()

	mockRepo.On("DeleteUser", ctx, int64(7)).Return(true, nil)
	useCase := NewUserUseCase(mockRepo)

	// Act
	err := useCase.DeleteUser(ctx, 7)

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserUseCase_DeleteUser_NotFound(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	ctx := context.Background()

	mockRepo.On("DeleteUser", ctx, int64(7)).Return(false, nil)
	useCase := NewUserUseCase(mockRepo)

	// Act
	err := useCase.DeleteUser(ctx, 7)

	// Assert
	assert.ErrorIs(t, err, ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
