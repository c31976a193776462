package main

import (
	"context"
	"fmt"
	"log"
)

// Erros customizados
var (
	ErrUserNotFound = &UserError{Message: "user not found"}
)

type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// UserUseCase contém a lógica de negócio dos usuários
type UserUseCase struct {
	repository Repository
}

// NewUserUseCase cria uma nova instância de UserUseCase
func NewUserUseCase(repository Repository) *UserUseCase {
	return &UserUseCase{
		repository: repository,
	}
}

// ListUsers retorna todos os usuários
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]User, error) {
	users, err := uc.repository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser busca um usuário pelo ID
func (uc *UserUseCase) GetUser(ctx context.Context, id int64) (*User, error) {
	user, err := uc.repository.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser cadastra um novo usuário
func (uc *UserUseCase) CreateUser(ctx context.Context, name, email, role string) (*User, error) {
	user := NewUser(name, email, role)
	if err := uc.repository.CreateUser(ctx, user); err != nil {
		log.Printf("❌ Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("✅ User created: %d (%s)", user.ID, user.Email)
	return user, nil
}

// DeleteUser remove um usuário pelo ID
func (uc *UserUseCase) DeleteUser(ctx context.Context, id int64) error {
	deleted, err := uc.repository.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}

	log.Printf("🗑️  User deleted: %d", id)
	return nil
}
