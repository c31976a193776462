package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de usuários
type Repository interface {
	// ListUsers retorna todos os usuários cadastrados
	ListUsers(ctx context.Context) ([]User, error)

	// GetUser busca um usuário pelo ID; retorna nil quando não existe
	GetUser(ctx context.Context, id int64) (*User, error)

	// CreateUser insere um novo usuário e preenche o ID gerado
	CreateUser(ctx context.Context, user *User) error

	// DeleteUser remove um usuário; retorna false quando o ID não existe
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// PostgresUserRepository implementa Repository usando PostgreSQL
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de PostgresUserRepository
func NewUserRepository(db *pgxpool.Pool) Repository {
	return &PostgresUserRepository{
		db: db,
	}
}

// ListUsers retorna todos os usuários cadastrados
func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, role, created_at, updated_at
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUser busca um usuário pelo ID
func (r *PostgresUserRepository) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, role, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser insere um novo usuário no banco de dados
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *User) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, user.Name, user.Email, user.Role, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
}

// DeleteUser remove um usuário pelo ID
func (r *PostgresUserRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
