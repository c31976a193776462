package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de produtos
type Repository interface {
	// ListProducts retorna todos os produtos do catálogo
	ListProducts(ctx context.Context) ([]Product, error)

	// GetProduct busca um produto pelo ID; retorna nil quando não existe
	GetProduct(ctx context.Context, id int64) (*Product, error)

	// CreateProduct insere um novo produto e preenche o ID gerado
	CreateProduct(ctx context.Context, product *Product) error

	// DeleteProduct remove um produto; retorna false quando o ID não existe
	DeleteProduct(ctx context.Context, id int64) (bool, error)
}

// PostgresProductRepository implementa Repository usando PostgreSQL
type PostgresProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de PostgresProductRepository
func NewProductRepository(db *pgxpool.Pool) Repository {
	return &PostgresProductRepository{
		db: db,
	}
}

// ListProducts retorna todos os produtos do catálogo
func (r *PostgresProductRepository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// GetProduct busca um produto pelo ID
func (r *PostgresProductRepository) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products WHERE id = $1
	`, id).Scan(&product.ID, &product.Name, &product.Price, &product.Stock, &product.CreatedAt, &product.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct insere um novo produto no banco de dados
func (r *PostgresProductRepository) CreateProduct(ctx context.Context, product *Product) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO products (name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, product.Name, product.Price, product.Stock, product.CreatedAt, product.UpdatedAt).Scan(&product.ID)
}

// DeleteProduct remove um produto pelo ID
func (r *PostgresProductRepository) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
