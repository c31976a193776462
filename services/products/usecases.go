package main

import (
	"context"
	"fmt"
	"log"
)

// Erros customizados
var (
	ErrProductNotFound         = &ProductError{Message: "product not found"}
	ErrUserNotFound            = &ProductError{Message: "user not found"}
	ErrUsersServiceUnavailable = &ProductError{Message: "users service unavailable"}
)

type ProductError struct {
	Message string
}

func (e *ProductError) Error() string {
	return e.Message
}

// ProductUseCase contém a lógica de negócio dos produtos
type ProductUseCase struct {
	repository Repository
	users      UserGateway
}

// NewProductUseCase cria uma nova instância de ProductUseCase
func NewProductUseCase(repository Repository, users UserGateway) *ProductUseCase {
	return &ProductUseCase{
		repository: repository,
		users:      users,
	}
}

// ListProducts retorna todos os produtos
func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]Product, error) {
	products, err := uc.repository.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct busca um produto pelo ID
func (uc *ProductUseCase) GetProduct(ctx context.Context, id int64) (*Product, error) {
	product, err := uc.repository.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProduct cadastra um novo produto
func (uc *ProductUseCase) CreateProduct(ctx context.Context, name string, price float64, stock int) (*Product, error) {
	product := NewProduct(name, price, stock)
	if err := uc.repository.CreateProduct(ctx, product); err != nil {
		log.Printf("❌ Failed to create product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✅ Product created: %d (%s, stock=%d)", product.ID, product.Name, product.Stock)
	return product, nil
}

// DeleteProduct remove um produto pelo ID
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := uc.repository.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return ErrProductNotFound
	}

	log.Printf("🗑️  Product deleted: %d", id)
	return nil
}

// GetUser consulta o serviço de usuários em nome do cliente
func (uc *ProductUseCase) GetUser(ctx context.Context, id int64) (*User, error) {
	return uc.users.GetUser(ctx, id)
}
