package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de carrinhos.
// Cada mutação roda numa transação própria: ou a linha e o updated_at do
// carrinho são gravados juntos, ou nada é gravado.
type Repository interface {
	// CreateCart insere um carrinho vazio e preenche o ID gerado
	CreateCart(ctx context.Context, cart *Cart) error

	// GetCart busca um carrinho com seus itens; retorna nil quando não existe
	GetCart(ctx context.Context, id int64) (*Cart, error)

	// ListCarts retorna todos os carrinhos com seus itens
	ListCarts(ctx context.Context) ([]Cart, error)

	// DeleteCart remove o carrinho; os itens caem em cascata (FK).
	// Retorna false quando o ID não existe.
	DeleteCart(ctx context.Context, id int64) (bool, error)

	// InsertItem insere uma linha nova e preenche o ID gerado
	InsertItem(ctx context.Context, item *CartItem) error

	// UpdateItemQuantity grava a quantidade já calculada da linha
	UpdateItemQuantity(ctx context.Context, item *CartItem) error

	// DeleteItem remove uma linha do carrinho
	DeleteItem(ctx context.Context, itemID, cartID int64) error

	// ClearItems remove todas as linhas do carrinho
	ClearItems(ctx context.Context, cartID int64) error
}

// PostgresCartRepository implementa Repository usando PostgreSQL
type PostgresCartRepository struct {
	db *pgxpool.Pool
}

// NewCartRepository cria uma nova instância de PostgresCartRepository
func NewCartRepository(db *pgxpool.Pool) Repository {
	return &PostgresCartRepository{
		db: db,
	}
}

// CreateCart insere um carrinho vazio no banco de dados
func (r *PostgresCartRepository) CreateCart(ctx context.Context, cart *Cart) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO carts (user_id, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, cart.UserID, cart.CreatedAt, cart.UpdatedAt).Scan(&cart.ID)
}

// GetCart busca um carrinho e seus itens
func (r *PostgresCartRepository) GetCart(ctx context.Context, id int64) (*Cart, error) {
	var cart Cart
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, created_at, updated_at
		FROM carts WHERE id = $1
	`, id).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return &cart, nil
}

func (r *PostgresCartRepository) loadItems(ctx context.Context, cartID int64) ([]CartItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, cart_id, product_id, quantity
		FROM cart_items WHERE cart_id = $1
		ORDER BY id
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []CartItem{}
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListCarts retorna todos os carrinhos com seus itens
func (r *PostgresCartRepository) ListCarts(ctx context.Context) ([]Cart, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carts := []Cart{}
	for rows.Next() {
		var cart Cart
		if err := rows.Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt); err != nil {
			return nil, err
		}
		cart.Items = []CartItem{}
		carts = append(carts, cart)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(carts) == 0 {
		return carts, nil
	}

	// Single query for every cart's items instead of one per cart
	itemRows, err := r.db.Query(ctx, `
		SELECT id, cart_id, product_id, quantity
		FROM cart_items
		ORDER BY cart_id, id
	`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	byCart := make(map[int64][]CartItem)
	for itemRows.Next() {
		var item CartItem
		if err := itemRows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		byCart[item.CartID] = append(byCart[item.CartID], item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	for i := range carts {
		if items, ok := byCart[carts[i].ID]; ok {
			carts[i].Items = items
		}
	}
	return carts, nil
}

// DeleteCart remove o carrinho; cart_items cai em cascata pela FK
func (r *PostgresCartRepository) DeleteCart(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// InsertItem insere uma linha nova junto com o toque no carrinho
func (r *PostgresCartRepository) InsertItem(ctx context.Context, item *CartItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`, item.CartID, item.ProductID, item.Quantity).Scan(&item.ID)
	if err != nil {
		return err
	}

	if err := touchCart(ctx, tx, item.CartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpdateItemQuantity grava a quantidade da linha junto com o toque no carrinho
func (r *PostgresCartRepository) UpdateItemQuantity(ctx context.Context, item *CartItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		UPDATE cart_items SET quantity = $1 WHERE id = $2
	`, item.Quantity, item.ID); err != nil {
		return err
	}

	if err := touchCart(ctx, tx, item.CartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// DeleteItem remove a linha junto com o toque no carrinho
func (r *PostgresCartRepository) DeleteItem(ctx context.Context, itemID, cartID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID); err != nil {
		return err
	}

	if err := touchCart(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ClearItems remove todas as linhas do carrinho junto com o toque no carrinho
func (r *PostgresCartRepository) ClearItems(ctx context.Context, cartID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return err
	}

	if err := touchCart(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func touchCart(ctx context.Context, tx pgx.Tx, cartID int64) error {
	_, err := tx.Exec(ctx, `UPDATE carts SET updated_at = NOW() WHERE id = $1`, cartID)
	return err
}
