package main

import (
	"time"
)

// Cart representa o carrinho de compras de um usuário. O usuário dono é
// validado contra o serviço de usuários uma única vez, na criação, e nunca
// muda depois.
type Cart struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// CartItem representa uma linha de produto dentro de um carrinho.
// A referência ao carrinho é só o ID, nunca o objeto, para não haver ciclo.
// Quantity é sempre > 0: uma linha que chega a zero é removida, não gravada.
type CartItem struct {
	ID        int64 `json:"id" db:"id"`
	CartID    int64 `json:"cart_id" db:"cart_id"`
	ProductID int64 `json:"product_id" db:"product_id"`
	Quantity  int   `json:"quantity" db:"quantity"`
}

// NewCart cria uma nova instância de Cart sem itens
func NewCart(userID int64) *Cart {
	return &Cart{
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// FindItem localiza a linha de um produto no carrinho. Há no máximo uma
// linha por produto.
func (c *Cart) FindItem(productID int64) (*CartItem, bool) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// User representa o usuário retornado pelo serviço de usuários
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Product representa o produto retornado pelo serviço de produtos
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}
