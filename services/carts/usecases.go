package main

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CartUseCase contém a lógica de orquestração do carrinho: validação dos
// colaboradores, checagem de estoque e contabilidade das linhas.
type CartUseCase struct {
	repository   Repository
	users        UserGateway
	products     ProductGateway
	tracer       trace.Tracer
	itemsAdded   metric.Int64Counter
	itemsRemoved metric.Int64Counter
}

// NewCartUseCase cria uma nova instância de CartUseCase
func NewCartUseCase(repository Repository, users UserGateway, products ProductGateway) *CartUseCase {
	meter := otel.Meter("carts-service")
	itemsAdded, _ := meter.Int64Counter("cart_items_added_total")
	itemsRemoved, _ := meter.Int64Counter("cart_items_removed_total")

	return &CartUseCase{
		repository:   repository,
		users:        users,
		products:     products,
		tracer:       otel.Tracer("carts-service"),
		itemsAdded:   itemsAdded,
		itemsRemoved: itemsRemoved,
	}
}

// CreateCart valida o usuário no serviço de usuários e persiste um carrinho
// vazio. O dono é validado uma única vez, aqui.
func (uc *CartUseCase) CreateCart(ctx context.Context, userID int64) (*Cart, error) {
	ctx, span := uc.tracer.Start(ctx, "create_cart")
	defer span.End()
	span.SetAttributes(attribute.Int64("user_id", userID))

	if _, err := uc.users.GetUser(ctx, userID); err != nil {
		span.RecordError(err)
		log.Printf("❌ Cart creation refused for user %d: %v", userID, err)
		return nil, err
	}

	cart := NewCart(userID)
	if err := uc.repository.CreateCart(ctx, cart); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	span.SetAttributes(attribute.Int64("cart_id", cart.ID))
	log.Printf("🛒 Cart %d created for user %d", cart.ID, userID)
	return cart, nil
}

// GetCart busca um carrinho pelo ID
func (uc *CartUseCase) GetCart(ctx context.Context, id int64) (*Cart, error) {
	cart, err := uc.repository.GetCart(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil {
		return nil, notFound("cart_not_found", fmt.Sprintf("cart not found with ID: %d", id))
	}
	return cart, nil
}

// ListCarts retorna todos os carrinhos
func (uc *CartUseCase) ListCarts(ctx context.Context) ([]Cart, error) {
	carts, err := uc.repository.ListCarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list carts: %w", err)
	}
	return carts, nil
}

// AddItem adiciona um produto ao carrinho, somando a quantidade quando a
// linha já existe. A leitura de estoque é um snapshot do serviço de produtos:
// nada é reservado entre a checagem e o commit, então o estoque real pode
// mudar nesse intervalo.
func (uc *CartUseCase) AddItem(ctx context.Context, cartID, productID int64, quantity int) (*CartItem, error) {
	ctx, span := uc.tracer.Start(ctx, "add_item")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("cart_id", cartID),
		attribute.Int64("product_id", productID),
		attribute.Int("quantity", quantity),
	)

	if quantity <= 0 {
		return nil, invalidArgument("invalid_quantity", "quantity must be a positive number")
	}

	cart, err := uc.GetCart(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	product, err := uc.products.GetProduct(ctx, productID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if product.Stock < quantity {
		err := invalidArgument("insufficient_stock",
			fmt.Sprintf("insufficient stock for product %s: %d available", product.Name, product.Stock))
		span.RecordError(err)
		return nil, err
	}

	if item, ok := cart.FindItem(productID); ok {
		item.Quantity += quantity
		if err := uc.repository.UpdateItemQuantity(ctx, item); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		uc.itemsAdded.Add(ctx, int64(quantity), metric.WithAttributes(attribute.Int64("product_id", productID)))
		log.Printf("➕ Cart %d: product %d quantity raised to %d", cartID, productID, item.Quantity)
		return item, nil
	}

	item := &CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	if err := uc.repository.InsertItem(ctx, item); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to insert cart item: %w", err)
	}
	uc.itemsAdded.Add(ctx, int64(quantity), metric.WithAttributes(attribute.Int64("product_id", productID)))
	log.Printf("➕ Cart %d: product %d added with quantity %d", cartID, productID, quantity)
	return item, nil
}

// RemoveItemQuantity retira uma quantidade do produto no carrinho. Quando a
// quantidade pedida esgota a linha, a linha é removida em vez de ficar com
// quantidade zero ou negativa.
func (uc *CartUseCase) RemoveItemQuantity(ctx context.Context, cartID, productID int64, quantity int) (*Cart, error) {
	ctx, span := uc.tracer.Start(ctx, "remove_item_quantity")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("cart_id", cartID),
		attribute.Int64("product_id", productID),
		attribute.Int("quantity", quantity),
	)

	if quantity <= 0 {
		return nil, invalidArgument("invalid_quantity", "quantity to remove must be greater than zero")
	}

	cart, err := uc.GetCart(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	item, ok := cart.FindItem(productID)
	if !ok {
		err := notFound("item_not_found", fmt.Sprintf("product %d is not in cart %d", productID, cartID))
		span.RecordError(err)
		return nil, err
	}

	if item.Quantity <= quantity {
		if err := uc.repository.DeleteItem(ctx, item.ID, cartID); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to delete cart item: %w", err)
		}
		log.Printf("➖ Cart %d: product %d removed entirely", cartID, productID)
	} else {
		item.Quantity -= quantity
		if err := uc.repository.UpdateItemQuantity(ctx, item); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		log.Printf("➖ Cart %d: product %d quantity lowered to %d", cartID, productID, item.Quantity)
	}
	uc.itemsRemoved.Add(ctx, int64(quantity), metric.WithAttributes(attribute.Int64("product_id", productID)))

	return uc.GetCart(ctx, cartID)
}

// RemoveItemCompletely remove a linha do produto independente da quantidade
func (uc *CartUseCase) RemoveItemCompletely(ctx context.Context, cartID, productID int64) (*Cart, error) {
	ctx, span := uc.tracer.Start(ctx, "remove_item_completely")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("cart_id", cartID),
		attribute.Int64("product_id", productID),
	)

	cart, err := uc.GetCart(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	item, ok := cart.FindItem(productID)
	if !ok {
		err := notFound("item_not_found", fmt.Sprintf("product %d is not in cart %d", productID, cartID))
		span.RecordError(err)
		return nil, err
	}

	if err := uc.repository.DeleteItem(ctx, item.ID, cartID); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}
	uc.itemsRemoved.Add(ctx, int64(item.Quantity), metric.WithAttributes(attribute.Int64("product_id", productID)))
	log.Printf("➖ Cart %d: product %d removed entirely", cartID, productID)

	return uc.GetCart(ctx, cartID)
}

// ClearCart esvazia o carrinho. Esvaziar um carrinho já vazio é idempotente.
func (uc *CartUseCase) ClearCart(ctx context.Context, cartID int64) (*Cart, error) {
	ctx, span := uc.tracer.Start(ctx, "clear_cart")
	defer span.End()
	span.SetAttributes(attribute.Int64("cart_id", cartID))

	if _, err := uc.GetCart(ctx, cartID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := uc.repository.ClearItems(ctx, cartID); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	log.Printf("🧹 Cart %d emptied", cartID)

	return uc.GetCart(ctx, cartID)
}

// DeleteCart remove o carrinho; as linhas caem em cascata
func (uc *CartUseCase) DeleteCart(ctx context.Context, id int64) error {
	ctx, span := uc.tracer.Start(ctx, "delete_cart")
	defer span.End()
	span.SetAttributes(attribute.Int64("cart_id", id))

	deleted, err := uc.repository.DeleteCart(ctx, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	if !deleted {
		err := notFound("cart_not_found", fmt.Sprintf("cannot delete: cart not found with ID: %d", id))
		span.RecordError(err)
		return err
	}

	log.Printf("🗑️  Cart %d deleted", id)
	return nil
}
