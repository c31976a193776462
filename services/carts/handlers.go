package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CartUseCaseInterface define a interface para o use case
type CartUseCaseInterface interface {
	CreateCart(ctx context.Context, userID int64) (*Cart, error)
	GetCart(ctx context.Context, id int64) (*Cart, error)
	ListCarts(ctx context.Context) ([]Cart, error)
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (*CartItem, error)
	RemoveItemQuantity(ctx context.Context, cartID, productID int64, quantity int) (*Cart, error)
	RemoveItemCompletely(ctx context.Context, cartID, productID int64) (*Cart, error)
	ClearCart(ctx context.Context, cartID int64) (*Cart, error)
	DeleteCart(ctx context.Context, id int64) error
}

// CartHandler contém os handlers HTTP
type CartHandler struct {
	useCase CartUseCaseInterface
	tracer  trace.Tracer
}

// NewCartHandler cria uma nova instância de CartHandler
func NewCartHandler(useCase CartUseCaseInterface, tracer trace.Tracer) *CartHandler {
	return &CartHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// ListCarts lista todos os carrinhos
func (h *CartHandler) ListCarts(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "list_carts")
	defer span.End()

	carts, err := h.useCase.ListCarts(ctx)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, carts)
}

// GetCart busca um carrinho pelo ID
func (h *CartHandler) GetCart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_cart")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int64("cart_id", id))

	cart, err := h.useCase.GetCart(ctx, id)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// CreateCart cria um carrinho para um usuário
func (h *CartHandler) CreateCart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_cart")
	defer span.End()

	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int64("user_id", userID))

	cart, err := h.useCase.CreateCart(ctx, userID)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cart)
}

// AddItem adiciona um produto ao carrinho; devolve a linha afetada
func (h *CartHandler) AddItem(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "add_item")
	defer span.End()

	cartID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, quantity, ok := itemQueryParams(c)
	if !ok {
		return
	}
	span.SetAttributes(
		attribute.Int64("cart_id", cartID),
		attribute.Int64("product_id", productID),
		attribute.Int("quantity", quantity),
	)

	item, err := h.useCase.AddItem(ctx, cartID, productID, quantity)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// RemoveItemQuantity retira uma quantidade de um produto do carrinho
func (h *CartHandler) RemoveItemQuantity(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "remove_item_quantity")
	defer span.End()

	cartID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, quantity, ok := itemQueryParams(c)
	if !ok {
		return
	}
	span.SetAttributes(
		attribute.Int64("cart_id", cartID),
		attribute.Int64("product_id", productID),
		attribute.Int("quantity", quantity),
	)

	cart, err := h.useCase.RemoveItemQuantity(ctx, cartID, productID, quantity)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// RemoveItemCompletely remove um produto do carrinho sem olhar a quantidade
func (h *CartHandler) RemoveItemCompletely(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "remove_item_completely")
	defer span.End()

	cartID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	span.SetAttributes(
		attribute.Int64("cart_id", cartID),
		attribute.Int64("product_id", productID),
	)

	cart, err := h.useCase.RemoveItemCompletely(ctx, cartID, productID)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// ClearCart esvazia o carrinho
func (h *CartHandler) ClearCart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "clear_cart")
	defer span.End()

	cartID, ok := pathID(c, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int64("cart_id", cartID))

	cart, err := h.useCase.ClearCart(ctx, cartID)
	if err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// DeleteCart remove um carrinho pelo ID
func (h *CartHandler) DeleteCart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "delete_cart")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int64("cart_id", id))

	if err := h.useCase.DeleteCart(ctx, id); err != nil {
		span.RecordError(err)
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck verifica a saúde do serviço
func (h *CartHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "carts-service",
	})
}

// pathID extrai um ID numérico do path; responde 400 quando inválido
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid " + name,
			"reason": "invalid_id",
		})
		return 0, false
	}
	return id, true
}

// itemQueryParams extrai productId e quantity da query string
func itemQueryParams(c *gin.Context) (int64, int, bool) {
	productID, err := strconv.ParseInt(c.Query("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid productId",
			"reason": "invalid_product_id",
		})
		return 0, 0, false
	}
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid quantity",
			"reason": "invalid_quantity",
		})
		return 0, 0, false
	}
	return productID, quantity, true
}

// respondError é a única tradução de erros do domínio para status HTTP
func respondError(c *gin.Context, err error) {
	var cartErr *CartError
	if !errors.As(err, &cartErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "internal error",
			"reason": "internal",
		})
		return
	}
	c.JSON(statusFromKind(cartErr.Kind), gin.H{
		"error":  cartErr.Message,
		"reason": cartErr.Reason,
	})
}

func statusFromKind(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
