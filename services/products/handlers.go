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

// ProductUseCaseInterface define a interface para o use case
type ProductUseCaseInterface interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, name string, price float64, stock int) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetUser(ctx context.Context, id int64) (*User, error)
}

// CreateProductRequest representa a requisição para cadastrar um produto
type CreateProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Stock int     `json:"stock" binding:"gte=0"`
}

// ProductHandler contém os handlers HTTP
type ProductHandler struct {
	useCase ProductUseCaseInterface
	tracer  trace.Tracer
}

// NewProductHandler cria uma nova instância de ProductHandler
func NewProductHandler(useCase ProductUseCaseInterface, tracer trace.Tracer) *ProductHandler {
	return &ProductHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// ListProducts lista todos os produtos
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "list_products")
	defer span.End()

	products, err := h.useCase.ListProducts(ctx)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct busca um produto pelo ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_product")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	span.SetAttributes(attribute.Int64("product_id", id))

	product, err := h.useCase.GetProduct(ctx, id)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct cadastra um novo produto
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_product")
	defer span.End()

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.useCase.CreateProduct(ctx, req.Name, req.Price, req.Stock)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	span.SetAttributes(attribute.Int64("product_id", product.ID))
	c.JSON(http.StatusCreated, product)
}

// DeleteProduct remove um produto pelo ID
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "delete_product")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	span.SetAttributes(attribute.Int64("product_id", id))

	if err := h.useCase.DeleteProduct(ctx, id); err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cannot delete: product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUser busca um usuário através do serviço de usuários
func (h *ProductHandler) GetUser(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_user_via_users_service")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	span.SetAttributes(attribute.Int64("user_id", id))

	user, err := h.useCase.GetUser(ctx, id)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, ErrUsersServiceUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// HealthCheck verifica a saúde do serviço
func (h *ProductHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "products-service",
	})
}
