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

// UserUseCaseInterface define a interface para o use case
type UserUseCaseInterface interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, name, email, role string) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CreateUserRequest representa a requisição para cadastrar um usuário
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// UserHandler contém os handlers HTTP
type UserHandler struct {
	useCase UserUseCaseInterface
	tracer  trace.Tracer
}

// NewUserHandler cria uma nova instância de UserHandler
func NewUserHandler(useCase UserUseCaseInterface, tracer trace.Tracer) *UserHandler {
	return &UserHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// ListUsers lista todos os usuários
func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "list_users")
	defer span.End()

	users, err := h.useCase.ListUsers(ctx)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser busca um usuário pelo ID
func (h *UserHandler) GetUser(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_user")
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser cadastra um novo usuário
func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_user")
	defer span.End()

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.useCase.CreateUser(ctx, req.Name, req.Email, req.Role)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	span.SetAttributes(attribute.Int64("user_id", user.ID))
	c.JSON(http.StatusCreated, user)
}

// DeleteUser remove um usuário pelo ID
func (h *UserHandler) DeleteUser(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "delete_user")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	span.SetAttributes(attribute.Int64("user_id", id))

	if err := h.useCase.DeleteUser(ctx, id); err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cannot delete: user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck verifica a saúde do serviço
func (h *UserHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "users-service",
	})
}
