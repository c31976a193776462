package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel"
)

// MockCartUseCase simula o use case para testar só a borda HTTP
type MockCartUseCase struct {
	mock.Mock
}

func (m *MockCartUseCase) CreateCart(ctx context.Context, userID int64) (*Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockCartUseCase) GetCart(ctx context.Context, id int64) (*Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockCartUseCase) ListCarts(ctx context.Context) ([]Cart, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Cart), args.Error(1)
}

func (m *MockCartUseCase) AddItem(ctx context.Context, cartID, productID int64, quantity int) (*CartItem, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockCartUseCase) RemoveItemQuantity(ctx context.Context, cartID, productID int64, quantity int) (*Cart, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockCartUseCase) RemoveItemCompletely(ctx context.Context, cartID, productID int64) (*Cart, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockCartUseCase) ClearCart(ctx context.Context, cartID int64) (*Cart, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockCartUseCase) DeleteCart(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTestRouter(useCase CartUseCaseInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewCartHandler(useCase, otel.Tracer("test"))
	registerRoutes(r, handler)
	return r
}

func performRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func responseReason(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	reason, _ := body["reason"].(string)
	return reason
}

func TestCartHandler_GetCart_NotFoundMapsTo404(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	mockUC.On("GetCart", mock.Anything, int64(5)).
		Return(nil, notFound("cart_not_found", "cart not found with ID: 5"))
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodGet, "/api/carts/5")

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "cart_not_found", responseReason(t, w))
}

func TestCartHandler_CreateCart_UpstreamMapsTo502(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	mockUC.On("CreateCart", mock.Anything, int64(42)).
		Return(nil, upstreamUnavailable("users_service_unavailable", "failed to reach the users service"))
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodPost, "/api/carts/user/42")

	// Assert
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "users_service_unavailable", responseReason(t, w))
}

func TestCartHandler_CreateCart_Success(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	cart := cartWithItems(1, 42)
	mockUC.On("CreateCart", mock.Anything, int64(42)).Return(cart, nil)
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodPost, "/api/carts/user/42")

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	var got Cart
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.UserID)
}

func TestCartHandler_AddItem_InsufficientStockMapsTo400(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	mockUC.On("AddItem", mock.Anything, int64(1), int64(7), 3).
		Return(nil, invalidArgument("insufficient_stock", "insufficient stock for product Essenza Nocturna 100ml: 2 available"))
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodPost, "/api/carts/1/items?productId=7&quantity=3")

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "insufficient_stock", responseReason(t, w))
}

func TestCartHandler_AddItem_ReturnsAffectedItem(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	item := &CartItem{ID: 10, CartID: 1, ProductID: 7, Quantity: 3}
	mockUC.On("AddItem", mock.Anything, int64(1), int64(7), 3).Return(item, nil)
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodPost, "/api/carts/1/items?productId=7&quantity=3")

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var got CartItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ProductID)
	assert.Equal(t, 3, got.Quantity)
}

func TestCartHandler_AddItem_MalformedQuantityRejectedAtTheEdge(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodPost, "/api/carts/1/items?productId=7&quantity=abc")

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartHandler_DeleteCart_NoContent(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	mockUC.On("DeleteCart", mock.Anything, int64(1)).Return(nil)
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodDelete, "/api/carts/1")

	// Assert
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCartHandler_UnexpectedErrorMapsTo500(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	mockUC.On("ClearCart", mock.Anything, int64(1)).Return(nil, errors.New("connection reset by peer"))
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodPut, "/api/carts/1/empty")

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal", responseReason(t, w))
	// The raw transport error must not leak to the client
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestCartHandler_RemoveItemCompletely_NotFoundMapsTo404(t *testing.T) {
	// Arrange
	mockUC := new(MockCartUseCase)
	mockUC.On("RemoveItemCompletely", mock.Anything, int64(1), int64(7)).
		Return(nil, notFound("item_not_found", "product 7 is not in cart 1"))
	r := setupTestRouter(mockUC)

	// Act
	w := performRequest(r, http.MethodDelete, "/api/carts/1/products/7")

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "item_not_found", responseReason(t, w))
}
