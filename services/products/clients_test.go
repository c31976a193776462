package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPUserGateway_GetUser_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usuarios/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"name":"Amanda Rocha","email":"amanda@perfulandia.test","role":"ADMIN"}`))
	}))
	defer server.Close()

	gateway := NewHTTPUserGateway(server.URL, time.Second)

	// Act
	user, err := gateway.GetUser(context.Background(), 42)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Amanda Rocha", user.Name)
}

func TestHTTPUserGateway_GetUser_NotFound(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gateway := NewHTTPUserGateway(server.URL, time.Second)

	// Act
	user, err := gateway.GetUser(context.Background(), 99)

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHTTPUserGateway_GetUser_UpstreamError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := NewHTTPUserGateway(server.URL, time.Second)

	// Act
	user, err := gateway.GetUser(context.Background(), 42)

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUsersServiceUnavailable)
}

func TestHTTPUserGateway_GetUser_Timeout(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	gateway := NewHTTPUserGateway(server.URL, 50*time.Millisecond)

	// Act
	user, err := gateway.GetUser(context.Background(), 42)

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUsersServiceUnavailable)
}
