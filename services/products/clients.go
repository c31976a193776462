package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserGateway consulta o serviço de usuários
type UserGateway interface {
	GetUser(ctx context.Context, id int64) (*User, error)
}

// HTTPUserGateway implementa UserGateway com chamadas HTTP síncronas.
// Sem retry: falha de transporte vira ErrUsersServiceUnavailable na hora.
type HTTPUserGateway struct {
	client  *resty.Client
	baseURL string
}

// NewHTTPUserGateway cria uma nova instância de HTTPUserGateway
func NewHTTPUserGateway(baseURL string, timeout time.Duration) *HTTPUserGateway {
	return &HTTPUserGateway{
		client:  resty.New().SetTimeout(timeout),
		baseURL: baseURL,
	}
}

// GetUser busca um usuário no serviço de usuários
func (g *HTTPUserGateway) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get(fmt.Sprintf("%s/api/usuarios/%d", g.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsersServiceUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUsersServiceUnavailable, resp.StatusCode())
	}
	return &user, nil
}
