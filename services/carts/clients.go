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

// ProductGateway consulta o serviço de produtos
type ProductGateway interface {
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

// HTTPUserGateway implementa UserGateway com chamadas HTTP síncronas.
// Sem retry: falha de transporte vira UpstreamUnavailable na hora.
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
		return nil, upstreamUnavailable("users_service_unavailable",
			fmt.Sprintf("failed to reach the users service: %v", err))
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, notFound("user_not_found",
			fmt.Sprintf("user %d does not exist in the users service", id))
	}
	if resp.IsError() {
		return nil, upstreamUnavailable("users_service_unavailable",
			fmt.Sprintf("users service returned status %d", resp.StatusCode()))
	}
	return &user, nil
}

// HTTPProductGateway implementa ProductGateway com chamadas HTTP síncronas
type HTTPProductGateway struct {
	client  *resty.Client
	baseURL string
}

// NewHTTPProductGateway cria uma nova instância de HTTPProductGateway
func NewHTTPProductGateway(baseURL string, timeout time.Duration) *HTTPProductGateway {
	return &HTTPProductGateway{
		client:  resty.New().SetTimeout(timeout),
		baseURL: baseURL,
	}
}

// GetProduct busca um produto no serviço de produtos
func (g *HTTPProductGateway) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&product).
		Get(fmt.Sprintf("%s/api/productos/%d", g.baseURL, id))
	if err != nil {
		return nil, upstreamUnavailable("products_service_unavailable",
			fmt.Sprintf("failed to reach the products service: %v", err))
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, notFound("product_not_found",
			fmt.Sprintf("product not found with ID: %d", id))
	}
	if resp.IsError() {
		return nil, upstreamUnavailable("products_service_unavailable",
			fmt.Sprintf("products service returned status %d", resp.StatusCode()))
	}
	return &product, nil
}
