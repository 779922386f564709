package backendclient

import (
	"context"
	"net/http"

	backenddomain "github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
)

// Login não altera a sessão; quem chama decide quando aplicar o token
func (c *BackendClient) Login(ctx context.Context, req backenddomain.LoginRequest) (*backenddomain.TokenResponse, error) {
	var resp backenddomain.TokenResponse
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      req,
		anonymous: true,
		policy:    loginPolicy,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *BackendClient) RegisterUser(ctx context.Context, req backenddomain.UserCreate) (*backenddomain.UserRead, error) {
	var resp backenddomain.UserRead
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/users",
		body:      req,
		anonymous: true,
		policy:    registerPolicy,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *BackendClient) CurrentUser(ctx context.Context) (*backenddomain.UserRead, error) {
	var resp backenddomain.UserRead
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users/me"}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
