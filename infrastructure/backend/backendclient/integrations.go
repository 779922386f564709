package backendclient

import (
	"context"
	"fmt"
	"net/http"

	backenddomain "github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
)

// connectPath monta a rota de criação; userID > 0 usa a variante legada sem autenticação
func connectPath(provider string, userID int) (string, bool) {
	if userID > 0 {
		return fmt.Sprintf("/integrations/%s/%d", provider, userID), true
	}
	return "/integrations/" + provider, false
}

func (c *BackendClient) ConnectFacebook(ctx context.Context, userID int, req backenddomain.FacebookIntegrationCreate) (*backenddomain.IntegrationRead, error) {
	path, anonymous := connectPath("facebook", userID)

	var resp backenddomain.IntegrationRead
	err := c.do(ctx, request{method: http.MethodPost, path: path, body: req, anonymous: anonymous}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *BackendClient) ConnectAdSense(ctx context.Context, userID int, req backenddomain.AdSenseIntegrationCreate) (*backenddomain.IntegrationRead, error) {
	path, anonymous := connectPath("adsense", userID)

	var resp backenddomain.IntegrationRead
	err := c.do(ctx, request{method: http.MethodPost, path: path, body: req, anonymous: anonymous}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *BackendClient) ListIntegrations(ctx context.Context) ([]backenddomain.IntegrationRead, error) {
	resp := make([]backenddomain.IntegrationRead, 0)
	if err := c.do(ctx, request{method: http.MethodGet, path: "/integrations"}, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *BackendClient) UpdateFacebookIntegration(ctx context.Context, id int, req backenddomain.FacebookIntegrationUpdate) (*backenddomain.IntegrationRead, error) {
	var resp backenddomain.IntegrationRead
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/integrations/facebook/%d", id),
		body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *BackendClient) UpdateAdSenseIntegration(ctx context.Context, id int, req backenddomain.AdSenseIntegrationUpdate) (*backenddomain.IntegrationRead, error) {
	var resp backenddomain.IntegrationRead
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/integrations/adsense/%d", id),
		body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// DeleteIntegration devolve ErrNotFound quando o id já não existe; não há retry
func (c *BackendClient) DeleteIntegration(ctx context.Context, id int) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/integrations/%d", id),
	}, nil)
}
