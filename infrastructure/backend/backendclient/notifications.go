package backendclient

import (
	"context"
	"fmt"
	"net/http"

	backenddomain "github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
)

func (c *BackendClient) ListNotifications(ctx context.Context) ([]backenddomain.NotificationRead, error) {
	resp := make([]backenddomain.NotificationRead, 0)
	if err := c.do(ctx, request{method: http.MethodGet, path: "/notifications"}, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *BackendClient) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/notifications/%d/read", id),
	}, nil)
}
