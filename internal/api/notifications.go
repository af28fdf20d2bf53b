package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListNotifications fetches the notification inbox.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var res notificationsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/notifications", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Notifications, nil
}

// MarkNotificationRead marks one inbox entry as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/notifications/"+url.PathEscape(id)+"/read", nil, nil, nil)
}
