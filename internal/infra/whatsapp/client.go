package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"franguinho-pos/internal/pkg/config"
	"franguinho-pos/internal/pkg/errs"

	"github.com/google/uuid"
)

// Client delivers outbound messages to a per-store webhook bridge.
type Client struct {
	defaultWebhookURL string
	httpClient        *http.Client
}

func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		defaultWebhookURL: cfg.DefaultWebhookURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Send posts a text message for the given store. webhookURL overrides the
// configured default when the store has its own bridge endpoint.
func (c *Client) Send(ctx context.Context, storeID uuid.UUID, clientNumber, message string, webhookURL *string) error {
	url := c.defaultWebhookURL
	if webhookURL != nil && *webhookURL != "" {
		url = *webhookURL
	}
	if url == "" {
		return errs.New("no webhook URL configured for store")
	}

	payload := OutboundMessage{
		ClientNumber: clientNumber,
		Message:      message,
		StoreID:      storeID.String(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal outbound message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to post outbound message")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errs.Newf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
