package calendar

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"venuebook/internal/pkg/config"
)

// Notifier delivers reservation events to the external calendar service.
// Delivery is best effort: the booking flow never waits on it.
type Notifier interface {
	Notify(ctx context.Context, payload []byte) error
}

type HTTPNotifier struct {
	endpoint string
	client   *http.Client
}

func NewHTTPNotifier(cfg config.CalendarConfig) *HTTPNotifier {
	return &HTTPNotifier{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (n *HTTPNotifier) Notify(ctx context.Context, payload []byte) error {
	if n.endpoint == "" {
		// Calendar sync disabled
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("calendar endpoint returned %d", resp.StatusCode)
	}
	return nil
}
