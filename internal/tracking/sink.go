package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sink delivers rendered platform calls to the outside world. Delivery
// failures are swallowed by the dispatcher; a sink must never block the
// funnel for long.
type Sink interface {
	Deliver(ctx context.Context, call Call) error
}

// HTTPSink posts calls as JSON to a collector endpoint. Used when the
// server relays conversions to a tag-forwarding service.
type HTTPSink struct {
	url    string
	client *http.Client
}

// NewHTTPSink creates a sink posting to the given collector URL.
func NewHTTPSink(url string) *HTTPSink {
	return &HTTPSink{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Deliver posts one call to the collector.
func (s *HTTPSink) Deliver(ctx context.Context, call Call) error {
	body, err := json.Marshal(call)
	if err != nil {
		return fmt.Errorf("tracking sink: marshal call: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("tracking sink: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("tracking sink: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("tracking sink: collector status %d", resp.StatusCode)
	}
	return nil
}
