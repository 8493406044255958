// Package notify posts one-line chat-ops summaries to a Slack incoming
// webhook. Dispatch is best effort and never fails the request.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

type Webhook struct {
	url    string
	client *http.Client
}

// FromEnv returns nil when SLACK_WEBHOOK_URL is unset, which disables
// chat-ops notifications.
func FromEnv() *Webhook {
	url := os.Getenv("SLACK_WEBHOOK_URL")
	if url == "" {
		return nil
	}
	return New(url)
}

func New(url string) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Webhook) Post(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook returned %s", resp.Status)
	}
	return nil
}
