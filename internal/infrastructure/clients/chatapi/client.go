package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/zatekoja/clinicsite/internal/domain/providers"
)

// DefaultTimeout is the budget for one reply round trip
const DefaultTimeout = 15 * time.Second

type replyRequest struct {
	Message string `json:"message"`
}

type replyResponse struct {
	Reply string `json:"reply"`
}

// HTTPClient posts visitor messages to an external reply service
type HTTPClient struct {
	timeout    time.Duration
	httpClient *http.Client
}

var _ providers.ChatReplyProvider = (*HTTPClient)(nil)

// NewClient creates a reply client; a non-positive timeout uses DefaultTimeout
func NewClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Reply sends message to endpoint and returns the service's reply. Errors
// wrap providers.ErrChatTimeout, providers.ErrChatUnavailable or
// providers.ErrChatBadResponse.
func (c *HTTPClient) Reply(ctx context.Context, endpoint, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(replyRequest{Message: message})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrChatUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(ctx, err) {
			return "", fmt.Errorf("%w after %s", providers.ErrChatTimeout, c.timeout)
		}
		return "", fmt.Errorf("%w: %v", providers.ErrChatUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", providers.ErrChatBadResponse, resp.StatusCode)
	}

	var out replyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if isTimeout(ctx, err) {
			return "", fmt.Errorf("%w after %s", providers.ErrChatTimeout, c.timeout)
		}
		return "", fmt.Errorf("%w: %v", providers.ErrChatBadResponse, err)
	}
	if strings.TrimSpace(out.Reply) == "" {
		return "", fmt.Errorf("%w: empty reply", providers.ErrChatBadResponse)
	}

	return out.Reply, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
