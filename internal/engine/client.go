package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// runtimeHTTPTimeout bounds a single call to the runtime sidecar. Scoring
// and wait solving are fast; anything slower is a sidecar fault.
const runtimeHTTPTimeout = 30 * time.Second

// httpClient is the shared HTTP client for runtime requests.
var httpClient = &http.Client{Timeout: runtimeHTTPTimeout}

// Client speaks JSON over HTTP to the mahjong runtime sidecar, which
// exposes the calculator at /calc and the wait solver at /machi.
type Client struct {
	BaseURL string
	Verbose bool
}

// NewClient creates a runtime client for the given base URL.
func NewClient(baseURL string, verbose bool) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Verbose: verbose}
}

// Calculate sends a scoring request and decodes the result. Transport and
// sidecar-level failures come back as errors; a scorable-but-invalid hand
// comes back inside CalcResult.Error.
func (c *Client) Calculate(ctx context.Context, req *CalcRequest) (*CalcResult, error) {
	if c.Verbose {
		slog.Info("runtime.calc",
			"tiles", len(req.Tiles),
			"melds", len(req.Melds),
			"doras", len(req.Doras),
			"has_aka", req.HasAka,
			"is_tsumo", req.IsTsumo,
		)
	}
	body, err := c.post(ctx, "/calc", req)
	if err != nil {
		return nil, err
	}
	var result CalcResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("runtime returned malformed calc result: %w", err)
	}
	return &result, nil
}

// Solve sends the 13-tile hand to the wait solver. The sidecar answers
// with {"result": <string>} or {"result": [<tile>, ...]}.
func (c *Client) Solve(ctx context.Context, tiles []string) (*SolveResult, error) {
	body, err := c.post(ctx, "/machi", map[string]any{"tiles": tiles})
	if err != nil {
		return nil, err
	}
	result := gjson.GetBytes(body, "result")
	if !result.Exists() {
		return nil, fmt.Errorf("runtime returned malformed solve result: missing result")
	}
	if result.IsArray() {
		items := result.Array()
		waits := make([]string, 0, len(items))
		for _, item := range items {
			waits = append(waits, item.String())
		}
		return &SolveResult{Waits: waits, HasWaits: true}, nil
	}
	return &SolveResult{Message: result.String()}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal runtime payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mahjong runtime request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read runtime response: %w", err)
	}
	if c.Verbose {
		slog.Info("runtime.response", "path", path, "status", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", formatRuntimeError(path, resp.StatusCode, body))
	}
	return body, nil
}

// formatRuntimeError renders a sidecar failure as a single descriptive
// string, pulling a message out of the body when one is there.
func formatRuntimeError(path string, statusCode int, rawBody []byte) string {
	status := fmt.Sprintf("%d", statusCode)
	if text := http.StatusText(statusCode); text != "" {
		status = fmt.Sprintf("%d %s", statusCode, text)
	}
	for _, key := range []string{"error", "message", "detail"} {
		if msg := strings.TrimSpace(gjson.GetBytes(rawBody, key).String()); msg != "" {
			return fmt.Sprintf("runtime %s returned HTTP %s: %s", path, status, msg)
		}
	}
	if preview := compactPreview(rawBody, 280); preview != "" {
		return fmt.Sprintf("runtime %s returned HTTP %s with unparsed body: %s", path, status, preview)
	}
	return fmt.Sprintf("runtime %s returned HTTP %s with empty error body", path, status)
}

func compactPreview(rawBody []byte, maxLen int) string {
	trimmed := strings.TrimSpace(string(rawBody))
	if trimmed == "" {
		return ""
	}
	clean := strings.Join(strings.Fields(trimmed), " ")
	if len(clean) <= maxLen {
		return clean
	}
	return clean[:maxLen] + "..."
}
