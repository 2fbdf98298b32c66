package vision

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
)

// detectHTTPTimeout bounds a single detector call; model inference on a
// hand photo takes seconds, not minutes.
const detectHTTPTimeout = 2 * time.Minute

var httpClient = &http.Client{Timeout: detectHTTPTimeout}

// Client calls the detector sidecar, which shares the host filesystem and
// accepts an image path.
type Client struct {
	BaseURL string
	Verbose bool
}

// NewClient creates a detector client. An empty base URL means no detector
// is deployed; Detect then fails with a descriptive message.
func NewClient(baseURL string, verbose bool) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Verbose: verbose}
}

type detectRequest struct {
	Path string `json:"path"`
}

type detectResponse struct {
	Error      string      `json:"error,omitempty"`
	Detections []Detection `json:"detections"`
	Labels     []string    `json:"labels"`
}

// Detect asks the sidecar to run tile detection on the given image file.
func (c *Client) Detect(ctx context.Context, imagePath string) ([]Detection, []string, error) {
	if c.BaseURL == "" {
		return nil, nil, fmt.Errorf("tile detector not configured: set KIFU_DETECTOR_URL")
	}

	body, err := json.Marshal(detectRequest{Path: imagePath})
	if err != nil {
		return nil, nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/detect", bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, fmt.Errorf("detector request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read detector response: %w", err)
	}
	if c.Verbose {
		slog.Info("detector.response", "status", resp.StatusCode, "bytes", len(raw))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("detector returned HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var decoded detectResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, nil, fmt.Errorf("detector returned malformed response: %w", err)
	}
	if decoded.Error != "" {
		return nil, nil, fmt.Errorf("%s", decoded.Error)
	}
	return decoded.Detections, decoded.Labels, nil
}
