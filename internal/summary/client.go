// Package summary is the client for the PortSentinel execution-summary API.
// The service itself lives outside this repository; this package owns only
// the two calls the dashboard makes and the typed records they return.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL points at a local development backend.
	DefaultBaseURL = "http://localhost:8000"

	// requestTimeout bounds every call so a dead backend resolves to an
	// error instead of pinning an operation in its running state.
	requestTimeout = 30 * time.Second

	// maxResponseBytes caps response bodies.
	maxResponseBytes = 1 << 20
)

// ServiceStatus is the health record returned by the summary service.
type ServiceStatus struct {
	Status            string `json:"status"`
	Service           string `json:"service"`
	Agent4Integration string `json:"agent_4_integration"`
}

// ExecutionSummary is the record returned by a summary-generation run.
type ExecutionSummary struct {
	IncidentID string        `json:"incident_id"`
	Summary    SummaryDetail `json:"summary"`
}

// SummaryDetail is the nested summary payload.
type SummaryDetail struct {
	ExecutionStatus    string `json:"execution_status"`
	EscalationRequired bool   `json:"escalation_required"`
	SummaryPath        string `json:"summary_path"`
}

// Client talks to the summary service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the given base URL. An empty baseURL falls
// back to DefaultBaseURL; a nil logger is replaced with a no-op logger.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// GetServiceStatus checks the summary service health endpoint.
func (c *Client) GetServiceStatus(ctx context.Context) (*ServiceStatus, error) {
	var status ServiceStatus
	if err := c.do(ctx, http.MethodGet, "/api/summary/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GenerateExecutionSummary triggers summary generation for an incident.
// The payload carries generation options and is sent as the JSON body.
func (c *Client) GenerateExecutionSummary(ctx context.Context, incidentID string, payload map[string]any) (*ExecutionSummary, error) {
	if incidentID == "" {
		return nil, fmt.Errorf("incident id is required")
	}
	if payload == nil {
		payload = map[string]any{}
	}
	var result ExecutionSummary
	path := fmt.Sprintf("/api/summary/generate/%s", incidentID)
	if err := c.do(ctx, http.MethodPost, path, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do issues a single JSON request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "PortSentinel/1.0 (summary client)")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("summary request failed",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("summary service unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("summary request rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("summary service returned HTTP %d: %s", resp.StatusCode, compactBody(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("summary request ok",
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// compactBody trims an error body down to something usable in a panel.
func compactBody(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	if s == "" {
		s = "(empty body)"
	}
	return s
}
