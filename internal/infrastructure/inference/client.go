// Package inference provides the HTTP client for the external pre-trained
// classification model. The model server exposes two endpoints:
//
//	GET  /metadata  → model name, version, input shape, class labels
//	POST /predict   → {"probabilities": [...]} for one image body
//
// The client is constructed once at startup; WarmUp fetches the metadata and
// flips the readiness flag. Until then every Predict call fails fast.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Config captures the settings for the model server connection.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client talks to the model server. info and labels are written once by WarmUp
// before ready is set and treated as immutable afterwards.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	ready  atomic.Bool
	info   ports.ModelInfo
	labels []string
}

var _ ports.Classifier = (*Client)(nil)

// NewClient returns an unready Client. Call WarmUp before serving predictions.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type metadataResponse struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	InputWidth  int      `json:"input_width"`
	InputHeight int      `json:"input_height"`
	Classes     []string `json:"classes"`
}

// WarmUp fetches the model metadata and marks the client ready. It is intended
// to run once at startup; a failure leaves the client unready and is surfaced
// to the caller for logging.
func (c *Client) WarmUp(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/metadata", nil)
	if err != nil {
		return fmt.Errorf("model metadata request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("model metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model metadata: unexpected status %d", resp.StatusCode)
	}

	var meta metadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return fmt.Errorf("model metadata decode: %w", err)
	}
	if len(meta.Classes) == 0 {
		return fmt.Errorf("model metadata: no classes reported")
	}

	c.info = ports.ModelInfo{
		Name:        meta.Name,
		Version:     meta.Version,
		InputWidth:  meta.InputWidth,
		InputHeight: meta.InputHeight,
		Classes:     meta.Classes,
	}
	c.labels = meta.Classes
	c.ready.Store(true)

	c.log.Info().
		Str("model", meta.Name).
		Str("version", meta.Version).
		Int("classes", len(meta.Classes)).
		Msg("model warm-up complete")

	return nil
}

// Ready reports whether warm-up has completed.
func (c *Client) Ready() bool {
	return c.ready.Load()
}

// Labels returns the class labels reported by the model server.
func (c *Client) Labels() []string {
	return c.labels
}

// Info returns the model metadata fetched at warm-up.
func (c *Client) Info() ports.ModelInfo {
	return c.info
}

type predictResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// Predict posts the raw image bytes and returns the per-class probability
// vector. No retries: failures surface directly to the caller.
func (c *Client) Predict(ctx context.Context, image []byte) ([]float64, error) {
	if !c.ready.Load() {
		return nil, domain.ErrModelNotReady
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("model predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model predict: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("model predict: status %d: %s", resp.StatusCode, body)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("model predict decode: %w", err)
	}
	return out.Probabilities, nil
}
