package imagehost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultEndpoint = "https://api.imgbb.com/1/upload"
	DefaultTimeout  = 15 * time.Second

	_maxErrorBody = 512
)

type ImgBBConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// ImgBBClient uploads base64 images to ImgBB and returns the hosted URL.
// Failures are logged and reported as a nil URL.
type ImgBBClient struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

func NewImgBBClient(config ImgBBConfig) *ImgBBClient {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	return &ImgBBClient{
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		apiKey:   config.APIKey,
		endpoint: config.Endpoint,
	}
}

func (c *ImgBBClient) Upload(ctx context.Context, image string) *string {
	if image == "" {
		return nil
	}

	if c.apiKey == "" {
		slog.Warn("image upload skipped, imgbb api key not configured")
		return nil
	}

	hostedURL, err := c.upload(ctx, image)
	if err != nil {
		slog.Error("uploading image", slog.String("error", err.Error()))
		return nil
	}

	return &hostedURL
}

func (c *ImgBBClient) upload(ctx context.Context, image string) (string, error) {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("image", image)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, _maxErrorBody))
		return "", fmt.Errorf("imgbb returned %d: %s", resp.StatusCode, string(body))
	}

	var payload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if payload.Data.URL == "" {
		return "", fmt.Errorf("imgbb response has no url")
	}

	return payload.Data.URL, nil
}
