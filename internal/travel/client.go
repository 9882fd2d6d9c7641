package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"grooming-dashboard-backend/config"
)

// Client is an Oracle backed by a distance-matrix style HTTP API.
// Outbound calls go through a shared rate limiter and transient failures
// (network errors, 429, 5xx) are retried with exponential backoff.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates an Oracle talking to the configured estimation service.
func NewClient(cfg *config.TravelConfig) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("travel: base_url is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("travel: api_key is required")
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RateBurst),
	}, nil
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Seconds int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Estimate queries the matrix API for a single origin/destination pair.
// Identical zips short-circuit to zero without a network call.
func (c *Client) Estimate(ctx context.Context, originZip, destinationZip string) (Estimate, error) {
	origin := strings.TrimSpace(originZip)
	destination := strings.TrimSpace(destinationZip)
	if origin == "" || destination == "" {
		return Estimate{}, errors.New("travel: origin and destination must be non-empty")
	}
	if origin == destination {
		return Estimate{Minutes: 0}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Estimate{}, err
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newMatrixRequest(ctx, origin, destination)
	})
	if err != nil {
		return Estimate{}, fmt.Errorf("travel: matrix request %s -> %s: %w", origin, destination, err)
	}
	defer resp.Body.Close()

	var decoded matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Estimate{}, fmt.Errorf("travel: decode matrix response: %w", err)
	}

	if decoded.Status != "OK" {
		return Estimate{}, fmt.Errorf("travel: matrix API returned status %q", decoded.Status)
	}
	if len(decoded.Rows) == 0 || len(decoded.Rows[0].Elements) == 0 {
		return Estimate{}, errors.New("travel: matrix response contains no elements")
	}

	element := decoded.Rows[0].Elements[0]
	switch element.Status {
	case "OK":
		minutes := int(math.Round(float64(element.Duration.Seconds) / 60.0))
		return Estimate{Minutes: minutes}, nil
	case "ZERO_RESULTS", "NOT_FOUND":
		return Estimate{Unreachable: true}, nil
	default:
		return Estimate{}, fmt.Errorf("travel: matrix element returned status %q", element.Status)
	}
}

func (c *Client) newMatrixRequest(ctx context.Context, origin, destination string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/distancematrix/json", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("mode", "driving")
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Body)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures using exponential backoff while
// respecting context cancellation.
func (c *Client) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, err
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusTooManyRequests,
				http.StatusInternalServerError,
				http.StatusBadGateway,
				http.StatusServiceUnavailable,
				http.StatusGatewayTimeout:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
