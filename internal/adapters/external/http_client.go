package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET against a provider endpoint and decodes a 200 response into out.
// 404 maps to NotFound so the provider chain can stop early; any other status is an
// ExternalAPIError carrying the body snippet.
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, provider, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to create %s request", provider), err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to call %s", provider), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && logger != nil {
			logger.Warn("Failed to close provider response body", ports.F("provider", provider), ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if resp.StatusCode == http.StatusNotFound {
			return errors.NewNotFoundError("city not found")
		}
		return errors.NewExternalAPIError(
			fmt.Sprintf("%s returned status %d", provider, resp.StatusCode),
			fmt.Errorf("%s", string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to decode %s response", provider), err)
	}

	return nil
}
