// Package assets discovers how many numbered image files exist for a gallery
// category. Galleries are published as 1.jpg, 2.jpg, ... with no manifest, so
// the only way to know the count is to probe.
package assets

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Checker answers whether a single asset key exists. Implementations decide
// how (HTTP HEAD, S3 HeadObject); the probing strategy above them stays the
// same.
type Checker interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// MaxProbe caps the serial probe. Galleries never hold more than this many
// images.
const MaxProbe = 20

// Prober walks numbered keys in order and stops at the first missing one.
// The probe is deliberately serial and best-effort: one request at a time, no
// retry, and a checker failure ends the walk with whatever was found so far.
type Prober struct {
	checker Checker
	max     int
}

func NewProber(checker Checker) *Prober {
	return &Prober{checker: checker, max: MaxProbe}
}

// Discover returns the keys of the images that exist for a category, in
// order. The error is non-nil only when a checker call failed; the keys
// collected before the failure are still returned.
func (p *Prober) Discover(ctx context.Context, category, ext string) ([]string, error) {
	if ext == "" {
		ext = ".jpg"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var keys []string
	for i := 1; i <= p.max; i++ {
		key := fmt.Sprintf("%s/%d%s", strings.Trim(category, "/"), i, ext)
		ok, err := p.checker.Exists(ctx, key)
		if err != nil {
			return keys, fmt.Errorf("probe %s: %w", key, err)
		}
		if !ok {
			break
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// HTTPChecker probes the asset host with HEAD requests.
type HTTPChecker struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPChecker(baseURL string, httpClient *http.Client) *HTTPChecker {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPChecker{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Exists issues one HEAD request. Any non-2xx status counts as a miss rather
// than an error; the gallery simply shows fewer images.
func (c *HTTPChecker) Exists(ctx context.Context, key string) (bool, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(key, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299, nil
}
