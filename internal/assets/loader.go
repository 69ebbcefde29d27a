// Package assets fetches and decodes the scene and light descriptions.
//
// A location is either an http(s) URL or a local file path. Every fetch is
// bounded by the loader's timeout; once it elapses the fetch fails with
// ErrFetch and callers fall back to defaults.
package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/logger"
)

// DefaultTimeout bounds a single fetch when none is configured.
const DefaultTimeout = 3 * time.Second

var (
	// ErrFetch reports an unreachable, missing, timed-out or non-200 asset.
	ErrFetch = errors.New("asset fetch failed")
	// ErrParse reports an asset that is not the expected JSON shape.
	ErrParse = errors.New("asset parse failed")
)

// Loader fetches asset bytes with a timeout. Successful fetches are cached
// by location, so a Loader reused across scenes or pointed at one file for
// both assets fetches it only once.
type Loader struct {
	timeout time.Duration
	client  *http.Client
	cache   *Cache
}

// NewLoader creates a loader. A non-positive timeout means DefaultTimeout.
func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		timeout: timeout,
		client:  &http.Client{},
		cache:   NewCache(),
	}
}

// Timeout returns the per-fetch deadline.
func (l *Loader) Timeout() time.Duration {
	return l.timeout
}

// Cache returns the loader's cache.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Fetch returns the raw bytes at location.
func (l *Loader) Fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("%w: no location configured", ErrFetch)
	}
	if data, ok := l.cache.Get(location); ok {
		return data, nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	var (
		data []byte
		err  error
	)
	if isURL(location) {
		data, err = l.fetchURL(ctx, location)
	} else {
		data, err = fetchFile(ctx, location)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("asset fetched",
		zap.String("location", location),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)),
	)

	l.cache.Put(location, data)
	return data, nil
}

func (l *Loader) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrFetch, url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %v", ErrFetch, url, err)
	}
	return data, nil
}

func fetchFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return data, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// LoadTriangles fetches and decodes the triangle set asset.
func (l *Loader) LoadTriangles(ctx context.Context, location string) ([]RawGroup, error) {
	var groups []RawGroup
	if err := l.loadJSON(ctx, location, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// LoadLights fetches and decodes the light asset.
func (l *Loader) LoadLights(ctx context.Context, location string) ([]RawLight, error) {
	var lights []RawLight
	if err := l.loadJSON(ctx, location, &lights); err != nil {
		return nil, err
	}
	return lights, nil
}

func (l *Loader) loadJSON(ctx context.Context, location string, v any) error {
	data, err := l.Fetch(ctx, location)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, location, err)
	}
	return nil
}
