package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"tally/pkg/config"
)

// Source retrieves the raw text of a dataset.
type Source interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// HTTPSource fetches datasets with a plain GET request.
type HTTPSource struct {
	Client *http.Client
}

func (s *HTTPSource) Fetch(ctx context.Context, id string) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, id, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request for %s: %w", id, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("error fetching %s: unexpected status %s", id, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from %s: %w", id, err)
	}
	log.Ctx(ctx).Debug().Str("Source", id).Int("Bytes", len(body)).Msg("Fetched dataset")
	return body, nil
}

// FileSource reads datasets from the local file system.
type FileSource struct{}

func (FileSource) Fetch(_ context.Context, id string) ([]byte, error) {
	path := strings.TrimPrefix(id, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	return data, nil
}

// IsRemote reports whether id names an http(s) resource.
func IsRemote(id string) bool {
	return strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://")
}

// For returns the source serving cfg.Source. Remote datasets go through the
// disk cache when cfg.CacheDir is set.
func For(cfg config.Config) (Source, error) {
	if !IsRemote(cfg.Source) {
		return FileSource{}, nil
	}
	var src Source = &HTTPSource{}
	if cfg.CacheDir == "" {
		return src, nil
	}
	cache, err := OpenDiskCache(cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	return &CachedSource{Source: src, Cache: cache, Refresh: cfg.Refresh}, nil
}
