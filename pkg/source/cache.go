package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version, increment when CacheEntry changes
const cacheSchemaVersion uint16 = 1

// CacheEntry is a fetched dataset as stored on disk.
type CacheEntry struct {
	Schema    uint16
	ID        string
	Body      []byte
	FetchedAt time.Time
}

// DiskCache stores fetched datasets in a directory, one msgpack file per id.
type DiskCache struct {
	dir string
}

func OpenDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating cache directory %s: %w", dir, err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(id string) string {
	key := sha256.Sum256([]byte(id))
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put writes the entry for id, replacing any previous one atomically.
func (c *DiskCache) Put(entry *CacheEntry) (err error) {
	entry.Schema = cacheSchemaVersion
	p := c.pathFor(entry.ID)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("error creating cache file: %w", err)
	}
	defer func() {
		if removeErr := os.Remove(f.Name()); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) && err == nil {
			err = removeErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		f.Close()
		return fmt.Errorf("error encoding cache entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the entry for id. A missing entry, or one written with another
// schema, is reported as not found.
func (c *DiskCache) Get(id string) (*CacheEntry, bool, error) {
	f, err := os.Open(c.pathFor(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var entry CacheEntry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false, fmt.Errorf("error decoding cache entry: %w", err)
	}
	if entry.Schema != cacheSchemaVersion || entry.ID != id {
		return nil, false, nil
	}
	return &entry, true, nil
}

// CachedSource serves datasets from a DiskCache and falls back to Source on a
// miss, storing what it fetched.
type CachedSource struct {
	Source  Source
	Cache   *DiskCache
	Refresh bool
}

func (s *CachedSource) Fetch(ctx context.Context, id string) ([]byte, error) {
	if !s.Refresh {
		entry, ok, err := s.Cache.Get(id)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("Source", id).Msg("Ignoring unreadable cache entry")
		}
		if ok {
			log.Ctx(ctx).Debug().Str("Source", id).Time("FetchedAt", entry.FetchedAt).Msg("Using cached dataset")
			return entry.Body, nil
		}
	}

	body, err := s.Source.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Put(&CacheEntry{ID: id, Body: body, FetchedAt: time.Now()}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("Source", id).Msg("Error caching dataset")
	}
	return body, nil
}
