package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"syscall"
	"time"

	"learning-web/internal/core/domain"
	"learning-web/internal/core/ports"
)

// MaxCacheableSize is the largest file body kept in the content cache
const MaxCacheableSize = 1 << 20

// ContentLoader reads files from disk through an optional ContentCache.
// Entries are keyed by absolute path + modification time, so an edited
// file is never served stale.
type ContentLoader struct {
	cache ports.ContentCache
	ttl   time.Duration
}

// NewContentLoader creates a loader. A nil cache disables caching.
func NewContentLoader(cache ports.ContentCache, ttl time.Duration) *ContentLoader {
	return &ContentLoader{
		cache: cache,
		ttl:   ttl,
	}
}

// Load reads one file. Missing files and directories yield domain.ErrNotFound,
// every other filesystem fault is returned wrapped.
func (l *ContentLoader) Load(ctx context.Context, absPath string) (domain.Asset, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		return domain.Asset{}, classifyFSError(absPath, err)
	}
	if info.IsDir() {
		return domain.Asset{}, fmt.Errorf("%s is a directory: %w", absPath, domain.ErrNotFound)
	}

	key := CacheKey(absPath, info.ModTime())

	if l.cache != nil {
		body, hit, err := l.cache.Get(ctx, key)
		if err != nil {
			// Cache faults never fail a request
			slog.Warn("Content cache read failed",
				"error", err,
				"path", absPath,
			)
		} else if hit {
			return domain.Asset{Path: absPath, Body: body, ModTime: info.ModTime()}, nil
		}
	}

	body, err := os.ReadFile(absPath)
	if err != nil {
		return domain.Asset{}, classifyFSError(absPath, err)
	}

	if l.cache != nil && len(body) <= MaxCacheableSize {
		if err := l.cache.Set(ctx, key, body, l.ttl); err != nil {
			slog.Warn("Content cache write failed",
				"error", err,
				"path", absPath,
			)
		}
	}

	return domain.Asset{Path: absPath, Body: body, ModTime: info.ModTime()}, nil
}

// CacheKey builds the content cache key for a file version
func CacheKey(absPath string, modTime time.Time) string {
	return fmt.Sprintf("%s@%d", absPath, modTime.UnixNano())
}

// classifyFSError separates "absent" from genuine I/O faults.
// ENOTDIR covers lookups such as /index.html/child.
func classifyFSError(absPath string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return fmt.Errorf("%s: %w", absPath, domain.ErrNotFound)
	}
	return fmt.Errorf("read %s: %w", absPath, err)
}
