package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"learning-web/internal/core/domain"
)

// DistPrefix marks URLs served from the build output root
const DistPrefix = "/dist/"

// StaticResolver finds static files across ordered search roots.
// Every candidate is checked for containment before it is read.
type StaticResolver struct {
	loader *ContentLoader
}

// NewStaticResolver creates a resolver reading through loader
func NewStaticResolver(loader *ContentLoader) *StaticResolver {
	return &StaticResolver{loader: loader}
}

// BuildSearchPaths turns a raw (still escaped) URL path into candidate entries.
// "/dist/*" tries the dist root first, then the frontend root with the full path.
func BuildSearchPaths(escapedPath, frontendRoot, distRoot string) []domain.SearchPathEntry {
	if escapedPath == "" || escapedPath == "/" {
		return []domain.SearchPathEntry{{Root: frontendRoot, RelativePath: "index.html"}}
	}

	relative := strings.TrimPrefix(escapedPath, "/")

	if distRoot != "" && strings.HasPrefix(escapedPath, DistPrefix) {
		return []domain.SearchPathEntry{
			{Root: distRoot, RelativePath: strings.TrimPrefix(escapedPath, DistPrefix)},
			{Root: frontendRoot, RelativePath: relative},
		}
	}

	return []domain.SearchPathEntry{{Root: frontendRoot, RelativePath: relative}}
}

// Resolve tries each entry in order and returns the first readable file.
//
// Errors:
//   - domain.ErrOutsideRoot / domain.ErrInvalidPath when nothing resolved and
//     at least one entry was rejected
//   - domain.ErrNotFound when every entry was simply absent
//   - any other error is an I/O fault and stops the search immediately
func (r *StaticResolver) Resolve(ctx context.Context, entries []domain.SearchPathEntry) (domain.Asset, error) {
	var rejected error

	for _, entry := range entries {
		absPath, err := ResolveUnderRoot(entry.Root, entry.RelativePath)
		if err != nil {
			rejected = err
			continue
		}

		asset, err := r.loader.Load(ctx, absPath)
		if err == nil {
			return asset, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Asset{}, err
		}

		// Extensionless miss: retry once as a .html document.
		// The root itself has no .html sibling inside the root; that is a plain miss.
		htmlPath := absPath + ".html"
		if filepath.Ext(absPath) != "" || !IsWithinRoot(entry.Root, htmlPath) {
			continue
		}

		asset, err = r.loader.Load(ctx, htmlPath)
		if err == nil {
			return asset, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Asset{}, err
		}
	}

	if rejected != nil {
		return domain.Asset{}, rejected
	}
	return domain.Asset{}, domain.ErrNotFound
}

// ResolveUnderRoot decodes and normalizes a relative URL path and joins it
// onto root. The result is guaranteed to lie inside root.
func ResolveUnderRoot(root, relative string) (string, error) {
	decoded, err := url.PathUnescape(relative)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidPath, err)
	}
	if strings.ContainsRune(decoded, 0) {
		return "", fmt.Errorf("%w: NUL byte in path", domain.ErrInvalidPath)
	}

	// Treat backslashes as separators so "..\" cannot slip past normalization
	normalized := path.Clean(strings.ReplaceAll(decoded, `\`, "/"))
	for strings.HasPrefix(normalized, "../") {
		normalized = strings.TrimPrefix(normalized, "../")
	}
	if normalized == ".." {
		normalized = "."
	}

	absPath := filepath.Join(root, filepath.FromSlash(normalized))
	if !IsWithinRoot(root, absPath) {
		return "", fmt.Errorf("%s: %w", relative, domain.ErrOutsideRoot)
	}

	return absPath, nil
}

// IsWithinRoot reports whether target is root itself or a descendant of it
func IsWithinRoot(root, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(target))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
