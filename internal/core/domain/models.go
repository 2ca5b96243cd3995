// Package domain contains the core entities of the web server
// These models are infrastructure-agnostic: no net/http, no filesystem
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors shared by services and adapters
// Classify with errors.Is, never by message
var (
	// ErrNotFound means the resource is absent (missing file, unmatched route)
	ErrNotFound = errors.New("not found")

	// ErrOutsideRoot means a resolved path escaped its configured root
	ErrOutsideRoot = errors.New("path escapes root directory")

	// ErrInvalidPath means a request path could not be decoded safely
	ErrInvalidPath = errors.New("invalid path")

	// ErrDuplicatePage is returned when two pages share a URL path
	ErrDuplicatePage = errors.New("duplicate page path")

	// ErrDuplicateRoute is returned when two API routes share a method+path key
	ErrDuplicateRoute = errors.New("duplicate route key")

	// ErrInvalidCacheStrategy is returned for anything other than dev/prod
	ErrInvalidCacheStrategy = errors.New("invalid cache strategy")
)

// CacheStrategy selects the Cache-Control branch for the whole process
type CacheStrategy string

// CacheStrategy values
const (
	CacheStrategyDev  CacheStrategy = "dev"
	CacheStrategyProd CacheStrategy = "prod"
)

// ParseCacheStrategy converts a raw config value into a CacheStrategy
// Empty input yields the dev default
func ParseCacheStrategy(raw string) (CacheStrategy, error) {
	switch CacheStrategy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CacheStrategyDev:
		return CacheStrategyDev, nil
	case CacheStrategyProd:
		return CacheStrategyProd, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidCacheStrategy, raw, CacheStrategyDev, CacheStrategyProd)
	}
}

// PageEntry describes a template-rendered page
// Path is the URL path and must be unique within a registry.
// ContentFile is relative to the views root. Stylesheets and Scripts
// hold raw <link>/<script> tags injected into the layout as-is.
type PageEntry struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	ContentFile string `json:"content_file"`
	Stylesheets string `json:"stylesheets"`
	Scripts     string `json:"scripts"`
}

// RouteKey identifies an API endpoint by method and exact path
type RouteKey struct {
	Method string
	Path   string
}

// String renders the key as "METHOD /path"
func (k RouteKey) String() string {
	return k.Method + " " + k.Path
}

// SearchPathEntry is one candidate location tried during static resolution
type SearchPathEntry struct {
	Root         string // absolute root directory
	RelativePath string // still percent-encoded, as taken from the URL
}

// Asset is a file read from disk (or from the content cache)
type Asset struct {
	Path    string // absolute path the bytes came from
	Body    []byte
	ModTime time.Time
}
