package services

import (
	"strings"

	"learning-web/internal/core/domain"
)

// Cache-Control directives
const (
	CacheNoStore        = "no-store"
	CacheRevalidate     = "no-cache, must-revalidate"
	CachePublicShortTTL = "public, max-age=300"
)

// DefaultContentType is used for any extension not in the table below
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".map":  "application/json; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
	".webp": "image/webp",
}

// CacheControl maps a file extension and strategy to a Cache-Control value
//
//	ext          dev        prod
//	.html        no-store   no-cache, must-revalidate
//	.js .css     no-store   public, max-age=300
//	other        public, max-age=300
func CacheControl(ext string, strategy domain.CacheStrategy) string {
	ext = strings.ToLower(ext)

	if strategy == domain.CacheStrategyProd {
		if ext == ".html" {
			return CacheRevalidate
		}
		return CachePublicShortTTL
	}

	switch ext {
	case ".html", ".js", ".css":
		return CacheNoStore
	default:
		return CachePublicShortTTL
	}
}

// PageCacheControl is the directive for rendered pages
func PageCacheControl(strategy domain.CacheStrategy) string {
	return CacheControl(".html", strategy)
}

// ContentType infers a Content-Type from a file extension
func ContentType(ext string) string {
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return DefaultContentType
}
