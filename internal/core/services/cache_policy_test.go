package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learning-web/internal/core/domain"
)

func TestCacheControl(t *testing.T) {
	testCases := []struct {
		ext      string
		strategy domain.CacheStrategy
		expect   string
	}{
		{".html", domain.CacheStrategyDev, "no-store"},
		{".js", domain.CacheStrategyDev, "no-store"},
		{".css", domain.CacheStrategyDev, "no-store"},
		{".CSS", domain.CacheStrategyDev, "no-store"},
		{".png", domain.CacheStrategyDev, "public, max-age=300"},
		{"", domain.CacheStrategyDev, "public, max-age=300"},
		{".html", domain.CacheStrategyProd, "no-cache, must-revalidate"},
		{".js", domain.CacheStrategyProd, "public, max-age=300"},
		{".css", domain.CacheStrategyProd, "public, max-age=300"},
		{".weird", domain.CacheStrategyProd, "public, max-age=300"},
	}

	for _, tc := range testCases {
		got := CacheControl(tc.ext, tc.strategy)
		assert.Equal(t, tc.expect, got, "ext=%q strategy=%s", tc.ext, tc.strategy)
	}
}

func TestPageCacheControl(t *testing.T) {
	assert.Equal(t, "no-store", PageCacheControl(domain.CacheStrategyDev))
	assert.Equal(t, "no-cache, must-revalidate", PageCacheControl(domain.CacheStrategyProd))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", ContentType(".html"))
	assert.Equal(t, "application/javascript; charset=utf-8", ContentType(".JS"))
	assert.Equal(t, "image/svg+xml", ContentType(".svg"))
	assert.Equal(t, "application/octet-stream", ContentType(".unknownext"))
	assert.Equal(t, "application/octet-stream", ContentType(""))
}
