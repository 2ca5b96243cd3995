package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-web/internal/adapters/encoding"
	"learning-web/internal/core/domain"
	"learning-web/internal/core/services"
)

// ============================================================================
// Test Helper Functions
// ============================================================================

const testLayout = `<html><head><title>{{TITLE}}</title>{{STYLESHEETS}}</head>` +
	`<body><h2>{{SUBTITLE}}</h2><main>{{CONTENT}}</main>{{SCRIPTS}}</body></html>`

var largeCSS = strings.Repeat(".card { margin: 0 auto; padding: 1rem; }\n", 100)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

// newTestRouter builds <tmp>/{views,frontend,dist} and a router over them
func newTestRouter(t *testing.T, strategy domain.CacheStrategy) (*Router, string) {
	t.Helper()
	base := t.TempDir()
	views := filepath.Join(base, "views")
	frontend := filepath.Join(base, "frontend")
	dist := filepath.Join(base, "dist")

	files := map[string]string{
		"views/layout.html":     testLayout,
		"secret.txt":            "top secret",
		"frontend/index.html":   "<h1>static index</h1>",
		"frontend/about.html":   "<h1>about</h1>",
		"frontend/css/site.css": "body{}",
		"frontend/css/big.css":  largeCSS,
		"frontend/js/app.js":    "console.log(1)",
		"frontend/img/logo.png": "\x89PNG",
		"frontend/files/a.bin":  "\x00\x01",
		"dist/bundle.js":        "bundled",
	}
	for _, page := range services.DefaultPages() {
		files["views/"+page.ContentFile] = "<p>content of " + page.Title + "</p>"
	}
	writeTree(t, base, files)

	registry, err := services.NewPageRegistry(services.DefaultPages())
	require.NoError(t, err)

	api, err := NewDispatcher(NewAPIHandler(nil).Routes())
	require.NoError(t, err)

	loader := services.NewContentLoader(nil, 0)
	router := NewRouter(api, registry,
		services.NewPageRenderer(loader, views, "layout.html"),
		services.NewStaticResolver(loader),
		RouterOptions{Strategy: strategy, FrontendRoot: frontend, DistRoot: dist},
	)
	return router, base
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	return serve(h, httptest.NewRequest(http.MethodGet, target, nil))
}

// ============================================================================
// Pages
// ============================================================================

func TestRouter_ServesEveryRegisteredPage(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	for _, page := range services.DefaultPages() {
		rec := get(router, page.Path)

		require.Equal(t, http.StatusOK, rec.Code, page.Path)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"), page.Path)

		body := rec.Body.String()
		assert.Contains(t, body, "<title>"+page.Title+"</title>", page.Path)
		assert.Contains(t, body, "<main><p>content of "+page.Title+"</p></main>", page.Path)
		assert.Contains(t, body, page.Stylesheets, page.Path)
		assert.NotContains(t, body, "{{", page.Path)
	}
}

func TestRouter_RootIsTheHomePage(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	rec := get(router, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Home</title>")
}

func TestRouter_PageCacheControl(t *testing.T) {
	dev, _ := newTestRouter(t, domain.CacheStrategyDev)
	prod, _ := newTestRouter(t, domain.CacheStrategyProd)

	assert.Equal(t, "no-store", get(dev, "/api-demo").Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache, must-revalidate", get(prod, "/api-demo").Header().Get("Cache-Control"))
}

func TestRouter_MissingFragmentIsNotFound(t *testing.T) {
	router, base := newTestRouter(t, domain.CacheStrategyDev)
	require.NoError(t, os.Remove(filepath.Join(base, "views", "pages", "style-showcase.html")))

	rec := get(router, "/style-showcase")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

// ============================================================================
// Static files
// ============================================================================

func TestRouter_StaticFiles(t *testing.T) {
	testCases := []struct {
		path        string
		contentType string
		body        string
	}{
		{"/css/site.css", "text/css; charset=utf-8", "body{}"},
		{"/js/app.js", "application/javascript; charset=utf-8", "console.log(1)"},
		{"/img/logo.png", "image/png", "\x89PNG"},
		{"/files/a.bin", "application/octet-stream", "\x00\x01"},
		{"/about", "text/html; charset=utf-8", "<h1>about</h1>"},
		{"/about.html", "text/html; charset=utf-8", "<h1>about</h1>"},
		{"/dist/bundle.js", "application/javascript; charset=utf-8", "bundled"},
	}

	router, _ := newTestRouter(t, domain.CacheStrategyDev)
	for _, tc := range testCases {
		rec := get(router, tc.path)

		assert.Equal(t, http.StatusOK, rec.Code, tc.path)
		assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"), tc.path)
		assert.Equal(t, tc.body, rec.Body.String(), tc.path)
	}
}

func TestRouter_StaticCacheControl(t *testing.T) {
	dev, _ := newTestRouter(t, domain.CacheStrategyDev)
	prod, _ := newTestRouter(t, domain.CacheStrategyProd)

	assert.Equal(t, "no-store", get(dev, "/css/site.css").Header().Get("Cache-Control"))
	assert.Equal(t, "no-store", get(dev, "/js/app.js").Header().Get("Cache-Control"))
	assert.Equal(t, "public, max-age=300", get(dev, "/img/logo.png").Header().Get("Cache-Control"))

	assert.Equal(t, "public, max-age=300", get(prod, "/css/site.css").Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache, must-revalidate", get(prod, "/about.html").Header().Get("Cache-Control"))
}

func TestRouter_NotFound(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyProd)

	for _, target := range []string{"/nope", "/css/missing.css", "/css", "/dist/missing.js"} {
		rec := get(router, target)

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.NotEmpty(t, rec.Body.String(), target)
		assert.Empty(t, rec.Header().Get("Cache-Control"), target)
	}
}

func TestRouter_TraversalNeverEscapesRoot(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	for _, target := range []string{
		"/../secret.txt",
		"/%2e%2e/secret.txt",
		"/..%2fsecret.txt",
		"/css/..%2f..%2f..%2fsecret.txt",
		"/..%5csecret.txt",
		"/dist/..%2f..%2fsecret.txt",
	} {
		rec := get(router, target)

		assert.Contains(t, []int{http.StatusBadRequest, http.StatusNotFound}, rec.Code, target)
		assert.NotContains(t, rec.Body.String(), "top secret", target)
	}
}

func TestRouter_SearchRootRequestIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	for _, target := range []string{"/dist/", "/dist/.", "/./"} {
		rec := get(router, target)

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.NotEmpty(t, rec.Body.String(), target)
	}
}

func TestRouter_NULByteIsBadRequest(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	rec := get(router, "/css/site.css%00.png")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_DirectoryIsNotServed(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	assert.Equal(t, http.StatusNotFound, get(router, "/img").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/img/").Code)
}

// ============================================================================
// Methods, HEAD and compression
// ============================================================================

func TestRouter_HeadHasHeadersWithoutBody(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	rec := serve(router, httptest.NewRequest(http.MethodHead, "/css/site.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "6", rec.Header().Get("Content-Length"))
	assert.Empty(t, rec.Body.String())
}

func TestRouter_NonGetOutsideAPIIsMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/about", strings.NewReader("x")))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestRouter_APIRequestsGoToDispatcher(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	rec := get(router, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = get(router, "/api/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found","code":"NOT_FOUND"}`, rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodPut, "/api/health", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found","code":"NOT_FOUND"}`, rec.Body.String())
}

func TestRouter_CompressesLargeTextBodies(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	req := httptest.NewRequest(http.MethodGet, "/css/big.css", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

	decoded, err := encoding.GzipEncoderDecoder{}.Decode(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, largeCSS, string(decoded))
}

func TestRouter_SkipsCompressionWhenNotAccepted(t *testing.T) {
	router, _ := newTestRouter(t, domain.CacheStrategyDev)

	rec := get(router, "/css/big.css")

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, largeCSS, rec.Body.String())
}
