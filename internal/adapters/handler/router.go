package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"learning-web/internal/core/domain"
	"learning-web/internal/core/services"
)

// APIPrefix marks requests owned by the API dispatcher
const APIPrefix = "/api/"

// RouterOptions carries the startup configuration the router needs
type RouterOptions struct {
	Strategy     domain.CacheStrategy
	FrontendRoot string // absolute
	DistRoot     string // absolute, empty disables /dist/
}

// Router classifies each request and produces exactly one response.
// Priority: API dispatcher, then page registry, then static files.
type Router struct {
	api      http.Handler
	pages    *services.PageRegistry
	renderer *services.PageRenderer
	static   *services.StaticResolver
	opts     RouterOptions
}

// NewRouter wires the router's collaborators
func NewRouter(api http.Handler, pages *services.PageRegistry, renderer *services.PageRenderer, static *services.StaticResolver, opts RouterOptions) *Router {
	return &Router{
		api:      api,
		pages:    pages,
		renderer: renderer,
		static:   static,
		opts:     opts,
	}
}

// ServeHTTP implements http.Handler
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, APIPrefix) {
		rt.api.ServeHTTP(w, r)
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeText(w, http.StatusMethodNotAllowed)
		return
	}

	if page, ok := rt.pages.Lookup(r.URL.Path); ok {
		rt.servePage(w, r, page)
		return
	}

	rt.serveStatic(w, r)
}

func (rt *Router) servePage(w http.ResponseWriter, r *http.Request, page domain.PageEntry) {
	html, err := rt.renderer.Render(r.Context(), page)
	if err != nil {
		rt.writeFailure(w, r, err)
		return
	}

	writeContent(w, r, services.ContentType(".html"), services.PageCacheControl(rt.opts.Strategy), []byte(html))
}

func (rt *Router) serveStatic(w http.ResponseWriter, r *http.Request) {
	entries := services.BuildSearchPaths(r.URL.EscapedPath(), rt.opts.FrontendRoot, rt.opts.DistRoot)

	asset, err := rt.static.Resolve(r.Context(), entries)
	if err != nil {
		rt.writeFailure(w, r, err)
		return
	}

	ext := strings.ToLower(filepath.Ext(asset.Path))
	writeContent(w, r, services.ContentType(ext), services.CacheControl(ext, rt.opts.Strategy), asset.Body)
}

// writeFailure maps a resolution error onto a status code.
// Absent resources are the normal 404 path and are not errors.
func (rt *Router) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		slog.Debug("Resource not found",
			"path", r.URL.Path,
			"reason", err,
		)
		writeText(w, http.StatusNotFound)

	case errors.Is(err, domain.ErrOutsideRoot), errors.Is(err, domain.ErrInvalidPath):
		slog.Warn("Rejected unsafe path",
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"reason", err,
		)
		writeText(w, http.StatusBadRequest)

	default:
		slog.Error("Unexpected error serving content",
			"path", r.URL.Path,
			"error", err,
		)
		writeText(w, http.StatusInternalServerError)
	}
}
