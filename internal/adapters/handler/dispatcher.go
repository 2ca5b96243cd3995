package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"learning-web/internal/core/domain"
)

// NotFoundCode is the machine-readable code of the API 404 body
const NotFoundCode = "NOT_FOUND"

var supportedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// Route binds one method + exact path to a handler
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Key returns the route's dispatch key
func (r Route) Key() domain.RouteKey {
	return domain.RouteKey{Method: r.Method, Path: r.Path}
}

// Dispatcher routes /api requests by (method, path).
// The table is validated once at construction and then mounted on a chi
// mux; unknown paths and method mismatches both answer a JSON 404.
type Dispatcher struct {
	mux  *chi.Mux
	keys []domain.RouteKey
}

// NewDispatcher validates routes and builds the dispatch table.
// Duplicate keys are rejected with domain.ErrDuplicateRoute.
func NewDispatcher(routes []Route) (*Dispatcher, error) {
	mux := chi.NewRouter()
	seen := make(map[domain.RouteKey]bool, len(routes))
	keys := make([]domain.RouteKey, 0, len(routes))

	for _, route := range routes {
		key := route.Key()
		if !supportedMethods[route.Method] {
			return nil, fmt.Errorf("route %s: unsupported method", key)
		}
		if route.Handler == nil {
			return nil, fmt.Errorf("route %s: nil handler", key)
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateRoute, key)
		}
		seen[key] = true
		keys = append(keys, key)

		mux.MethodFunc(route.Method, route.Path, route.Handler)
	}

	notFound := func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not found", NotFoundCode)
	}
	mux.NotFound(notFound)
	mux.MethodNotAllowed(notFound)

	return &Dispatcher{mux: mux, keys: keys}, nil
}

// ServeHTTP dispatches one API request; the matched handler owns the response
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.mux.ServeHTTP(w, r)
}

// Routes lists registered keys in registration order
func (d *Dispatcher) Routes() []domain.RouteKey {
	return append([]domain.RouteKey(nil), d.keys...)
}
