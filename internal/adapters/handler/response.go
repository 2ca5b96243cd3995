// Package handler implements the HTTP surface: request router,
// API dispatcher and the API endpoint handlers
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"learning-web/internal/adapters/dto"
	"learning-web/internal/adapters/encoding"
)

// MaxBodyBytes bounds request bodies read by API handlers
const MaxBodyBytes = 1 << 20

// minCompressSize is the smallest body worth compressing
const minCompressSize = 1024

// errBodyTooLarge is reported when a body exceeds MaxBodyBytes
var errBodyTooLarge = errors.New("request body too large")

// writeJSON writes a complete JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	w.Write(body)
}

// writeJSONError writes {"error": message, "code": code}
func writeJSONError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message, Code: code})
}

// writeText writes a plain-text error response
func writeText(w http.ResponseWriter, status int) {
	w.Header().Del("Cache-Control")
	http.Error(w, http.StatusText(status), status)
}

// readBody reads a bounded request body
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return body, nil
}

// writeContent writes a complete 200 response for a page or static file,
// compressing text-like bodies when the client accepts it.
// HEAD requests get identical headers and no body.
func writeContent(w http.ResponseWriter, r *http.Request, contentType, cacheControl string, body []byte) {
	header := w.Header()
	header.Set("Content-Type", contentType)
	header.Set("Cache-Control", cacheControl)

	if isCompressible(contentType) && len(body) >= minCompressSize {
		header.Add("Vary", "Accept-Encoding")

		encoded, name, err := encoding.EncodeBest(body, r.Header.Get("Accept-Encoding"))
		if err != nil {
			// Identity is always acceptable; fall back instead of failing
			slog.Warn("Response compression failed",
				"error", err,
				"path", r.URL.Path,
			)
		} else if name != "" {
			header.Set("Content-Encoding", name)
			body = encoded
		}
	}

	header.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	if r.Method != http.MethodHead {
		w.Write(body)
	}
}

func isCompressible(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.TrimSpace(mediaType)

	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case mediaType == "application/javascript",
		mediaType == "application/json",
		mediaType == "image/svg+xml":
		return true
	default:
		return false
	}
}
