// Package dto contains the request/response payloads of the /api endpoints
// Separating DTOs from handlers keeps validation testable without HTTP
package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is the longest accepted message, counted in code points after trimming
const MaxMessageLength = 200

// Validation errors for POST /api/data
var (
	ErrInvalidJSON      = errors.New("Invalid JSON")
	ErrBodyNotObject    = errors.New("Body must be a JSON object")
	ErrMessageNotString = errors.New("'message' must be a string")
	ErrMessageEmpty     = errors.New("'message' cannot be empty")
	ErrMessageTooLong   = errors.New("'message' must be at most 200 characters")
)

// ErrorResponse is the body of every API error
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Status string `json:"status"`
}

// DataListResponse is returned by GET /api/data
type DataListResponse struct {
	Data []int `json:"data"`
}

// DataPayload is the accepted body of POST /api/data
type DataPayload struct {
	Message string `json:"message"`
}

// DataReceivedResponse echoes a validated payload
type DataReceivedResponse struct {
	Received DataPayload `json:"received"`
}

// SystemMetricsResponse is returned by GET /api/system/metrics
type SystemMetricsResponse struct {
	CPUPercent      float64 `json:"cpu_percent"`
	RAMUsedGB       float64 `json:"ram_used_gb"`
	RAMTotalGB      float64 `json:"ram_total_gb"`
	RAMPercent      float64 `json:"ram_percent"`
	DiskUsedGB      float64 `json:"disk_used_gb"`
	DiskTotalGB     float64 `json:"disk_total_gb"`
	DiskPercent     float64 `json:"disk_percent"`
	GoroutinesCount int     `json:"goroutines_count"`
}

// ParseDataPayload decodes and validates a POST /api/data body.
// An empty body is treated as {} and therefore fails on the missing message.
// On success the returned message is already trimmed.
func ParseDataPayload(body []byte) (DataPayload, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return DataPayload{}, ErrInvalidJSON
	}

	object, ok := raw.(map[string]any)
	if !ok {
		return DataPayload{}, ErrBodyNotObject
	}

	message, ok := object["message"].(string)
	if !ok {
		return DataPayload{}, ErrMessageNotString
	}

	trimmed := strings.TrimSpace(message)
	switch length := utf8.RuneCountInString(trimmed); {
	case length == 0:
		return DataPayload{}, ErrMessageEmpty
	case length > MaxMessageLength:
		return DataPayload{}, ErrMessageTooLong
	}

	return DataPayload{Message: trimmed}, nil
}
