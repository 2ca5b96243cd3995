package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDataPayload(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
		err     error
	}{
		{"plain", `{"message":"hello"}`, "hello", nil},
		{"trimmed", `{"message":"  hello  "}`, "hello", nil},
		{"extra fields ignored", `{"message":"hi","other":1}`, "hi", nil},
		{"exactly 200", `{"message":"` + strings.Repeat("x", 200) + `"}`, strings.Repeat("x", 200), nil},
		{"200 code points multibyte", `{"message":"` + strings.Repeat("é", 200) + `"}`, strings.Repeat("é", 200), nil},
		{"empty", `{"message":""}`, "", ErrMessageEmpty},
		{"whitespace only", `{"message":"   "}`, "", ErrMessageEmpty},
		{"too long", `{"message":"` + strings.Repeat("x", 201) + `"}`, "", ErrMessageTooLong},
		{"missing field", `{}`, "", ErrMessageNotString},
		{"empty body", ``, "", ErrMessageNotString},
		{"number message", `{"message":5}`, "", ErrMessageNotString},
		{"null message", `{"message":null}`, "", ErrMessageNotString},
		{"array body", `["hello"]`, "", ErrBodyNotObject},
		{"string body", `"hello"`, "", ErrBodyNotObject},
		{"null body", `null`, "", ErrBodyNotObject},
		{"malformed", `{"message":`, "", ErrInvalidJSON},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := ParseDataPayload([]byte(tc.body))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.message, payload.Message)
		})
	}
}
