package api

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Error is a non 2xx response of the API.
type Error struct {
	Status  int
	URL     string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GET %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.Status, e.Message)
}

// messagePaths lists where the API puts the error message, by preference.
var messagePaths = []string{"$.detail", "$.message", "$.data.detail", "$.data.message", "$.error"}

// errorMessage extracts a readable message from an error response body.
func errorMessage(body []byte) string {
	if doc, err := decodeDocument(body); err == nil {
		for _, path := range messagePaths {
			v, err := jsonpath.Get(path, doc)
			if err != nil {
				continue
			}
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
