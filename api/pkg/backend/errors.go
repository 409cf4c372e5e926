package backend

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non 2xx answer of the backend
type Error struct {
	StatusCode int
	Code       string
	Summary    string
}

func (e *Error) Error() string {
	if e.Summary != "" {
		return fmt.Sprintf("backend error %d (%s): %s", e.StatusCode, e.Code, e.Summary)
	}
	return fmt.Sprintf("backend error %d", e.StatusCode)
}

// newError decodes the <status> body the backend sends along with errors
func newError(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode}
	var status Status
	if err := xml.Unmarshal(body, &status); err == nil {
		e.Code = status.Code
		e.Summary = status.Summary
	} else if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 {
		e.Summary = text
	}
	return e
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, statusCode int) bool {
	var backendErr *Error
	return errors.As(err, &backendErr) && backendErr.StatusCode == statusCode
}
