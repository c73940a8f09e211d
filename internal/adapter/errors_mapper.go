package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-bookmarks/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), message)
	}
}

// errorMessage extracts the message from either error body shape the server
// writes: {"error":{"message":"..."}} or {"error":"..."}. Anything else is
// returned trimmed as-is.
func errorMessage(body []byte) string {
	var full models.ErrorResponse
	if err := json.Unmarshal(body, &full); err == nil && full.Error.Message != "" {
		return full.Error.Message
	}

	var short models.UnauthorizedResponse
	if err := json.Unmarshal(body, &short); err == nil && short.Error != "" {
		return short.Error
	}

	return strings.TrimSpace(string(body))
}
