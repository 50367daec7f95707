package apiclient

import "fmt"

// Category is the fixed classification assigned to a failed API call.
// Every failure maps to exactly one category.
type Category string

const (
	CategoryTimeout            Category = "timeout"
	CategoryBadRequest         Category = "bad_request"
	CategoryUnauthorized       Category = "unauthorized"
	CategoryForbidden          Category = "forbidden"
	CategoryNotFound           Category = "not_found"
	CategoryServerError        Category = "server_error"
	CategoryServiceUnavailable Category = "service_unavailable"
	CategoryOtherHTTP          Category = "other_http"
	CategoryNetwork            Category = "network"
	CategoryUnexpected         Category = "unexpected"
)

// messages holds the one fixed user-facing message per category.
var messages = map[Category]string{
	CategoryTimeout:            "Request timeout. Please check your internet connection.",
	CategoryBadRequest:         "Bad request. Please check your input.",
	CategoryUnauthorized:       "Session expired. Please login again.",
	CategoryForbidden:          "Access denied. You do not have permission.",
	CategoryNotFound:           "Resource not found.",
	CategoryServerError:        "Server error. Please try again later.",
	CategoryServiceUnavailable: "Service unavailable. Please try again later.",
	CategoryOtherHTTP:          "An error occurred. Please try again.",
	CategoryNetwork:            "Network error. Please check your internet connection.",
	CategoryUnexpected:         "An unexpected error occurred.",
}

// Message returns the fixed user-facing message for the category.
func (c Category) Message() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return messages[CategoryOtherHTTP]
}

// classify maps an HTTP status code to its category.
func classify(status int) Category {
	switch status {
	case 400:
		return CategoryBadRequest
	case 401:
		return CategoryUnauthorized
	case 403:
		return CategoryForbidden
	case 404:
		return CategoryNotFound
	case 500:
		return CategoryServerError
	case 503:
		return CategoryServiceUnavailable
	default:
		return CategoryOtherHTTP
	}
}

// Error is the typed failure returned for every unsuccessful API call.
// ServerMessage carries the optional {message} field from the response body
// so gateways can prefer it over the fixed classification message.
type Error struct {
	Category      Category
	Status        int // zero when no response was received
	ServerMessage string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Category, e.Status)
	}
	return fmt.Sprintf("api: %s", e.Category)
}

// UserMessage returns the message to surface to the user: the server-supplied
// one when present, otherwise the category's fixed message.
func (e *Error) UserMessage() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	return e.Category.Message()
}
