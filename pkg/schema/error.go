package schema

import (
	"encoding/json"
	"fmt"
	"net/http"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrNotImplemented
	ErrTransport
	ErrAPI
	ErrMalformedResponse
	ErrInternalServerError
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// APIError is an error object reported by the service in the body of a
// response, ie. {"error": {...}}
type APIError struct {
	Status  int    `json:"status,omitempty"`
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message,omitempty"`

	// The serialized error object
	Body string `json:"body"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - Err

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrTransport:
		return "transport error"
	case ErrAPI:
		return "api error"
	case ErrMalformedResponse:
		return "malformed response"
	case ErrInternalServerError:
		return "internal server error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - APIError

// NewAPIError returns an APIError from the value of the "error" key in a
// response, and the HTTP status code of that response
func NewAPIError(status int, value Json) *APIError {
	err := &APIError{Status: status}
	if data, marshalErr := json.Marshal(value); marshalErr == nil {
		err.Body = string(data)
	}

	// The service usually returns an object, but a bare string is also seen
	switch v := value.(type) {
	case map[string]any:
		err.Type = stringValue(v["type"])
		err.Code = stringValue(v["code"])
		err.Param = stringValue(v["param"])
		err.Message = stringValue(v["message"])
	case string:
		err.Message = v
	}

	return err
}

func (e *APIError) Error() string {
	return ErrAPI.Error() + ": " + e.Body
}

// Unwrap returns ErrAPI and, when the response carried a non-success status,
// the corresponding httpresponse.Err
func (e *APIError) Unwrap() []error {
	result := []error{ErrAPI}
	if e.Status != 0 && (e.Status < http.StatusOK || e.Status >= http.StatusMultipleChoices) {
		result = append(result, httpresponse.Err(e.Status))
	}
	return result
}

func (e APIError) String() string {
	return types.Stringify(e)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func stringValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
