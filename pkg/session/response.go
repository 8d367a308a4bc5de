package session

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Response is the result of one request. IsError is set when the request
// could not be completed, in which case Text is empty.
type Response struct {
	Text         string `json:"text,omitempty"`
	Status       int    `json:"status,omitempty"`
	IsError      bool   `json:"is_error,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	return types.Stringify(r)
}
