package mcp

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpggio/pairwork/internal/source"
)

var (
	// ErrInvalidInput indicates neither or both of csv and path were given.
	ErrInvalidInput = errors.New("exactly one of csv or path is required")
	// ErrPathNotAllowed indicates a file path was given over a remote transport.
	ErrPathNotAllowed = errors.New("path input is only available over stdio")
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps known errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Pass assignment rows in csv or a file in path"}
	case errors.Is(err, ErrPathNotAllowed):
		return &APIError{Code: "PATH_NOT_ALLOWED", Message: err.Error(), RecoveryHint: "Send the file contents in csv"}
	case errors.Is(err, source.ErrInvalidSeparator):
		return &APIError{Code: "INVALID_SEPARATOR", Message: err.Error(), RecoveryHint: "Use a single character such as , or ;"}
	case errors.Is(err, os.ErrNotExist):
		return &APIError{Code: "FILE_NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the path"}
	default:
		return nil
	}
}

func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
