package repository

import (
	"fmt"
	"strings"
)

// APIError is a non-2xx reply from the remote catalog API. Messages holds the
// server-provided message field, which may arrive as a string or a list.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error %d: %s", e.Status, e.Message())
}

// Message joins the server-provided messages for operator display.
func (e *APIError) Message() string {
	return strings.Join(e.Messages, ", ")
}
