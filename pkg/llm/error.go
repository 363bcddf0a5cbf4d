// Package llm provides the request and response types exchanged between the
// explorer's surfaces (HTTP, MCP, CLI) and the distribution transform library.
package llm

// ErrorResponse represents a failed explorer call.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"` // Library error kind, e.g. "invalid_parameter"
}
