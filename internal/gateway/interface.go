package gateway

import "context"

// State is the remote processing state of an uploaded file.
type State string

const (
	StateUnspecified State = "STATE_UNSPECIFIED"
	StateProcessing  State = "PROCESSING"
	StateActive      State = "ACTIVE"
	StateFailed      State = "FAILED"
)

// Handle is the gateway-side reference to an uploaded file.
type Handle struct {
	Name     string
	URI      string
	MIMEType string
	State    State
}

// Gateway is the subset of the hosted model API the analyzer relies on.
type Gateway interface {
	// Upload pushes a local file and returns its initial handle.
	Upload(ctx context.Context, path, mimeType string) (Handle, error)
	// GetFile re-fetches a handle by name.
	GetFile(ctx context.Context, name string) (Handle, error)
	// Generate runs one prompt against an uploaded file and returns the text answer.
	Generate(ctx context.Context, file Handle, instruction, prompt string) (string, error)
}

// Factory builds a Gateway for one API key.
type Factory func(ctx context.Context, apiKey string) (Gateway, error)
