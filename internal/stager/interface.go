package stager

import "context"

// Stager writes in-memory uploads to temporary files the gateway can read.
type Stager interface {
	Stage(ctx context.Context, data []byte, ext string) (*StagedFile, error)
}
