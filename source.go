package walknet

import (
	"context"
)

// NetworkSource supplies the raw walk network for a region
type NetworkSource interface {
	FetchGraph(ctx context.Context, region Region) (*RawGraph, error)
}

// NetworkSourceFunc adapts plain function to NetworkSource
type NetworkSourceFunc func(ctx context.Context, region Region) (*RawGraph, error)

// FetchGraph calls f(ctx, region)
func (f NetworkSourceFunc) FetchGraph(ctx context.Context, region Region) (*RawGraph, error) {
	return f(ctx, region)
}
