// Package telemetry provides recording of merge progress.
package telemetry

import (
	"context"

	"go.trai.ch/strata/internal/core/ports"
)

// NoOpRecorder is a no-op implementation of ports.Telemetry.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a new NoOpRecorder.
func NewNoOpRecorder() *NoOpRecorder {
	return &NoOpRecorder{}
}

// Record creates a new no-op vertex.
func (r *NoOpRecorder) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (r *NoOpRecorder) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Write does nothing and returns the length of p.
func (v *NoOpVertex) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Done does nothing.
func (v *NoOpVertex) Done(_ error) {}
