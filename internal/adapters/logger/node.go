package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// WarningsNodeID is the unique identifier for the warning sink Graft node.
const WarningsNodeID graft.ID = "adapter.warnings"

func init() {
	shared := New()

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return shared, nil
		},
	})

	graft.Register(graft.Node[ports.WarningSink]{
		ID:        WarningsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WarningSink, error) {
			return shared, nil
		},
	})
}
