package query

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/adapters/config"
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the query parser Graft node.
const NodeID graft.ID = "adapter.query_parser"

func init() {
	graft.Register(graft.Node[ports.QueryParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.QueryParser, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load(".")
			if err != nil {
				return nil, err
			}
			return NewParserWithRoot(cfg.RootID), nil
		},
	})
}
