package identity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/adapters/config"
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the identity extractor Graft node.
const NodeID graft.ID = "adapter.identity"

func init() {
	graft.Register(graft.Node[ports.IdentityExtractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.IdentityExtractor, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load(".")
			if err != nil {
				return nil, err
			}
			return New(cfg.IdentityFields...), nil
		},
	})
}
