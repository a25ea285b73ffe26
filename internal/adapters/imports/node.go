package imports

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lezer-parser/lezer/internal/adapters/fs"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// NodeID is the unique identifier for the import resolver Graft node.
const NodeID graft.ID = "adapter.imports.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.Resolver, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})
}
