package bundler

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lezer-parser/lezer/internal/adapters/shell"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// NodeID is the identifier of the rollup bundler node.
const NodeID graft.ID = "adapter.bundler.rollup"

func init() {
	graft.Register(graft.Node[ports.Bundler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Bundler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewRollup(executor), nil
		},
	})
}
