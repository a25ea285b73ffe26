package watch

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lezer-parser/lezer/internal/adapters/imports"
	"github.com/lezer-parser/lezer/internal/adapters/logger"
	"github.com/lezer-parser/lezer/internal/adapters/watcher"
	"github.com/lezer-parser/lezer/internal/core/ports"
	"github.com/lezer-parser/lezer/internal/engine/builder"
)

// NodeID is the unique identifier for the watch session Graft node.
const NodeID graft.ID = "engine.watch"

func init() {
	graft.Register(graft.Node[*Session]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{builder.NodeID, imports.NodeID, watcher.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Session, error) {
			runner, err := graft.Dep[*builder.Builder](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			fsWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSession(runner, resolver, fsWatcher, log), nil
		},
	})
}
