package builder

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lezer-parser/lezer/internal/adapters/bundler"
	"github.com/lezer-parser/lezer/internal/adapters/fs"
	"github.com/lezer-parser/lezer/internal/adapters/imports"
	"github.com/lezer-parser/lezer/internal/adapters/logger"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{bundler.NodeID, imports.NodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			bundle, err := graft.Dep[ports.Bundler](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(bundle, resolver, hasher, log), nil
		},
	})
}
