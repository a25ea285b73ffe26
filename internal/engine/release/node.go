package release

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lezer-parser/lezer/internal/adapters/git"
	"github.com/lezer-parser/lezer/internal/adapters/logger"
	"github.com/lezer-parser/lezer/internal/adapters/manifest"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

// NodeID is the unique identifier for the releaser Graft node.
const NodeID graft.ID = "engine.release"

func init() {
	graft.Register(graft.Node[*Releaser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{git.NodeID, manifest.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Releaser, error) {
			vcs, err := graft.Dep[ports.VCS](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.Manifests](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReleaser(vcs, manifests, log), nil
		},
	})
}
