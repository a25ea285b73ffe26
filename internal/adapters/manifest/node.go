package manifest

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lezer-parser/lezer/internal/core/ports"
)

// NodeID is the unique identifier for the manifest store Graft node.
const NodeID graft.ID = "adapter.manifest.store"

func init() {
	graft.Register(graft.Node[ports.Manifests]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Manifests, error) {
			return NewStore(), nil
		},
	})
}
