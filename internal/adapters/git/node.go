package git

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lezer-parser/lezer/internal/core/ports"
)

// NodeID is the identifier of the git client node.
const NodeID graft.ID = "adapter.git.client"

func init() {
	graft.Register(graft.Node[ports.VCS]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VCS, error) {
			return NewClient(), nil
		},
	})
}
