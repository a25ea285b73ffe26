package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lezer-parser/lezer/internal/adapters/config"
	"github.com/lezer-parser/lezer/internal/adapters/git"
	"github.com/lezer-parser/lezer/internal/adapters/logger"
	"github.com/lezer-parser/lezer/internal/adapters/shell"
	"github.com/lezer-parser/lezer/internal/core/ports"
	"github.com/lezer-parser/lezer/internal/engine/builder"
	"github.com/lezer-parser/lezer/internal/engine/release"
	"github.com/lezer-parser/lezer/internal/engine/watch"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			git.NodeID,
			logger.NodeID,
			builder.NodeID,
			watch.NodeID,
			release.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			vcs, err := graft.Dep[ports.VCS](ctx)
			if err != nil {
				return nil, err
			}
			build, err := graft.Dep[*builder.Builder](ctx)
			if err != nil {
				return nil, err
			}
			session, err := graft.Dep[*watch.Session](ctx)
			if err != nil {
				return nil, err
			}
			releaser, err := graft.Dep[*release.Releaser](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, executor, log, vcs, build, session, releaser), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
