// Package watch implements the debounced rebuild loop.
package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lezer-parser/lezer/internal/adapters/watcher"
	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
	"github.com/lezer-parser/lezer/internal/engine/builder"
)

// Runner runs single-package builds for the rebuild loop.
type Runner interface {
	Build(ctx context.Context, reg *domain.Registry, pkg *domain.Package, opts builder.Options) (bool, error)
}

// Session keeps packages rebuilt while their input files change.
//
// One mutex guards the pending set and the draining flag, the only state
// shared between the event goroutine and a running drain. Builds never
// overlap: a trigger while a drain runs only enqueues, and the running
// drain picks the work up before it finishes.
type Session struct {
	runner   Runner
	resolver ports.Resolver
	watcher  ports.Watcher
	logger   ports.Logger
	window   time.Duration

	reg   *domain.Registry
	index map[string][]*domain.Package

	mu       sync.Mutex
	pending  map[string]struct{}
	draining bool
}

// NewSession creates a new Session.
func NewSession(runner Runner, resolver ports.Resolver, fsWatcher ports.Watcher, logger ports.Logger) *Session {
	return &Session{
		runner:   runner,
		resolver: resolver,
		watcher:  fsWatcher,
		logger:   logger,
		window:   watcher.DefaultDebounceWindow,
		pending:  make(map[string]struct{}),
	}
}

// Run performs one baseline build pass, then watches every input file and
// rebuilds stale packages until the context is canceled.
func (s *Session) Run(ctx context.Context, reg *domain.Registry) error {
	s.reg = reg

	s.baseline(ctx)
	s.buildIndex()

	if err := s.watcher.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = s.watcher.Stop() }()

	debouncer := watcher.NewDebouncer(s.window, func(paths []string) {
		s.enqueue(ctx, paths)
	})

	s.logger.Info("watching for changes")

	for event := range s.watcher.Events() {
		s.handleEvent(event, debouncer)
	}
	return ctx.Err()
}

// baseline builds every package once, in registry order, so watching
// starts from a consistent state. Failures are logged, not fatal.
func (s *Session) baseline(ctx context.Context) {
	for _, pkg := range s.reg.Packages() {
		if _, err := s.runner.Build(ctx, s.reg, pkg, builder.Options{}); err != nil {
			s.logger.Error(err)
		}
	}
}

// buildIndex maps every input file to the packages it feeds and registers
// one watch per path. Dependency sets are resolved once here; a session
// does not pick up imports added after it started.
func (s *Session) buildIndex() {
	s.index = make(map[string][]*domain.Package)
	for _, pkg := range s.reg.Packages() {
		inputs, err := s.resolver.InputFiles(s.reg, pkg)
		if err != nil {
			s.logger.Error(err)
			continue
		}
		for _, path := range inputs {
			s.index[path] = append(s.index[path], pkg)
		}
	}

	for path := range s.index {
		if err := s.watcher.Add(path); err != nil {
			s.logger.Warn(fmt.Sprintf("cannot watch %s: %v", path, err))
		}
	}
}

// handleEvent feeds a change into the debouncer and re-arms watches lost
// to rename-class events.
func (s *Session) handleEvent(event ports.WatchEvent, debouncer *watcher.Debouncer) {
	if _, watched := s.index[event.Path]; !watched {
		return
	}

	debouncer.Add(event.Path)

	// Watches do not survive a rename or replace on every platform.
	// Re-arm once the path has had a chance to settle; a path that stays
	// gone is dropped silently.
	if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
		path := event.Path
		time.AfterFunc(s.window, func() {
			_ = s.watcher.Add(path)
		})
	}
}

// enqueue marks the owners of the changed paths pending and starts a
// drain unless one is already running.
func (s *Session) enqueue(ctx context.Context, paths []string) {
	s.mu.Lock()
	for _, path := range paths {
		for _, pkg := range s.index[path] {
			s.pending[pkg.Name] = struct{}{}
		}
	}
	if s.draining || len(s.pending) == 0 {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	s.drain(ctx)
}

// drain rebuilds pending packages one at a time until the set empties.
// A failed rebuild is logged and the loop continues.
func (s *Session) drain(ctx context.Context) {
	for {
		pkg := s.nextPending()
		if pkg == nil {
			return
		}
		if ctx.Err() != nil {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
			return
		}
		if _, err := s.runner.Build(ctx, s.reg, pkg, builder.Options{}); err != nil {
			s.logger.Error(err)
		}
	}
}

// nextPending pops the pending package that comes first in registry
// order, so upstream packages rebuild before their dependents. It clears
// the draining flag and returns nil once the set is empty.
func (s *Session) nextPending() *domain.Package {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := -1
	for name := range s.pending {
		idx := s.reg.Index(name)
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best == -1 {
		s.draining = false
		return nil
	}

	pkg := s.reg.Packages()[best]
	delete(s.pending, pkg.Name)
	return pkg
}
