package app_test

import (
	"bytes"
	"context"
	"io"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lezer-parser/lezer/internal/adapters/fs"
	"github.com/lezer-parser/lezer/internal/adapters/imports"
	"github.com/lezer-parser/lezer/internal/app"
	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
	"github.com/lezer-parser/lezer/internal/core/ports/mocks"
	"github.com/lezer-parser/lezer/internal/engine/builder"
	"github.com/lezer-parser/lezer/internal/engine/release"
	"github.com/lezer-parser/lezer/internal/engine/watch"
)

type appFixture struct {
	app       *app.App
	out       *bytes.Buffer
	bundler   *mocks.MockBundler
	executor  *mocks.MockExecutor
	vcs       *mocks.MockVCS
	manifests *mocks.MockManifests
	watcher   *mocks.MockWatcher
	reg       *domain.Registry
	root      string

	mu     sync.Mutex
	infos  []string
	errors []error
}

func (f *appFixture) infoLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.infos...)
}

func (f *appFixture) errorCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors)
}

// newAppFixture builds a two package workspace on disk and an App whose
// engines are real but whose outer ports are mocks.
func newAppFixture(t *testing.T) *appFixture {
	t.Helper()

	root := t.TempDir()
	writeSource(t, root, "common/src/index.ts", "export class Tree {}")
	writeSource(t, root, "lr/src/index.ts", `import {Tree} from "../../common/src/index"`)

	packages := []*domain.Package{
		{Name: "common", Kind: domain.KindCore, Dir: filepath.Join(root, "common"), Entry: "src/index.ts"},
		{Name: "lr", Kind: domain.KindCore, Dir: filepath.Join(root, "lr"), Entry: "src/index.ts"},
	}
	reg, err := domain.NewRegistry(root, "", "https://github.com/lezer-parser", packages)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	f := &appFixture{
		out:       new(bytes.Buffer),
		bundler:   mocks.NewMockBundler(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		vcs:       mocks.NewMockVCS(ctrl),
		manifests: mocks.NewMockManifests(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		reg:       reg,
		root:      root,
	}

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(reg, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.infos = append(f.infos, msg)
	}).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.errors = append(f.errors, err)
	}).AnyTimes()

	resolver := imports.NewResolver(fs.NewWalker())
	build := builder.NewBuilder(f.bundler, resolver, fs.NewHasher(), log)
	session := watch.NewSession(build, resolver, f.watcher, log)
	releaser := release.NewReleaser(f.vcs, f.manifests, log)

	f.app = app.New(loader, f.executor, log, f.vcs, build, session, releaser).WithOutput(f.out)
	return f
}

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func bundleArtifacts(code, decl string) *domain.BundleResult {
	return &domain.BundleResult{Artifacts: []domain.Artifact{
		{Name: domain.MainOutputName, Data: []byte(code)},
		{Name: domain.MainOutputName + ".map", Data: []byte("{}")},
		{Name: domain.DeclarationOutputName, Data: []byte(decl), Declaration: true},
	}}
}

func TestApp_Packages(t *testing.T) {
	f := newAppFixture(t)

	require.NoError(t, f.app.Packages(context.Background()))
	assert.Equal(t, "common\nlr\n", f.out.String())
}

func TestApp_Build_All(t *testing.T) {
	f := newAppFixture(t)

	var order []string
	f.bundler.EXPECT().
		Bundle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job domain.BundleJob) (*domain.BundleResult, error) {
			order = append(order, job.Package)
			return bundleArtifacts("code", "decl "+job.Package), nil
		}).
		Times(2)

	require.NoError(t, f.app.Build(context.Background(), nil, app.BuildOptions{}))
	assert.Equal(t, []string{"common", "lr"}, order)
}

func TestApp_Build_NamedSubsetKeepsRegistryOrder(t *testing.T) {
	f := newAppFixture(t)

	var order []string
	f.bundler.EXPECT().
		Bundle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job domain.BundleJob) (*domain.BundleResult, error) {
			order = append(order, job.Package)
			return bundleArtifacts("code", "decl"), nil
		}).
		Times(2)

	require.NoError(t, f.app.Build(context.Background(), []string{"lr", "common"}, app.BuildOptions{}))
	assert.Equal(t, []string{"common", "lr"}, order)
}

func TestApp_Build_UnknownPackage(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Build(context.Background(), []string{"tern"}, app.BuildOptions{})
	require.ErrorContains(t, err, domain.ErrUnknownPackage.Error())
}

func TestApp_Build_MissingCheckout(t *testing.T) {
	f := newAppFixture(t)
	require.NoError(t, os.RemoveAll(filepath.Join(f.root, "lr")))

	err := f.app.Build(context.Background(), []string{"lr"}, app.BuildOptions{})
	require.ErrorContains(t, err, domain.ErrMissingCheckout.Error())
}

func TestApp_Build_UpToDate(t *testing.T) {
	f := newAppFixture(t)

	f.bundler.EXPECT().
		Bundle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job domain.BundleJob) (*domain.BundleResult, error) {
			return bundleArtifacts("code", "decl "+job.Package), nil
		}).
		Times(2)

	ctx := context.Background()
	require.NoError(t, f.app.Build(ctx, nil, app.BuildOptions{}))
	require.NoError(t, f.app.Build(ctx, nil, app.BuildOptions{}))

	assert.Contains(t, f.infoLog(), "everything is up to date")
}

func TestApp_Watch_CleanShutdownOnCancel(t *testing.T) {
	f := newAppFixture(t)

	f.bundler.EXPECT().Bundle(gomock.Any(), gomock.Any()).Return(nil, context.Canceled).Times(2)
	f.watcher.EXPECT().Add(gomock.Any()).Return(nil).AnyTimes()
	f.watcher.EXPECT().Start(gomock.Any()).Return(nil)
	f.watcher.EXPECT().Stop().Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(func(ports.WatchEvent) bool) {}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, f.app.Watch(ctx))
	assert.Equal(t, 2, f.errorCount())
}

func TestApp_Run_StopsOnFirstFailure(t *testing.T) {
	f := newAppFixture(t)

	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, "npm", cmd.Name)
			assert.Equal(t, []string{"test"}, cmd.Args)
			return assert.AnError
		}).
		Times(1)

	err := f.app.Run(context.Background(), []string{"npm", "test"}, app.RunOptions{})
	require.ErrorContains(t, err, assert.AnError.Error())
	assert.Equal(t, "common:\n", f.out.String())
}

func TestApp_Run_ContinueAfterFailure(t *testing.T) {
	f := newAppFixture(t)

	var dirs []string
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			dirs = append(dirs, cmd.Dir)
			if cmd.Dir == filepath.Join(f.root, "common") {
				return assert.AnError
			}
			return nil
		}).
		Times(2)

	require.NoError(t, f.app.Run(context.Background(), []string{"npm", "test"}, app.RunOptions{Continue: true}))
	assert.Equal(t, []string{filepath.Join(f.root, "common"), filepath.Join(f.root, "lr")}, dirs)
	assert.Equal(t, 1, f.errorCount())
}

func TestApp_Run_NoCommand(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Run(context.Background(), nil, app.RunOptions{})
	require.ErrorContains(t, err, domain.ErrNoCommand.Error())
}

func TestApp_Install_ClonesMissingOnly(t *testing.T) {
	f := newAppFixture(t)
	lrDir := filepath.Join(f.root, "lr")
	require.NoError(t, os.RemoveAll(lrDir))

	f.vcs.EXPECT().
		Clone(gomock.Any(), "https://github.com/lezer-parser/lr.git", lrDir).
		Return(nil)

	require.NoError(t, f.app.Install(context.Background(), app.InstallOptions{NoDeps: true}))
}

func TestApp_Install_InstallsDependencies(t *testing.T) {
	f := newAppFixture(t)

	var dirs []string
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, "npm", cmd.Name)
			assert.Equal(t, []string{"install"}, cmd.Args)
			dirs = append(dirs, cmd.Dir)
			return nil
		}).
		Times(2)

	require.NoError(t, f.app.Install(context.Background(), app.InstallOptions{}))
	assert.Equal(t, []string{filepath.Join(f.root, "common"), filepath.Join(f.root, "lr")}, dirs)
}

func TestApp_Status_PrintsDirtyCheckouts(t *testing.T) {
	f := newAppFixture(t)

	f.vcs.EXPECT().Status(gomock.Any(), filepath.Join(f.root, "common")).Return(" M src/index.ts", nil)
	f.vcs.EXPECT().Status(gomock.Any(), filepath.Join(f.root, "lr")).Return("", nil)

	require.NoError(t, f.app.Status(context.Background()))
	assert.Equal(t, "common:\n   M src/index.ts\n", f.out.String())
}

func TestApp_Status_AllClean(t *testing.T) {
	f := newAppFixture(t)

	f.vcs.EXPECT().Status(gomock.Any(), gomock.Any()).Return("", nil).Times(2)

	require.NoError(t, f.app.Status(context.Background()))
	assert.Empty(t, f.out.String())
	assert.Contains(t, f.infoLog(), "all checkouts clean")
}

func TestApp_Commit_CommitsDirtyCheckouts(t *testing.T) {
	f := newAppFixture(t)

	f.vcs.EXPECT().Dirty(gomock.Any(), filepath.Join(f.root, "common")).Return(true, nil)
	f.vcs.EXPECT().Dirty(gomock.Any(), filepath.Join(f.root, "lr")).Return(false, nil)
	f.vcs.EXPECT().CommitAll(gomock.Any(), filepath.Join(f.root, "common"), "Sync metadata").Return(nil)

	require.NoError(t, f.app.Commit(context.Background(), "Sync metadata"))
	assert.Contains(t, f.infoLog(), "committed common")
}

func TestApp_Notes_PrintsPendingSections(t *testing.T) {
	f := newAppFixture(t)

	f.vcs.EXPECT().LatestTag(gomock.Any(), filepath.Join(f.root, "common")).Return("1.2.3", nil)
	f.vcs.EXPECT().MessagesSince(gomock.Any(), filepath.Join(f.root, "common"), "1.2.3").
		Return([]string{"Fix: Handle empty buffers."}, nil)

	require.NoError(t, f.app.Notes(context.Background(), "common"))
	assert.Equal(t, "### Bug fixes\n\nHandle empty buffers.\n", f.out.String())
}

func TestApp_Release_UnknownPackage(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Release(context.Background(), "tern", release.Options{})
	require.ErrorContains(t, err, domain.ErrUnknownPackage.Error())
}

func TestApp_ReleaseAll_UnknownNotePackage(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.ReleaseAll(context.Background(), release.AllOptions{
		PackageNotes: map[string]string{"tern": "note"},
	})
	require.ErrorContains(t, err, domain.ErrUnknownPackage.Error())
}

func TestApp_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, assert.AnError)

	log := mocks.NewMockLogger(ctrl)
	application := app.New(
		loader,
		mocks.NewMockExecutor(ctrl),
		log,
		mocks.NewMockVCS(ctrl),
		nil, nil, nil,
	)

	err := application.Packages(context.Background())
	require.ErrorContains(t, err, "failed to load configuration")
	require.ErrorContains(t, err, assert.AnError.Error())
}
