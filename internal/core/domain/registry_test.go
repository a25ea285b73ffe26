package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackages(root string, names ...string) []*domain.Package {
	pkgs := make([]*domain.Package, len(names))
	for i, name := range names {
		pkgs[i] = &domain.Package{
			Name:  name,
			Kind:  domain.KindCore,
			Dir:   filepath.Join(root, name),
			Entry: domain.DefaultEntryPoint,
		}
	}
	return pkgs
}

func TestNewRegistry(t *testing.T) {
	root := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		reg, err := domain.NewRegistry(root, "", "", testPackages(root, "common", "lr"))
		require.NoError(t, err)
		assert.Equal(t, []string{"common", "lr"}, reg.Names())
		assert.Equal(t, domain.DefaultScope, reg.Scope())
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("no packages", func(t *testing.T) {
		_, err := domain.NewRegistry(root, "", "", nil)
		require.ErrorContains(t, err, domain.ErrNoPackages.Error())
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := domain.NewRegistry(root, "", "", testPackages(root, "common", "common"))
		require.ErrorContains(t, err, domain.ErrDuplicatePackage.Error())
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := domain.NewRegistry(root, "", "", testPackages(root, "Common"))
		require.ErrorContains(t, err, domain.ErrInvalidPackageName.Error())
	})
}

func TestRegistry_Lookup(t *testing.T) {
	root := t.TempDir()
	reg, err := domain.NewRegistry(root, "@lezer", "", testPackages(root, "common", "lr", "javascript"))
	require.NoError(t, err)

	pkg, ok := reg.ByName("lr")
	require.True(t, ok)
	assert.Equal(t, "lr", pkg.Name)
	assert.Equal(t, 1, reg.Index("lr"))

	_, ok = reg.ByName("css")
	assert.False(t, ok)
	assert.Equal(t, -1, reg.Index("css"))
}

func TestRegistry_Owner(t *testing.T) {
	root := t.TempDir()
	reg, err := domain.NewRegistry(root, "", "", testPackages(root, "common", "lr"))
	require.NoError(t, err)

	inside := filepath.Join(root, "lr", "src", "parse.ts")
	pkg := reg.Owner(inside)
	require.NotNil(t, pkg)
	assert.Equal(t, "lr", pkg.Name)

	assert.Nil(t, reg.Owner(filepath.Join(root, "elsewhere", "file.ts")))
	assert.Nil(t, reg.Owner(filepath.Join(root, "lezer.yaml")))
}

func TestRegistry_Remote(t *testing.T) {
	root := t.TempDir()
	pkgs := testPackages(root, "common", "lr")
	pkgs[1].Repo = "https://example.com/forks/lr.git"

	reg, err := domain.NewRegistry(root, "", "https://github.com/lezer-parser", pkgs)
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/lezer-parser/common.git", reg.Remote(pkgs[0]))
	assert.Equal(t, "https://example.com/forks/lr.git", reg.Remote(pkgs[1]))
}

func TestPackage_Outputs(t *testing.T) {
	pkg := &domain.Package{Name: "lr", Dir: "/ws/lr", Entry: "src/index.ts", ESM: true}

	assert.Equal(t, filepath.Join("/ws/lr", "dist", "index.cjs"), pkg.MainOutput())
	assert.Equal(t, filepath.Join("/ws/lr", "dist", "index.js"), pkg.ESMOutput())
	assert.Len(t, pkg.RequiredOutputs(), 2)

	pkg.ESM = false
	assert.Equal(t, []string{pkg.MainOutput()}, pkg.RequiredOutputs())
}

func TestPackage_NPMName(t *testing.T) {
	pkg := &domain.Package{Name: "common"}
	assert.Equal(t, "@lezer/common", pkg.NPMName("@lezer"))
	assert.Equal(t, "common", pkg.NPMName(""))
}

func TestParseKind(t *testing.T) {
	kind, err := domain.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, domain.KindCore, kind)

	kind, err = domain.ParseKind("grammar")
	require.NoError(t, err)
	assert.Equal(t, domain.KindGrammar, kind)

	_, err = domain.ParseKind("plugin")
	require.ErrorContains(t, err, domain.ErrInvalidKind.Error())
}
