package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezer-parser/lezer/internal/adapters/fs"
	"github.com/lezer-parser/lezer/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()

	index := writeFile(t, root, "src/index.ts", "export {}")
	parse := writeFile(t, root, "src/parse/parse.ts", "export {}")
	writeFile(t, root, ".git/config", "[core]")
	writeFile(t, root, "node_modules/dep/index.js", "module.exports = {}")

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, nil) {
		got = append(got, path)
	}
	slices.Sort(got)

	assert.Equal(t, []string{index, parse}, got)
}

func TestWalker_WalkFiles_Ignores(t *testing.T) {
	root := t.TempDir()

	keep := writeFile(t, root, "src/index.ts", "export {}")
	writeFile(t, root, "src/index.d.ts", "declare {}")
	writeFile(t, root, "dist/index.cjs", "module.exports = {}")

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, []string{"dist", "*.d.ts"}) {
		got = append(got, path)
	}

	assert.Equal(t, []string{keep}, got)
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "a.ts", "a")
	writeFile(t, root, "b.ts", "b")
	writeFile(t, root, "c.ts", "c")

	var count int
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	hasher := fs.NewHasher()

	a := writeFile(t, dir, "a.d.ts", "declare const x: number")
	b := writeFile(t, dir, "b.d.ts", "declare const x: number")
	c := writeFile(t, dir, "c.d.ts", "declare const y: string")

	hashA, err := hasher.HashFile(a)
	require.NoError(t, err)
	hashB, err := hasher.HashFile(b)
	require.NoError(t, err)
	hashC, err := hasher.HashFile(c)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB, "identical content should hash identically")
	assert.NotEqual(t, hashA, hashC, "different content should hash differently")
}

func TestHasher_HashFile_Missing(t *testing.T) {
	_, err := fs.NewHasher().HashFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestHasher_HashBytes(t *testing.T) {
	dir := t.TempDir()
	hasher := fs.NewHasher()

	content := "declare function parse(input: string): Tree"
	path := writeFile(t, dir, "index.d.ts", content)

	fromFile, err := hasher.HashFile(path)
	require.NoError(t, err)

	assert.Equal(t, fromFile, hasher.HashBytes([]byte(content)),
		"buffer and file hashes should agree for the same content")
	assert.Equal(t, xxhash.Sum64String(content), hasher.HashBytes([]byte(content)))
}
