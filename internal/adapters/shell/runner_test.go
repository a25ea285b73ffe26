package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezer-parser/lezer/internal/adapters/shell"
	"github.com/lezer-parser/lezer/internal/core/domain"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	executor := shell.NewExecutor()

	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	}

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)

	output := stdout.String()
	require.Contains(t, output, "line1")
	require.Contains(t, output, "line2")
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	executor := shell.NewExecutor()

	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo $LEZ_TEST_VAR"},
		Dir:  t.TempDir(),
		Env:  map[string]string{"LEZ_TEST_VAR": "test-value-123"},
	}

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)

	require.Contains(t, stdout.String(), "test-value-123")
}

func TestExecutor_Execute_PathPrepend(t *testing.T) {
	executor := shell.NewExecutor()

	// A fake tool reachable only through the prepended PATH entry.
	binDir := t.TempDir()
	toolPath := filepath.Join(binDir, "lez-test-tool")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(toolPath, []byte("#!/bin/sh\necho success\n"), 0o700))

	cmd := domain.Command{
		Name: "lez-test-tool",
		Dir:  t.TempDir(),
		Env:  map[string]string{"PATH": binDir},
	}

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)

	require.Contains(t, stdout.String(), "success")
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	executor := shell.NewExecutor()

	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 42"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	executor := shell.NewExecutor()

	cmd := domain.Command{
		Name: "nonexistent-command-xyz123",
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.Error(t, err)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor()

	err := executor.Execute(context.Background(), domain.Command{}, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_AnsiPassthrough(t *testing.T) {
	executor := shell.NewExecutor()

	ansiRed := "\033[31m"
	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf '" + ansiRed + "colored'"},
		Dir:  t.TempDir(),
	}

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, ansiRed)
	assert.Contains(t, output, "colored")
}

func TestResolveEnvironment(t *testing.T) {
	t.Run("extra overrides inherited", func(t *testing.T) {
		env := shell.ResolveEnvironment(
			[]string{"HOME=/home/dev", "EDITOR=vi"},
			map[string]string{"EDITOR": "emacs"},
		)
		assert.Contains(t, env, "HOME=/home/dev")
		assert.Contains(t, env, "EDITOR=emacs")
		assert.NotContains(t, env, "EDITOR=vi")
	})

	t.Run("path prepends to inherited path", func(t *testing.T) {
		env := shell.ResolveEnvironment(
			[]string{"PATH=/usr/bin"},
			map[string]string{"PATH": "/ws/node_modules/.bin"},
		)
		want := "PATH=/ws/node_modules/.bin" + string(os.PathListSeparator) + "/usr/bin"
		assert.Contains(t, env, want)
	})

	t.Run("path without inherited path stands alone", func(t *testing.T) {
		env := shell.ResolveEnvironment(
			[]string{"HOME=/home/dev"},
			map[string]string{"PATH": "/ws/node_modules/.bin"},
		)
		assert.Contains(t, env, "PATH=/ws/node_modules/.bin")
	})

	t.Run("malformed entries are dropped", func(t *testing.T) {
		env := shell.ResolveEnvironment([]string{"NOEQUALS"}, nil)
		assert.Empty(t, env)
	})
}

func TestLookPath(t *testing.T) {
	binDir := t.TempDir()
	toolPath := filepath.Join(binDir, "tool")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(toolPath, []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "plain.txt"), []byte("data"), 0o600))

	t.Run("finds executable on path", func(t *testing.T) {
		got, err := shell.LookPath("tool", []string{"PATH=" + binDir})
		require.NoError(t, err)
		assert.Equal(t, toolPath, got)
	})

	t.Run("skips non-executable files", func(t *testing.T) {
		_, err := shell.LookPath("plain.txt", []string{"PATH=" + binDir})
		require.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("searches entries in order", func(t *testing.T) {
		otherDir := t.TempDir()
		path := strings.Join([]string{otherDir, binDir}, string(os.PathListSeparator))
		got, err := shell.LookPath("tool", []string{"PATH=" + path})
		require.NoError(t, err)
		assert.Equal(t, toolPath, got)
	})

	t.Run("empty path errors", func(t *testing.T) {
		_, err := shell.LookPath("tool", nil)
		require.ErrorIs(t, err, exec.ErrNotFound)
	})
}
