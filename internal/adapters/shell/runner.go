// Package shell provides a pty-backed executor for running external commands.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/zerr"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/lezer-parser/lezer/internal/core/ports"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec and pty. Commands run
// under a pseudo terminal so tools that colorize or rewrite their output
// behave as they do interactively. The pty merges stderr into stdout, so
// everything the command prints reaches the stdout writer.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the command and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, command domain.Command, stdout, _ io.Writer) error {
	if command.Name == "" {
		return nil
	}

	env := resolveEnvironment(os.Environ(), command.Env)

	// Resolve against the merged PATH, not the process PATH, so binaries
	// reachable only through a prepended entry are found.
	executable := command.Name
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args...) //nolint:gosec // command comes from the caller
	if len(cmd.Args) > 0 {
		cmd.Args[0] = command.Name
	}
	if command.Dir != "" {
		cmd.Dir = command.Dir
	}
	cmd.Env = env

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", command.String())
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// The copy ends when the command exits and the pty drains.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// resolveEnvironment merges the inherited environment with the command's
// extra variables. A PATH entry is prepended to the inherited PATH rather
// than replacing it.
func resolveEnvironment(sysEnv []string, extra map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for k, v := range extra {
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
