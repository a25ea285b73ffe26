// Package git shells out to the git binary for version control operations.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"

	"github.com/lezer-parser/lezer/internal/core/ports"
)

var _ ports.VCS = (*Client)(nil)

// Client implements ports.VCS by invoking the git binary.
type Client struct{}

// NewClient creates a new Client.
func NewClient() *Client {
	return &Client{}
}

// run executes git with the given arguments in dir and returns its stdout.
func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		err = zerr.Wrap(err, "git "+args[0]+" failed")
		err = zerr.With(err, "dir", dir)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return "", err
	}

	return stdout.String(), nil
}

// Clone checks out a remote repository into dir.
func (c *Client) Clone(ctx context.Context, remote, dir string) error {
	_, err := c.run(ctx, "", "clone", remote, dir)
	return err
}

// Status returns the short status of the checkout, empty when clean.
func (c *Client) Status(ctx context.Context, dir string) (string, error) {
	out, err := c.run(ctx, dir, "status", "--short")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// Dirty reports whether the checkout has uncommitted changes.
func (c *Client) Dirty(ctx context.Context, dir string) (bool, error) {
	out, err := c.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// LatestTag returns the most recent tag reachable from HEAD. A repository
// without tags yields the empty string, not an error: describe exits
// non-zero in that case.
func (c *Client) LatestTag(ctx context.Context, dir string) (string, error) {
	out, err := c.run(ctx, dir, "describe", "--tags", "--abbrev=0")
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// MessagesSince returns the full commit messages after the given tag,
// newest first. An empty tag returns the whole history.
func (c *Client) MessagesSince(ctx context.Context, dir, tag string) ([]string, error) {
	revRange := "HEAD"
	if tag != "" {
		revRange = tag + "..HEAD"
	}

	out, err := c.run(ctx, dir, "log", revRange, "--pretty=format:%B%x00")
	if err != nil {
		return nil, err
	}
	return splitMessages(out), nil
}

// CommitAll stages every change in dir and commits it.
func (c *Client) CommitAll(ctx context.Context, dir, message string) error {
	if _, err := c.run(ctx, dir, "add", "-A"); err != nil {
		return err
	}
	_, err := c.run(ctx, dir, "commit", "-m", message)
	return err
}

// Tag creates a tag named name at HEAD.
func (c *Client) Tag(ctx context.Context, dir, name string) error {
	_, err := c.run(ctx, dir, "tag", name)
	return err
}

// splitMessages splits NUL-framed log output into trimmed, non-empty
// commit messages.
func splitMessages(out string) []string {
	var messages []string
	for _, msg := range strings.Split(out, "\x00") {
		msg = strings.TrimSpace(msg)
		if msg == "" {
			continue
		}
		messages = append(messages, msg)
	}
	return messages
}
