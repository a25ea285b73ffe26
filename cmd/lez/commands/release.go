package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/lezer-parser/lezer/internal/engine/release"
)

// errNoteSyntax is returned when a release-all argument is not a
// --<package> or --grammar flag followed by the note text.
var errNoteSyntax = zerr.New("release notes must be given as --<package> or --grammar flags followed by the note text")

func (c *CLI) newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release <package>",
		Short: "Tag a new version of a package and update its changelog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")
			note, _ := cmd.Flags().GetString("message")
			return c.app.Release(cmd.Context(), args[0], release.Options{
				Version: version,
				Note:    note,
			})
		},
	}
	cmd.Flags().String("version", "", "Release exactly this version instead of deriving one from the pending notes")
	cmd.Flags().StringP("message", "m", "", "Extra paragraph to include in the changelog entry")
	return cmd
}

func (c *CLI) newReleaseAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release-all [--grammar note] [--<package> note]",
		Short: "Release every package at one shared version",
		// Notes are keyed by package name, so the flag set cannot be
		// declared up front.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseReleaseAllArgs(cmd, args)
			if err != nil || opts == nil {
				return err
			}
			return c.app.ReleaseAll(cmd.Context(), *opts)
		},
	}
}

// parseReleaseAllArgs interprets the raw argument list as --name note pairs.
// A nil result without an error means help was requested.
func parseReleaseAllArgs(cmd *cobra.Command, args []string) (*release.AllOptions, error) {
	opts := release.AllOptions{PackageNotes: map[string]string{}}
	for i := 0; i < len(args); i++ {
		if args[i] == "--help" || args[i] == "-h" {
			return nil, cmd.Help()
		}
		name, ok := strings.CutPrefix(args[i], "--")
		if !ok || name == "" {
			return nil, zerr.With(errNoteSyntax, "argument", args[i])
		}
		if i+1 == len(args) {
			return nil, zerr.With(errNoteSyntax, "flag", args[i])
		}
		i++
		if name == "grammar" {
			opts.GrammarNote = args[i]
			continue
		}
		opts.PackageNotes[name] = args[i]
	}
	return &opts, nil
}

func (c *CLI) newBumpDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bump-deps <version>",
		Short: "Point every cross-package dependency at the given version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.BumpDeps(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes <package>",
		Short: "Print the changelog entry a release would add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Notes(cmd.Context(), args[0])
		},
	}
}
