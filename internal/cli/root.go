package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamea-labs/ditrune/internal/lattice"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Layout  string // optional CUE layout file; empty means the embedded default
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the ditrune CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ditrune",
		Short: "Ditrune - deterministic ternary symbol engine",
		Long: `A deterministic engine over the 729 six-digit ternary Ditrunes:
quadset symmetry, lattice placement, nuclear mutation families,
transition calculus, and Conrune vector analysis.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Layout, "layout", "", "CUE layout file (default: embedded balanced layout)")

	cmd.AddCommand(NewQuadsetCommand(opts))
	cmd.AddCommand(NewFamilyCommand(opts))
	cmd.AddCommand(NewTransitionCommand(opts))
	cmd.AddCommand(NewVectorsCommand(opts))
	cmd.AddCommand(NewLatticeCommand(opts))
	cmd.AddCommand(NewAtlasCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// resolveLayout returns the layout selected by the global --layout flag, or
// the embedded default when the flag is unset.
func resolveLayout(opts *RootOptions) (*lattice.Layout, error) {
	if opts.Layout == "" {
		return lattice.DefaultLayout(), nil
	}
	return lattice.LoadLayout(opts.Layout)
}
