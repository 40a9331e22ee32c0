package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamea-labs/ditrune/internal/mutation"
)

// FamilyOptions holds flags for the family command.
type FamilyOptions struct {
	*RootOptions
	Census bool // print the full 9-family role census instead of one seed
}

// NewFamilyCommand creates the family command.
func NewFamilyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FamilyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "family [seed]",
		Short: "Resolve a Ditrune's nuclear mutation family",
		Long: `Resolve the mutation family of a seed Ditrune: its structural role
(prime, acolyte, or temple), its family root, and the full mutation
trajectory including any detected cycle.

With --census, prints the role census of all 9 families instead.

Examples:
  ditrune family 42
  ditrune family 210120 --format json
  ditrune family --census`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Census {
				return runCensus(opts, cmd)
			}
			if len(args) != 1 {
				return NewExitError(ExitCommandError, "family requires a seed argument (or --census)")
			}
			return runFamily(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Census, "census", false, "print the per-family role census")

	return cmd
}

func runFamily(opts *FamilyOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	seed, err := parseSeed(arg)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	result, err := mutation.ResolveFamily(seed)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Ditrune %d (%s)\n", result.Seed, result.Digits)
	fmt.Fprintf(w, "Role:    %s\n", result.Role)
	fmt.Fprintf(w, "Root:    %s (%d)\n", result.Root, result.RootValue)
	fmt.Fprintf(w, "Outcome: %s after %d step(s)\n", result.Outcome, result.Steps)
	fmt.Fprintf(w, "Path:    %s\n", strings.Join(result.Path, " > "))
	if result.CycleDetected() {
		fmt.Fprintf(w, "Cycle:   %s\n", strings.Join(result.Cycle, " > "))
	}
	return nil
}

func runCensus(opts *FamilyOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	census, err := mutation.Census()
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(census)
	}

	w := formatter.Writer
	fmt.Fprintln(w, "Family  Root    Primes  Acolytes  Temples")
	for _, key := range []string{"00", "01", "02", "10", "11", "12", "20", "21", "22"} {
		counts, ok := census[key]
		if !ok {
			continue
		}
		root := string([]byte{key[0], key[0], key[0], key[1], key[1], key[1]})
		fmt.Fprintf(w, "%s      %s  %5d  %8d  %7d\n", key, root, counts.Primes, counts.Acolytes, counts.Temples)
	}
	return nil
}
