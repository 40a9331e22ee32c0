package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamea-labs/ditrune/internal/convector"
)

// VectorsOptions holds flags for the vectors command.
type VectorsOptions struct {
	*RootOptions
	Verify bool
	Limit  int
}

// VectorsReport is the vectors command's payload.
type VectorsReport struct {
	TotalEntries    int                    `json:"total_entries"`
	NontrivialPairs int                    `json:"nontrivial_pairs"`
	Unique          bool                   `json:"unique"`
	Pairs           []convector.VectorPair `json:"pairs,omitempty"`
}

// NewVectorsCommand creates the vectors command.
func NewVectorsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VectorsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Compute the full Conrune vector analysis",
		Long: `Compute every Conrune vector pair {v, Conrune(v)} and its magnitude
|v - Conrune(v)| over the whole domain, and verify that every
nontrivial magnitude is unique.

Examples:
  ditrune vectors
  ditrune vectors --limit 10
  ditrune vectors --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectors(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Verify, "verify", true, "verify magnitude uniqueness")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "list at most N pairs in text output (0 lists none)")

	return cmd
}

func runVectors(opts *VectorsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	analysis, err := convector.ComputeAll(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "vector analysis failed", err)
	}
	formatter.VerboseLog("Computed %d vector entries", analysis.TotalEntries())

	unique := true
	if opts.Verify {
		collision, err := analysis.VerifyUniqueness(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "uniqueness check failed", err)
		}
		if collision != nil {
			unique = false
			_ = formatter.Error("MAGNITUDE_COLLISION",
				fmt.Sprintf("magnitude %d produced by both {%d,%d} and {%d,%d}",
					collision.Magnitude, collision.A.Low, collision.A.High,
					collision.B.Low, collision.B.High), collision)
			return NewExitError(ExitFailure, "vector magnitudes are not unique")
		}
	}

	report := VectorsReport{
		TotalEntries:    analysis.TotalEntries(),
		NontrivialPairs: analysis.NontrivialPairs(),
		Unique:          unique,
	}
	if opts.Format == "json" || opts.Limit > 0 {
		limit := opts.Limit
		if opts.Format == "json" && limit == 0 {
			limit = len(analysis.Pairs)
		}
		if limit > len(analysis.Pairs) {
			limit = len(analysis.Pairs)
		}
		report.Pairs = analysis.Pairs[:limit]
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(report)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%d vector entries: %d nontrivial pairs + 1 trivial fixed point\n",
		report.TotalEntries, report.NontrivialPairs)
	if opts.Verify {
		fmt.Fprintln(w, "All nontrivial magnitudes are unique")
	}
	if len(report.Pairs) > 0 {
		fmt.Fprintln(w)
		for _, p := range report.Pairs {
			if p.Trivial {
				fmt.Fprintf(w, "  {%d}        magnitude %d (trivial)\n", p.Low, p.Magnitude)
				continue
			}
			fmt.Fprintf(w, "  {%d, %d}  magnitude %d\n", p.Low, p.High, p.Magnitude)
		}
	}
	return nil
}
