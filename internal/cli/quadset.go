package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamea-labs/ditrune/internal/quadset"
	"github.com/kamea-labs/ditrune/internal/ternary"
)

// QuadsetReport is the quadset command's payload.
type QuadsetReport struct {
	Seed    int             `json:"seed"`
	Digits  string          `json:"digits"`
	Quadset quadset.Quadset `json:"quadset"`
	Region  quadset.Region  `json:"region"`
}

// NewQuadsetCommand creates the quadset command.
func NewQuadsetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quadset <seed>",
		Short: "Resolve the four-fold symmetry group of a Ditrune",
		Long: `Resolve the quadset of a seed Ditrune: the seed itself, its Reversal
(y-axis mirror), its Conrune (point reflection), and their composition
(x-axis mirror), plus the seed's region classification.

The seed is a decimal integer in [0,728] or a 6-digit base-3 string.

Examples:
  ditrune quadset 42
  ditrune quadset 001120 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuadset(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runQuadset(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	seed, err := parseSeed(arg)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	layout, err := resolveLayout(opts)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	formatter.VerboseLog("Using layout %q", layout.Name)

	resolver := quadset.NewResolver(layout)
	q, err := resolver.Resolve(seed)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	region, err := resolver.ClassifyRegion(seed)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	digits, err := ternary.ToTernary(seed)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	report := QuadsetReport{Seed: seed, Digits: digits, Quadset: q, Region: region}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(report)
	}
	return printQuadsetText(formatter, report)
}

func printQuadsetText(formatter *OutputFormatter, report QuadsetReport) error {
	w := formatter.Writer

	fmt.Fprintf(w, "Ditrune %d (%s)\n", report.Seed, report.Digits)
	fmt.Fprintf(w, "Region: %s (%s)\n\n", report.Region.Name, report.Region.Key)

	members := []struct {
		name  string
		value int
	}{
		{"self", report.Quadset.Self},
		{"y_mirror", report.Quadset.YMirror},
		{"anti_self", report.Quadset.AntiSelf},
		{"x_mirror", report.Quadset.XMirror},
	}
	for _, m := range members {
		d, err := ternary.ToTernary(m.value)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-10s %3d  %s\n", m.name, m.value, d)
	}

	if report.Quadset.Degenerate() {
		fmt.Fprintln(w)
		for _, c := range report.Quadset.Coincidences {
			fmt.Fprintf(w, "  coincidence: %s = %s (%d)\n", c.Duplicate, c.First, c.Value)
		}
	}

	return nil
}
