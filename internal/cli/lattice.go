package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamea-labs/ditrune/internal/lattice"
	"github.com/kamea-labs/ditrune/internal/ternary"
)

// NewLatticeCommand creates the lattice command group.
func NewLatticeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "Inspect and validate lattice layouts",
	}

	cmd.AddCommand(newLatticeValidateCommand(rootOpts))
	cmd.AddCommand(newLatticeLocateCommand(rootOpts))

	return cmd
}

// LayoutReport is the lattice validate payload.
type LayoutReport struct {
	Layout    string `json:"layout"`
	Mapper    string `json:"mapper"`
	Cells     int    `json:"cells"`
	Bijective bool   `json:"bijective"`
	Resonant  bool   `json:"resonant"`
}

func newLatticeValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a layout's mapper against the lattice invariants",
		Long: `Validate the selected layout: the mapper must be a bijection between
[0,728] and the 27x27 grid, place Ditrune 0 at the origin, align Core
Bigram sectors, and satisfy the Axial Resonance law.

Examples:
  ditrune lattice validate
  ditrune lattice validate --layout custom.cue`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLatticeValidate(rootOpts, cmd)
		},
	}
}

func runLatticeValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	layout, err := resolveLayout(opts)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	mapper, err := layout.NewMapper()
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	formatter.VerboseLog("Validating layout %q (%s mapper)", layout.Name, layout.Mapper)

	if err := lattice.Validate(mapper); err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("layout %q is not a valid bijection", layout.Name))
	}
	if err := lattice.ValidateResonance(mapper); err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("layout %q violates axial resonance", layout.Name))
	}

	report := LayoutReport{
		Layout:    layout.Name,
		Mapper:    layout.Mapper,
		Cells:     ternary.DomainSize,
		Bijective: true,
		Resonant:  true,
	}
	if formatter.Format == "json" {
		return formatter.SuccessJSON(report)
	}

	fmt.Fprintf(formatter.Writer, "Layout %q valid: bijective over %d cells, resonance holds\n",
		layout.Name, ternary.DomainSize)
	return nil
}

// LocateReport is the lattice locate payload.
type LocateReport struct {
	Seed   int    `json:"seed"`
	Digits string `json:"digits"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Axis   bool   `json:"axis"`
}

func newLatticeLocateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "locate <seed>",
		Short:         "Place a Ditrune on the 27x27 lattice",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLatticeLocate(rootOpts, args[0], cmd)
		},
	}
}

func runLatticeLocate(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	seed, err := parseSeed(arg)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	layout, err := resolveLayout(opts)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	mapper, err := layout.NewMapper()
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	coord, err := mapper.Locate(seed)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	digits, err := ternary.ToTernary(seed)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	report := LocateReport{Seed: seed, Digits: digits, X: coord.X, Y: coord.Y, Axis: coord.Axis()}
	if formatter.Format == "json" {
		return formatter.SuccessJSON(report)
	}

	fmt.Fprintf(formatter.Writer, "Ditrune %d (%s) at %s", seed, digits, coord)
	if report.Axis {
		fmt.Fprint(formatter.Writer, " [axis]")
	}
	fmt.Fprintln(formatter.Writer)
	return nil
}
