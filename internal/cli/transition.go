package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamea-labs/ditrune/internal/ternary"
	"github.com/kamea-labs/ditrune/internal/transition"
)

// TransitionReport is the transition command's payload.
type TransitionReport struct {
	A         int    `json:"a"`
	ADigits   string `json:"a_digits"`
	B         int    `json:"b"`
	BDigits   string `json:"b_digits"`
	Transgram int    `json:"transgram"`
	Digits    string `json:"digits"`
}

// NewTransitionCommand creates the transition command.
func NewTransitionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transition <a> <b>",
		Short: "Compute the Transgram of two Ditrunes",
		Long: `Compute the Transgram of two Ditrunes: the position-wise transition
c = (-(a+b)) mod 3 across their digit strings. The operation is total
and symmetric, and the Transgram of any Ditrune with itself is itself.

Examples:
  ditrune transition 42 75
  ditrune transition 111111 222222 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runTransition(opts *RootOptions, argA, argB string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	a, err := parseSeed(argA)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	b, err := parseSeed(argB)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	value, err := transition.TransgramValue(a, b)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	aDigits, err := ternary.ToTernary(a)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	bDigits, err := ternary.ToTernary(b)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	digits, err := ternary.ToTernary(value)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	report := TransitionReport{
		A: a, ADigits: aDigits,
		B: b, BDigits: bDigits,
		Transgram: value, Digits: digits,
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(report)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "  %3d  %s\n", report.A, report.ADigits)
	fmt.Fprintf(w, "x %3d  %s\n", report.B, report.BDigits)
	fmt.Fprintf(w, "= %3d  %s\n", report.Transgram, report.Digits)
	return nil
}
