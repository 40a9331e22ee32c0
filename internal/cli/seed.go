package cli

import (
	"errors"
	"strconv"

	"github.com/kamea-labs/ditrune/internal/lattice"
	"github.com/kamea-labs/ditrune/internal/ternary"
)

// parseSeed decodes a command-line Ditrune argument. A 6-character argument
// whose characters are all in {0,1,2} is read as a digit string; anything
// else must parse as a decimal integer in [0,728]. Out-of-range input is
// rejected with the engine's error kinds, never clamped.
func parseSeed(arg string) (int, error) {
	if looksLikeDigits(arg) {
		return ternary.ToDecimal(arg)
	}
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, ternary.NewLengthError(arg)
	}
	if err := ternary.CheckValue(v); err != nil {
		return 0, err
	}
	return v, nil
}

func looksLikeDigits(arg string) bool {
	if len(arg) != ternary.DigitCount {
		return false
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] < '0' || arg[i] > '2' {
			return false
		}
	}
	return true
}

// errorCode extracts the structured code from an engine error, falling back
// to a generic code for untyped errors.
func errorCode(err error) string {
	var codecErr *ternary.CodecError
	if errors.As(err, &codecErr) {
		return string(codecErr.Code)
	}
	var mapperErr *lattice.MapperError
	if errors.As(err, &mapperErr) {
		return string(mapperErr.Code)
	}
	var layoutErr *lattice.LayoutError
	if errors.As(err, &layoutErr) {
		return layoutErr.Code
	}
	return "ENGINE_ERROR"
}
