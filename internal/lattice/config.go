package lattice

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"
	"golang.org/x/text/unicode/norm"
)

//go:embed layout.cue
var defaultLayoutCUE string

// MapperKind selects the Mapper implementation a Layout instantiates.
const (
	MapperBalanced = "balanced"
	MapperTable    = "table"
)

// Layout is the configuration object behind the pluggable coordinate
// bijection: grid extent, mapper kind, the 9-entry Region table keyed by
// Core Bigram, and (for table mappers) the explicit coordinate table.
//
// Layouts are loaded from CUE so that downstream deployments can swap the
// coordinate encoding and sector naming without recompiling.
type Layout struct {
	// Name identifies the layout, e.g. "balanced".
	Name string

	// Mapper is the mapper kind: MapperBalanced or MapperTable.
	Mapper string

	// Regions maps each of the 9 Core Bigram keys to a sector name.
	// Names are NFC-normalized at load time.
	Regions map[string]string

	// Cells is the explicit coordinate table for MapperTable layouts.
	Cells []Cell
}

// LayoutError represents an error in a layout configuration.
type LayoutError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

// Layout error codes.
const (
	ErrCodeLayoutRead    = "LAYOUT_READ"
	ErrCodeLayoutCompile = "LAYOUT_COMPILE"
	ErrCodeLayoutField   = "LAYOUT_FIELD"
	ErrCodeRegionTable   = "REGION_TABLE"
)

// Error implements the error interface.
func (e *LayoutError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// coreBigramKeys lists the 9 valid Core Bigram keys in digit order.
var coreBigramKeys = []string{"00", "01", "02", "10", "11", "12", "20", "21", "22"}

var (
	defaultLayoutOnce sync.Once
	defaultLayout     *Layout
)

// DefaultLayout returns the embedded balanced layout. The embedded CUE is
// part of the build, so a compile failure is a programming error and panics.
func DefaultLayout() *Layout {
	defaultLayoutOnce.Do(func() {
		layout, err := CompileLayoutString(defaultLayoutCUE)
		if err != nil {
			panic(fmt.Sprintf("embedded layout.cue is invalid: %v", err))
		}
		defaultLayout = layout
	})
	return defaultLayout
}

// LoadLayout reads and compiles a CUE layout file.
func LoadLayout(path string) (*Layout, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LayoutError{Code: ErrCodeLayoutRead, Message: fmt.Sprintf("reading layout: %v", err)}
	}
	return CompileLayoutString(string(src))
}

// CompileLayoutString compiles CUE source containing a top-level "layout"
// struct into a Layout.
func CompileLayoutString(src string) (*Layout, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	if err := v.Err(); err != nil {
		return nil, &LayoutError{Code: ErrCodeLayoutCompile, Message: err.Error()}
	}
	root := v.LookupPath(cue.ParsePath("layout"))
	if !root.Exists() {
		return nil, &LayoutError{Code: ErrCodeLayoutField, Message: "layout struct is required"}
	}
	return CompileLayout(root)
}

// CompileLayout parses a CUE value into a Layout and validates it.
func CompileLayout(v cue.Value) (*Layout, error) {
	if err := v.Err(); err != nil {
		return nil, &LayoutError{Code: ErrCodeLayoutCompile, Message: err.Error(), Pos: v.Pos()}
	}

	layout := &Layout{}

	name, err := requiredString(v, "name")
	if err != nil {
		return nil, err
	}
	layout.Name = name

	extent, err := requiredInt(v, "extent")
	if err != nil {
		return nil, err
	}
	if extent != Extent {
		return nil, &LayoutError{
			Code:    ErrCodeLayoutField,
			Message: fmt.Sprintf("extent must be %d for the 27x27 grid, got %d", Extent, extent),
			Pos:     v.Pos(),
		}
	}

	kind, err := requiredString(v, "mapper")
	if err != nil {
		return nil, err
	}
	if kind != MapperBalanced && kind != MapperTable {
		return nil, &LayoutError{
			Code:    ErrCodeLayoutField,
			Message: fmt.Sprintf("mapper must be %q or %q, got %q", MapperBalanced, MapperTable, kind),
			Pos:     v.Pos(),
		}
	}
	layout.Mapper = kind

	layout.Regions, err = parseRegions(v)
	if err != nil {
		return nil, err
	}

	if kind == MapperTable {
		layout.Cells, err = parseCells(v)
		if err != nil {
			return nil, err
		}
	}

	return layout, nil
}

// NewMapper instantiates the Mapper this layout describes.
func (l *Layout) NewMapper() (Mapper, error) {
	switch l.Mapper {
	case MapperBalanced:
		return BalancedMapper{}, nil
	case MapperTable:
		return NewTableMapper(l.Cells)
	default:
		return nil, &LayoutError{
			Code:    ErrCodeLayoutField,
			Message: fmt.Sprintf("unknown mapper kind %q", l.Mapper),
		}
	}
}

// parseRegions reads and validates the 9-entry Region table. Sector names
// are NFC-normalized so that config-supplied names compare and serialize
// stably regardless of the source file's Unicode form.
func parseRegions(v cue.Value) (map[string]string, error) {
	regionsVal := v.LookupPath(cue.ParsePath("regions"))
	if !regionsVal.Exists() {
		return nil, &LayoutError{Code: ErrCodeRegionTable, Message: "regions table is required", Pos: v.Pos()}
	}

	regions := make(map[string]string, len(coreBigramKeys))
	seen := make(map[string]string, len(coreBigramKeys))
	for _, key := range coreBigramKeys {
		nameVal := regionsVal.LookupPath(cue.MakePath(cue.Str(key)))
		if !nameVal.Exists() {
			return nil, &LayoutError{
				Code:    ErrCodeRegionTable,
				Message: fmt.Sprintf("missing region for core bigram %q", key),
				Pos:     regionsVal.Pos(),
			}
		}
		name, err := nameVal.String()
		if err != nil {
			return nil, &LayoutError{Code: ErrCodeRegionTable, Message: err.Error(), Pos: nameVal.Pos()}
		}
		name = norm.NFC.String(name)
		if name == "" {
			return nil, &LayoutError{
				Code:    ErrCodeRegionTable,
				Message: fmt.Sprintf("region name for %q is empty", key),
				Pos:     nameVal.Pos(),
			}
		}
		if prev, dup := seen[name]; dup {
			return nil, &LayoutError{
				Code:    ErrCodeRegionTable,
				Message: fmt.Sprintf("region name %q used for both %q and %q", name, prev, key),
				Pos:     nameVal.Pos(),
			}
		}
		seen[name] = key
		regions[key] = name
	}
	return regions, nil
}

// parseCells reads the explicit coordinate table for table layouts.
// Bijectivity is checked by NewTableMapper, not here.
func parseCells(v cue.Value) ([]Cell, error) {
	cellsVal := v.LookupPath(cue.ParsePath("cells"))
	if !cellsVal.Exists() {
		return nil, &LayoutError{Code: ErrCodeLayoutField, Message: "cells table is required for table mapper", Pos: v.Pos()}
	}

	iter, err := cellsVal.List()
	if err != nil {
		return nil, &LayoutError{Code: ErrCodeLayoutField, Message: err.Error(), Pos: cellsVal.Pos()}
	}

	var cells []Cell
	for iter.Next() {
		row := iter.Value()
		value, err := requiredInt(row, "value")
		if err != nil {
			return nil, err
		}
		x, err := requiredInt(row, "x")
		if err != nil {
			return nil, err
		}
		y, err := requiredInt(row, "y")
		if err != nil {
			return nil, err
		}
		cells = append(cells, Cell{Value: value, X: x, Y: y})
	}
	return cells, nil
}

// requiredString reads a required string field from a CUE value.
func requiredString(v cue.Value, field string) (string, error) {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return "", &LayoutError{
			Code:    ErrCodeLayoutField,
			Message: fmt.Sprintf("%s is required", field),
			Pos:     v.Pos(),
		}
	}
	s, err := fieldVal.String()
	if err != nil {
		return "", &LayoutError{Code: ErrCodeLayoutField, Message: err.Error(), Pos: fieldVal.Pos()}
	}
	return s, nil
}

// requiredInt reads a required integer field from a CUE value.
func requiredInt(v cue.Value, field string) (int, error) {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return 0, &LayoutError{
			Code:    ErrCodeLayoutField,
			Message: fmt.Sprintf("%s is required", field),
			Pos:     v.Pos(),
		}
	}
	n, err := fieldVal.Int64()
	if err != nil {
		return 0, &LayoutError{Code: ErrCodeLayoutField, Message: err.Error(), Pos: fieldVal.Pos()}
	}
	return int(n), nil
}
