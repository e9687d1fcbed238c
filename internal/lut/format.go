package lut

import (
	"fmt"
	"io"
	"strings"

	"github.com/smazurov/ledlut/internal/matrix"
)

// Format selects the output language of an emitted table.
type Format string

const (
	FormatC    Format = "c"
	FormatGo   Format = "go"
	FormatTOML Format = "toml"
)

const (
	// DefaultCName is the array name the firmware expects.
	DefaultCName = "rowcol_to_LEDNum_LUT"
	// DefaultGoName is the variable name used for Go output.
	DefaultGoName = "rowColToLEDNum"
	// DefaultGoPackage is the package clause used for Go output.
	DefaultGoPackage = "leds"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatC, FormatGo, FormatTOML}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of c, go, toml)", s)
}

// Options controls emitted names.
type Options struct {
	Format  Format
	Name    string // array or variable name, empty selects the format default
	Package string // Go package clause, empty selects DefaultGoPackage
}

// Emitter writes a table as source text.
type Emitter interface {
	Emit(w io.Writer, t *matrix.Table) error
}

// NewEmitter returns the emitter for opts.Format. An empty format selects C.
func NewEmitter(opts Options) (Emitter, error) {
	switch opts.Format {
	case FormatC, "":
		return &cEmitter{name: orDefault(opts.Name, DefaultCName)}, nil
	case FormatGo:
		return &goEmitter{
			name: orDefault(opts.Name, DefaultGoName),
			pkg:  orDefault(opts.Package, DefaultGoPackage),
		}, nil
	case FormatTOML:
		return &tomlEmitter{name: opts.Name}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// Write emits t to w using opts.
func Write(w io.Writer, t *matrix.Table, opts Options) error {
	e, err := NewEmitter(opts)
	if err != nil {
		return err
	}
	return e.Emit(w, t)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// cellBits returns the smallest unsigned width holding every index of t.
func cellBits(t *matrix.Table) int {
	if t.Len() <= 1<<8 {
		return 8
	}
	return 16
}
