package cmd

import (
	"io"

	"github.com/smazurov/ledlut/internal/logging"
	"github.com/smazurov/ledlut/internal/lut"
)

// Generate builds the table selected by opts and writes it to w.
func Generate(w io.Writer, opts *Options) error {
	logger := logging.GetLogger("matrix")

	out, err := opts.Output()
	if err != nil {
		return err
	}
	table, err := buildTable(opts)
	if err != nil {
		return err
	}

	l := table.Layout()
	logger.Debug("Generated table",
		"height", l.Height,
		"width", l.Width,
		"leds", table.Len(),
		"start", l.Start.String(),
		"axis", l.Axis.String(),
		"progressive", l.Progressive,
		"format", string(out.Format))

	return lut.Write(w, table, out)
}
