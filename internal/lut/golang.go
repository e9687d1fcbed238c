package lut

import (
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/smazurov/ledlut/internal/matrix"
)

// goEmitter writes a gofmt-formatted Go source file holding the table.
type goEmitter struct {
	name string
	pkg  string
}

func (e *goEmitter) Emit(w io.Writer, t *matrix.Table) error {
	var b strings.Builder

	b.WriteString("// Code generated by ledlut. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", e.pkg)

	l := t.Layout()
	fmt.Fprintf(&b, "// %s maps [row][col] to the LED's position on the strip (%s start, %s axis).\n",
		e.name, l.Start, l.Axis)
	fmt.Fprintf(&b, "var %s = [%d][%d]uint%d{\n", e.name, t.Height(), t.Width(), cellBits(t))
	for r := 0; r < t.Height(); r++ {
		b.WriteString("\t{")
		for c, v := range t.Row(r) {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", v)
		}
		fmt.Fprintf(&b, "}, // row %d\n", r)
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("failed to format Go output: %w", err)
	}
	_, err = w.Write(src)
	return err
}
