package lut

import (
	"fmt"
	"io"
	"strings"

	"github.com/smazurov/ledlut/internal/matrix"
)

// cEmitter writes a C array declaration for pasting into firmware sources:
//
//	uint8_t rowcol_to_LEDNum_LUT[32][8] =
//	{
//	  {  7,   6,   5,   4,   3,   2,   1,   0}, // row 0
//	  ...
//	  {248, 249, 250, 251, 252, 253, 254, 255} // row 31
//	};
type cEmitter struct {
	name string
}

func (e *cEmitter) Emit(w io.Writer, t *matrix.Table) error {
	var b strings.Builder

	fmt.Fprintf(&b, "uint%d_t %s[%d][%d] =\n", cellBits(t), e.name, t.Height(), t.Width())
	b.WriteString("{\n")

	last := t.Height() - 1
	for r := 0; r <= last; r++ {
		b.WriteString("  {")
		for c, v := range t.Row(r) {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%3d", v)
		}
		b.WriteString("}")
		if r != last {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, " // row %d\n", r)
	}
	b.WriteString("};\n")

	_, err := io.WriteString(w, b.String())
	return err
}
