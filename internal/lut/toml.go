package lut

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/smazurov/ledlut/internal/matrix"
)

// Document is the TOML form of a table.
type Document struct {
	Name        string  `toml:"name,omitempty"`
	Height      int     `toml:"height"`
	Width       int     `toml:"width"`
	Count       int     `toml:"count"`
	Start       string  `toml:"start"`
	Axis        string  `toml:"axis"`
	Progressive bool    `toml:"progressive"`
	Rows        [][]int `toml:"rows"`
}

// NewDocument captures a table and its layout.
func NewDocument(name string, t *matrix.Table) Document {
	l := t.Layout()
	return Document{
		Name:        name,
		Height:      l.Height,
		Width:       l.Width,
		Count:       l.Count,
		Start:       l.Start.String(),
		Axis:        l.Axis.String(),
		Progressive: l.Progressive,
		Rows:        t.Rows(),
	}
}

type tomlEmitter struct {
	name string
}

func (e *tomlEmitter) Emit(w io.Writer, t *matrix.Table) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(NewDocument(e.name, t)); err != nil {
		return fmt.Errorf("failed to encode TOML output: %w", err)
	}
	return nil
}
