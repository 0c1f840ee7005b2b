// Package dxfsink implements a g2l.Sink that writes solved layouts to a DXF
// drawing via github.com/yofu/dxf, one DXF layer per technology layer.
package dxfsink

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/dhconnelly/go-g2l/g2l"
)

// Sink accumulates geometry into a single DXF drawing.
type Sink struct {
	drawing *dxf.Drawing
	layers  map[string]struct{}
	cells   map[string]*cell
}

var _ g2l.Sink = (*Sink)(nil)

// New creates an empty DXF sink.
func New() *Sink {
	return &Sink{
		drawing: dxf.NewDrawing(),
		layers:  map[string]struct{}{},
		cells:   map[string]*cell{},
	}
}

// layerHandle identifies a DXF layer by name; it satisfies g2l.LayerHandle.
type layerHandle string

// CreateLayer registers a DXF layer named name, if not already present, and
// returns its handle.
func (s *Sink) CreateLayer(name string) (g2l.LayerHandle, error) {
	if _, ok := s.layers[name]; !ok {
		s.drawing.AddLayer(name, color.Magenta, dxf.DefaultLineType, true)
		s.layers[name] = struct{}{}
	}
	return layerHandle(name), nil
}

// CreateCell returns the cell named name, creating it if necessary. Unlike
// a true hierarchical layout format, a DXF drawing has no cell nesting, so
// every cell's geometry lands directly in the one drawing; the cell name
// only groups shapes for bookkeeping on the Go side.
func (s *Sink) CreateCell(name string) (g2l.Cell, error) {
	if c, ok := s.cells[name]; ok {
		return c, nil
	}
	c := &cell{name: name, sink: s}
	s.cells[name] = c
	return c, nil
}

// Write saves the accumulated drawing to path.
func (s *Sink) Write(path string) error {
	if err := s.drawing.SaveAs(path); err != nil {
		return fmt.Errorf("dxfsink: writing %s: %w", path, err)
	}
	return nil
}

type cell struct {
	name string
	sink *Sink
}

// InsertShape draws rect's outline as four DXF lines on layer's layer,
// changing the drawing's current layer first since the library addresses
// layers through drawing-global state rather than per-entity arguments.
func (c *cell) InsertShape(layer g2l.LayerHandle, rect g2l.Rect) error {
	name, ok := layer.(layerHandle)
	if !ok {
		return fmt.Errorf("dxfsink: layer handle %v was not created by this sink", layer)
	}
	if err := c.sink.drawing.ChangeLayer(string(name)); err != nil {
		return fmt.Errorf("dxfsink: changing to layer %q: %w", name, err)
	}

	corners := [4][2]float64{
		{rect.Left, rect.Bottom},
		{rect.Right, rect.Bottom},
		{rect.Right, rect.Top},
		{rect.Left, rect.Top},
	}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		if _, err := c.sink.drawing.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return fmt.Errorf("dxfsink: drawing edge on layer %q: %w", name, err)
		}
	}
	return nil
}
