// g2lraster rasterizes a solved g2l design to a PNG image, in the style of
// the Gerber PNG renderer but reading solved AbsBox geometry directly
// instead of re-parsing an RS274X text stream.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/fogleman/gg"

	"github.com/dhconnelly/go-g2l/examples/inverter/design"
	"github.com/dhconnelly/go-g2l/g2l"
)

var (
	width  = flag.Int("width", 800, "image width")
	height = flag.Int("height", 800, "image height")
	out    = flag.String("out", "out.png", "output PNG filename")
)

func main() {
	flag.Parse()

	graph, _, err := design.Build()
	if err != nil {
		log.Fatalf("building design: %v", err)
	}

	solver := g2l.NewSolver(graph, g2l.DefaultSolverParams())
	result := solver.Solve()
	if !result.Converged {
		log.Printf("warning: solver did not converge within %d iterations", result.Iterations)
	}

	xMap, yMap := solver.XMap(), solver.YMap()
	bbox := boundingBox(graph, xMap, yMap)

	xs := float64(*width) / (bbox.Right - bbox.Left)
	ys := float64(*height) / (bbox.Top - bbox.Bottom)
	scale := xs
	if ys < scale {
		scale = ys
		*width = int(0.5 + scale*(bbox.Right-bbox.Left))
	} else {
		*height = int(0.5 + scale*(bbox.Top-bbox.Bottom))
	}
	log.Printf("bbox=%+v, scale=%v", bbox, scale)

	dc := gg.NewContext(*width, *height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	palette := []color.Color{
		color.RGBA{R: 250, G: 50, B: 250, A: 255},
		color.RGBA{R: 50, G: 150, B: 250, A: 255},
		color.RGBA{R: 250, G: 150, B: 0, A: 255},
		color.RGBA{R: 0, G: 200, B: 100, A: 255},
		color.RGBA{R: 200, G: 200, B: 50, A: 255},
	}
	colorFor := map[g2l.Layer]color.Color{}
	nextColor := 0
	colorForLayer := func(l g2l.Layer) color.Color {
		if c, ok := colorFor[l]; ok {
			return c
		}
		c := palette[nextColor%len(palette)]
		nextColor++
		colorFor[l] = c
		return c
	}

	for _, c := range graph.Components() {
		for _, geom := range c.Geometry(graph, xMap, yMap) {
			col := colorForLayer(geom.Layer)
			r, g, b, a := col.RGBA()
			dc.SetRGBA(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, float64(a)/0xffff)

			x0 := scale * (geom.Rect.Left - bbox.Left)
			y0 := float64(*height) - scale*(geom.Rect.Bottom-bbox.Bottom)
			x1 := scale * (geom.Rect.Right - bbox.Left)
			y1 := float64(*height) - scale*(geom.Rect.Top-bbox.Bottom)
			dc.DrawRectangle(x0, y1, x1-x0, y0-y1)
			dc.Fill()
		}
	}

	if err := dc.SavePNG(*out); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("%s written.", *out)
}

// boundingBox returns the union of every component's folded geometry.
func boundingBox(graph *g2l.Graph, xMap, yMap map[int]float64) g2l.Rect {
	bb := g2l.NewRect(0, 0, 0, 0)
	first := true
	for _, c := range graph.Components() {
		for _, geom := range c.Geometry(graph, xMap, yMap) {
			if first {
				bb, first = geom.Rect, false
				continue
			}
			bb = bb.Union(geom.Rect)
		}
	}
	return bb
}
