// Package viewer displays a solved g2l.Graph using Fyne, adapted from the
// Gerber layer viewer: a checkbox per layer, a gg-rasterized canvas, and
// pan/zoom driven from the keyboard.
package viewer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/fogleman/gg"

	"github.com/dhconnelly/go-g2l/g2l"
)

// layerGeometry is every shape produced on one layer, folded once up front.
type layerGeometry struct {
	layer g2l.Layer
	label string
	rects []g2l.Rect
}

type viewController struct {
	layers []layerGeometry
	mbb    g2l.Rect
	center g2l.Pt

	lastW, lastH int
	scale        float64
	drawLayer    []bool

	app       fyne.App
	canvasObj fyne.CanvasObject
	img       *image.RGBA

	xOffset, yOffset int

	mu sync.Mutex
}

// boundingBox returns the union of every rect across every layer, or a unit
// box around the origin if there is no geometry at all.
func boundingBox(layers []layerGeometry) g2l.Rect {
	bb := g2l.NewRect(-0.5, -0.5, 0.5, 0.5)
	first := true
	for _, l := range layers {
		for _, r := range l.rects {
			if first {
				bb, first = r, false
				continue
			}
			bb = bb.Union(r)
		}
	}
	return bb
}

func initController(layers []layerGeometry, fyneApp fyne.App, allLayersOn bool) *viewController {
	mbb := boundingBox(layers)
	vc := &viewController{
		layers:    layers,
		app:       fyneApp,
		mbb:       mbb,
		center:    g2l.Point(0.5*(mbb.Left+mbb.Right), 0.5*(mbb.Bottom+mbb.Top)),
		drawLayer: make([]bool, len(layers)),
	}
	for i := range vc.drawLayer {
		vc.drawLayer[i] = allLayersOn
	}
	return vc
}

// Show builds a window that renders graph's solved geometry, one checkbox
// per layer named from names. allLayersOn sets the initial visibility of
// every layer.
func Show(graph *g2l.Graph, solver *g2l.Solver, names map[g2l.Layer]string, allLayersOn bool) {
	layers := layerGeometries(graph, solver, names)

	fyneApp := app.New()
	vc := initController(layers, fyneApp, allLayersOn)
	vc.scaleToFit(800, 800)
	vc.img = image.NewRGBA(image.Rect(0, 0, 800, 800))

	raster := canvas.NewRaster(vc.imageFunc)
	raster.SetMinSize(fyne.NewSize(800, 800))
	vc.canvasObj = raster

	checks := make([]fyne.CanvasObject, 0, len(layers))
	for i, l := range layers {
		i := i
		check := widget.NewCheck(l.label, func(v bool) {
			vc.drawLayer[i] = v
			vc.Refresh()
		})
		check.SetChecked(vc.drawLayer[i])
		checks = append(checks, check)
	}
	side := container.NewVScroll(container.NewVBox(checks...))

	quit := container.NewHBox(
		widget.NewButton("Quit", func() { fyneApp.Quit() }),
	)

	w := fyneApp.NewWindow("g2l viewer")
	w.Canvas().SetOnTypedRune(vc.OnTypedRune)
	w.Canvas().SetOnTypedKey(vc.OnTypedKey)
	w.SetContent(container.NewBorder(nil, quit, nil, side, raster))
	w.Resize(fyne.NewSize(1000, 800))
	w.ShowAndRun()
}

// layerGeometries folds every component's geometry and groups it by layer.
func layerGeometries(graph *g2l.Graph, solver *g2l.Solver, names map[g2l.Layer]string) []layerGeometry {
	byLayer := map[g2l.Layer][]g2l.Rect{}
	var order []g2l.Layer
	seen := map[g2l.Layer]bool{}

	xMap, yMap := solver.XMap(), solver.YMap()
	for _, c := range graph.Components() {
		for _, g := range c.Geometry(graph, xMap, yMap) {
			if !seen[g.Layer] {
				seen[g.Layer] = true
				order = append(order, g.Layer)
			}
			byLayer[g.Layer] = append(byLayer[g.Layer], g.Rect)
		}
	}

	out := make([]layerGeometry, 0, len(order))
	for _, l := range order {
		label := names[l]
		if label == "" {
			label = "layer"
		}
		out = append(out, layerGeometry{layer: l, label: label, rects: byLayer[l]})
	}
	return out
}

func (vc *viewController) OnTypedRune(key rune) {
	switch key {
	case 'q', 'Q':
		vc.app.Quit()
	case '-', '_':
		vc.zoom(-0.25)
	case '+', '=':
		vc.zoom(0.25)
	case 'f', 'F':
		vc.xOffset, vc.yOffset = 0, 0
		vc.scaleToFit(vc.lastW, vc.lastH)
		vc.Refresh()
		canvas.Refresh(vc.canvasObj)
	}
}

func (vc *viewController) OnTypedKey(event *fyne.KeyEvent) {
	if event == nil {
		return
	}
	switch event.Name {
	case fyne.KeyUp:
		vc.pan(0, -vc.canvasObj.Size().Height/5)
	case fyne.KeyDown:
		vc.pan(0, vc.canvasObj.Size().Height/5)
	case fyne.KeyLeft:
		vc.pan(vc.canvasObj.Size().Width/5, 0)
	case fyne.KeyRight:
		vc.pan(-vc.canvasObj.Size().Width/5, 0)
	}
}

func (vc *viewController) zoom(amount float64) {
	vc.scale = math.Exp2(amount) * vc.scale
	vc.Refresh()
	canvas.Refresh(vc.canvasObj)
}

func (vc *viewController) pan(dx, dy float32) {
	vc.xOffset += int(dx)
	vc.yOffset += int(dy)
	vc.Refresh()
	canvas.Refresh(vc.canvasObj)
}

func (vc *viewController) scaleToFit(w, h int) {
	vc.lastW, vc.lastH = w, h
	vc.scale = float64(w-1) / (vc.mbb.Right - vc.mbb.Left)
	if s := float64(h-1) / (vc.mbb.Top - vc.mbb.Bottom); s < vc.scale {
		vc.scale = s
	}
}

func (vc *viewController) Resize(w, h int) {
	if vc.lastW != w || vc.lastH != h {
		vc.lastW, vc.lastH = w, h
		vc.img = image.NewRGBA(image.Rect(0, 0, w, h))
		vc.Refresh()
	}
}

// visibleBox returns the region of layout space currently shown on screen,
// accounting for pan offset and zoom.
func (vc *viewController) visibleBox() g2l.Rect {
	xOffset, yOffset := float64(-vc.xOffset)/vc.scale, float64(-vc.yOffset)/vc.scale
	halfWidth, halfHeight := 0.5*float64(vc.lastW-1)/vc.scale, 0.5*float64(vc.lastH-1)/vc.scale
	return g2l.NewRect(
		vc.center.X+xOffset-halfWidth,
		vc.center.Y+yOffset-halfHeight,
		vc.center.X+xOffset+halfWidth,
		vc.center.Y+yOffset+halfHeight,
	)
}

func (vc *viewController) xf(box g2l.Rect) func(x float64) float64 {
	return func(x float64) float64 { return vc.scale * (x - box.Left) }
}

func (vc *viewController) yf(box g2l.Rect) func(y float64) float64 {
	return func(y float64) float64 { return vc.scale * (box.Top - y) }
}

// Refresh re-rasterizes every visible, checked layer into vc.img.
func (vc *viewController) Refresh() {
	box := vc.visibleBox()
	xf, yf := vc.xf(box), vc.yf(box)

	dc := gg.NewContextForImage(vc.img)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, l := range vc.layers {
		if !vc.drawLayer[i] {
			continue
		}
		col := palette[i%len(palette)]
		r, g, b, a := col.RGBA()
		dc.SetRGBA(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, float64(a)/0xffff)
		for _, rect := range l.rects {
			if !box.Overlaps(rect) {
				continue
			}
			x0, y0 := xf(rect.Left), yf(rect.Top)
			x1, y1 := xf(rect.Right), yf(rect.Bottom)
			dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
			dc.Fill()
		}
	}

	vc.img = dc.Image().(*image.RGBA)
}

func (vc *viewController) imageFunc(w, h int) image.Image {
	if vc.lastW != w || vc.lastH != h {
		vc.mu.Lock()
		vc.Resize(w, h)
		vc.mu.Unlock()
	}
	return vc.img
}

var palette = []color.Color{
	color.RGBA{R: 0, G: 0, B: 0x84, A: 200},
	color.RGBA{R: 0x84, G: 0, B: 0, A: 200},
	color.RGBA{R: 0xc2, G: 0xb8, B: 0x33, A: 200},
	color.RGBA{R: 0, G: 0x48, B: 0, A: 200},
	color.RGBA{R: 0x84, G: 0, B: 0x84, A: 200},
	color.RGBA{R: 0xc2, G: 0xc2, B: 0xc2, A: 200},
	color.RGBA{R: 0, G: 0x84, B: 0, A: 200},
	color.RGBA{R: 0, G: 0x84, B: 0x84, A: 200},
	color.RGBA{R: 0x84, G: 0x84, B: 0, A: 200},
}
