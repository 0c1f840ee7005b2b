package g2l

import "fmt"

// Produce walks every component in graph, folding its final geometry
// through the solver's coordinate maps, and inserts each resulting shape
// into a cell named cellName in sink. It returns the Sink's created cell
// for any further caller-side use.
func Produce(graph *Graph, solver *Solver, sink Sink, cellName string) (Cell, error) {
	layerHandles, err := graph.Tech.Rules.CreateLayers(sink)
	if err != nil {
		return nil, fmt.Errorf("g2l: creating layers: %w", err)
	}

	cell, err := sink.CreateCell(cellName)
	if err != nil {
		return nil, fmt.Errorf("g2l: creating cell %q: %w", cellName, err)
	}

	xMap, yMap := solver.XMap(), solver.YMap()
	for _, c := range graph.Components() {
		for _, g := range c.Geometry(graph, xMap, yMap) {
			handle, ok := layerHandles[g.Layer]
			if !ok {
				return nil, fmt.Errorf("g2l: no sink layer created for layer %d", g.Layer)
			}
			if err := cell.InsertShape(handle, g.Rect); err != nil {
				return nil, fmt.Errorf("g2l: inserting shape on layer %d: %w", g.Layer, err)
			}
		}
	}

	return cell, nil
}
