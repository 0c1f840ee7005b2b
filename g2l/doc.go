// Package g2l compacts an abstract, grid-based VLSI schematic into physical
// layout geometry.
//
// A caller declares Wire, Via, and MOSFET components on an integer grid of
// abstract Nodes and adds them to a Graph. A Solver then assigns real-valued
// physical coordinates to the grid indices by alternating horizontal and
// vertical compaction sweeps, honoring the minimum-spacing rules supplied by
// a pluggable TechContext, until the layout converges or an iteration cap is
// reached. Produce walks the solved Graph and emits each component's final
// geometry, component by component in insertion order, into a
// caller-supplied Sink, each shape on the sink layer created for its layer.
//
// The package owns none of the technology description, the output format,
// or any host-side CLI: those are supplied by the caller through the
// TechContext and Sink interfaces (see tech.go and producer.go).
package g2l
