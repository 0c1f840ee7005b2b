package g2l

import "errors"

// Sentinel errors for g2l component construction and technology lookups.
var (
	// ErrInvalidWireDirection indicates a wire's two nodes are neither
	// row- nor column-aligned.
	ErrInvalidWireDirection = errors.New("g2l: wire must be horizontal or vertical")

	// ErrInvalidWidth indicates a non-positive width was supplied to a
	// component that requires one.
	ErrInvalidWidth = errors.New("g2l: width must be positive")

	// ErrInvalidLength indicates a non-positive length was supplied to a
	// component that requires one.
	ErrInvalidLength = errors.New("g2l: length must be positive")

	// ErrNonAxisAlignedMOSFET indicates a MOSFET's gate/source/drain
	// nodes do not share a row.
	ErrNonAxisAlignedMOSFET = errors.New("g2l: mosfet gate, source and drain must share a row")

	// ErrUnknownLayerName indicates a generic layer name has no mapping
	// in the active TechContext.
	ErrUnknownLayerName = errors.New("g2l: unknown generic layer name")
)
