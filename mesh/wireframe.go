package mesh

import (
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/voxeldmc/octree"
)

// Segment is one colored line of a Wireframe.
type Segment struct {
	A, B ms3.Vec
	RGBA [4]float32
}

// Wireframe is a debug line buffer: one set of segments tracing every leaf's
// bounding box, plus a second set tracing the diagonals of the dual grid, so
// a host can render both the octree's actual partition and the cells the
// mesher derives from it over the same chunk.
type Wireframe struct {
	Segments []Segment
}

var (
	leafEdgeColor = [4]float32{1.0, 0.5, 0.23, 1.0}
	dualCellColor = [4]float32{1.0, 0.2, 1.0, 1.0}
)

// GenWireframe builds debug geometry for chunk: three edges per leaf (the
// ones leaving its minimum corner along +X, +Y, +Z) and three diagonals per
// dual cell (from the RearRightTop octant to FrontRightTop, RearRightBottom
// and RearLeftTop), mirroring the corner-plus-three-edges convention used to
// debug-draw the octree and its derived dual grid.
func GenWireframe(chunk *octree.Chunk) Wireframe {
	var w Wireframe
	for node := range chunk.IterLeaf() {
		b := node.Bounds()
		pos := b.Position()
		width := b.FloatWidth()

		w.Segments = append(w.Segments,
			Segment{A: pos, B: ms3.Add(pos, ms3.Vec{X: width}), RGBA: leafEdgeColor},
			Segment{A: pos, B: ms3.Add(pos, ms3.Vec{Y: width}), RGBA: leafEdgeColor},
			Segment{A: pos, B: ms3.Add(pos, ms3.Vec{Z: width}), RGBA: leafEdgeColor},
		)
	}

	cells := NewWalker(chunk).Walk()
	for _, cell := range cells {
		origin := cell.At(octree.RearRightTop).Bounds().Center()
		w.Segments = append(w.Segments,
			Segment{A: origin, B: cell.At(octree.FrontRightTop).Bounds().Center(), RGBA: dualCellColor},
			Segment{A: origin, B: cell.At(octree.RearRightBottom).Bounds().Center(), RGBA: dualCellColor},
			Segment{A: origin, B: cell.At(octree.RearLeftTop).Bounds().Center(), RGBA: dualCellColor},
		)
	}
	return w
}
