package mesh

import (
	"io"
	"iter"
	"slices"

	"github.com/chewxy/math32"
	"github.com/flier/goutil/pkg/xiter"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/voxeldmc/octree"
)

// Mesh is the triangle-list output of a Mesher: parallel position/normal/
// texcoord buffers plus a u16 index buffer, matching the mesh-sink contract
// spec.md §6 hands off to a rendering host.
type Mesh struct {
	Positions []ms3.Vec
	Normals   []ms3.Vec
	Texcoords [][2]float32
	Indices   []uint16
}

// SurfaceArea sums the area of every triangle in m, a diagnostic not part
// of the core contract but cheap given the index buffer is already built.
func (m Mesh) SurfaceArea() float32 {
	var total float32
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Positions[m.Indices[i]]
		b := m.Positions[m.Indices[i+1]]
		c := m.Positions[m.Indices[i+2]]
		ab := ms3.Sub(b, a)
		ac := ms3.Sub(c, a)
		cross := ms3.Vec{
			X: ab.Y*ac.Z - ab.Z*ac.Y,
			Y: ab.Z*ac.X - ab.X*ac.Z,
			Z: ab.X*ac.Y - ab.Y*ac.X,
		}
		total += 0.5 * math32.Sqrt(cross.X*cross.X+cross.Y*cross.Y+cross.Z*cross.Z)
	}
	return total
}

// Mesher converts a Chunk's dual grid into a triangle-list Mesh using the
// Dual Marching Cubes edge table. Output vertex positions are the edge
// table's midpoints scaled by the size given to NewMesher.
type Mesher struct {
	chunk *octree.Chunk
	size  float32

	walker    *Walker
	cells     []DualCell
	cellPos   int
	triInCell int
}

// NewMesher returns a Mesher over chunk whose output coordinates are scaled
// by size (chunk-local [0,1]^3 space maps to [0,size]^3).
func NewMesher(chunk *octree.Chunk, size float32) *Mesher {
	return &Mesher{chunk: chunk, size: size, walker: NewWalker(chunk)}
}

// Mesh walks the chunk's entire dual grid and returns the complete
// triangle-list mesh in one call.
func (m *Mesher) Mesh() Mesh {
	cells := m.walker.Walk()
	var out Mesh
	for cell := range crossingCells(cells) {
		emitCell(&out, cell, m.size)
	}
	return out
}

// crossingCells filters cells down to the ones the surface actually passes
// through; all-empty and all-filled cells contribute no triangles.
func crossingCells(cells []DualCell) iter.Seq[DualCell] {
	return xiter.Filter(slices.Values(cells), func(c DualCell) bool {
		idx := cubeIndex(c)
		return idx != 0 && idx != 0xFF
	})
}

// ReadTriangles implements the glrender.Renderer-style streaming contract
// (ReadTriangles(dst []ms3.Triangle, userData any) (n int, err error)) over
// the same dual-cell source, for hosts that want to pull triangles
// incrementally instead of building the whole Mesh up front.
func (m *Mesher) ReadTriangles(dst []ms3.Triangle, userData any) (int, error) {
	if m.cells == nil {
		m.cells = m.walker.Walk()
		m.cellPos, m.triInCell = 0, 0
	}
	n := 0
	for n < len(dst) {
		tri, ok := m.nextTriangle()
		if !ok {
			return n, io.EOF
		}
		dst[n] = tri
		n++
	}
	return n, nil
}

func (m *Mesher) nextTriangle() (ms3.Triangle, bool) {
	for m.cellPos < len(m.cells) {
		cell := m.cells[m.cellPos]
		row := dmcEdgeTable[cubeIndex(cell)]
		if m.triInCell >= len(row) || row[m.triInCell] == terminator {
			m.cellPos++
			m.triInCell = 0
			continue
		}
		packed := row[m.triInCell]
		e0 := octree.Edge(packed & 0xF)
		e1 := octree.Edge((packed >> 4) & 0xF)
		e2 := octree.Edge((packed >> 8) & 0xF)
		tri := ms3.Triangle{
			edgeMidpoint(cell, e0, m.size),
			edgeMidpoint(cell, e1, m.size),
			edgeMidpoint(cell, e2, m.size),
		}
		m.triInCell++
		return tri, true
	}
	return ms3.Triangle{}, false
}

func cubeIndex(cell DualCell) uint8 {
	var idx uint8
	for _, dir := range octree.AllDirections {
		if cell.At(dir).Voxel.IsEmpty() {
			idx |= 1 << uint8(dir)
		}
	}
	return idx
}

func edgeMidpoint(cell DualCell, e octree.Edge, size float32) ms3.Vec {
	a, b := e.Vertices()
	pa := cell.At(a).Bounds().Center()
	pb := cell.At(b).Bounds().Center()
	mid := ms3.Scale(0.5, ms3.Add(pa, pb))
	return ms3.Scale(size, mid)
}

func emitCell(out *Mesh, cell DualCell, size float32) {
	row := dmcEdgeTable[cubeIndex(cell)]
	seen := map[octree.Edge]uint16{}
	vertexFor := func(e octree.Edge) uint16 {
		if idx, ok := seen[e]; ok {
			return idx
		}
		idx := uint16(len(out.Positions))
		out.Positions = append(out.Positions, edgeMidpoint(cell, e, size))
		out.Normals = append(out.Normals, ms3.Vec{})
		out.Texcoords = append(out.Texcoords, [2]float32{})
		seen[e] = idx
		return idx
	}
	for _, packed := range row {
		if packed == terminator {
			break
		}
		e0 := octree.Edge(packed & 0xF)
		e1 := octree.Edge((packed >> 4) & 0xF)
		e2 := octree.Edge((packed >> 8) & 0xF)
		out.Indices = append(out.Indices, vertexFor(e0), vertexFor(e1), vertexFor(e2))
	}
}
