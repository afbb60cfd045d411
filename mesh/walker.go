package mesh

import "github.com/soypat/voxeldmc/octree"

// DualCell is the canonicalized 8-tuple of leaf nodes surrounding one
// interior vertex of the octree's dual grid, indexed by the octant each
// node occupies relative to that vertex.
type DualCell = octree.DirectionMapper[octree.Node]

// Walker enumerates the dual grid of a Chunk via the mutually recursive
// node/face/edge/vert procedures, collecting one DualCell per interior
// dual-grid vertex, including across T-junctions between differently
// subdivided neighbors.
type Walker struct {
	chunk *octree.Chunk
	cells []DualCell
}

// NewWalker returns a Walker over chunk. The Walker holds no reference to
// chunk's contents beyond the pointer; it must not be reused across a
// mutating Chunk.Set call without calling Walk again.
func NewWalker(chunk *octree.Chunk) *Walker {
	return &Walker{chunk: chunk}
}

// Walk traverses the entire dual grid starting at the chunk root and
// returns every dual cell discovered. The returned slice is owned by the
// Walker and is overwritten by the next call to Walk.
func (w *Walker) Walk() []DualCell {
	w.cells = w.cells[:0]
	w.nodeProc(w.chunk.Root())
	return w.cells
}

func (w *Walker) nodeProc(n octree.Node) {
	if n.IsLeaf() {
		return
	}
	children := octree.MapDirections(func(d octree.Direction) octree.Node {
		return n.Child(d, w.chunk)
	})

	for _, d := range octree.AllDirections {
		w.nodeProc(children.At(d))
	}

	w.faceProcChildren(X, children)
	w.faceProcChildren(Y, children)
	w.faceProcChildren(Z, children)

	w.edgeProcChildren(X, children)
	w.edgeProcChildren(Y, children)
	w.edgeProcChildren(Z, children)

	w.vertProc(children.Array())
}

func (w *Walker) faceProcChildren(dim Dimension, children octree.DirectionMapper[octree.Node]) {
	for _, pair := range dim.FaceProcDirGroups {
		w.faceProc(dim, children.At(pair[0]), children.At(pair[1]))
	}
}

func (w *Walker) faceProc(dim Dimension, a, b octree.Node) {
	if a.IsLeaf() && b.IsLeaf() {
		return
	}
	nodes := [2]octree.Node{a, b}
	var next [8]octree.Node
	for i, t := range dim.FaceProcDirTuples {
		next[i] = nodes[t.Which].Child(t.Dir, w.chunk)
	}
	children := octree.NewDirectionMapper(next)

	w.faceProcChildren(dim, children)
	w.edgeProcChildren(*dim.FaceEdges1, children)
	w.edgeProcChildren(*dim.FaceEdges2, children)
	w.vertProc(next)
}

func (w *Walker) edgeProcChildren(dim Dimension, children octree.DirectionMapper[octree.Node]) {
	for _, group := range dim.EdgeProcDirGroups {
		w.edgeProc(dim, children.At(group[0]), children.At(group[1]), children.At(group[2]), children.At(group[3]))
	}
}

func (w *Walker) edgeProc(dim Dimension, a, b, c, d octree.Node) {
	if a.IsLeaf() && b.IsLeaf() && c.IsLeaf() && d.IsLeaf() {
		return
	}
	nodes := [4]octree.Node{a, b, c, d}
	var next [8]octree.Node
	for i, t := range dim.EdgeProcDirTuples {
		next[i] = nodes[t.Which].Child(t.Dir, w.chunk)
	}
	children := octree.NewDirectionMapper(next)

	w.edgeProcChildren(dim, children)
	w.vertProc(next)
}

// vertProc is the canonicalization step that absorbs T-junctions: each of
// the 8 input nodes that is still subdivided is replaced by its child along
// the octant opposite its own position, iterated until every node is a
// leaf. A coarse neighbor therefore contributes its own uniform value while
// finer neighbors contribute their deepest leaf, and the resulting 8-leaf
// dual cell is recorded.
func (w *Walker) vertProc(nodes [8]octree.Node) {
	for iteration := 0; ; iteration++ {
		hasSubdivided := false
		for i := range nodes {
			if nodes[i].IsSubdivided() {
				hasSubdivided = true
				dir := octree.Direction(i)
				nodes[i] = nodes[i].Child(dir.Opposite(), w.chunk)
			}
		}
		if !hasSubdivided {
			break
		}
		if iteration >= octree.MaxPathLen {
			panic("mesh: vert_proc canonicalization did not terminate within max tree depth")
		}
	}
	w.cells = append(w.cells, octree.NewDirectionMapper(nodes))
}
