package octree

// Node is a stateless cursor over a position in a Chunk's tree: the octal
// path taken to reach it, the voxel value it currently resolves to, and
// (when the position still has arena presence) a reference back into the
// arena so descent can continue.
//
// A Node with no arena reference is a fully-resolved leaf: Voxel already
// holds its final value and Child is a closure returning the same leaf one
// level deeper, regardless of direction. This lets the dual-grid walker
// recurse through a leaf/subdivided boundary without special-casing it: a
// coarse leaf behaves as if it had been subdivided into 8 identical copies
// of itself.
type Node struct {
	IndexPath IndexPath
	Voxel     Voxel

	parent *NodeRef
	self   *NodeRef
}

// IsLeaf reports whether n has no further subdivision to descend into: a
// cursor without arena presence points into a leaf octant. Note the root
// cursor is never a leaf even when its ArenaNode has no subdivided octants;
// the node still owns 8 leaf octants to descend into.
func (n Node) IsLeaf() bool { return n.self == nil }

// IsSubdivided is the negation of IsLeaf.
func (n Node) IsSubdivided() bool { return !n.IsLeaf() }

// Child descends into octant dir, resolving through the arena when n still
// has arena presence, or returning a deeper copy of itself when n is
// already a resolved leaf (see the closure property in the type doc).
func (n Node) Child(dir Direction, c *Chunk) Node {
	path := n.IndexPath.Put(dir)
	if n.self == nil {
		return Node{IndexPath: path, Voxel: n.Voxel, parent: n.parent}
	}
	node := c.arena.GetNode(*n.self)
	if childRef, ok := node.ChildOnDir(dir); ok {
		return Node{IndexPath: path, parent: n.self, self: &childRef}
	}
	return Node{IndexPath: path, Voxel: node.Data[dir], parent: n.self}
}

// Bounds returns the integer cube n occupies, derived purely from its path.
func (n Node) Bounds() Bounds { return FromIndexPath(n.IndexPath) }
