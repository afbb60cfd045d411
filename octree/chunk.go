package octree

import (
	"iter"

	"github.com/flier/goutil/pkg/xiter"
)

// Chunk owns an Arena and the reference to its root node, and is the only
// thing allowed to mutate that arena: every ArenaNode/BlockRef obtained from
// a Chunk dangles the moment a later Set call reallocates or frees it.
type Chunk struct {
	arena    *Arena
	rootNode NodeRef
}

// NewChunk allocates an empty, fully-collapsed chunk: a single root node
// whose 8 octants are all the empty voxel.
func NewChunk() *Chunk {
	arena := NewArena()
	root := arena.Alloc(1).child(0)
	return &Chunk{arena: arena, rootNode: root}
}

// Root returns a cursor at the root of the tree.
func (c *Chunk) Root() Node {
	return Node{
		IndexPath: Empty,
		Voxel:     c.arena.GetNode(c.rootNode).Data[0],
		self:      &c.rootNode,
	}
}

// Set writes voxel at path, subdividing any intermediate octants that are
// still leaves, then condenses back up: any ancestor whose 8 octants all
// end up equal collapses into a single leaf value one level up. Panics if
// path is empty (spec.md leaves "set with an empty path" undefined; this
// implementation treats it as a programmer error since there is no parent
// of the root to write into).
func (c *Chunk) Set(path IndexPath, voxel Voxel) {
	if path.IsEmpty() {
		panic("octree: Set with empty path")
	}
	current := path
	nodeIndex := c.rootNode

	type frame struct {
		node NodeRef
		dir  Direction
	}
	stack := make([]frame, 0, path.Len())
	for {
		dir := current.Peek()
		stack = append(stack, frame{node: nodeIndex, dir: dir})
		current = current.Pop()
		if current.IsEmpty() {
			c.arena.GetNodeMut(nodeIndex).SetOnDir(dir, voxel)

			for i := len(stack) - 1; i > 0; i-- {
				childFrame := stack[i]
				parentFrame := stack[i-1]
				currentNode := c.arena.GetNode(childFrame.node)
				if !currentNode.IsCondensable() {
					return
				}
				// parentFrame.dir is the octant within the parent that
				// points at the collapsing child; childFrame.dir only names
				// where the descent went next inside the child.
				representative := currentNode.Data[FrontRightBottom]
				parentNode := c.arena.GetNodeMut(parentFrame.node)
				parentNode.SetOnDir(parentFrame.dir, representative)
				oldMask := parentNode.ChildMask
				newMask := oldMask &^ (1 << uint8(parentFrame.dir))
				c.arena.Realloc(parentFrame.node, newMask)
			}
			return
		}

		if child, ok := c.arena.GetNode(nodeIndex).ChildOnDir(dir); ok {
			nodeIndex = child
			continue
		}
		parent := c.arena.GetNode(nodeIndex)
		oldMask := parent.ChildMask
		inherited := parent.Data[dir]
		c.arena.Realloc(nodeIndex, oldMask|(1<<uint8(dir)))
		child, _ := c.arena.GetNode(nodeIndex).ChildOnDir(dir)
		newNode := c.arena.GetNodeMut(child)
		for i := range newNode.Data {
			newNode.Data[i] = inherited
		}
		nodeIndex = child
	}
}

// Sample reads the voxel addressed by path without mutating the tree,
// stopping early at whichever leaf the path runs into.
func (c *Chunk) Sample(path IndexPath) Voxel {
	current := path
	nodeIndex := c.rootNode
	for {
		dir := current.Peek()
		current = current.Pop()
		node := c.arena.GetNode(nodeIndex)
		if current.IsEmpty() {
			return node.Data[dir]
		}
		if child, ok := node.ChildOnDir(dir); ok {
			nodeIndex = child
			continue
		}
		return node.Data[dir]
	}
}

// CountNodes returns the number of allocated ArenaNode values backing this
// chunk, a direct proxy for how condensed the tree currently is.
func (c *Chunk) CountNodes() int { return c.arena.CountNodes() }

// IterLeaf walks every leaf in the tree in depth-first, increasing-octant
// order, yielding a fully-resolved Node per leaf.
func (c *Chunk) IterLeaf() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		type frame struct {
			fromDir Direction
			node    NodeRef
		}
		stack := []frame{{fromDir: 0, node: c.rootNode}}
		dir := Direction(0)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if dir >= 8 {
				stack = stack[:len(stack)-1]
				dir = top.fromDir + 1
				continue
			}
			node := c.arena.GetNode(top.node)
			if child, ok := node.ChildOnDir(dir); ok {
				stack = append(stack, frame{fromDir: dir, node: child})
				dir = 0
				continue
			}
			leafDir := dir
			dir++

			path := NewIndexPath(leafDir)
			for i := len(stack) - 1; i >= 1; i-- {
				path = path.Push(stack[i].fromDir)
			}
			parent := top.node
			if !yield(Node{IndexPath: path, Voxel: node.Data[leafDir], parent: &parent}) {
				return
			}
		}
	}
}

// NonEmptyLeaves is IterLeaf filtered down to leaves whose voxel is not the
// empty value, the subset a WorldBuilder/mesher cares about.
func (c *Chunk) NonEmptyLeaves() iter.Seq[Node] {
	return xiter.Filter(c.IterLeaf(), func(n Node) bool { return !n.Voxel.IsEmpty() })
}
