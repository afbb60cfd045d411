package octree

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/soypat/voxeldmc/internal/bitset"
)

// segmentSlots is the number of node-groups a single ArenaSegment holds.
const segmentSlots = 256

// maxSegmentsPerSize bounds how many segments a single block-size bucket may
// grow to, capping that bucket at maxSegmentsPerSize*segmentSlots blocks.
const maxSegmentsPerSize = 256

// BlockRef locates a contiguous run of sibling ArenaNode values somewhere in
// the arena: which block-size bucket, which segment within it, and which
// slot within that segment.
type BlockRef struct {
	Segment   uint8
	Indice    uint8
	BlockSize uint8
}

func (b BlockRef) child(index uint8) NodeRef {
	return NodeRef{Block: b, Index: index}
}

// NodeRef locates a single ArenaNode: a BlockRef plus the node's position
// within that block's sibling group.
type NodeRef struct {
	Block BlockRef
	Index uint8
}

// ArenaNode is one node of the octree: an 8-slot data array plus a mask
// saying which of those 8 slots are themselves subdivided (pointing at a
// child block) versus holding a leaf Voxel directly.
//
// ChildMask bit d set means octant d is subdivided; its child block is
// ChildrenBlock(). ChildMask bit d clear means Data[d] is a leaf voxel.
// A node with ChildMask == 0 is a leaf node throughout; a subdivided octant
// still keeps a representative value in Data, matching the source layout;
// Chunk.Set writes and Chunk.Sample reads that value for a path that ends
// at the subdivided octant.
type ArenaNode struct {
	childrenSegment uint8
	childrenIndice  uint8
	// ChildMask: 1 for a subdivided octant, 0 for a leaf octant. Misnamed
	// "leaf_mask" in the implementation this was ported from despite
	// encoding the opposite sense; renamed here to avoid that trap.
	ChildMask uint8
	LoadMask  uint8
	Data      [8]Voxel
}

// HasChildOnDir reports whether octant dir is subdivided.
func (n *ArenaNode) HasChildOnDir(dir Direction) bool {
	return (1<<uint8(dir))&n.ChildMask != 0
}

// ChildOnDir returns the NodeRef of octant dir's child, and true, if that
// octant is subdivided. Otherwise it returns the zero NodeRef and false.
//
// Children are packed into their block in decreasing octant order (the
// highest-numbered subdivided octant occupies index 0), so the index of the
// child at bit d is popcount(ChildMask >> (d+1)); d==7 is special-cased to
// always be index 0 since d+1 would overflow the mask's width.
func (n *ArenaNode) ChildOnDir(dir Direction) (NodeRef, bool) {
	if !n.HasChildOnDir(dir) {
		return NodeRef{}, false
	}
	var index uint8
	if dir != 7 {
		index = uint8(bits.OnesCount8(n.ChildMask >> (uint8(dir) + 1)))
	}
	return n.ChildrenBlock().child(index), true
}

// NumChildren returns how many of the 8 octants are subdivided.
func (n *ArenaNode) NumChildren() uint8 {
	return uint8(bits.OnesCount8(n.ChildMask))
}

// ChildrenBlock returns the BlockRef of n's children. Meaningless (and
// never read) when n.ChildMask is 0.
func (n *ArenaNode) ChildrenBlock() BlockRef {
	return BlockRef{
		Segment:   n.childrenSegment,
		Indice:    n.childrenIndice,
		BlockSize: n.NumChildren(),
	}
}

// SetOnDir overwrites the leaf value stored at octant dir.
func (n *ArenaNode) SetOnDir(dir Direction, v Voxel) {
	n.Data[dir] = v
}

// IsLeafNode reports whether every octant of n is a leaf (no subdivided
// children at all).
func (n *ArenaNode) IsLeafNode() bool { return n.ChildMask == 0 }

// IsCondensable reports whether n is a leaf node whose 8 leaf values are all
// equal, meaning it can collapse into a single voxel one level up.
func (n *ArenaNode) IsCondensable() bool {
	if !n.IsLeafNode() {
		return false
	}
	com := n.Data[0]
	for _, v := range n.Data {
		if v != com {
			return false
		}
	}
	return true
}

func (n *ArenaNode) String() string {
	var b strings.Builder
	print := func(dir Direction) {
		if n.HasChildOnDir(dir) {
			fmt.Fprintf(&b, "\x1b[0;31m%v\x1b[0m", n.Data[dir])
		} else {
			fmt.Fprintf(&b, "%v", n.Data[dir])
		}
	}
	b.WriteString("|---DN---|---UP---|\n| ")
	print(2)
	b.WriteString("  ")
	print(3)
	b.WriteString(" | ")
	print(6)
	b.WriteString("  ")
	print(7)
	b.WriteString(" |\n| ")
	print(0)
	b.WriteString("  ")
	print(1)
	b.WriteString(" | ")
	print(4)
	b.WriteString("  ")
	print(5)
	b.WriteString(" |\n-------------------\n")
	return b.String()
}

// ArenaSegment is a fixed 256-slot pool of same-size sibling blocks, with a
// 256-bit free-mask (1 meaning free) and a next-available hint that always
// points at a currently-free slot.
type ArenaSegment struct {
	nodes         []ArenaNode
	free          bitset.Set256
	nextAvailable uint8
	hasNext       bool
	groupSize     uint8
}

func newArenaSegment(groupSize uint8) *ArenaSegment {
	if groupSize < 1 || groupSize > 8 {
		panic("octree: invalid block size")
	}
	s := &ArenaSegment{
		nodes:     make([]ArenaNode, int(groupSize)*segmentSlots),
		groupSize: groupSize,
		hasNext:   true,
	}
	s.free.SetAll()
	return s
}

func (s *ArenaSegment) countNodes() int {
	return segmentSlots - s.free.Count()
}

func (s *ArenaSegment) isFull() bool { return !s.hasNext }

func (s *ArenaSegment) availableAt(index uint8) bool {
	return s.free.Test(uint(index))
}

func (s *ArenaSegment) setAvailableAt(index uint8, available bool) {
	if available {
		s.free.MustSet(uint(index))
	} else {
		s.free.MustClear(uint(index))
	}
}

func (s *ArenaSegment) freeSlot(index uint8) {
	if s.availableAt(index) {
		panic("octree: double free of arena block")
	}
	s.setAvailableAt(index, true)
	s.nextAvailable, s.hasNext = index, true
}

func (s *ArenaSegment) findNextAvailable() (uint8, bool) {
	i, ok := s.free.FirstSet()
	if !ok {
		return 0, false
	}
	return uint8(i), true
}

func (s *ArenaSegment) alloc() uint8 {
	if !s.hasNext {
		panic("octree: segment is full")
	}
	next := s.nextAvailable
	s.setAvailableAt(next, false)
	if next < 255 && s.availableAt(next+1) {
		s.nextAvailable, s.hasNext = next+1, true
	} else {
		s.nextAvailable, s.hasNext = s.findNextAvailable()
	}
	return next
}

func (s *ArenaSegment) block(index uint8) []ArenaNode {
	if s.availableAt(index) {
		panic("octree: use of unallocated arena block")
	}
	start := int(index) * int(s.groupSize)
	return s.nodes[start : start+int(s.groupSize)]
}

func (s *ArenaSegment) String() string {
	var b strings.Builder
	for i := 0; i <= 255; i++ {
		if s.availableAt(uint8(i)) {
			b.WriteByte('X')
		} else {
			b.WriteByte('o')
		}
	}
	b.WriteByte('\n')
	if s.hasNext {
		for i := 0; i <= 255; i++ {
			if uint8(i) == s.nextAvailable {
				b.WriteByte('^')
			} else {
				b.WriteByte(' ')
			}
		}
	}
	fmt.Fprintf(&b, "\nEach slot has %d nodes\n", s.groupSize)
	return b.String()
}

// Arena is a slab allocator for ArenaNode blocks, bucketed by block size
// (1..8 children) into up to 256 segments of 256 blocks each per bucket.
type Arena struct {
	segments [8][]*ArenaSegment
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc reserves a fresh block of blockSize sibling nodes and returns its
// reference. Every node in the block comes back zeroed, even when the slot
// is recycled from an earlier Free. Panics with ArenaOverflow if every
// segment bucket for this block size is already at its 256-segment cap.
func (a *Arena) Alloc(blockSize uint8) BlockRef {
	if blockSize == 0 || blockSize > 8 {
		panic("octree: invalid block size")
	}
	bucket := &a.segments[blockSize-1]
	for i := len(*bucket) - 1; i >= 0; i-- {
		if !(*bucket)[i].isFull() {
			indice := (*bucket)[i].alloc()
			clear((*bucket)[i].block(indice))
			return BlockRef{Segment: uint8(i), Indice: indice, BlockSize: blockSize}
		}
	}
	if len(*bucket) <= maxSegmentsPerSize-1 {
		seg := newArenaSegment(blockSize)
		indice := seg.alloc()
		*bucket = append(*bucket, seg)
		return BlockRef{Segment: uint8(len(*bucket) - 1), Indice: indice, BlockSize: blockSize}
	}
	panic("octree: arena overflow")
}

// Free releases a block back to its segment.
func (a *Arena) Free(ref BlockRef) {
	if ref.BlockSize > 0 {
		a.segments[ref.BlockSize-1][ref.Segment].freeSlot(ref.Indice)
	}
}

// Realloc gives node a new children block matching childMask, copying over
// any children present in both the old and new mask and discarding the
// rest. A childMask of 0 frees the children block entirely and turns node
// into a plain leaf node.
//
// Children occupy their block in decreasing-octant order (matching
// ArenaNode.ChildOnDir), so the copy walks both masks low-bit-first while
// indexing the blocks high-to-low via a pair of countdown cursors.
func (a *Arena) Realloc(ref NodeRef, childMask uint8) {
	if childMask == 0 {
		node := a.GetNode(ref)
		oldBlock := node.ChildrenBlock()
		a.Free(oldBlock)
		node = a.GetNodeMut(ref)
		node.ChildMask = 0
		node.childrenIndice = 0
		node.childrenSegment = 0
		return
	}

	newBlockSize := uint8(bits.OnesCount8(childMask))
	newBlock := a.Alloc(newBlockSize)

	node := a.GetNode(ref)
	oldBlock := node.ChildrenBlock()
	if node.ChildMask != 0 {
		oldBlockSize := node.NumChildren()
		oldMask, newMask := node.ChildMask, childMask
		oldIndex, newIndex := uint8(1), uint8(1)
		for i := 0; i < 8; i++ {
			oldHas := oldMask&1 == 1
			oldMask >>= 1
			newHas := newMask&1 == 1
			newMask >>= 1
			switch {
			case oldHas && newHas:
				a.GetBlockMut(newBlock)[newBlockSize-newIndex] = a.GetBlock(oldBlock)[oldBlockSize-oldIndex]
				oldIndex++
				newIndex++
			case oldHas:
				oldIndex++
			case newHas:
				newIndex++
			}
			if oldMask == 0 || newMask == 0 {
				break
			}
		}
	}

	node = a.GetNodeMut(ref)
	node.ChildMask = childMask
	node.childrenIndice = newBlock.Indice
	node.childrenSegment = newBlock.Segment
	a.Free(oldBlock)
}

// GetBlock returns the sibling group a BlockRef points at.
func (a *Arena) GetBlock(ref BlockRef) []ArenaNode {
	if ref.BlockSize == 0 {
		return nil
	}
	return a.segments[ref.BlockSize-1][ref.Segment].block(ref.Indice)
}

// GetBlockMut is GetBlock with an explicitly mutable name, kept distinct
// for readability at call sites that intend to write through the result.
func (a *Arena) GetBlockMut(ref BlockRef) []ArenaNode { return a.GetBlock(ref) }

// GetNode returns the node a NodeRef points at.
func (a *Arena) GetNode(ref NodeRef) *ArenaNode {
	return &a.GetBlock(ref.Block)[ref.Index]
}

// GetNodeMut is GetNode, named for symmetry with GetBlockMut.
func (a *Arena) GetNodeMut(ref NodeRef) *ArenaNode { return a.GetNode(ref) }

// CountNodes returns the number of currently-allocated nodes across every
// segment and block-size bucket.
func (a *Arena) CountNodes() int {
	total := 0
	for _, bucket := range a.segments {
		for _, seg := range bucket {
			total += seg.countNodes()
		}
	}
	return total
}

func (a *Arena) String() string {
	var b strings.Builder
	b.WriteString("--------- Chunk Arena ----------\n")
	for i, bucket := range a.segments {
		fmt.Fprintf(&b, "-----Block sized %d-----\n", i+1)
		for j, seg := range bucket {
			fmt.Fprintf(&b, "%d: \n", j)
			b.WriteString(seg.String())
		}
	}
	b.WriteString("------- End Chunk Arena --------\n")
	return b.String()
}
