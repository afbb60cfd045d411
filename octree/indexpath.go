package octree

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// MaxPathLen is the deepest an IndexPath can encode: 63 usable bits grouped
// in 3s, one sentinel bit reserved at the top.
const MaxPathLen = 21

// IndexPath packs up to MaxPathLen octal path segments plus a sentinel bit
// into a single uint64. The sentinel is always the highest set bit; it
// marks where the encoded path ends so IndexPath needs no separate length
// field and remains directly comparable/hashable.
//
// Two insertion disciplines are supported against the same bit layout:
//
//   - push/pop: stack order. push writes the new segment into the lowest 3
//     bits, shifting everything (sentinel included) up by 3; pop undoes it.
//     Used by Chunk to descend/ascend the tree.
//   - put/get/del: queue order. put writes the new segment just below the
//     sentinel without disturbing existing low bits, then moves the
//     sentinel up by 3; get/del read/remove that same slot. Used by the
//     Node cursor to accumulate a root-to-leaf path as it descends, so that
//     draining it (Peek/Pop, or Directions) reads back in root-to-leaf
//     order. This pair has no counterpart in index_path.rs; it is added
//     here to satisfy the queue-order contract.
type IndexPath uint64

// Empty is the zero-length path: just the sentinel bit.
const Empty IndexPath = 1

// NewIndexPath builds a length-1 path descending into octant d from the
// root.
func NewIndexPath(d Direction) IndexPath {
	return Empty.Push(d)
}

// IsEmpty reports whether p encodes zero octants.
func (p IndexPath) IsEmpty() bool { return p == Empty }

// IsFull reports whether p is at MaxPathLen and cannot accept another
// segment.
func (p IndexPath) IsFull() bool { return p>>63 == 1 }

// Len returns the number of octants encoded in p.
func (p IndexPath) Len() int {
	return MaxPathLen - bits.LeadingZeros64(uint64(p))/3
}

// Peek returns the segment at the low end: the stack top for a push-built
// path, the root-most octant for a put-built one. Panics if p is empty.
func (p IndexPath) Peek() Direction {
	if p.IsEmpty() {
		panic("octree: Peek on empty IndexPath")
	}
	return Direction(p & 0b111)
}

// Pop returns p with its low-end segment removed.
func (p IndexPath) Pop() IndexPath {
	if p.IsEmpty() {
		panic("octree: Pop on empty IndexPath")
	}
	return p >> 3
}

// Push prepends d at the low end, making it the new stack top. Panics if p
// is already at MaxPathLen.
func (p IndexPath) Push(d Direction) IndexPath {
	if p.IsFull() {
		panic("octree: Push on full IndexPath")
	}
	return (p << 3) | IndexPath(d)
}

// Replace swaps the low-end segment for d without changing depth.
func (p IndexPath) Replace(d Direction) IndexPath {
	return (p &^ 0b111) | IndexPath(d)
}

// Get returns the segment adjacent to the sentinel bit: the most recently
// Put element. Panics if p is empty.
func (p IndexPath) Get() Direction {
	if p.IsEmpty() {
		panic("octree: Get on empty IndexPath")
	}
	n := p.Len()
	return Direction((p >> uint((n - 1) * 3)) & 0b111)
}

// Put appends d just below the sentinel, leaving every existing segment at
// its current bit position. Panics if p is already at MaxPathLen.
func (p IndexPath) Put(d Direction) IndexPath {
	if p.IsFull() {
		panic("octree: Put on full IndexPath")
	}
	n := p.Len()
	low := p & ((1 << uint(3*n)) - 1)
	return low | (IndexPath(d) << uint(3*n)) | (1 << uint(3*(n+1)))
}

// Del removes the segment adjacent to the sentinel bit. Panics if p is
// empty.
func (p IndexPath) Del() IndexPath {
	if p.IsEmpty() {
		panic("octree: Del on empty IndexPath")
	}
	n := p.Len()
	mask := IndexPath(1<<uint(3*(n-1))) - 1
	low := p & mask
	return low | (1 << uint(3*(n-1)))
}

// Directions drains p via repeated Peek/Pop. The order this yields depends
// on how p was built: deep-to-shallow for a path built with Push, shallow-
// to-deep (i.e. root-to-leaf) for one built with Put.
func (p IndexPath) Directions() []Direction {
	out := make([]Direction, 0, p.Len())
	for cur := p; !cur.IsEmpty(); cur = cur.Pop() {
		out = append(out, cur.Peek())
	}
	return out
}

// Seq returns an iter.Seq[Direction] draining p the same way Directions
// does, without allocating a slice.
func (p IndexPath) Seq() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for cur := p; !cur.IsEmpty(); cur = cur.Pop() {
			if !yield(cur.Peek()) {
				return
			}
		}
	}
}

func (p IndexPath) String() string {
	var b strings.Builder
	for cur := p; !cur.IsEmpty(); cur = cur.Pop() {
		b.WriteString(strconv.Itoa(int(cur.Peek())))
		b.WriteByte('/')
	}
	return b.String()
}
