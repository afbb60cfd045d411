package octree

import "testing"

func TestIndexPathPushLen(t *testing.T) {
	path := Empty
	for i := 0; i < MaxPathLen; i++ {
		if got, want := path.Len(), i; got != want {
			t.Fatalf("iteration %d: Len() = %d, want %d", i, got, want)
		}
		path = path.Push(FrontLeftBottom)
	}
	if got, want := path.Len(), MaxPathLen; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if !path.IsFull() {
		t.Fatal("path should be full after MaxPathLen pushes")
	}
}

func TestIndexPathPushPopIterator(t *testing.T) {
	path := Empty
	for i := Direction(0); i < 7; i++ {
		path = path.Push(i)
	}
	for i := 6; i >= 0; i-- {
		if path.IsEmpty() {
			t.Fatalf("path unexpectedly empty with %d directions left", i+1)
		}
		got := path.Peek()
		if got != Direction(i) {
			t.Fatalf("Peek() = %v, want %v", got, Direction(i))
		}
		path = path.Pop()
	}
	if !path.IsEmpty() {
		t.Fatal("expected empty path after draining all 7 pushes")
	}
}

func TestIndexPathPutGetDel(t *testing.T) {
	path := Empty
	dirs := []Direction{FrontRightBottom, RearLeftTop, FrontLeftBottom}
	for _, d := range dirs {
		path = path.Put(d)
	}
	if got, want := path.Len(), len(dirs); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	// get/del unwind in the reverse order of put: most recently put first.
	for i := len(dirs) - 1; i >= 0; i-- {
		if got := path.Get(); got != dirs[i] {
			t.Fatalf("Get() at step %d = %v, want %v", i, got, dirs[i])
		}
		path = path.Del()
	}
	if !path.IsEmpty() {
		t.Fatal("expected empty path after draining all puts")
	}
}

func TestIndexPathPutIteratesRootToLeaf(t *testing.T) {
	dirs := []Direction{RearRightTop, FrontLeftBottom, FrontRightTop}
	path := Empty
	for _, d := range dirs {
		path = path.Put(d)
	}
	got := path.Directions()
	if len(got) != len(dirs) {
		t.Fatalf("Directions() length = %d, want %d", len(got), len(dirs))
	}
	for i, d := range dirs {
		if got[i] != d {
			t.Fatalf("Directions()[%d] = %v, want %v (root-to-leaf order)", i, got[i], d)
		}
	}
}

func TestIndexPathPushIteratesLeafToRoot(t *testing.T) {
	dirs := []Direction{RearRightTop, FrontLeftBottom, FrontRightTop}
	path := Empty
	for _, d := range dirs {
		path = path.Push(d)
	}
	got := path.Directions()
	if len(got) != len(dirs) {
		t.Fatalf("Directions() length = %d, want %d", len(got), len(dirs))
	}
	for i := range dirs {
		want := dirs[len(dirs)-1-i]
		if got[i] != want {
			t.Fatalf("Directions()[%d] = %v, want %v (leaf-to-root order)", i, got[i], want)
		}
	}
}

func TestIndexPathNew(t *testing.T) {
	p := NewIndexPath(RearLeftBottom)
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	if p.Peek() != RearLeftBottom {
		t.Fatalf("Peek() = %v, want %v", p.Peek(), RearLeftBottom)
	}
}

func TestIndexPathSeqMatchesDirections(t *testing.T) {
	path := Empty.Push(FrontLeftTop).Push(RearRightBottom).Push(FrontRightTop)
	want := path.Directions()
	var got []Direction
	for d := range path.Seq() {
		got = append(got, d)
	}
	if len(got) != len(want) {
		t.Fatalf("Seq length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Seq()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
