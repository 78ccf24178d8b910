package physics

import (
	"cmp"
	"math"
	"slices"
)

// KDNode is the public view of one tree node, used by the partition plotter.
// Left and Right are node indexes, -1 when empty.
type KDNode struct {
	Body        int // handle into the slice the tree was built from
	X, Y        float64
	Axis        int // 0 splits on x, 1 on y
	Left, Right int
}

type kdNode struct {
	item        int
	axis        int
	left, right int
}

// KDTree is a median-split 2D tree stored as a node arena over a position snapshot.
// Construction sorts a private permutation of handles, never the caller's slice.
type KDTree struct {
	points []snapshot
	perm   []int
	nodes  []kdNode
	root   int

	visits int // nodes touched by the last RangeSearch
}

// BuildKDTree builds a balanced tree over bodies. Axis alternates x, y by depth, starting with x.
func BuildKDTree(bodies []Body) *KDTree {
	t := &KDTree{
		points: snapshotOf(bodies),
		perm:   make([]int, len(bodies)),
		nodes:  make([]kdNode, 0, len(bodies)),
	}
	for i := range t.perm {
		t.perm[i] = i
	}
	t.root = t.build(0, len(t.perm), 0)
	return t
}

// build turns perm[lo:hi] into a subtree and returns its node index, or -1 for an empty range.
func (t *KDTree) build(lo, hi, depth int) int {
	if lo >= hi {
		return -1
	}
	axis := depth % 2
	span := t.perm[lo:hi]
	// stable so equal coordinates keep handle order and builds are reproducible
	slices.SortStableFunc(span, func(a, b int) int {
		return cmp.Compare(t.coord(a, axis), t.coord(b, axis))
	})
	mid := lo + (hi-lo)/2

	idx := len(t.nodes)
	t.nodes = append(t.nodes, kdNode{item: t.perm[mid], axis: axis})
	left := t.build(lo, mid, depth+1)
	right := t.build(mid+1, hi, depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

func (t *KDTree) coord(h, axis int) float64 {
	if axis == 0 {
		return t.points[h].x
	}
	return t.points[h].y
}

// RangeSearch appends to dst the handle of every body whose centre lies within r of (cx, cy).
// A query centre exactly on a split line descends right first.
func (t *KDTree) RangeSearch(cx, cy, r float64, dst []int) []int {
	t.visits = 0
	return t.search(t.root, cx, cy, r, dst)
}

// QueryRange implements SpatialIndex.
func (t *KDTree) QueryRange(cx, cy, r float64, dst []int) []int {
	return t.RangeSearch(cx, cy, r, dst)
}

func (t *KDTree) search(n int, cx, cy, r float64, dst []int) []int {
	if n < 0 {
		return dst
	}
	t.visits++
	node := &t.nodes[n]
	p := t.points[node.item]
	if p.within(cx, cy, r) {
		dst = append(dst, node.item)
	}
	var diff float64
	if node.axis == 0 {
		diff = cx - p.x
	} else {
		diff = cy - p.y
	}
	if diff < 0 {
		dst = t.search(node.left, cx, cy, r, dst)
		if math.Abs(diff) < r {
			dst = t.search(node.right, cx, cy, r, dst)
		}
	} else {
		dst = t.search(node.right, cx, cy, r, dst)
		if math.Abs(diff) < r {
			dst = t.search(node.left, cx, cy, r, dst)
		}
	}
	return dst
}

// Root returns the root node index, -1 for an empty tree.
func (t *KDTree) Root() int {
	return t.root
}

// Len returns the number of nodes, which equals the number of bodies.
func (t *KDTree) Len() int {
	return len(t.nodes)
}

// Node returns the node at index i.
func (t *KDTree) Node(i int) KDNode {
	n := t.nodes[i]
	p := t.points[n.item]
	return KDNode{Body: n.item, X: p.x, Y: p.y, Axis: n.axis, Left: n.left, Right: n.right}
}

// Height returns the number of levels on the longest root-to-leaf path.
func (t *KDTree) Height() int {
	return t.height(t.root)
}

func (t *KDTree) height(n int) int {
	if n < 0 {
		return 0
	}
	return 1 + max(t.height(t.nodes[n].left), t.height(t.nodes[n].right))
}
