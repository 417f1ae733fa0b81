package physics

import (
	"cmp"
	"slices"
)

// Pair is an unordered candidate pair of body indices, stored with A < B.
type Pair struct {
	A, B int
}

func makePair(a, b int) Pair {
	if a > b {
		return Pair{A: b, B: a}
	}
	return Pair{A: a, B: b}
}

// treeNode splits its bodies around the center body's position on one axis.
// Bodies whose box lies wholly below the split go left, wholly above go right,
// and the rest (the center included) stay on the node.
type treeNode struct {
	center  int
	axis    int
	split   float32
	bodies  []int // bodies kept on this node
	members []int // every body in this subtree
	left    *treeNode
	right   *treeNode
}

// Tree is a k-d style broad phase over body boxes. It is rebuilt from scratch
// every frame and only references bodies by index into the slice it was built from.
type Tree struct {
	maxDepth  int
	leafSize  int
	rootIndex int

	bodies []*Body
	root   *treeNode
	depth  int
}

func NewTree(s Settings) *Tree {
	return &Tree{
		maxDepth:  max(s.TreeDepth, 0),
		leafSize:  max(s.TreeLeafSize, 1),
		rootIndex: s.RootIndex,
	}
}

// Rebuild discards the previous structure and partitions the enabled bodies.
// The body at the configured root index is the root's center; if it is out of
// range or disabled, the first enabled body is used instead.
func (t *Tree) Rebuild(bodies []*Body) {
	t.Reset()
	t.bodies = bodies

	indices := make([]int, 0, len(bodies))
	for i, b := range bodies {
		if b != nil && b.Enabled {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return
	}

	center := indices[0]
	if t.rootIndex >= 0 && t.rootIndex < len(bodies) && bodies[t.rootIndex] != nil && bodies[t.rootIndex].Enabled {
		center = t.rootIndex
	}

	t.root = t.build(indices, center, 0)
}

// Reset drops the tree and its body references.
func (t *Tree) Reset() {
	t.bodies = nil
	t.root = nil
	t.depth = 0
}

func (t *Tree) build(indices []int, center, depth int) *treeNode {
	if depth+1 > t.depth {
		t.depth = depth + 1
	}

	node := &treeNode{
		center:  center,
		axis:    depth % 3,
		members: indices,
	}

	if len(indices) <= t.leafSize || depth >= t.maxDepth {
		node.bodies = indices
		return node
	}

	node.split = component(t.bodies[center].Position, node.axis)

	var left, right []int
	for _, i := range indices {
		box := t.bodies[i].Box
		switch {
		case component(box.Max, node.axis) < node.split:
			left = append(left, i)
		case component(box.Min, node.axis) > node.split:
			right = append(right, i)
		default:
			node.bodies = append(node.bodies, i)
		}
	}

	next := (depth + 1) % 3
	if len(left) > 0 {
		node.left = t.build(left, t.medianAlong(left, next), depth+1)
	}
	if len(right) > 0 {
		node.right = t.build(right, t.medianAlong(right, next), depth+1)
	}
	return node
}

// medianAlong picks the body whose position is the median of indices on axis.
func (t *Tree) medianAlong(indices []int, axis int) int {
	sorted := slices.Clone(indices)
	slices.SortFunc(sorted, func(a, b int) int {
		return cmp.Compare(component(t.bodies[a].Position, axis), component(t.bodies[b].Position, axis))
	})
	return sorted[len(sorted)/2]
}

// CandidatePairs lists every pair of bodies whose boxes may overlap.
// Bodies that ended up in opposite subtrees of a node are strictly separated along
// that node's axis, so skipping them never drops an overlapping pair.
// Each pair appears exactly once.
func (t *Tree) CandidatePairs() []Pair {
	var pairs []Pair
	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		for i, a := range n.bodies {
			for _, b := range n.bodies[i+1:] {
				pairs = append(pairs, makePair(a, b))
			}
			for _, child := range [2]*treeNode{n.left, n.right} {
				if child == nil {
					continue
				}
				for _, b := range child.members {
					pairs = append(pairs, makePair(a, b))
				}
			}
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return pairs
}

// Len returns how many bodies the last Rebuild partitioned.
func (t *Tree) Len() int {
	if t.root == nil {
		return 0
	}
	return len(t.root.members)
}

// Depth returns the number of levels in the last built tree.
func (t *Tree) Depth() int {
	return t.depth
}

// Center returns the index of the root's center body, or -1 for an empty tree.
func (t *Tree) Center() int {
	if t.root == nil {
		return -1
	}
	return t.root.center
}
