package compute

import "fmt"

// NodeID indexes a node in an Arena. NilNode marks a missing child.
type NodeID int32

const NilNode NodeID = -1

type node struct {
	left, right NodeID
	live        bool
}

// Arena stores tree nodes by index and recycles released slots through a
// free list.
type Arena struct {
	nodes []node
	free  []NodeID
	live  int
}

func NewArena(capacity int) *Arena {
	return &Arena{
		nodes: make([]node, 0, capacity),
		free:  make([]NodeID, 0, capacity),
	}
}

func (a *Arena) alloc() NodeID {
	var id NodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		id = NodeID(len(a.nodes))
		a.nodes = append(a.nodes, node{})
	}
	a.nodes[id] = node{left: NilNode, right: NilNode, live: true}
	a.live++
	return id
}

// MakeTree builds a perfect binary tree of the given depth. A depth of zero
// is a single leaf.
func (a *Arena) MakeTree(depth int) NodeID {
	id := a.alloc()
	if depth > 0 {
		left := a.MakeTree(depth - 1)
		right := a.MakeTree(depth - 1)
		a.nodes[id].left = left
		a.nodes[id].right = right
	}
	return id
}

// Check counts the nodes of the tree rooted at id.
func (a *Arena) Check(id NodeID) int64 {
	n := &a.nodes[id]
	if n.left == NilNode {
		return 1
	}
	return 1 + a.Check(n.left) + a.Check(n.right)
}

// Free releases the tree rooted at id, children before parents. Releasing a
// node twice panics.
func (a *Arena) Free(id NodeID) {
	n := &a.nodes[id]
	if !n.live {
		panic(fmt.Sprintf("compute: double free of node %d", id))
	}
	if n.left != NilNode {
		a.Free(n.left)
		a.Free(n.right)
	}
	a.nodes[id].live = false
	a.free = append(a.free, id)
	a.live--
}

// Live is the number of allocated, unreleased nodes.
func (a *Arena) Live() int { return a.live }

// TreeNodes is the node count of a perfect tree of the given depth,
// 2^(depth+1) - 1.
func TreeNodes(depth int) int64 {
	return int64(1)<<(depth+1) - 1
}

type DepthBand struct {
	Iterations int
	Depth      int
	Check      int64
}

type TreesResult struct {
	StretchDepth   int
	StretchCheck   int64
	Bands          []DepthBand
	LongLivedDepth int
	LongLivedCheck int64
}

// BinaryTrees runs the stretch, depth-band and long-lived tree workload.
// Every tree it builds is released before it returns.
func BinaryTrees(a *Arena, minDepth, maxDepth int) TreesResult {
	res := TreesResult{
		StretchDepth:   maxDepth + 1,
		LongLivedDepth: maxDepth,
	}

	stretch := a.MakeTree(res.StretchDepth)
	res.StretchCheck = a.Check(stretch)
	a.Free(stretch)

	longLived := a.MakeTree(maxDepth)

	for depth := minDepth; depth <= maxDepth; depth += 2 {
		iterations := 1 << (maxDepth - depth + minDepth)
		var check int64
		for i := 0; i < iterations; i++ {
			tree := a.MakeTree(depth)
			check += a.Check(tree)
			a.Free(tree)
		}
		res.Bands = append(res.Bands, DepthBand{Iterations: iterations, Depth: depth, Check: check})
	}

	res.LongLivedCheck = a.Check(longLived)
	a.Free(longLived)

	return res
}
