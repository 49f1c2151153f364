package huffpack

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrEmptyInput indicates the source stream contained no symbols, so no
// coding tree can be built.
var ErrEmptyInput = errors.New("huffpack: empty input")

// node is a Huffman tree node: a leaf carrying one symbol, or an internal
// node owning exactly two children. The pairwise-merge construction
// guarantees no single-child nodes.
type node struct {
	symbol uint16
	weight int
	left   *node
	right  *node
	seq    int // insertion order, breaks weight ties deterministically
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// nodeHeap is a min-heap of nodes ordered by weight. Equal weights fall back
// to insertion sequence, so the same frequency map always produces the same
// tree and, downstream, byte-identical containers.
type nodeHeap []*node

// Len implements heap.Interface and returns the number of elements.
func (h nodeHeap) Len() int { return len(h) }

// Less implements heap.Interface ordering by ascending weight, breaking ties
// by insertion sequence.
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

// Swap implements heap.Interface swap.
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push implements heap.Interface push.
func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

// Pop implements heap.Interface pop.
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// buildTree constructs the Huffman tree from a frequency map via greedy
// minimum-weight merging: the two lowest-weight nodes are removed, joined
// under a fresh internal node (first removed becomes the left child), and the
// parent is reinserted until one node remains. A map with a single entry
// yields a tree that is just that leaf. An empty map fails with ErrEmptyInput.
func buildTree(freqs map[uint16]int) (*node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	// Seed leaves in ascending symbol order so the heap layout is
	// independent of map iteration order.
	symbols := make([]int, 0, len(freqs))
	for s := range freqs {
		symbols = append(symbols, int(s))
	}
	sort.Ints(symbols)

	h := make(nodeHeap, 0, len(symbols))
	seq := 0
	for _, s := range symbols {
		h = append(h, &node{symbol: uint16(s), weight: freqs[uint16(s)], seq: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{weight: a.weight + b.weight, left: a, right: b, seq: seq})
		seq++
	}
	return heap.Pop(&h).(*node), nil
}
