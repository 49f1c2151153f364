package huffpack

// codeTable maps each symbol to its code: the root-to-leaf bit path, false
// stepping left and true stepping right. Only leaves terminate paths, so no
// code is a prefix of another.
type codeTable map[uint16][]bool

// buildCodes walks the tree breadth-first, carrying the bit path taken to
// reach each node, and records one entry per leaf.
//
// A single-leaf tree would naturally give its symbol an empty code, encoding
// every occurrence in zero bits and losing the repeat count. Such symbols get
// a synthetic 1-bit code instead; decode mirrors this by emitting the leaf
// symbol once per content bit.
func buildCodes(root *node) codeTable {
	if root.isLeaf() {
		return codeTable{root.symbol: []bool{false}}
	}

	type visit struct {
		n    *node
		path []bool
	}
	codes := make(codeTable, 64)
	queue := []visit{{n: root}}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v.n.isLeaf() {
			codes[v.n.symbol] = v.path
			continue
		}
		left := make([]bool, len(v.path), len(v.path)+1)
		copy(left, v.path)
		right := make([]bool, len(v.path), len(v.path)+1)
		copy(right, v.path)
		queue = append(queue,
			visit{n: v.n.left, path: append(left, false)},
			visit{n: v.n.right, path: append(right, true)},
		)
	}
	return codes
}
