package huffpack

import (
	"encoding/binary"
	"fmt"
)

// Tree wire format: a breadth-first sequence of records, one per node.
// Each record is a flag byte (flagInternal or flagLeaf); a leaf record is
// followed by its symbol as a little-endian uint16. When an internal node is
// processed, its right child is enqueued before its left child. That order is
// a format contract shared with deserializeTree; changing it breaks every
// container already written.
const (
	flagInternal = 0x00
	flagLeaf     = 0x01
)

const leafRecordSize = 3 // flag byte + 16-bit symbol

// serializeTree flattens the tree into its wire representation.
// A single-leaf tree serializes to exactly one leaf record.
func serializeTree(root *node) []byte {
	out := make([]byte, 0, 64)
	queue := []*node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.isLeaf() {
			out = append(out, flagLeaf, 0, 0)
			binary.LittleEndian.PutUint16(out[len(out)-2:], n.symbol)
			continue
		}
		out = append(out, flagInternal)
		queue = append(queue, n.right, n.left)
	}
	return out
}

// deserializeTree rebuilds a tree from its wire representation, consuming
// records in the exact order serializeTree emits them. Truncated input or a
// flag byte outside {0, 1} fails with ErrMalformedContainer.
func deserializeTree(data []byte) (*node, error) {
	pos := 0

	// readNode consumes one record and returns the materialized node.
	readNode := func() (*node, error) {
		if pos >= len(data) {
			return nil, fmt.Errorf("%w: tree truncated at byte %d", ErrMalformedContainer, pos)
		}
		flag := data[pos]
		switch flag {
		case flagInternal:
			pos++
			return &node{}, nil
		case flagLeaf:
			if pos+leafRecordSize > len(data) {
				return nil, fmt.Errorf("%w: leaf symbol truncated at byte %d", ErrMalformedContainer, pos)
			}
			sym := binary.LittleEndian.Uint16(data[pos+1:])
			pos += leafRecordSize
			return &node{symbol: sym}, nil
		default:
			return nil, fmt.Errorf("%w: tree flag byte 0x%02x at byte %d", ErrMalformedContainer, flag, pos)
		}
	}

	root, err := readNode()
	if err != nil {
		return nil, err
	}
	if root.isLeaf() && pos == len(data) {
		return root, nil
	}
	if root.isLeaf() {
		return nil, fmt.Errorf("%w: %d trailing tree bytes", ErrMalformedContainer, len(data)-pos)
	}

	queue := []*node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		// Children arrive right before left, mirroring serializeTree.
		if n.right, err = readNode(); err != nil {
			return nil, err
		}
		if !n.right.isLeaf() {
			queue = append(queue, n.right)
		}
		if n.left, err = readNode(); err != nil {
			return nil, err
		}
		if !n.left.isLeaf() {
			queue = append(queue, n.left)
		}
	}
	if pos != len(data) {
		return nil, fmt.Errorf("%w: %d trailing tree bytes", ErrMalformedContainer, len(data)-pos)
	}
	return root, nil
}
