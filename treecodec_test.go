package huffpack

import (
	"bytes"
	"errors"
	"testing"
)

func TestTreeRoundTrip(t *testing.T) {
	inputs := []string{
		"abracadabra",
		"aa",
		"the quick brown fox jumps over the lazy dog",
		"ababababcdcdcdcdeeee",
	}
	for _, input := range inputs {
		root, err := buildTree(countSymbols(symbolsFromString(input)))
		if err != nil {
			t.Fatalf("%q: build: %v", input, err)
		}
		got, err := deserializeTree(serializeTree(root))
		if err != nil {
			t.Fatalf("%q: deserialize: %v", input, err)
		}
		if !sameTree(root, got) {
			t.Fatalf("%q: round-tripped tree differs", input)
		}
	}
}

func TestTreeSingleLeaf(t *testing.T) {
	root := &node{symbol: 'x', weight: 7}
	data := serializeTree(root)
	want := []byte{flagLeaf, 'x', 0x00}
	if !bytes.Equal(data, want) {
		t.Fatalf("serialized leaf = % x, want % x", data, want)
	}
	got, err := deserializeTree(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if !got.isLeaf() || got.symbol != 'x' {
		t.Fatalf("deserialized leaf = %+v", got)
	}
}

// TestTreeWireOrder pins the breadth-first, right-child-before-left emission
// order. These exact bytes are a format contract: containers already written
// depend on them.
func TestTreeWireOrder(t *testing.T) {
	// "aabc" merges b+c first, then joins a: root{left: a, right: {left: b, right: c}}.
	root, err := buildTree(countSymbols(symbolsFromString("aabc")))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []byte{
		flagInternal,           // root
		flagInternal,           // root.right (emitted before root.left)
		flagLeaf, 'a', 0x00,    // root.left
		flagLeaf, 'c', 0x00,    // root.right.right
		flagLeaf, 'b', 0x00,    // root.right.left
	}
	got := serializeTree(root)
	if !bytes.Equal(got, want) {
		t.Fatalf("wire bytes = % x, want % x", got, want)
	}
}

func TestDeserializeTreeMalformed(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad_flag", []byte{0x02}},
		{"truncated_symbol", []byte{flagLeaf, 'a'}},
		{"missing_children", []byte{flagInternal}},
		{"missing_left_child", []byte{flagInternal, flagLeaf, 'a', 0x00}},
		{"bad_child_flag", []byte{flagInternal, 0xff, flagLeaf, 'a', 0x00}},
		{"trailing_bytes", []byte{flagLeaf, 'a', 0x00, 0x00}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := deserializeTree(tc.data); !errors.Is(err, ErrMalformedContainer) {
				t.Fatalf("expected ErrMalformedContainer, got %v", err)
			}
		})
	}
}
