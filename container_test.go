package huffpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestContainerRoundTrip(t *testing.T) {
	c := Container{
		Tree:        []byte{flagInternal, flagLeaf, 'b', 0x00, flagLeaf, 'a', 0x00},
		ContentBits: 13,
		Content:     []byte{0xCD, 0x15},
	}
	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if want := int64(4 + len(c.Tree) + 4 + len(c.Content)); n != want {
		t.Fatalf("wrote %d bytes, want %d", n, want)
	}

	var got Container
	m, err := got.ReadFrom(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if m != n {
		t.Fatalf("read %d bytes, wrote %d", m, n)
	}
	if !bytes.Equal(got.Tree, c.Tree) || got.ContentBits != c.ContentBits || !bytes.Equal(got.Content, c.Content) {
		t.Fatalf("round-tripped container differs: %+v vs %+v", got, c)
	}
}

func TestContainerLayout(t *testing.T) {
	c := Container{
		Tree:        []byte{flagLeaf, 'a', 0x00},
		ContentBits: 4,
		Content:     []byte{0x0F},
	}
	data, err := c.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{
		0x03, 0x00, 0x00, 0x00, // tree byte length
		flagLeaf, 'a', 0x00, // serialized tree
		0x04, 0x00, 0x00, 0x00, // content bit length
		0x0F, // packed content
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("layout = % x, want % x", data, want)
	}
}

func TestContainerMalformed(t *testing.T) {
	valid, err := CompressString("abracadabra")
	if err != nil {
		t.Fatalf("compress: %v", err)
	}

	t.Run("truncations", func(t *testing.T) {
		// Every proper prefix either truncates a length field or leaves a
		// declared length unsatisfied.
		for cut := 0; cut < len(valid); cut++ {
			var c Container
			if err := c.UnmarshalBinary(valid[:cut]); !errors.Is(err, ErrMalformedContainer) {
				t.Fatalf("cut %d: expected ErrMalformedContainer, got %v", cut, err)
			}
		}
	})

	t.Run("oversized_tree_length", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data, uint32(len(data))) // larger than what follows
		var c Container
		if err := c.UnmarshalBinary(data); !errors.Is(err, ErrMalformedContainer) {
			t.Fatalf("expected ErrMalformedContainer, got %v", err)
		}
	})

	t.Run("oversized_bit_length", func(t *testing.T) {
		data := bytes.Clone(valid)
		treeLen := binary.LittleEndian.Uint32(data)
		binary.LittleEndian.PutUint32(data[4+treeLen:], 1<<20)
		var c Container
		if err := c.UnmarshalBinary(data); !errors.Is(err, ErrMalformedContainer) {
			t.Fatalf("expected ErrMalformedContainer, got %v", err)
		}
	})
}
