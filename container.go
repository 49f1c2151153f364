package huffpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedContainer indicates a container whose declared lengths exceed
// the available bytes, or whose serialized tree is corrupt.
var ErrMalformedContainer = errors.New("huffpack: malformed container")

// Container is the persisted compression artifact: the serialized coding
// tree plus the packed content bits. It is constructed once per compression
// and consumed once per decompression; there are no partial updates.
type Container struct {
	Tree        []byte // serialized tree (see treecodec.go)
	ContentBits uint32 // logical bit length of the packed content
	Content     []byte // ceil(ContentBits/8) packed bytes, LSB-first per byte
}

// contentSize returns the byte length implied by the declared bit length.
func contentSize(bits uint32) int { return (int(bits) + 7) / 8 }

// WriteTo serializes the container to w in the fixed wire layout:
// tree byte length (LE uint32), tree bytes, content bit length (LE uint32),
// packed content bytes.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	var (
		n    int64
		buf4 [4]byte
	)
	binary.LittleEndian.PutUint32(buf4[:], uint32(len(c.Tree)))
	nn, err := w.Write(buf4[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	nn, err = w.Write(c.Tree)
	n += int64(nn)
	if err != nil {
		return n, err
	}
	binary.LittleEndian.PutUint32(buf4[:], c.ContentBits)
	nn, err = w.Write(buf4[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	nn, err = w.Write(c.Content[:contentSize(c.ContentBits)])
	n += int64(nn)
	return n, err
}

// ReadFrom deserializes a container from r. Running out of bytes before the
// declared lengths are satisfied fails with ErrMalformedContainer; other read
// errors surface verbatim.
func (c *Container) ReadFrom(r io.Reader) (int64, error) {
	var (
		n    int64
		buf4 [4]byte
	)
	nn, err := io.ReadFull(r, buf4[:])
	n += int64(nn)
	if err != nil {
		return n, truncated("tree length", err)
	}
	treeLen := binary.LittleEndian.Uint32(buf4[:])

	c.Tree, nn, err = readSection(r, int64(treeLen), "tree")
	n += int64(nn)
	if err != nil {
		return n, err
	}

	nn, err = io.ReadFull(r, buf4[:])
	n += int64(nn)
	if err != nil {
		return n, truncated("content length", err)
	}
	c.ContentBits = binary.LittleEndian.Uint32(buf4[:])

	c.Content, nn, err = readSection(r, int64(contentSize(c.ContentBits)), "content")
	n += int64(nn)
	return n, err
}

// readSection reads exactly size bytes. It grows the buffer as bytes arrive
// rather than trusting the declared size, so a hostile length field cannot
// force a huge allocation before the shortfall is detected.
func readSection(r io.Reader, size int64, section string) ([]byte, int, error) {
	data, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return nil, len(data), err
	}
	if int64(len(data)) < size {
		return nil, len(data), fmt.Errorf("%w: %s exceeds available bytes", ErrMalformedContainer, section)
	}
	return data, len(data), nil
}

// truncated maps short-read errors onto ErrMalformedContainer (a declared
// length exceeded the available bytes) and passes real I/O errors through.
func truncated(section string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s exceeds available bytes", ErrMalformedContainer, section)
	}
	return err
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Container) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Container) UnmarshalBinary(data []byte) error {
	_, err := c.ReadFrom(bytes.NewReader(data))
	return err
}
