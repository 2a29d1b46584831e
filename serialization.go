package rangetree

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const smallEncoding int32 = 1

// AsBytes serializes the tree into a compact byte representation: a
// header (encoding version and leaf count, big-endian) followed by the
// leaf values delta-coded against their predecessor and written as
// zigzag varints.
func (t *Tree) AsBytes() ([]byte, error) {
	return leavesAsBytes(t.Values())
}

// AsBytes serializes the tree the same way Tree.AsBytes does. Deferred
// range updates are materialized into the payload, so decoding yields a
// tree with nothing pending.
func (t *LazyTree) AsBytes() ([]byte, error) {
	return leavesAsBytes(t.Values())
}

// FromBytes reads a serialized tree (as produced by AsBytes on either
// variant) and rebuilds it as an eager Tree.
func FromBytes(buf *bytes.Reader) (*Tree, error) {
	values, err := leavesFromBytes(buf)
	if err != nil {
		return nil, err
	}

	return New(values)
}

// LazyFromBytes reads a serialized tree and rebuilds it as a LazyTree.
func LazyFromBytes(buf *bytes.Reader) (*LazyTree, error) {
	values, err := leavesFromBytes(buf)
	if err != nil {
		return nil, err
	}

	return NewLazy(values)
}

func leavesAsBytes(leaves []int64) ([]byte, error) {
	buffer := new(bytes.Buffer)

	err := binary.Write(buffer, binary.BigEndian, smallEncoding)
	if err != nil {
		return nil, err
	}

	err = binary.Write(buffer, binary.BigEndian, int32(len(leaves)))
	if err != nil {
		return nil, err
	}

	var prev int64
	for _, leaf := range leaves {
		encodeInt(buffer, leaf-prev)
		prev = leaf
	}

	return buffer.Bytes(), nil
}

func leavesFromBytes(buf *bytes.Reader) ([]int64, error) {
	var encoding int32
	err := binary.Read(buf, binary.BigEndian, &encoding)
	if err != nil {
		return nil, err
	}

	if encoding != smallEncoding {
		return nil, fmt.Errorf("unsupported encoding version: %d", encoding)
	}

	var numLeaves int32
	err = binary.Read(buf, binary.BigEndian, &numLeaves)
	if err != nil {
		return nil, err
	}

	if numLeaves < 1 {
		return nil, fmt.Errorf("%w: serialized leaf count is %d", ErrInvalidSize, numLeaves)
	}

	// Every leaf takes at least one varint byte, so a count exceeding
	// the remaining payload is corrupt. Checking up front keeps a bogus
	// header from provoking a huge allocation.
	if int(numLeaves) > buf.Len() {
		return nil, fmt.Errorf("%w: %d leaves claimed but only %d bytes remain",
			ErrInvalidSize, numLeaves, buf.Len())
	}

	values := make([]int64, numLeaves)

	var prev int64
	for i := range values {
		delta, err := decodeInt(buf)
		if err != nil {
			return nil, err
		}

		prev += delta
		values[i] = prev
	}

	return values, nil
}

// encodeInt writes n as a zigzag-coded varint, so small magnitudes of
// either sign stay small on the wire.
func encodeInt(buf *bytes.Buffer, n int64) {
	u := uint64(n<<1) ^ uint64(n>>63)

	for u >= 0x80 {
		buf.WriteByte(byte(0x80 | (0x7f & u)))
		u >>= 7
	}
	buf.WriteByte(byte(u))
}

func decodeInt(buf *bytes.Reader) (int64, error) {
	var u uint64
	var shift uint

	for {
		if shift > 63 {
			return 0, fmt.Errorf("invalid serialization: varint overflows int64")
		}

		b, err := buf.ReadByte()
		if err != nil {
			return 0, err
		}

		u |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}

	return int64(u>>1) ^ -int64(u&1), nil
}
