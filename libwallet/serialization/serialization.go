// Package serialization provides the little-endian binary primitives used by
// the wallet transaction wire format. All integers are serialized in
// little-endian byte order with fixed widths.
package serialization

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free list for binary
// serialization and deserialization.
const maxItems = 1024

var binaryFreeList = make(chan []byte, maxItems)

// borrow returns a byte slice from the free list with a length of 8. A new
// buffer is allocated if there are not any available on the free list.
func borrow() []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, 8)
	}
	return buf[:8]
}

// giveBack puts the provided byte slice back on the free list. The buffer
// must have been obtained via borrow and therefore have a cap of 8.
func giveBack(buf []byte) {
	select {
	case binaryFreeList <- buf:
	default:
		// Let it go to the garbage collector.
	}
}

// WriteUint8 writes a single byte to w.
func WriteUint8(w io.Writer, val uint8) error {
	buf := borrow()[:1]
	buf[0] = val
	_, err := w.Write(buf)
	giveBack(buf)
	return errors.WithStack(err)
}

// WriteUint16 writes val to w as two little-endian bytes.
func WriteUint16(w io.Writer, val uint16) error {
	buf := borrow()[:2]
	binary.LittleEndian.PutUint16(buf, val)
	_, err := w.Write(buf)
	giveBack(buf)
	return errors.WithStack(err)
}

// WriteUint32 writes val to w as four little-endian bytes.
func WriteUint32(w io.Writer, val uint32) error {
	buf := borrow()[:4]
	binary.LittleEndian.PutUint32(buf, val)
	_, err := w.Write(buf)
	giveBack(buf)
	return errors.WithStack(err)
}

// WriteUint64 writes val to w as eight little-endian bytes.
func WriteUint64(w io.Writer, val uint64) error {
	buf := borrow()[:8]
	binary.LittleEndian.PutUint64(buf, val)
	_, err := w.Write(buf)
	giveBack(buf)
	return errors.WithStack(err)
}

// WriteBytes writes data to w as-is, with no length prefix.
func WriteBytes(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return errors.WithStack(err)
}

// WriteVarBytes writes data to w prefixed with its length as a little-endian
// uint64.
func WriteVarBytes(w io.Writer, data []byte) error {
	err := WriteUint64(w, uint64(len(data)))
	if err != nil {
		return err
	}
	return WriteBytes(w, data)
}

// ReadUint8 reads a single byte from r.
func ReadUint8(r io.Reader) (uint8, error) {
	buf := borrow()[:1]
	if _, err := io.ReadFull(r, buf); err != nil {
		giveBack(buf)
		return 0, errors.WithStack(err)
	}
	rv := buf[0]
	giveBack(buf)
	return rv, nil
}

// ReadUint16 reads two little-endian bytes from r and returns the resulting
// uint16.
func ReadUint16(r io.Reader) (uint16, error) {
	buf := borrow()[:2]
	if _, err := io.ReadFull(r, buf); err != nil {
		giveBack(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.LittleEndian.Uint16(buf)
	giveBack(buf)
	return rv, nil
}

// ReadUint32 reads four little-endian bytes from r and returns the resulting
// uint32.
func ReadUint32(r io.Reader) (uint32, error) {
	buf := borrow()[:4]
	if _, err := io.ReadFull(r, buf); err != nil {
		giveBack(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.LittleEndian.Uint32(buf)
	giveBack(buf)
	return rv, nil
}

// ReadUint64 reads eight little-endian bytes from r and returns the resulting
// uint64.
func ReadUint64(r io.Reader) (uint64, error) {
	buf := borrow()[:8]
	if _, err := io.ReadFull(r, buf); err != nil {
		giveBack(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.LittleEndian.Uint64(buf)
	giveBack(buf)
	return rv, nil
}

// ReadBytes reads exactly length bytes from r.
func ReadBytes(r io.Reader, length uint64) ([]byte, error) {
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// ReadVarBytes reads a little-endian uint64 length prefix from r followed by
// that many bytes. maxAllowed bounds the length so that a corrupted prefix
// cannot trigger a huge allocation.
func ReadVarBytes(r io.Reader, maxAllowed uint64) ([]byte, error) {
	length, err := ReadUint64(r)
	if err != nil {
		return nil, err
	}
	if length > maxAllowed {
		return nil, errors.Errorf("variable length field is %d bytes, but the "+
			"maximum allowed is %d", length, maxAllowed)
	}
	return ReadBytes(r, length)
}
