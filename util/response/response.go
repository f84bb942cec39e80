// Package response frames result messages as a 4 byte big endian length
// followed by the payload.
package response

import (
	"encoding/binary"
	"io"
)

type Writer struct {
	dst io.Writer
	hdr [4]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{dst: w}
}

// WriteLine writes one framed message and returns the number of bytes
// written including the length prefix.
func (rw *Writer) WriteLine(msg []byte) (int, error) {
	binary.BigEndian.PutUint32(rw.hdr[:], uint32(len(msg)))
	n, err := rw.dst.Write(rw.hdr[:])
	if err != nil {
		return n, err
	}

	m, err := rw.dst.Write(msg)
	return n + m, err
}

type Reader struct {
	src io.Reader
	buf []byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{src: r}
}

// ReadLine returns the next framed message. The returned slice is only
// valid until the next call. io.EOF is returned once the source is drained
// on a frame boundary.
func (rr *Reader) ReadLine() (buf []byte, err error) {
	if err = rr.read(4); err != nil {
		return nil, err
	}

	messageSize := int(binary.BigEndian.Uint32(rr.buf))
	if err = rr.read(messageSize); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	return rr.buf[:messageSize], nil
}

func (rr *Reader) read(n int) error {
	if cap(rr.buf) < n {
		rr.buf = make([]byte, n)
	}
	rr.buf = rr.buf[:n]

	_, err := io.ReadFull(rr.src, rr.buf)
	return err
}
