package ptf

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// readWordsAt seeks to word address addr and fills buf completely. A short
// read reports ErrTruncatedRead, any other failure ErrIO.
func readWordsAt(r io.ReadSeeker, path string, buf []byte, addr int64) error {
	if _, err := r.Seek(addr*WordSize, io.SeekStart); err != nil {
		return ioError("seek", path, ErrIO, err)
	}
	if len(buf) == 0 {
		return nil
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ioError("read", path, ErrTruncatedRead, err)
		}
		return ioError("read", path, ErrIO, err)
	}
	return nil
}

func decodeFloats(dst []float32, src []byte, order binary.ByteOrder) {
	for i := range dst {
		dst[i] = math.Float32frombits(order.Uint32(src[i*WordSize:]))
	}
}

func decodeInts(dst []int32, src []byte, order binary.ByteOrder) {
	for i := range dst {
		dst[i] = int32(order.Uint32(src[i*WordSize:]))
	}
}

func decodeFloat(src []byte, order binary.ByteOrder) float32 {
	return math.Float32frombits(order.Uint32(src))
}
