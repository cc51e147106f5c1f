package ptf

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/cpu"
)

// DetectByteOrder inspects the first ProbeSize bytes of member 0.
//
// Words 15 and 17 of the control block carry small sentinel values: 4..7
// paired with 6 for the Dyna dialect, 3 paired with 1 for Topaz. Read in the
// right order the remaining three bytes of each word are zero, so decoding
// each word both ways and checking the value ranges settles the order.
func DetectByteOrder(probe []byte) (binary.ByteOrder, Dialect, error) {
	if len(probe) < ProbeSize {
		return nil, DialectUnknown, fmt.Errorf("%w: endian probe needs %d bytes, got %d",
			ErrTruncatedRead, ProbeSize, len(probe))
	}
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		w15 := order.Uint32(probe[wordDimension*WordSize:])
		w17 := order.Uint32(probe[wordCode*WordSize:])
		if d := classifyDialect(w15, w17); d != DialectUnknown {
			return order, d, nil
		}
	}
	return nil, DialectUnknown, fmt.Errorf("%w: endian probe bytes % x / % x",
		ErrUnknownFormat, probe[60:64], probe[68:72])
}

func classifyDialect(w15, w17 uint32) Dialect {
	switch {
	case w15 >= 4 && w15 <= 7 && w17 == 6:
		return DialectDyna
	case w15 == 3 && w17 == 1:
		return DialectTopaz
	default:
		return DialectUnknown
	}
}

// needsSwap reports whether words stored in order differ from the host order.
func needsSwap(order binary.ByteOrder) bool {
	return cpu.IsBigEndian != (order == binary.BigEndian)
}
