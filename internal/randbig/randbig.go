package randbig

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrInvalidRange is returned when a range draw is requested with
	// min > max. No entropy is consumed in that case.
	ErrInvalidRange = errors.New("invalid range: min > max")

	// ErrBitLengthTooSmall is returned when fewer than 2 bits are
	// requested; forcing both the top and bottom bit needs at least two.
	ErrBitLengthTooSmall = errors.New("bit length must be at least 2")
)

// Bits returns a uniformly random integer of exactly bitLen bits with the
// lowest bit set. The top bit is forced so the value has the requested bit
// length; the bottom bit is forced so the value is odd. Intended solely for
// prime candidates.
func Bits(r io.Reader, bitLen int) (*big.Int, error) {
	if bitLen < 2 {
		return nil, ErrBitLengthTooSmall
	}

	buf := make([]byte, (bitLen+7)/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}

	// Drop excess high bits so the value fits in bitLen bits, then pin
	// the top and bottom bits.
	if excess := len(buf)*8 - bitLen; excess > 0 {
		buf[0] &= 0xff >> excess
	}
	n := new(big.Int).SetBytes(buf)
	n.SetBit(n, bitLen-1, 1)
	n.SetBit(n, 0, 1)
	return n, nil
}

// Range returns a uniformly distributed integer in the inclusive range
// [min, max]. It draws the minimal number of bytes able to represent
// max-min+1 and rejects draws outside the range, so the result carries no
// modulo bias. The top byte is masked down to the significant bits to keep
// the rejection rate below one half.
func Range(r io.Reader, min, max *big.Int) (*big.Int, error) {
	if min.Cmp(max) > 0 {
		return nil, ErrInvalidRange
	}

	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))

	bitLen := span.BitLen()
	byteLen := (bitLen + 7) / 8
	mask := byte(0xff >> (byteLen*8 - bitLen))

	buf := make([]byte, byteLen)
	n := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("read random bytes: %w", err)
		}
		buf[0] &= mask
		n.SetBytes(buf)
		if n.Cmp(span) < 0 {
			return n.Add(n, min), nil
		}
	}
}
