package zonetime

import "fmt"

// nsPerSec is the carry/borrow radix for the nanosecond component of an
// Interval, matching the 10^9 bound spec §3 fixes for ns.
const nsPerSec = 1_000_000_000

// Interval is a signed elapsed-time value: a whole-second count and a
// nanosecond remainder in (-1e9, 1e9) that share the sign of Sec once
// normalised. It is the result type of Diff; Zone.Op takes its delta as a
// Calendar instead.
//
// The zero Interval is the zero duration.
type Interval struct {
	Sec int64
	Nsec int32
}

// NewInterval builds a normalised Interval from a second count and a
// nanosecond remainder, carrying/borrowing at nsPerSec the same way
// brandondube/tai's Tai constructor normalises attoseconds.
func NewInterval(sec int64, nsec int64) Interval {
	spare := nsec / nsPerSec
	nsec %= nsPerSec
	sec += spare
	switch {
	case sec > 0 && nsec < 0:
		nsec += nsPerSec
		sec--
	case sec < 0 && nsec > 0:
		nsec -= nsPerSec
		sec++
	}
	return Interval{Sec: sec, Nsec: int32(nsec)}
}

// IsZero reports whether iv is the zero interval.
func (iv Interval) IsZero() bool {
	return iv.Sec == 0 && iv.Nsec == 0
}

// Sign returns -1, 0, or 1 according to whether iv is negative, zero, or
// positive.
func (iv Interval) Sign() int {
	switch {
	case iv.Sec > 0, iv.Sec == 0 && iv.Nsec > 0:
		return 1
	case iv.Sec < 0, iv.Sec == 0 && iv.Nsec < 0:
		return -1
	default:
		return 0
	}
}

// Neg returns the additive inverse of iv.
func (iv Interval) Neg() Interval {
	return NewInterval(-iv.Sec, -int64(iv.Nsec))
}

// Add returns iv + o, normalised.
func (iv Interval) Add(o Interval) Interval {
	return NewInterval(iv.Sec+o.Sec, int64(iv.Nsec)+int64(o.Nsec))
}

// Sub returns iv - o, normalised.
func (iv Interval) Sub(o Interval) Interval {
	return iv.Add(o.Neg())
}

// Compare returns -1, 0, or 1 according to whether iv sorts before, equal
// to, or after o.
func (iv Interval) Compare(o Interval) int {
	return iv.Sub(o).Sign()
}

// Before reports whether iv represents a shorter (more negative) interval
// than o.
func (iv Interval) Before(o Interval) bool {
	return iv.Compare(o) < 0
}

// After reports whether iv represents a longer (more positive) interval
// than o.
func (iv Interval) After(o Interval) bool {
	return iv.Compare(o) > 0
}

// Eq reports whether iv and o denote the same elapsed time.
func (iv Interval) Eq(o Interval) bool {
	return iv.Compare(o) == 0
}

// String renders iv in the wire format of spec §6: "S s N ns".
func (iv Interval) String() string {
	return fmt.Sprintf("%d s %d ns", iv.Sec, iv.Nsec)
}

// ParseInterval parses the wire format produced by Interval.String. It is
// lenient about surrounding whitespace, matching the reference parser's
// leniency around the nanosecond field.
func ParseInterval(s string) (Interval, error) {
	var sec int64
	var nsec int32
	n, err := fmt.Sscanf(s, "%d s %d ns", &sec, &nsec)
	if err != nil || n != 2 {
		return Interval{}, newError("ParseInterval", InvalidArgument, Calendar{})
	}
	return NewInterval(sec, int64(nsec)), nil
}
