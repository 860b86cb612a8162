package zonetime

import (
	"fmt"
	"math"
)

// Flag is a bit in a Calendar's FlagSet.
type Flag uint32

const (
	// FlagAsIfNs marks a Calendar that represents an *offset* (such as a
	// rebased zone's stored calendar_offset) whose non-zero fields must
	// not trigger the knockdown rule of a UTCZone.Op COMPLEX_ADD (spec
	// §4.2 step 5).
	FlagAsIfNs Flag = 1 << 0
)

// FlagSet is a bitset of Flag values.
type FlagSet uint32

// Has reports whether f is set in fs.
func (fs FlagSet) Has(f Flag) bool {
	return fs&FlagSet(f) != 0
}

// With returns fs with f set.
func (fs FlagSet) With(f Flag) FlagSet {
	return fs | FlagSet(f)
}

// SystemTag names one of the six time systems a Zone can produce
// Calendar records in, bit-exact with the reference engine's numeric
// encoding (spec §6) so that serialised tags remain wire-compatible.
type SystemTag int32

// tainted is the orthogonal bit ORed into REBASED, and may in principle be
// ORed onto other tags by a caller composing their own convention; this
// package only ever sets it on SystemRebased.
const tainted SystemTag = 1 << 30

const (
	// SystemTAI is the leaf system: International Atomic Time.
	SystemTAI SystemTag = 0
	// SystemUTC is Coordinated Universal Time, TAI with leap seconds
	// applied.
	SystemUTC SystemTag = 2
	// SystemSummer is a summer-time overlay over UTC.
	SystemSummer SystemTag = 3
	// SystemOffset tags a raw calendar-record offset, not a civil time.
	SystemOffset SystemTag = 4
	// SystemRebased tags the output of a rebased zone; it always carries
	// the TAINTED bit.
	SystemRebased SystemTag = tainted | 6
	// SystemInvalid is the zero value's complement, used as a sentinel
	// for "no system"/a failed parse.
	SystemInvalid SystemTag = -1
)

// utcPlusBase and utcPlusBias encode a fixed-offset zone's minute count m
// (m in [-720, 1440]) into a SystemTag, per spec §6: UTCplus = 0x1000 +
// (m + 720).
const (
	utcPlusBase = 0x1000
	utcPlusBias = 720
)

// SystemUTCPlus returns the SystemTag for a fixed offset of m minutes from
// UTC. m must be in [-720, 1440]; callers should validate with
// NewFixedOffsetZone rather than constructing this tag directly from
// untrusted input.
func SystemUTCPlus(m int) SystemTag {
	return SystemTag(utcPlusBase + m + utcPlusBias)
}

// Minutes returns the minute offset encoded by a SystemUTCPlus(m) tag and
// true, or (0, false) if tag does not carry that shape.
func (tag SystemTag) Minutes() (int, bool) {
	if tag&tainted != 0 {
		return 0, false
	}
	v := int(tag)
	if v < utcPlusBase {
		return 0, false
	}
	return v - utcPlusBase - utcPlusBias, true
}

// Tainted reports whether tag carries the orthogonal TAINTED bit, i.e.
// whether records in this system are non-canonical (rebased).
// SystemInvalid (-1), despite having every bit set including TAINTED's,
// is never considered tainted: it names the absence of a system, not a
// non-canonical reading of one.
func (tag SystemTag) Tainted() bool {
	if tag == SystemInvalid {
		return false
	}
	return tag&tainted != 0
}

// String names tag the way the reference engine's describe-system helper
// does, but value-returning rather than into a shared static buffer (spec
// §9 design note).
func (tag SystemTag) String() string {
	switch {
	case tag == SystemTAI:
		return "TAI"
	case tag == SystemUTC:
		return "UTC"
	case tag == SystemSummer:
		return "BST"
	case tag == SystemOffset:
		return "OFF"
	case tag == SystemRebased:
		return "REBASED"
	case tag == SystemInvalid:
		return "UNK"
	default:
		if m, ok := tag.Minutes(); ok {
			sign := '+'
			v := m
			if v < 0 {
				sign = '-'
				v = -v
			}
			return fmt.Sprintf("UTC%c%02d%02d", sign, v/60, v%60)
		}
		return "UNK"
	}
}

// Calendar is a structured wall-clock reading: a (year, month, mday,
// hour, minute, second, ns) tuple tagged with the system it was read in
// and an optional flag set (spec §3).
//
// Month is stored 0-based (January = 0), but printed 1-based by the wire
// format
// (spec §6). Second may be 60 only immediately before a scheduled leap
// second.
//
// The numeric fields are wider than a normalised reading ever needs,
// because the field-wise primitive of spec §2 reuses this same struct to
// carry an *unnormalised delta* (e.g. "31 * 86400 s", spec example E5) in
// a single field before Zone.Op carries it. IsNormalized reports whether
// a given value is a genuine civil reading rather than such a delta.
type Calendar struct {
	Year   int64
	Month  int64
	MDay   int64
	Hour   int64
	Minute int64
	Second int64
	Nsec   int64
	System SystemTag
	Flags  FlagSet
}

// IsNormalized reports whether every field of c lies within the ranges
// spec §3 fixes for a genuine civil reading, and (year, month, mday)
// names a real Gregorian day. second=60 is only accepted when allowLeap
// is true (callers pass the zone's own leap-second recognition here,
// since only a UTC-derived zone can judge that).
func (c Calendar) IsNormalized(allowLeap bool) bool {
	if c.Year < math.MinInt32 || c.Year > math.MaxInt32 {
		return false
	}
	if c.Month < 0 || c.Month > 11 {
		return false
	}
	if !IsValidDate(c.Year, c.Month, c.MDay) {
		return false
	}
	if c.Hour < 0 || c.Hour > 23 {
		return false
	}
	if c.Minute < 0 || c.Minute > 59 {
		return false
	}
	maxSecond := int64(59)
	if allowLeap {
		maxSecond = 60
	}
	if c.Second < 0 || c.Second > maxSecond {
		return false
	}
	if c.Nsec < 0 || c.Nsec >= nsPerSec {
		return false
	}
	return true
}

// Compare orders two Calendar records lexicographically over every field
// including System, per spec §3: comparison across systems is defined but
// not meaningful, and callers must lower both to a common system before
// relying on the ordering.
func (c Calendar) Compare(o Calendar) int {
	switch {
	case c.Year != o.Year:
		return sign64(c.Year - o.Year)
	case c.Month != o.Month:
		return sign64(c.Month - o.Month)
	case c.MDay != o.MDay:
		return sign64(c.MDay - o.MDay)
	case c.Hour != o.Hour:
		return sign64(c.Hour - o.Hour)
	case c.Minute != o.Minute:
		return sign64(c.Minute - o.Minute)
	case c.Second != o.Second:
		return sign64(c.Second - o.Second)
	case c.Nsec != o.Nsec:
		return sign64(c.Nsec - o.Nsec)
	case c.System != o.System:
		return sign64(int64(c.System) - int64(o.System))
	default:
		return 0
	}
}

// Eq reports whether c and o are field-wise identical.
func (c Calendar) Eq(o Calendar) bool {
	return c.Compare(o) == 0
}

func sign64(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// WithSystem returns a copy of c retagged to sys, with all other fields
// unchanged.
func (c Calendar) WithSystem(sys SystemTag) Calendar {
	c.System = sys
	return c
}

// fieldRank orders the calendar fields from most to least significant,
// for the knockdown rule of spec §4.2 step 5 ("zero those fields of adj
// below the most-significant non-zero field of delta").
type fieldRank int

const (
	rankYear fieldRank = iota
	rankMonth
	rankMDay
	rankHour
	rankMinute
	rankSecond
	rankNsec
	rankNone
)

// topRank returns the most-significant field of delta that is non-zero,
// or rankNone if delta is the zero offset.
func topRank(delta Calendar) fieldRank {
	switch {
	case delta.Year != 0:
		return rankYear
	case delta.Month != 0:
		return rankMonth
	case delta.MDay != 0:
		return rankMDay
	case delta.Hour != 0:
		return rankHour
	case delta.Minute != 0:
		return rankMinute
	case delta.Second != 0:
		return rankSecond
	case delta.Nsec != 0:
		return rankNsec
	default:
		return rankNone
	}
}

// knockdown zeroes every field of adj strictly less significant than top,
// per spec §4.2 step 5.
func knockdown(adj Calendar, top fieldRank) Calendar {
	return zeroBelow(adj, top)
}

// zeroBelow zeroes every field strictly less significant than top.
func zeroBelow(adj Calendar, top fieldRank) Calendar {
	if top < rankMonth {
		adj.Month = 0
	}
	if top < rankMDay {
		adj.MDay = 0
	}
	if top < rankHour {
		adj.Hour = 0
	}
	if top < rankMinute {
		adj.Minute = 0
	}
	if top < rankSecond {
		adj.Second = 0
	}
	if top < rankNsec {
		adj.Nsec = 0
	}
	return adj
}
