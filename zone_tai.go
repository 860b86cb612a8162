package zonetime

// TAIZone is the leaf of the zone chain: International Atomic Time on the
// proleptic Gregorian calendar (spec §4.1). It has no lower zone and no
// discontinuities - Offset is always the zero Calendar.
type TAIZone struct{}

// NewTAIZone returns the TAI leaf zone. TAIZone has no construction
// parameters and no failure mode; it is provided as a function, rather
// than a package-level value, for symmetry with the other zone
// constructors.
func NewTAIZone() *TAIZone {
	return &TAIZone{}
}

var _ Zone = (*TAIZone)(nil)

// Kind returns KindTAI.
func (z *TAIZone) Kind() Kind { return KindTAI }

// System returns SystemTAI.
func (z *TAIZone) System() SystemTag { return SystemTAI }

// Lower returns nil: TAI is the leaf of the chain.
func (z *TAIZone) Lower() Zone { return nil }

// Offset always returns the zero Calendar: TAI has no discontinuities to
// correct for.
func (z *TAIZone) Offset(src Calendar) (Calendar, error) {
	if err := requireSystem("TAIZone.Offset", src, SystemTAI); err != nil {
		return Calendar{}, err
	}
	return Calendar{System: SystemOffset}, nil
}

// Epoch returns 1958-01-01 00:00:00 TAI (spec §4.1).
func (z *TAIZone) Epoch() Calendar {
	return Calendar{Year: 1958, Month: January, MDay: 1, System: SystemTAI}
}

// Op performs field-wise add/subtract on src and delta, then normalises
// (spec §4.1): carries propagate from ns -> second -> minute -> hour ->
// mday, mday overflow/underflow is resolved by stepping through months
// (honouring leap February), and month overflow is resolved by stepping
// years. Subtract negates delta; TAI has no zone discontinuity, so
// SimpleAdd, ComplexAdd and ZoneAdd behave identically here, and their
// distinction only matters one level up, in UTCZone.Op.
func (z *TAIZone) Op(src, delta Calendar, mode Mode) (Calendar, error) {
	if err := requireSystem("TAIZone.Op", src, SystemTAI); err != nil {
		return Calendar{}, err
	}
	if !delta.Flags.Has(FlagAsIfNs) && delta.System != SystemOffset && !isZeroFields(delta) {
		// delta need not carry SystemOffset when it is a pure field-wise
		// primitive (e.g. constructed literally by a caller), but guard
		// against an accidental Calendar-typed civil reading being passed
		// where an offset was meant.
		if delta.System != SystemTAI && delta.System != 0 {
			return Calendar{}, newError("TAIZone.Op", BadSystem, delta)
		}
	}

	sign := int64(1)
	if mode == Subtract {
		sign = -1
	}

	raw := Calendar{
		Year:   src.Year + sign*delta.Year,
		Month:  src.Month + sign*delta.Month,
		MDay:   src.MDay + sign*delta.MDay,
		Hour:   src.Hour + sign*delta.Hour,
		Minute: src.Minute + sign*delta.Minute,
		Second: src.Second + sign*delta.Second,
		Nsec:   src.Nsec + sign*delta.Nsec,
		System: SystemTAI,
	}
	return normalizeTAI(raw)
}

// isZeroFields reports whether every numeric field of c is zero.
func isZeroFields(c Calendar) bool {
	return c.Year == 0 && c.Month == 0 && c.MDay == 0 && c.Hour == 0 &&
		c.Minute == 0 && c.Second == 0 && c.Nsec == 0
}

// normalizeTAI carries an unnormalised field-wise sum into a valid civil
// reading, per spec §4.1 Op. Normalisation is idempotent and total for
// representable records (spec §8 property 2): a value that is already
// normalised passes through unchanged.
func normalizeTAI(c Calendar) (Calendar, error) {
	// ns -> second
	if c.Nsec >= nsPerSec || c.Nsec < 0 {
		carry := floorDiv(c.Nsec, nsPerSec)
		c.Nsec -= carry * nsPerSec
		c.Second += carry
	}
	// second -> minute. TAI seconds never legitimately read 60; any such
	// value here is carry overflow, not a leap second (that is a UTC-zone
	// concept).
	if c.Second >= 60 || c.Second < 0 {
		carry := floorDiv(c.Second, 60)
		c.Second -= carry * 60
		c.Minute += carry
	}
	// minute -> hour
	if c.Minute >= 60 || c.Minute < 0 {
		carry := floorDiv(c.Minute, 60)
		c.Minute -= carry * 60
		c.Hour += carry
	}
	// hour -> mday
	if c.Hour >= 24 || c.Hour < 0 {
		carry := floorDiv(c.Hour, 24)
		c.Hour -= carry * 24
		c.MDay += carry
	}
	// month -> year, so DaysInMonth below always sees a valid month
	c.Year, c.Month = normalizeMonth(c.Year, c.Month)
	// mday <-> month/year
	c.Year, c.Month, c.MDay = normalizeDate(c.Year, c.Month, c.MDay)

	if c.Year < minYear || c.Year > maxYear {
		return Calendar{}, newError("TAIZone.Op", InvalidArgument, c)
	}
	if isJulianGregorianCutover(c.Year, c.Month, c.MDay) {
		return Calendar{}, newError("TAIZone.Op", UndefinedDate, c)
	}
	return c, nil
}

const (
	minYear int64 = -(1 << 31)
	maxYear int64 = (1 << 31) - 1
)

// isJulianGregorianCutover reports whether (year, month, mday) falls
// inside the historical gap between the last day of the Julian calendar
// (1582-10-04, or a given jurisdiction's own later cutover, e.g.
// 1752-09-02 in Great Britain) and the first day of the Gregorian
// calendar. This package only ever models the pure Gregorian proleptic
// calendar for the single, fixed 1582 cutover (spec §1 Non-goals): dates
// from 1582-10-05 through 1582-10-14 inclusive never occurred in the
// historical calendar and are rejected as UndefinedDate.
func isJulianGregorianCutover(year, month, mday int64) bool {
	return year == 1582 && month == October && mday >= 5 && mday <= 14
}

// Aux returns the day of week, zero-based day of year, and summer-time
// flag (always false for TAI) for c (spec §4.1).
func (z *TAIZone) Aux(c Calendar) (wday, yday int, isDST bool, err error) {
	if err := requireSystem("TAIZone.Aux", c, SystemTAI); err != nil {
		return 0, 0, false, err
	}
	wday = Weekday(c.Year, c.Month, c.MDay)
	yday = YDay(c.Year, c.Month, c.MDay)
	return wday, yday, false, nil
}

// Diff returns the elapsed interval from a to b, both TAI readings, by
// stepping one day at a time between their civil dates (spec §4.1: an
// acceptable O(days) algorithm given the year-range cap) and then adding
// the field-wise difference in hour, minute, second and ns.
func (z *TAIZone) Diff(a, b Calendar) (Interval, error) {
	if err := requireSystem("TAIZone.Diff", a, SystemTAI); err != nil {
		return Interval{}, err
	}
	if err := requireSystem("TAIZone.Diff", b, SystemTAI); err != nil {
		return Interval{}, err
	}

	neg := false
	before, after := a, b
	if before.Compare(after) > 0 {
		before, after = after, before
		neg = true
	}

	var days int64
	y, m, d := before.Year, before.Month, before.MDay
	for y != after.Year || m != after.Month || d != after.MDay {
		y, m, d = stepDayForward(y, m, d)
		days++
	}

	iv := NewInterval(days*Day, 0)
	iv = iv.Add(NewInterval(int64(after.Hour-before.Hour)*Hour, 0))
	iv = iv.Add(NewInterval(int64(after.Minute-before.Minute)*Minute, 0))
	iv = iv.Add(NewInterval(after.Second-before.Second, after.Nsec-before.Nsec))

	if neg {
		iv = iv.Neg()
	}
	return iv, nil
}

// Second/Minute/Hour/Day are the whole-second durations of the named
// units, for use when building Interval and Calendar deltas.
const (
	Second = 1
	Minute = 60 * Second
	Hour   = 60 * Minute
	Day    = 24 * Hour
)
