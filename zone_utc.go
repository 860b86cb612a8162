package zonetime

import (
	"darvaza.org/slog"
	"darvaza.org/slog/handlers/discard"

	"github.com/zonetime/zonetime/internal/leapsecs"
)

// UTCZone translates between TAI and Coordinated Universal Time by
// consulting a leap-second table (spec §4.2). Its lower zone is always a
// TAIZone.
type UTCZone struct {
	lower  *TAIZone
	table  *leapsecs.Table
	logger slog.Logger
}

var _ Zone = (*UTCZone)(nil)

// UTCZoneOption configures a UTCZone at construction time.
type UTCZoneOption func(*UTCZone)

// WithLogger sets the slog.Logger a UTCZone uses for leap-second table
// diagnostics. The default is darvaza.org/slog/handlers/discard, matching
// the rest of this package's injectable-logger convention.
func WithLogger(logger slog.Logger) UTCZoneOption {
	return func(z *UTCZone) {
		z.logger = logger
	}
}

// WithLeapSecondTable overrides the default reference leap-second table
// (spec §6) with a caller-supplied one, for tests or alternate snapshots.
func WithLeapSecondTable(table *leapsecs.Table) UTCZoneOption {
	return func(z *UTCZone) {
		z.table = table
	}
}

// NewUTCZone returns a UTC zone over the TAI leaf, using the reference
// leap-second table of spec §6 unless overridden by WithLeapSecondTable.
func NewUTCZone(opts ...UTCZoneOption) *UTCZone {
	z := &UTCZone{lower: NewTAIZone(), logger: discard.New()}
	for _, opt := range opts {
		opt(z)
	}
	if z.table == nil {
		z.table = leapsecs.Default(z.logger)
	}
	return z
}

// Kind returns KindUTC.
func (z *UTCZone) Kind() Kind { return KindUTC }

// System returns SystemUTC.
func (z *UTCZone) System() SystemTag { return SystemUTC }

// Lower returns the TAI leaf.
func (z *UTCZone) Lower() Zone { return z.lower }

// Epoch returns 1972-01-01 00:00:00 UTC (spec §4.2).
func (z *UTCZone) Epoch() Calendar {
	return Calendar{Year: 1972, Month: January, MDay: 1, System: SystemUTC}
}

// Offset returns the UTC-TAI offset active for src, tagged SystemOffset
// (spec §4.2). src may be tagged SystemTAI or SystemUTC.
//
// It walks the leap-second table in date order. For a TAI src, each row is
// considered by tentatively shifting src by that row's own offset (fresh
// from src, not cumulative) and comparing the result against the row's own
// transition instant (rowWhen); for a UTC src the comparison uses src
// directly. A date before the table's first row resolves to a zero
// offset, not an error: the table has no claim to completeness before its
// own start.
//
// Landing exactly on a row's transition instant - whether via an ordinary
// reading or a literal second=60 reading - resolves to the *previous*
// row's offset, because the transition instant is still the last tick the
// old regime governs; the new offset only takes hold strictly after it.
func (z *UTCZone) Offset(src Calendar) (Calendar, error) {
	if src.System != SystemTAI && src.System != SystemUTC {
		return Calendar{}, newError("UTCZone.Offset", NotMySystem, src)
	}
	rows := z.table.Rows()
	if len(rows) == 0 {
		return Calendar{}, newError("UTCZone.Offset", InternalError, src)
	}

	var iv leapsecs.Offset
	for _, row := range rows {
		utcSrc := src
		if src.System == SystemTAI {
			shifted, err := fieldOp(src, offsetCalendar(row), ZoneAdd)
			if err != nil {
				return Calendar{}, err
			}
			utcSrc = shifted
		}

		toCmp := utcSrc
		toCmp.Nsec = 0
		currentLeap := false
		if toCmp.Second == 60 {
			currentLeap = true
			toCmp.Second = 59
		}

		cmp := cmpCivil(toCmp, rowWhen(row))
		if cmp < 0 {
			// Strictly before this row's transition: the previous row's
			// offset (or zero, before the table's first row) applies, and
			// no later row can match either, so the search ends here.
			return Calendar{Second: iv.Sec, Nsec: int64(iv.Nsec), System: SystemOffset}, nil
		}
		if cmp == 0 {
			// A leap-second row's transition instant, landed on exactly,
			// still belongs to the old offset unless utcSrc actually has a
			// fractional second past it. Either way, this row is the last
			// one that can possibly match, so the search ends here too.
			isLeapSecond := !currentLeap && row.LeapSecond
			if !isLeapSecond && utcSrc.Nsec != 0 {
				iv = row.Offset
			}
			return Calendar{Second: iv.Sec, Nsec: int64(iv.Nsec), System: SystemOffset}, nil
		}
		iv = row.Offset
	}
	return Calendar{Second: iv.Sec, Nsec: int64(iv.Nsec), System: SystemOffset}, nil
}

// rowWhen returns the literal transition instant a leap-second table row
// represents: for the two pre-1972 sync rows, the row's own nominal
// midnight; for a later row, 23:59:59 the day before - the last ordinary
// tick of the regime that row's offset replaces, since the row's own date
// names the first day the *new* offset governs.
func rowWhen(row leapsecs.Row) Calendar {
	if !row.LeapSecond {
		return Calendar{Year: row.Year, Month: row.Month, MDay: row.Day}
	}
	y, m, d := stepDayBackward(row.Year, row.Month, row.Day)
	return Calendar{Year: y, Month: m, MDay: d, Hour: 23, Minute: 59, Second: 59}
}

// cmpCivil compares two Calendars by date and time fields only, ignoring
// System and Flags: callers here compare a TAI- or UTC-tagged reading
// against an untagged rowWhen instant, which Calendar.Compare's
// System-aware ordering would otherwise corrupt.
func cmpCivil(a, b Calendar) int {
	strip := func(c Calendar) Calendar {
		c.System = 0
		c.Flags = 0
		return c
	}
	return strip(a).Compare(strip(b))
}

// offsetCalendar renders a leapsecs.Row's offset as a Calendar-typed
// offset, tagged SystemOffset and FlagAsIfNs (it is never a field-wise
// civil delta, so it must never trigger knockdown on its own).
func offsetCalendar(row leapsecs.Row) Calendar {
	return Calendar{
		Second: row.Offset.Sec,
		Nsec:   int64(row.Offset.Nsec),
		System: SystemOffset,
		Flags:  FlagSet(0).With(FlagAsIfNs),
	}
}

// negCalendarOffset negates every numeric field of a Calendar-typed
// offset, preserving its System and Flags.
func negCalendarOffset(c Calendar) Calendar {
	c.Year, c.Month, c.MDay = -c.Year, -c.Month, -c.MDay
	c.Hour, c.Minute, c.Second, c.Nsec = -c.Hour, -c.Minute, -c.Second, -c.Nsec
	return c
}

// Op implements the sandwich algorithm of spec §4.2: tentatively apply
// delta field-wise, then compare the UTC-TAI offset before and after the
// op. If the offset did not change, the field-wise result stands
// unmodified. If it did, the difference (knocked down to the rank of
// delta's most-significant field, for COMPLEX_ADD) is reapplied, and the
// result is checked against the leap-second table to see whether it lands
// on a literal leap-second reading.
//
// ZONE_ADD (used internally by Raise/Lower to reapply or undo this zone's
// own Offset) skips the before/after comparison entirely - there is no
// "before" to compare against - but still runs the leap-second check,
// one tick earlier than the field-wise result, since ZONE_ADD is exactly
// how a raise lands on a literal leap-second reading in the first place.
func (z *UTCZone) Op(src, delta Calendar, mode Mode) (Calendar, error) {
	if err := requireSystem("UTCZone.Op", src, SystemUTC); err != nil {
		return Calendar{}, err
	}

	if mode == ZoneAdd {
		tmp, err := fieldOp(src, delta, mode)
		if err != nil {
			return Calendar{}, err
		}
		return z.restoreLeap(tmp, true)
	}

	complex := mode == ComplexAdd
	fieldMode := mode
	if complex {
		fieldMode = SimpleAdd
	}

	srcDiff, err := z.Offset(src)
	if err != nil {
		return Calendar{}, err
	}
	dstValue, err := fieldOp(src, delta, fieldMode)
	if err != nil {
		return Calendar{}, err
	}
	dstDiff, err := z.Offset(dstValue)
	if err != nil {
		return Calendar{}, err
	}
	if srcDiff.Eq(dstDiff) {
		return dstValue, nil
	}

	adj := Calendar{
		Second: dstDiff.Second - srcDiff.Second,
		Nsec:   dstDiff.Nsec - srcDiff.Nsec,
		System: SystemOffset,
		Flags:  FlagSet(0).With(FlagAsIfNs),
	}
	doLS := true
	if complex && !delta.Flags.Has(FlagAsIfNs) {
		top := topRank(delta)
		adj = knockdown(adj, top)
		// Knockdown clearing adj's Second field (top outranks Second) means
		// this op's discontinuity correction has already been folded
		// entirely into the higher fields; there is nothing left for the
		// leap-second search below to usefully find.
		doLS = top >= rankSecond
	}

	tmp, err := fieldOp(dstValue, adj, fieldMode)
	if err != nil {
		return Calendar{}, err
	}
	if !doLS {
		return tmp, nil
	}
	return z.restoreLeap(tmp, false)
}

// restoreLeap searches the leap-second table for a row whose transition
// instant tmp (or, for zoneAdd, one tick before tmp) lands on exactly, and
// if so promotes Second by one to surface the literal leap-second
// reading (spec §4.2 step 6). If no row matches, tmp is returned
// unchanged.
func (z *UTCZone) restoreLeap(tmp Calendar, zoneAdd bool) (Calendar, error) {
	shift := Calendar{System: SystemOffset, Flags: FlagSet(0).With(FlagAsIfNs)}
	if zoneAdd {
		shift.Second = -1
	}
	r, err := fieldOp(tmp, shift, SimpleAdd)
	if err != nil {
		return Calendar{}, err
	}
	savedNsec := r.Nsec
	r.Nsec = 0

	for _, row := range z.table.Rows() {
		if !row.LeapSecond {
			continue
		}
		switch cmpCivil(r, rowWhen(row)) {
		case 0:
			r.Second++
			r.Nsec = savedNsec
			return r, nil
		case -1:
			return tmp, nil
		}
	}
	return tmp, nil
}

// Aux delegates to TAI after lowering, per spec §4.2.
func (z *UTCZone) Aux(c Calendar) (wday, yday int, isDST bool, err error) {
	if err := requireSystem("UTCZone.Aux", c, SystemUTC); err != nil {
		return 0, 0, false, err
	}
	tai, err := Lower(z, c)
	if err != nil {
		return 0, 0, false, err
	}
	return z.lower.Aux(tai)
}

// Diff lowers both records to TAI and delegates (spec §4.2: UTC has no
// additional notion of elapsed time beyond TAI's, once leap seconds are
// already folded into each reading's own offset).
func (z *UTCZone) Diff(a, b Calendar) (Interval, error) {
	if err := requireSystem("UTCZone.Diff", a, SystemUTC); err != nil {
		return Interval{}, err
	}
	if err := requireSystem("UTCZone.Diff", b, SystemUTC); err != nil {
		return Interval{}, err
	}
	aTAI, err := Lower(z, a)
	if err != nil {
		return Interval{}, err
	}
	bTAI, err := Lower(z, b)
	if err != nil {
		return Interval{}, err
	}
	return z.lower.Diff(aTAI, bTAI)
}
