package zonetime

// SummerZone overlays a piecewise +1 hour summer-time correction on UTC,
// active from 01:00 UTC on the last Sunday of March until 01:00 UTC on
// the last Sunday of October (spec §4.4).
type SummerZone struct {
	lower *UTCZone
}

var _ Zone = (*SummerZone)(nil)

// NewSummerZone returns a summer-time zone over the given UTC zone.
func NewSummerZone(lower *UTCZone) (*SummerZone, error) {
	if lower == nil {
		return nil, newError("NewSummerZone", InvalidArgument, Calendar{})
	}
	return &SummerZone{lower: lower}, nil
}

// Kind returns KindSummer.
func (z *SummerZone) Kind() Kind { return KindSummer }

// System returns SystemSummer.
func (z *SummerZone) System() SystemTag { return SystemSummer }

// Lower returns the underlying UTC zone.
func (z *SummerZone) Lower() Zone { return z.lower }

// Epoch delegates to UTC (spec §4.4).
func (z *SummerZone) Epoch() Calendar {
	return z.lower.Epoch().WithSystem(SystemSummer)
}

// Offset returns zero if c's UTC reading falls outside summer time, or
// +1 hour if inside it (spec §4.4). c may be tagged SUMMER or UTC; the
// switch-hour checked against is 02:00 local for a SUMMER-tagged c and
// 01:00 UTC for a UTC-tagged one, per the spec's stated equivalence.
func (z *SummerZone) Offset(c Calendar) (Calendar, error) {
	switchHour := int64(1)
	if c.System == SystemSummer {
		switchHour = 2
	} else if c.System != SystemUTC {
		return Calendar{}, newError("SummerZone.Offset", NotMySystem, c)
	}

	active := isSummerActive(c, switchHour)
	o := Calendar{System: SystemOffset, Flags: FlagSet(0).With(FlagAsIfNs)}
	if active {
		o.Hour = 1
	}
	return o, nil
}

// isSummerActive implements the decision procedure of spec §4.4: a month
// outside [March, October] is never active; a month strictly between them
// always is; March and October are the two transition months, resolved by
// locating that month's last Sunday and comparing against it.
func isSummerActive(c Calendar, switchHour int64) bool {
	switch {
	case c.Month < March || c.Month > October:
		return false
	case c.Month > March && c.Month < October:
		return true
	}

	lastSunday := lastSundayOfMonth(c.Year, c.Month)
	switch {
	case c.MDay < lastSunday:
		// The transition Sunday is still ahead this month: March hasn't
		// yet switched in (inactive), October hasn't yet switched out
		// (still active).
		return c.Month == October
	case c.MDay > lastSunday:
		// Past the transition day: March has switched in, October out.
		return c.Month == March
	default:
		// On the transition day itself: active state flips at switchHour.
		if c.Hour < switchHour {
			return c.Month == October
		}
		return c.Month == March
	}
}

// lastSundayOfMonth returns the mday of the last Sunday in (year, month).
func lastSundayOfMonth(year, month int64) int64 {
	last := DaysInMonth(year, month)
	wd := Weekday(year, month, last)
	return last - int64(wd)
}

// Op subtracts the dynamic summer-time offset (entering UTC), performs
// delta in UTC, then re-adds it (spec §4.4), via the shared sandwich
// driver. ZONE_ADD, used internally by Raise/Lower to reapply or undo z's
// own Offset, goes through zoneAddViaOffset's UTC enter/exit dance
// instead of a bare field shift, for the same reason as
// FixedOffsetZone.Op.
func (z *SummerZone) Op(src, delta Calendar, mode Mode) (Calendar, error) {
	if err := requireSystem("SummerZone.Op", src, SystemSummer); err != nil {
		return Calendar{}, err
	}
	if mode == ZoneAdd {
		offset, err := z.Offset(src)
		if err != nil {
			return Calendar{}, err
		}
		dest, err := zoneAddViaOffset(z.lower, src.WithSystem(z.lower.System()), offset, delta)
		if err != nil {
			return Calendar{}, err
		}
		return dest.WithSystem(SystemSummer), nil
	}
	return opViaSandwich(z, src, delta, mode)
}

// Aux delegates to UTC (spec §4.4), additionally reporting isDST from
// this zone's own Offset.
func (z *SummerZone) Aux(c Calendar) (wday, yday int, isDST bool, err error) {
	if err := requireSystem("SummerZone.Aux", c, SystemSummer); err != nil {
		return 0, 0, false, err
	}
	o, err := z.Offset(c)
	if err != nil {
		return 0, 0, false, err
	}
	lowered, err := Lower(z, c)
	if err != nil {
		return 0, 0, false, err
	}
	wday, yday, _, err = z.lower.Aux(lowered)
	return wday, yday, o.Hour != 0, err
}

// Diff lowers both records to UTC and recurses (spec §4.6 default rule).
func (z *SummerZone) Diff(a, b Calendar) (Interval, error) {
	return diffViaLower(z, a, b)
}
