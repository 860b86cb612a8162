package zonetime

// FixedOffsetZone adds a constant (hour, minute) offset to UTC (spec
// §4.3). Its system tag encodes the offset in minutes via
// SystemUTCPlus.
type FixedOffsetZone struct {
	lower   *UTCZone
	minutes int
	system  SystemTag
}

var _ Zone = (*FixedOffsetZone)(nil)

// NewFixedOffsetZone returns a zone offset minutes minutes from the given
// UTC zone. minutes must be in [-720, 1440] (spec §6's UTCplus encoding
// range); InvalidArgument otherwise.
func NewFixedOffsetZone(lower *UTCZone, minutes int) (*FixedOffsetZone, error) {
	if lower == nil {
		return nil, newError("NewFixedOffsetZone", InvalidArgument, Calendar{})
	}
	if minutes < -720 || minutes > 1440 {
		return nil, newError("NewFixedOffsetZone", InvalidArgument, Calendar{})
	}
	return &FixedOffsetZone{lower: lower, minutes: minutes, system: SystemUTCPlus(minutes)}, nil
}

// Kind returns KindFixedOffset.
func (z *FixedOffsetZone) Kind() Kind { return KindFixedOffset }

// System returns this zone's SystemUTCPlus tag.
func (z *FixedOffsetZone) System() SystemTag { return z.system }

// Lower returns the underlying UTC zone.
func (z *FixedOffsetZone) Lower() Zone { return z.lower }

// Epoch delegates to UTC (spec §4.3).
func (z *FixedOffsetZone) Epoch() Calendar {
	return z.lower.Epoch().WithSystem(z.system)
}

// Offset returns the constant (hour, minute) pair this zone adds to UTC,
// tagged SystemOffset and FlagAsIfNs (it is a fixed shift, never a
// field-wise civil delta subject to knockdown).
func (z *FixedOffsetZone) Offset(_ Calendar) (Calendar, error) {
	return Calendar{
		Hour:   int64(z.minutes) / 60,
		Minute: int64(z.minutes) % 60,
		System: SystemOffset,
		Flags:  FlagSet(0).With(FlagAsIfNs),
	}, nil
}

// Op subtracts the fixed offset (entering UTC), performs delta in UTC,
// then re-adds the offset (spec §4.3), via the shared sandwich driver.
// ZONE_ADD, used internally by Raise/Lower to reapply or undo z's own
// Offset, is handled by zoneAddViaOffset's own UTC enter/exit dance
// instead: routing it through opViaSandwich's generic Lower/Raise would
// recurse into this same Op forever, and a bare field-wise shift would
// silently carry away a literal second=60 reading instead of preserving
// it (the bug this rewrite of Op fixes).
func (z *FixedOffsetZone) Op(src, delta Calendar, mode Mode) (Calendar, error) {
	if err := requireSystem("FixedOffsetZone.Op", src, z.system); err != nil {
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
		return dest.WithSystem(z.system), nil
	}
	return opViaSandwich(z, src, delta, mode)
}

// Aux delegates to UTC (spec §4.3).
func (z *FixedOffsetZone) Aux(c Calendar) (wday, yday int, isDST bool, err error) {
	if err := requireSystem("FixedOffsetZone.Aux", c, z.system); err != nil {
		return 0, 0, false, err
	}
	lowered, err := Lower(z, c)
	if err != nil {
		return 0, 0, false, err
	}
	return z.lower.Aux(lowered)
}

// Diff lowers both records to UTC and recurses (spec §4.6 default rule).
func (z *FixedOffsetZone) Diff(a, b Calendar) (Interval, error) {
	return diffViaLower(z, a, b)
}

// Minutes returns the offset this zone adds to UTC, in minutes.
func (z *FixedOffsetZone) Minutes() int {
	return z.minutes
}
