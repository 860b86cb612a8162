package zonetime

// RebasedZone applies a constant calendar-record offset over an arbitrary
// base zone, and tags every record it produces TAINTED (spec §4.5): the
// offset was derived from an external observation (e.g. a machine clock's
// drift against a human-trusted reading), not from this package's own
// calendar algebra, so results in this system carry that provenance.
type RebasedZone struct {
	base   Zone
	offset Calendar
}

var _ Zone = (*RebasedZone)(nil)

// NewRebasedZone returns a rebased zone over base with the given constant
// offset. offset must be tagged SystemOffset; InvalidArgument otherwise.
func NewRebasedZone(base Zone, offset Calendar) (*RebasedZone, error) {
	if base == nil {
		return nil, newError("NewRebasedZone", InvalidArgument, Calendar{})
	}
	if offset.System != SystemOffset {
		return nil, newError("NewRebasedZone", InvalidArgument, offset)
	}
	return &RebasedZone{base: base, offset: offset}, nil
}

// RebasedFromTAI constructs a rebased zone whose base is the deepest
// common ancestor of humanZone and machineTime.System (spec §4.5):
// humanTime, a reading trusted to be correct, is lowered to
// machineTime's system; the elapsed difference between that lowered
// reading and machineTime becomes the rebased zone's AS_IF_NS offset.
func RebasedFromTAI(humanZone Zone, humanTime, machineTime Calendar) (*RebasedZone, error) {
	if humanZone == nil {
		return nil, newError("RebasedFromTAI", InvalidArgument, Calendar{})
	}
	c1, err := LowerTo(humanZone, humanTime, machineTime.System)
	if err != nil {
		return nil, wrapError("RebasedFromTAI", InitFailed, err)
	}

	lower, err := ancestorZone(humanZone, machineTime.System)
	if err != nil {
		return nil, wrapError("RebasedFromTAI", InitFailed, err)
	}

	iv, err := lower.Diff(c1, machineTime)
	if err != nil {
		return nil, wrapError("RebasedFromTAI", InitFailed, err)
	}

	offset := Calendar{
		Second: iv.Sec,
		Nsec:   int64(iv.Nsec),
		System: SystemOffset,
		Flags:  FlagSet(0).With(FlagAsIfNs),
	}
	return NewRebasedZone(lower, offset)
}

// ancestorZone walks down z's chain to find the zone tagged sys.
func ancestorZone(z Zone, sys SystemTag) (Zone, error) {
	for cur := z; cur != nil; cur = cur.Lower() {
		if cur.System() == sys {
			return cur, nil
		}
	}
	return nil, newError("RebasedFromTAI", CannotConvert, Calendar{})
}

// Kind returns KindRebased.
func (z *RebasedZone) Kind() Kind { return KindRebased }

// System returns SystemRebased.
func (z *RebasedZone) System() SystemTag { return SystemRebased }

// Lower returns the base zone.
func (z *RebasedZone) Lower() Zone { return z.base }

// Epoch delegates to the base zone, retagged TAINTED.
func (z *RebasedZone) Epoch() Calendar {
	return z.base.Epoch().WithSystem(SystemRebased)
}

// Offset returns the stored calendar offset, unchanged (spec §4.5).
func (z *RebasedZone) Offset(_ Calendar) (Calendar, error) {
	return z.offset, nil
}

// Op subtracts the stored offset (entering base), performs delta in base
// via COMPLEX_ADD, then re-adds the offset (spec §4.5), via the shared
// sandwich driver. ZONE_ADD, used internally by Raise/Lower to reapply or
// undo z's own Offset, goes through zoneAddViaOffset's base-zone
// enter/exit dance instead of a bare field shift, for the same reason as
// FixedOffsetZone.Op.
func (z *RebasedZone) Op(src, delta Calendar, mode Mode) (Calendar, error) {
	if err := requireSystem("RebasedZone.Op", src, SystemRebased); err != nil {
		return Calendar{}, err
	}
	if mode == ZoneAdd {
		offset, err := z.Offset(src)
		if err != nil {
			return Calendar{}, err
		}
		dest, err := zoneAddViaOffset(z.base, src.WithSystem(z.base.System()), offset, delta)
		if err != nil {
			return Calendar{}, err
		}
		return dest.WithSystem(SystemRebased), nil
	}
	return opViaSandwich(z, src, delta, mode)
}

// Aux delegates to the base zone.
func (z *RebasedZone) Aux(c Calendar) (wday, yday int, isDST bool, err error) {
	if err := requireSystem("RebasedZone.Aux", c, SystemRebased); err != nil {
		return 0, 0, false, err
	}
	lowered, err := Lower(z, c)
	if err != nil {
		return 0, 0, false, err
	}
	return z.base.Aux(lowered)
}

// Diff lowers both records to base and recurses (spec §4.6 default rule).
func (z *RebasedZone) Diff(a, b Calendar) (Interval, error) {
	return diffViaLower(z, a, b)
}
