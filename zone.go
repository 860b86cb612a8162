package zonetime

// Mode selects the calendar operation a Zone.Op performs (spec §4).
type Mode int

const (
	// SimpleAdd adds delta to src field-wise and normalises, without the
	// knockdown correction of COMPLEX_ADD.
	SimpleAdd Mode = iota
	// Subtract subtracts delta from src field-wise and normalises.
	Subtract
	// ComplexAdd adds delta to src, then corrects for any zone-offset
	// discontinuity (leap second, summer-time transition) crossed by the
	// add, applying the knockdown rule unless delta carries FlagAsIfNs.
	ComplexAdd
	// ZoneAdd is used internally by Raise/Lower to apply a zone's Offset.
	// It skips the before/after offset comparison of the other modes; a
	// UTCZone still surfaces a literal second=60 reading, and the
	// sandwich zones carry such a reading across their own offset.
	ZoneAdd
)

// Kind identifies which of the five closed zone kinds a Zone value is, for
// the tagged-dispatch pattern spec §9 calls for in place of a vtable.
type Kind int

const (
	// KindTAI is the leaf zone.
	KindTAI Kind = iota
	// KindUTC applies the leap-second table over TAI.
	KindUTC
	// KindFixedOffset applies a constant hour:minute offset over UTC.
	KindFixedOffset
	// KindSummer applies the last-Sunday-of-March/October overlay over
	// UTC.
	KindSummer
	// KindRebased applies a constant calendar offset over an arbitrary
	// base zone.
	KindRebased
)

// Zone is one layer of the time-system chain described in the package
// doc. Every zone kind in this package (TAIZone, UTCZone, FixedOffsetZone,
// SummerZone, RebasedZone) implements this interface; the set of kinds is
// closed (spec §9), so callers needing to special-case a kind should
// switch on Zone.Kind rather than adding new implementations.
type Zone interface {
	// Kind identifies the zone's concrete type for dispatch purposes.
	Kind() Kind
	// System returns the SystemTag this zone produces Calendar records
	// in.
	System() SystemTag
	// Lower returns the zone directly below this one in the chain, or
	// nil if this zone is the leaf (TAI).
	Lower() Zone
	// Offset returns the calendar-record offset to add to a record in
	// Lower() to obtain the corresponding record in this zone. src's
	// System must be either this zone's or Lower()'s system tag.
	Offset(src Calendar) (Calendar, error)
	// Op performs a calendar operation in this zone. src's System must
	// match this zone's system tag (ZoneAdd is the exception: it is only
	// ever invoked by Lower/Raise on a src already retagged to this
	// zone's system).
	Op(src, delta Calendar, mode Mode) (Calendar, error)
	// Aux returns the day of week, zero-based day of year, and
	// summer-time flag for a Calendar record already in this zone's
	// system.
	Aux(c Calendar) (wday, yday int, isDST bool, err error)
	// Epoch returns this zone's anchor date.
	Epoch() Calendar
	// Diff returns the elapsed interval from a to b, both Calendar
	// records in this zone's system.
	Diff(a, b Calendar) (Interval, error)
}

// requireSystem returns a NotMySystem error unless c.System equals want.
func requireSystem(op string, c Calendar, want SystemTag) error {
	if c.System != want {
		return newError(op, NotMySystem, c)
	}
	return nil
}
