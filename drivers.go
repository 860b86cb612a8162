package zonetime

// fieldOp performs a pure field-wise add/subtract on src, preserving src's
// own system tag on the result rather than forcing SystemTAI (spec §4.2's
// "pretend op" primitive, used wherever a zone needs to shift a reading's
// raw fields without re-deriving the discontinuity correction of its own
// Op). It detours through TAIZone.Op, which always force-tags SystemTAI,
// then retags the result back to src's original system.
func fieldOp(src, delta Calendar, mode Mode) (Calendar, error) {
	sys := src.System
	result, err := (&TAIZone{}).Op(src.WithSystem(SystemTAI), delta, mode)
	if err != nil {
		return Calendar{}, err
	}
	return result.WithSystem(sys), nil
}

// Lower moves src, a Calendar tagged z's own system, one level down the
// chain: it negates z's own Offset and applies it via ZONE_ADD in
// z.Lower() (spec §4.6). If z is the leaf, src is returned unchanged.
func Lower(z Zone, src Calendar) (Calendar, error) {
	if src.System != z.System() {
		return Calendar{}, newError("Lower", NotMySystem, src)
	}
	lower := z.Lower()
	if lower == nil {
		return src, nil
	}
	o, err := z.Offset(src)
	if err != nil {
		return Calendar{}, err
	}
	shifted := src.WithSystem(lower.System())
	dest, err := lower.Op(shifted, negCalendarOffset(o), ZoneAdd)
	if err != nil {
		return Calendar{}, err
	}
	return dest.WithSystem(lower.System()), nil
}

// LowerTo repeatedly lowers src until its zone's system equals targetSys,
// or, if targetSys is SystemInvalid, until it reaches the leaf. It fails
// with CannotConvert if the chain reaches the leaf without ever matching
// a requested targetSys (spec §4.6).
func LowerTo(z Zone, src Calendar, targetSys SystemTag) (Calendar, error) {
	cur := z
	rec := src
	for {
		if targetSys != SystemInvalid && cur.System() == targetSys {
			return rec, nil
		}
		if cur.Lower() == nil {
			if targetSys == SystemInvalid {
				return rec, nil
			}
			return Calendar{}, newError("LowerTo", CannotConvert, src)
		}
		next, err := Lower(cur, rec)
		if err != nil {
			return Calendar{}, err
		}
		rec = next
		cur = cur.Lower()
	}
}

// Raise moves src up to z's system. If src is already tagged
// z.Lower()'s system, it retags src's face value to z's own system and
// applies z's Offset via z's own Op in ZONE_ADD mode (spec §4.6) - not
// z.Lower()'s Op, since a zone's own Op is what knows how to fold a
// reapplied offset back into its own notion of a discontinuity (a UTCZone
// reapplying its offset this way is what lets a raise land on a literal
// leap-second reading). Otherwise it first recurses on z.Lower() to bring
// src up to that level, then raises one level.
func Raise(z Zone, src Calendar) (Calendar, error) {
	lower := z.Lower()
	if lower == nil {
		if src.System != z.System() {
			return Calendar{}, newError("Raise", NotMySystem, src)
		}
		return src, nil
	}
	if src.System != lower.System() {
		raised, err := Raise(lower, src)
		if err != nil {
			return Calendar{}, err
		}
		src = raised
	}
	o, err := z.Offset(src)
	if err != nil {
		return Calendar{}, err
	}
	retagged := src.WithSystem(z.System())
	return z.Op(retagged, o, ZoneAdd)
}

// Bounce lowers src all the way to the leaf under downZone, then raises
// the leaf reading up to upZone's system (spec §4.6): a zone-to-zone
// conversion that does not require downZone and upZone to share a direct
// ancestor relationship, only a common TAI leaf.
func Bounce(downZone, upZone Zone, src Calendar) (Calendar, error) {
	leaf, err := LowerTo(downZone, src, SystemInvalid)
	if err != nil {
		return Calendar{}, err
	}
	return Raise(upZone, leaf)
}

// diffViaLower is the shared implementation of spec §4.6's default Diff
// rule ("lower both to lower(Z) and recurse"), for every non-leaf zone.
// The leaf (TAIZone) implements the base case directly instead.
func diffViaLower(z Zone, a, b Calendar) (Interval, error) {
	lower := z.Lower()
	if lower == nil {
		return Interval{}, newError("Diff", InternalError, a)
	}
	la, err := Lower(z, a)
	if err != nil {
		return Interval{}, err
	}
	lb, err := Lower(z, b)
	if err != nil {
		return Interval{}, err
	}
	return lower.Diff(la, lb)
}

// opViaSandwich is the shared implementation of the "subtract offset,
// operate in the base zone, re-add offset" pattern of spec §4.3/4.4/4.5:
// lower src into the base zone, perform delta there with the requested
// mode, then raise the result back up. A leap-second reading surfaced by
// the base zone's Op is preserved across the re-add because Raise applies
// z's offset via z's own Op in ZONE_ADD mode, which for these zones is
// zoneAddViaOffset: it peels a second=60 reading to 59 before re-adding
// the offset and restores it afterwards.
func opViaSandwich(z Zone, src, delta Calendar, mode Mode) (Calendar, error) {
	if src.System != z.System() {
		return Calendar{}, newError("Op", NotMySystem, src)
	}
	lower := z.Lower()
	lowered, err := Lower(z, src)
	if err != nil {
		return Calendar{}, err
	}
	result, err := lower.Op(lowered, delta, mode)
	if err != nil {
		return Calendar{}, err
	}
	return Raise(z, result)
}

// zoneAddViaOffset is the ZONE_ADD path a sandwich zone (FixedOffsetZone,
// SummerZone, RebasedZone) uses to reapply or undo its own Offset,
// grounded directly on original_source/timecalc.c:1536-1599's
// system_utcplus_op, which performs this enter/inner/exit dance
// unconditionally for every Mode - it has no ZONE_ADD special case at the
// outer level. src must already be retagged to lower's system; offset is
// the zone's own Offset(src) (the same value both entering and exiting);
// delta and mode are this Op call's own arguments (mode is always
// ZoneAdd, the only mode this path is ever called for, but delta is
// whatever Raise/Lower is reapplying).
//
// offset is applied via COMPLEX_ADD stripped of FlagAsIfNs, not the
// AS_IF_NS-tagged Calendar a zone's Offset normally returns: the zone's
// own (hour, minute) offset outranks any second-level correction
// COMPLEX_ADD would otherwise knock down to, so knockdown zeroes that
// correction and the lower zone's own leap search never re-fires here -
// the peel/unpeel below is the only thing that should surface or
// preserve a literal second=60 across the re-add.
func zoneAddViaOffset(lower Zone, src, offset, delta Calendar) (Calendar, error) {
	plain := Calendar{
		Hour: offset.Hour, Minute: offset.Minute,
		Second: offset.Second, Nsec: offset.Nsec,
		System: SystemOffset,
	}
	adj, err := lower.Op(src, negCalendarOffset(plain), ComplexAdd)
	if err != nil {
		return Calendar{}, err
	}
	tgt, err := lower.Op(adj, delta, ZoneAdd)
	if err != nil {
		return Calendar{}, err
	}
	ls := false
	if tgt.Second == 60 {
		ls = true
		tgt.Second = 59
	}
	dest, err := lower.Op(tgt, plain, ComplexAdd)
	if err != nil {
		return Calendar{}, err
	}
	if ls {
		dest.Second++
	}
	return dest, nil
}
