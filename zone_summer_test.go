package zonetime

import "testing"

// TestSummerZoneRaiseBeforeTransition is spec example E8 (first clause):
// one second before the March 2010 summer-time switch, raising to summer
// time is still a no-op.
func TestSummerZoneRaiseBeforeTransition(t *testing.T) {
	utc := NewUTCZone()
	summer, err := NewSummerZone(utc)
	if err != nil {
		t.Fatalf("NewSummerZone error: %v", err)
	}
	src := Calendar{Year: 2010, Month: March, MDay: 28, Hour: 0, Minute: 59, Second: 59, System: SystemUTC}
	got, err := Raise(summer, src)
	if err != nil {
		t.Fatalf("Raise error: %v", err)
	}
	want := Calendar{Year: 2010, Month: March, MDay: 28, Hour: 0, Minute: 59, Second: 59, System: SystemSummer}
	if !got.Eq(want) {
		t.Fatalf("Raise() = %s, want %s", got, want)
	}
}

// TestSummerZoneLowerAfterTransition is spec example E8 (second clause):
// 02:00:00 local summer time on the transition day lowers to 01:00:00
// UTC, the clock having jumped forward an hour at the 01:00 UTC switch.
func TestSummerZoneLowerAfterTransition(t *testing.T) {
	utc := NewUTCZone()
	summer, err := NewSummerZone(utc)
	if err != nil {
		t.Fatalf("NewSummerZone error: %v", err)
	}
	src := Calendar{Year: 2010, Month: March, MDay: 28, Hour: 2, System: SystemSummer}
	got, err := Lower(summer, src)
	if err != nil {
		t.Fatalf("Lower error: %v", err)
	}
	want := Calendar{Year: 2010, Month: March, MDay: 28, Hour: 1, System: SystemUTC}
	if !got.Eq(want) {
		t.Fatalf("Lower() = %s, want %s", got, want)
	}
}

// TestSummerZoneDiffAcrossTransition is spec example E8 (third clause):
// despite the wall clock reading jumping from 00:59:59 to 02:00:00, only
// one second of real time elapses across the switch.
func TestSummerZoneDiffAcrossTransition(t *testing.T) {
	utc := NewUTCZone()
	summer, err := NewSummerZone(utc)
	if err != nil {
		t.Fatalf("NewSummerZone error: %v", err)
	}
	a := Calendar{Year: 2010, Month: March, MDay: 28, Hour: 0, Minute: 59, Second: 59, System: SystemSummer}
	b := Calendar{Year: 2010, Month: March, MDay: 28, Hour: 2, System: SystemSummer}
	iv, err := summer.Diff(a, b)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	want := NewInterval(1, 0)
	if !iv.Eq(want) {
		t.Fatalf("Diff() = %s, want %s", iv, want)
	}
}

func TestSummerZoneOffsetOutsideSummer(t *testing.T) {
	utc := NewUTCZone()
	summer, err := NewSummerZone(utc)
	if err != nil {
		t.Fatalf("NewSummerZone error: %v", err)
	}
	o, err := summer.Offset(Calendar{Year: 2010, Month: January, MDay: 1, System: SystemUTC})
	if err != nil {
		t.Fatalf("Offset error: %v", err)
	}
	if o.Hour != 0 {
		t.Fatalf("Offset() in January = %+v, want zero", o)
	}
}

func TestSummerZoneOffsetDeepSummer(t *testing.T) {
	utc := NewUTCZone()
	summer, err := NewSummerZone(utc)
	if err != nil {
		t.Fatalf("NewSummerZone error: %v", err)
	}
	o, err := summer.Offset(Calendar{Year: 2010, Month: July, MDay: 1, System: SystemUTC})
	if err != nil {
		t.Fatalf("Offset error: %v", err)
	}
	if o.Hour != 1 {
		t.Fatalf("Offset() in July = %+v, want 1 hour", o)
	}
}

func TestSummerZoneAuxReportsIsDST(t *testing.T) {
	utc := NewUTCZone()
	summer, err := NewSummerZone(utc)
	if err != nil {
		t.Fatalf("NewSummerZone error: %v", err)
	}
	_, _, isDST, err := summer.Aux(Calendar{Year: 2010, Month: July, MDay: 1, System: SystemSummer})
	if err != nil {
		t.Fatalf("Aux error: %v", err)
	}
	if !isDST {
		t.Fatal("Aux() in July should report isDST")
	}
}

// TestSummerZoneOpZoneAddPreservesLeapSecond exercises the ZONE_ADD
// enter/exit dance (shared with FixedOffsetZone and RebasedZone) across the
// 1981-06-30 leap second, which falls inside summer time: the literal
// second=60 reading must survive the +1 hour summer-time shift instead of
// being carried away as ordinary overflow.
func TestSummerZoneOpZoneAddPreservesLeapSecond(t *testing.T) {
	utc := NewUTCZone()
	summer, err := NewSummerZone(utc)
	if err != nil {
		t.Fatalf("NewSummerZone error: %v", err)
	}
	src := Calendar{Year: 1981, Month: June, MDay: 30, Hour: 23, Minute: 59, Second: 60, System: SystemSummer}
	offset, err := summer.Offset(Calendar{Year: 1981, Month: June, MDay: 30, Hour: 23, Minute: 59, Second: 59, System: SystemUTC})
	if err != nil {
		t.Fatalf("Offset error: %v", err)
	}
	if offset.Hour != 1 {
		t.Fatalf("Offset() on the eve of 1981-06-30 = %+v, want 1 hour", offset)
	}
	got, err := summer.Op(src, offset, ZoneAdd)
	if err != nil {
		t.Fatalf("Op error: %v", err)
	}
	want := Calendar{Year: 1981, Month: July, MDay: 1, Hour: 0, Minute: 59, Second: 60, System: SystemSummer}
	if !got.Eq(want) {
		t.Fatalf("Op(ZONE_ADD) = %s, want %s", got, want)
	}
}

func TestSummerZoneOpRejectsWrongSystem(t *testing.T) {
	utc := NewUTCZone()
	summer, err := NewSummerZone(utc)
	if err != nil {
		t.Fatalf("NewSummerZone error: %v", err)
	}
	_, err = summer.Op(Calendar{System: SystemUTC}, Calendar{}, SimpleAdd)
	if code, ok := CodeOf(err); !ok || code != NotMySystem {
		t.Fatalf("Op on a UTC src: err=%v, want NotMySystem", err)
	}
}
