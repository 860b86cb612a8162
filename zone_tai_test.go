package zonetime

import "testing"

func TestTAIZoneOpSimpleAdd(t *testing.T) {
	z := NewTAIZone()
	src := Calendar{Year: 2020, Month: January, MDay: 1, System: SystemTAI}
	delta := Calendar{MDay: 1, Hour: 2}
	got, err := z.Op(src, delta, SimpleAdd)
	if err != nil {
		t.Fatalf("Op error: %v", err)
	}
	want := Calendar{Year: 2020, Month: January, MDay: 2, Hour: 2, System: SystemTAI}
	if !got.Eq(want) {
		t.Fatalf("Op() = %s, want %s", got, want)
	}
}

func TestTAIZoneOpSubtract(t *testing.T) {
	z := NewTAIZone()
	src := Calendar{Year: 2020, Month: January, MDay: 1, System: SystemTAI}
	delta := Calendar{Hour: 1}
	got, err := z.Op(src, delta, Subtract)
	if err != nil {
		t.Fatalf("Op error: %v", err)
	}
	want := Calendar{Year: 2019, Month: December, MDay: 31, Hour: 23, System: SystemTAI}
	if !got.Eq(want) {
		t.Fatalf("Op() = %s, want %s", got, want)
	}
}

func TestTAIZoneOpRejectsWrongSystem(t *testing.T) {
	z := NewTAIZone()
	_, err := z.Op(Calendar{System: SystemUTC}, Calendar{}, SimpleAdd)
	if code, ok := CodeOf(err); !ok || code != NotMySystem {
		t.Fatalf("Op on a UTC src: err=%v, want NotMySystem", err)
	}
}

func TestTAIZoneOpCarriesMonthAndYear(t *testing.T) {
	z := NewTAIZone()
	src := Calendar{Year: 2023, Month: December, MDay: 31, Hour: 23, Minute: 59, Second: 59, System: SystemTAI}
	got, err := z.Op(src, Calendar{Second: 1}, SimpleAdd)
	if err != nil {
		t.Fatalf("Op error: %v", err)
	}
	want := Calendar{Year: 2024, Month: January, MDay: 1, System: SystemTAI}
	if !got.Eq(want) {
		t.Fatalf("Op() = %s, want %s", got, want)
	}
}

func TestTAIZoneOpRejectsJulianGregorianCutover(t *testing.T) {
	z := NewTAIZone()
	src := Calendar{Year: 1582, Month: October, MDay: 4, System: SystemTAI}
	_, err := z.Op(src, Calendar{MDay: 1}, SimpleAdd)
	if code, ok := CodeOf(err); !ok || code != UndefinedDate {
		t.Fatalf("Op into the cutover gap: err=%v, want UndefinedDate", err)
	}
}

func TestTAIZoneOffsetAlwaysZero(t *testing.T) {
	z := NewTAIZone()
	o, err := z.Offset(Calendar{System: SystemTAI})
	if err != nil {
		t.Fatalf("Offset error: %v", err)
	}
	if o.Second != 0 || o.Nsec != 0 {
		t.Fatalf("Offset() = %+v, want zero", o)
	}
}

func TestTAIZoneAux(t *testing.T) {
	z := NewTAIZone()
	wday, yday, isDST, err := z.Aux(Calendar{Year: 2000, Month: January, MDay: 1, System: SystemTAI})
	if err != nil {
		t.Fatalf("Aux error: %v", err)
	}
	if wday != Saturday || yday != 0 || isDST {
		t.Fatalf("Aux() = %d, %d, %v, want Saturday, 0, false", wday, yday, isDST)
	}
}

func TestTAIZoneDiff(t *testing.T) {
	z := NewTAIZone()
	a := Calendar{Year: 2000, Month: January, MDay: 1, System: SystemTAI}
	b := Calendar{Year: 2000, Month: January, MDay: 2, Hour: 1, System: SystemTAI}
	iv, err := z.Diff(a, b)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	want := NewInterval(Day+Hour, 0)
	if !iv.Eq(want) {
		t.Fatalf("Diff() = %s, want %s", iv, want)
	}
	back, err := z.Diff(b, a)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if !back.Eq(want.Neg()) {
		t.Fatalf("Diff(b,a) = %s, want %s", back, want.Neg())
	}
}
