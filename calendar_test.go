package zonetime

import "testing"

func TestCalendarCompareOrdersEveryField(t *testing.T) {
	base := Calendar{Year: 2000, Month: June, MDay: 15, Hour: 12, Minute: 30, Second: 0, Nsec: 0, System: SystemTAI}
	cases := []struct {
		descr string
		other Calendar
	}{
		{"laterYear", setField(base, "Year", 2001)},
		{"laterMonth", setField(base, "Month", July)},
		{"laterMDay", setField(base, "MDay", 16)},
		{"laterHour", setField(base, "Hour", 13)},
		{"laterMinute", setField(base, "Minute", 31)},
		{"laterSecond", setField(base, "Second", 1)},
		{"laterNsec", setField(base, "Nsec", 1)},
	}
	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			if base.Compare(tc.other) >= 0 {
				t.Fatalf("base.Compare(%s) = %d, want < 0", tc.descr, base.Compare(tc.other))
			}
			if tc.other.Compare(base) <= 0 {
				t.Fatalf("%s.Compare(base) = %d, want > 0", tc.descr, tc.other.Compare(base))
			}
		})
	}
}

// setField is a small helper so the table above reads as "what differs",
// without hand-writing seven near-identical Calendar literals.
func setField(c Calendar, field string, v int64) Calendar {
	switch field {
	case "Year":
		c.Year = v
	case "Month":
		c.Month = v
	case "MDay":
		c.MDay = v
	case "Hour":
		c.Hour = v
	case "Minute":
		c.Minute = v
	case "Second":
		c.Second = v
	case "Nsec":
		c.Nsec = v
	}
	return c
}

func TestCalendarCompareBySystemIsLastResort(t *testing.T) {
	a := Calendar{System: SystemTAI}
	b := Calendar{System: SystemUTC}
	if a.Compare(b) >= 0 {
		t.Fatal("TAI (0) should sort before UTC (2)")
	}
}

func TestCalendarEq(t *testing.T) {
	a := Calendar{Year: 2020, System: SystemTAI}
	b := a
	if !a.Eq(b) {
		t.Fatal("identical calendars should be Eq")
	}
	b.Nsec = 1
	if a.Eq(b) {
		t.Fatal("differing ns should not be Eq")
	}
}

func TestCalendarWithSystem(t *testing.T) {
	a := Calendar{Year: 2020, System: SystemTAI}
	b := a.WithSystem(SystemUTC)
	if b.System != SystemUTC || a.System != SystemTAI {
		t.Fatal("WithSystem should not mutate the receiver")
	}
	if b.Year != a.Year {
		t.Fatal("WithSystem should preserve every other field")
	}
}

func TestTopRank(t *testing.T) {
	cases := []struct {
		descr string
		delta Calendar
		want  fieldRank
	}{
		{"zero", Calendar{}, rankNone},
		{"year", Calendar{Year: 1}, rankYear},
		{"month", Calendar{Month: 1}, rankMonth},
		{"mday", Calendar{MDay: 1}, rankMDay},
		{"hour", Calendar{Hour: 1}, rankHour},
		{"minute", Calendar{Minute: 1}, rankMinute},
		{"second", Calendar{Second: 1}, rankSecond},
		{"nsec", Calendar{Nsec: 1}, rankNsec},
		{"yearDominatesAll", Calendar{Year: 1, Nsec: 1}, rankYear},
	}
	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			if got := topRank(tc.delta); got != tc.want {
				t.Fatalf("topRank(%s) = %d, want %d", tc.descr, got, tc.want)
			}
		})
	}
}

func TestKnockdownZeroesBelowTop(t *testing.T) {
	adj := Calendar{Month: 1, MDay: 1, Hour: 1, Minute: 1, Second: 1, Nsec: 1}
	got := knockdown(adj, rankMDay)
	want := Calendar{Month: 1, MDay: 1}
	if got != want {
		t.Fatalf("knockdown(adj, rankMDay) = %+v, want %+v", got, want)
	}
}

func TestKnockdownTopRankYearZeroesEverythingBelow(t *testing.T) {
	adj := Calendar{Second: 1, Nsec: 1}
	got := knockdown(adj, rankYear)
	if got.Second != 0 || got.Nsec != 0 {
		t.Fatalf("knockdown with top=rankYear should zero every field, got %+v", got)
	}
}

func TestIsNormalized(t *testing.T) {
	ok := Calendar{Year: 2024, Month: February, MDay: 29, Hour: 23, Minute: 59, Second: 59, Nsec: 999999999}
	if !ok.IsNormalized(false) {
		t.Fatal("valid reading should be normalized")
	}
	leap := ok
	leap.Second = 60
	if leap.IsNormalized(false) {
		t.Fatal("second=60 should not be normalized when allowLeap is false")
	}
	if !leap.IsNormalized(true) {
		t.Fatal("second=60 should be normalized when allowLeap is true")
	}
	bad := ok
	bad.MDay = 30 // 2024 is a leap year, but even so Feb has only 29 days
	if bad.IsNormalized(false) {
		t.Fatal("2024-02-30 is not a real date")
	}
}

func TestSystemTagMinutes(t *testing.T) {
	tag := SystemUTCPlus(-300)
	m, ok := tag.Minutes()
	if !ok || m != -300 {
		t.Fatalf("Minutes() = %d, %v, want -300, true", m, ok)
	}
	if _, ok := SystemUTC.Minutes(); ok {
		t.Fatal("SystemUTC should not report Minutes")
	}
}

func TestSystemTagTainted(t *testing.T) {
	if !SystemRebased.Tainted() {
		t.Fatal("SystemRebased should be tainted")
	}
	if SystemUTC.Tainted() {
		t.Fatal("SystemUTC should not be tainted")
	}
	if SystemInvalid.Tainted() {
		t.Fatal("SystemInvalid should never be reported tainted")
	}
}

func TestSystemTagString(t *testing.T) {
	cases := []struct {
		tag  SystemTag
		want string
	}{
		{SystemTAI, "TAI"},
		{SystemUTC, "UTC"},
		{SystemSummer, "BST"},
		{SystemOffset, "OFF"},
		{SystemRebased, "REBASED"},
		{SystemInvalid, "UNK"},
		{SystemUTCPlus(-300), "UTC-0500"},
		{SystemUTCPlus(330), "UTC+0530"},
	}
	for _, tc := range cases {
		if got := tc.tag.String(); got != tc.want {
			t.Fatalf("%d.String() = %q, want %q", tc.tag, got, tc.want)
		}
	}
}
