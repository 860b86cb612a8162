// Package leapsecs holds the UTC leap-second table a UTCZone consults to
// translate between TAI and UTC (spec §6), and the logic to look a date up
// in it.
package leapsecs

import (
	"fmt"

	"darvaza.org/slog"
	"darvaza.org/slog/handlers/discard"
)

// Offset is a signed (second, nanosecond) quantity, independent of this
// module's own Interval type so that this package has no dependency on the
// rest of zonetime.
type Offset struct {
	Sec  int64
	Nsec int32
}

// Row is one entry of the leap-second table: the UTC-TAI offset in effect
// from (Year, Month, Day) 00:00:00 onward, until the next row's date.
//
// LeapSecond is true when the onset of this row was preceded by a literal
// inserted (or, in principle, deleted) leap second at 23:59:60 (or 23:59:58
// for a deletion, though none has ever occurred) on the last UTC day before
// Year/Month/Day. The two 1961 and 1972 sync rows are not preceded by a
// leap second: they mark the start of, and a discontinuity within, the
// pre-1972 fractional-offset era.
type Row struct {
	Year       int64
	Month      int64 // 0-based, matching the rest of this package
	Day        int64
	Offset     Offset
	LeapSecond bool
}

// Table is an ordered, immutable leap-second table plus an optional logger
// used to flag suspicious entries at construction time.
type Table struct {
	rows   []Row
	logger slog.Logger
}

// New builds a Table from rows, which need not be pre-sorted. It validates
// the table by walking consecutive rows and logging (at Warn, via the
// supplied logger) any jump in offset whose magnitude exceeds one second,
// since every historical leap event has been exactly +-1s; a bigger jump
// signals a transcription error in the caller's row data rather than a
// real event.
func New(logger slog.Logger, rows ...Row) *Table {
	if logger == nil {
		logger = discard.New()
	}
	t := &Table{rows: append([]Row(nil), rows...), logger: logger}
	t.sort()
	t.validate()
	return t
}

// Default returns the reference leap-second table of spec §6: the 1961 and
// 1972 sync rows, followed by the 24 integer-second leap rows from 1972-06
// through 2008-12 (offsets -11s through -34s). logger may be nil.
func Default(logger slog.Logger) *Table {
	return New(logger, defaultRows...)
}

func (t *Table) sort() {
	// insertion sort: the table is small (tens of rows) and built once.
	for i := 1; i < len(t.rows); i++ {
		for j := i; j > 0 && rowLess(t.rows[j], t.rows[j-1]); j-- {
			t.rows[j], t.rows[j-1] = t.rows[j-1], t.rows[j]
		}
	}
}

func rowLess(a, b Row) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}

func (t *Table) validate() {
	l, ok := t.logger.Warn().WithEnabled()
	for i := 1; i < len(t.rows); i++ {
		prev, cur := t.rows[i-1], t.rows[i]
		jump := cur.Offset.Sec - prev.Offset.Sec
		if jump < 0 {
			jump = -jump
		}
		if jump > 1 {
			if ok {
				l.WithField("row", i).
					WithField("prevOffset", prev.Offset.Sec).
					WithField("curOffset", cur.Offset.Sec).
					Print("leap-second table: implausible offset jump")
			}
		}
	}
}

// Rows returns the table's rows in ascending date order. The returned
// slice is owned by the caller; mutating it does not affect t.
func (t *Table) Rows() []Row {
	return append([]Row(nil), t.rows...)
}

// ActiveRow returns the row in effect for the given UTC civil date: the
// last row whose date is <= (year, month, day), and true. If the date
// precedes the table's first row, it returns the zero Row and false.
func (t *Table) ActiveRow(year, month, day int64) (Row, bool) {
	var found Row
	var ok bool
	for _, r := range t.rows {
		if rowLess(Row{Year: year, Month: month, Day: day}, r) {
			break
		}
		found, ok = r, true
	}
	return found, ok
}

// IsLeapSecondEve reports whether (year, month, day) is the last UTC day
// before a row whose LeapSecond flag is set, i.e. a day that legitimately
// ends with a second=60 reading.
func (t *Table) IsLeapSecondEve(year, month, day int64) bool {
	for _, r := range t.rows {
		if !r.LeapSecond {
			continue
		}
		py, pm, pd := dayBefore(r.Year, r.Month, r.Day)
		if py == year && pm == month && pd == day {
			return true
		}
	}
	return false
}

// dayBefore returns the calendar date immediately preceding (year, month,
// day), where day is always 1 for a row (every row takes effect on the
// first of a month), so the preceding day is always the last day of the
// previous month. daysInMonth uses the small, self-contained tables below
// rather than the parent package's Gregorian helpers, to avoid a
// dependency cycle with the parent package.
func dayBefore(year, month, day int64) (int64, int64, int64) {
	if day > 1 {
		return year, month, day - 1
	}
	pm := month - 1
	py := year
	if pm < 0 {
		pm = 11
		py--
	}
	return py, pm, daysInMonth(py, pm)
}

var nonLeapDays = [...]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
var leapDays = [...]int64{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int64) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

func daysInMonth(year, month int64) int64 {
	if isLeapYear(year) {
		return leapDays[month]
	}
	return nonLeapDays[month]
}

// String renders an Offset the way the table's own diagnostics do: "-10 s
// 0 ns".
func (o Offset) String() string {
	return fmt.Sprintf("%d s %d ns", o.Sec, o.Nsec)
}

// defaultRows is the reference table of spec §6. The two sync rows mark
// the start of the pre-1972 fractional-offset era and its end; the
// remaining rows are whole-second leaps, one at the close of the named
// month, stepping the offset from -11s to -34s.
//
// The 1997-06 row is -31s. An early transcription of this table (grounded
// on a historical bug in a widely copied leap-second list) printed -32s
// for that row, one step ahead of schedule. The shipped -31s is pinned by
// a test in this package and by one in zone_utc_test.go; New itself only
// logs implausible jumps and never rejects a row.
var defaultRows = []Row{
	{Year: 1961, Month: 0, Day: 1, Offset: Offset{Sec: -1, Nsec: -422818000}},
	{Year: 1972, Month: 0, Day: 1, Offset: Offset{Sec: -10}},
	{Year: 1972, Month: 6, Day: 1, Offset: Offset{Sec: -11}, LeapSecond: true},
	{Year: 1973, Month: 0, Day: 1, Offset: Offset{Sec: -12}, LeapSecond: true},
	{Year: 1974, Month: 0, Day: 1, Offset: Offset{Sec: -13}, LeapSecond: true},
	{Year: 1975, Month: 0, Day: 1, Offset: Offset{Sec: -14}, LeapSecond: true},
	{Year: 1976, Month: 0, Day: 1, Offset: Offset{Sec: -15}, LeapSecond: true},
	{Year: 1977, Month: 0, Day: 1, Offset: Offset{Sec: -16}, LeapSecond: true},
	{Year: 1978, Month: 0, Day: 1, Offset: Offset{Sec: -17}, LeapSecond: true},
	{Year: 1979, Month: 0, Day: 1, Offset: Offset{Sec: -18}, LeapSecond: true},
	{Year: 1980, Month: 0, Day: 1, Offset: Offset{Sec: -19}, LeapSecond: true},
	{Year: 1981, Month: 6, Day: 1, Offset: Offset{Sec: -20}, LeapSecond: true},
	{Year: 1982, Month: 6, Day: 1, Offset: Offset{Sec: -21}, LeapSecond: true},
	{Year: 1983, Month: 6, Day: 1, Offset: Offset{Sec: -22}, LeapSecond: true},
	{Year: 1985, Month: 6, Day: 1, Offset: Offset{Sec: -23}, LeapSecond: true},
	{Year: 1988, Month: 0, Day: 1, Offset: Offset{Sec: -24}, LeapSecond: true},
	{Year: 1990, Month: 0, Day: 1, Offset: Offset{Sec: -25}, LeapSecond: true},
	{Year: 1991, Month: 0, Day: 1, Offset: Offset{Sec: -26}, LeapSecond: true},
	{Year: 1992, Month: 6, Day: 1, Offset: Offset{Sec: -27}, LeapSecond: true},
	{Year: 1993, Month: 6, Day: 1, Offset: Offset{Sec: -28}, LeapSecond: true},
	{Year: 1994, Month: 6, Day: 1, Offset: Offset{Sec: -29}, LeapSecond: true},
	{Year: 1996, Month: 0, Day: 1, Offset: Offset{Sec: -30}, LeapSecond: true},
	{Year: 1997, Month: 6, Day: 1, Offset: Offset{Sec: -31}, LeapSecond: true},
	{Year: 1999, Month: 0, Day: 1, Offset: Offset{Sec: -32}, LeapSecond: true},
	{Year: 2006, Month: 0, Day: 1, Offset: Offset{Sec: -33}, LeapSecond: true},
	{Year: 2009, Month: 0, Day: 1, Offset: Offset{Sec: -34}, LeapSecond: true},
}
