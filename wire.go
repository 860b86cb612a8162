package zonetime

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders c in the fixed wire grammar of spec §6:
// "YYYY-MM-DD hh:mm:ss.NNNNNNNNN SYS[*]". Month is printed 1-based even
// though Calendar stores it 0-based; a trailing "*" marks a TAINTED
// system.
func (c Calendar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02d %02d:%02d:%02d.%09d %s",
		c.Year, c.Month+1, c.MDay, c.Hour, c.Minute, c.Second, c.Nsec, c.System.String())
	if c.System.Tainted() {
		b.WriteByte('*')
	}
	return b.String()
}

// ParseCalendar parses the wire format produced by Calendar.String.
func ParseCalendar(s string) (Calendar, error) {
	fail := func() (Calendar, error) {
		return Calendar{}, newError("ParseCalendar", InvalidArgument, Calendar{})
	}

	fields := strings.Fields(s)
	if len(fields) != 3 {
		return fail()
	}

	year, month, day, err := parseWireDate(fields[0])
	if err != nil {
		return fail()
	}
	hour, minute, second, nsec, err := parseWireTime(fields[1])
	if err != nil {
		return fail()
	}

	sysToken := fields[2]
	tainted := strings.HasSuffix(sysToken, "*")
	sysToken = strings.TrimSuffix(sysToken, "*")
	sys, err := ParseSystemTag(sysToken)
	if err != nil {
		return fail()
	}
	if tainted != sys.Tainted() {
		// The literal tag already carries (or lacks) TAINTED in its
		// numeric encoding; a mismatched "*" means the text was
		// hand-edited into an inconsistent state.
		return fail()
	}

	return Calendar{
		Year: year, Month: month - 1, MDay: day,
		Hour: hour, Minute: minute, Second: second, Nsec: nsec,
		System: sys,
	}, nil
}

// parseWireDate splits "YYYY-MM-DD", tolerating a leading "-" on YYYY for
// proleptic (negative/BC) years by splitting from the right, since a
// naive strings.Split("-") misparses a negative year's own sign as a
// field separator.
func parseWireDate(s string) (year, month, day int64, err error) {
	dash2 := strings.LastIndexByte(s, '-')
	if dash2 < 0 {
		return 0, 0, 0, fmt.Errorf("missing day separator")
	}
	dayStr := s[dash2+1:]
	rest := s[:dash2]

	dash1 := strings.LastIndexByte(rest, '-')
	if dash1 < 0 {
		return 0, 0, 0, fmt.Errorf("missing month separator")
	}
	monthStr := rest[dash1+1:]
	yearStr := rest[:dash1]

	year, err = strconv.ParseInt(yearStr, 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	m, err := strconv.ParseInt(monthStr, 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	d, err := strconv.ParseInt(dayStr, 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	return year, m, d, nil
}

// parseWireTime splits "hh:mm:ss.NNNNNNNNN".
func parseWireTime(s string) (hour, minute, second, nsec int64, err error) {
	hmsNs := strings.SplitN(s, ".", 2)
	if len(hmsNs) != 2 {
		return 0, 0, 0, 0, fmt.Errorf("missing fractional second")
	}
	hms := strings.Split(hmsNs[0], ":")
	if len(hms) != 3 {
		return 0, 0, 0, 0, fmt.Errorf("malformed hh:mm:ss")
	}
	hour, err = strconv.ParseInt(hms[0], 10, 64)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	minute, err = strconv.ParseInt(hms[1], 10, 64)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	second, err = strconv.ParseInt(hms[2], 10, 64)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	nsec, err = strconv.ParseInt(hmsNs[1], 10, 64)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return hour, minute, second, nsec, nil
}

// ParseSystemTag parses the SYS token of the wire grammar (spec §6): one
// of "TAI", "UTC", "BST", "OFF", "REBASED", "UNK", or "UTC+HHMM"/
// "UTC-HHMM". The input must already have any trailing "*" stripped.
func ParseSystemTag(s string) (SystemTag, error) {
	switch s {
	case "TAI":
		return SystemTAI, nil
	case "UTC":
		return SystemUTC, nil
	case "BST":
		return SystemSummer, nil
	case "OFF":
		return SystemOffset, nil
	case "REBASED":
		return SystemRebased, nil
	case "UNK":
		return SystemInvalid, nil
	}
	if strings.HasPrefix(s, "UTC+") || strings.HasPrefix(s, "UTC-") {
		sign := int64(1)
		if s[3] == '-' {
			sign = -1
		}
		digits := s[4:]
		if len(digits) != 4 {
			return 0, newError("ParseSystemTag", InvalidArgument, Calendar{})
		}
		hh, err := strconv.ParseInt(digits[:2], 10, 64)
		if err != nil {
			return 0, newError("ParseSystemTag", InvalidArgument, Calendar{})
		}
		mm, err := strconv.ParseInt(digits[2:], 10, 64)
		if err != nil {
			return 0, newError("ParseSystemTag", InvalidArgument, Calendar{})
		}
		return SystemUTCPlus(int(sign * (hh*60 + mm))), nil
	}
	return 0, newError("ParseSystemTag", InvalidArgument, Calendar{})
}
