package holiday

import "time"

// FindEasterSunday returns the date of Easter Sunday in year using the Lilius-Clavius algorithm,
// see http://www.henk-reints.nl/easter/.
// The result is only historically meaningful for Gregorian years (1583 and later), but is defined for any year.
func FindEasterSunday(year int) time.Time {
	a := mod(year, 19) + 1
	b := floorDiv(year, 100) + 1
	c := floorDiv(3*b, 4) - 12
	d := floorDiv(8*b+5, 25) - 5
	e := floorDiv(5*year, 4) - 10 - c
	f := mod(11*a+20+d-c, 30)
	if f == 24 || (f == 25 && a > 11) {
		f++
	}
	g := 44 - f
	if g < 21 {
		g += 30
	}

	// day in March, values above 31 continue into April
	result := g + 7 - mod(e+g, 7)

	return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, result-1)
}

// floorDiv is integer division rounding towards negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod is the non-negative remainder of a divided by positive b
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
