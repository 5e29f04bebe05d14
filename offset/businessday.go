package offset

import "time"

// weekday returns the day of week with Monday as 0 and Sunday as 6.
func weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// addBusinessDays moves t by n business days. Whole weeks are taken first;
// a weekend start rolls forward for n > 0 and n == 0, and backward for n < 0.
func addBusinessDays(t time.Time, n int) time.Time {
	wd := weekday(t)
	weeks := floorDiv(n, 5)
	if n <= 0 && wd > 4 {
		n++
	}
	n -= 5 * weeks

	var days int
	switch {
	case n == 0 && wd > 4:
		days = 4 - wd
	case wd > 4:
		days = (7 - wd) + (n - 1)
	case wd+n <= 4:
		days = n
	default:
		days = n + 2
	}
	return t.AddDate(0, 0, days+7*weeks)
}
