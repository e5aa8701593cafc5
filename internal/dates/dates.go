// Convert relative posted-date text to absolute dates
// Xing/LinkedIn mix English and German phrasing depending on locale

package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	daysRegex    = regexp.MustCompile(`(\d+)\s*day`)
	weeksRegex   = regexp.MustCompile(`(\d+)\s*week`)
	monthsRegex  = regexp.MustCompile(`(\d+)\s*month`)
	tagenRegex   = regexp.MustCompile(`vor\s*(\d+)\s*tag`)
	wochenRegex  = regexp.MustCompile(`vor\s*(\d+)\s*woche`)
	monatenRegex = regexp.MustCompile(`vor\s*(\d+)\s*monat`)
)

// Normalize converts a relative posted-date string ("2 days ago",
// "vor 3 Wochen", "Heute") to the calendar date it refers to, relative to
// now. The first matching pattern wins; unparseable input falls back to
// now's date so the identity scheme still produces a usable dedup key.
func Normalize(text string, now time.Time) time.Time {
	lower := strings.ToLower(text)
	day := truncateToDay(now)

	//english: today/hours, yesterday, then counted units
	if strings.Contains(lower, "today") || strings.Contains(lower, "hour") {
		return day
	}
	if strings.Contains(lower, "yesterday") {
		return day.AddDate(0, 0, -1)
	}
	if n, ok := firstInt(daysRegex, lower); ok {
		return day.AddDate(0, 0, -n)
	}
	if n, ok := firstInt(weeksRegex, lower); ok {
		return day.AddDate(0, 0, -n*7)
	}
	if n, ok := firstInt(monthsRegex, lower); ok {
		return day.AddDate(0, -n, 0)
	}

	//german: heute/stunde, gestern, "vor N Tagen/Wochen/Monaten"
	if strings.Contains(lower, "heute") || strings.Contains(lower, "stunde") {
		return day
	}
	if strings.Contains(lower, "gestern") {
		return day.AddDate(0, 0, -1)
	}
	if n, ok := firstInt(tagenRegex, lower); ok {
		return day.AddDate(0, 0, -n)
	}
	if n, ok := firstInt(wochenRegex, lower); ok {
		return day.AddDate(0, 0, -n*7)
	}
	if n, ok := firstInt(monatenRegex, lower); ok {
		return day.AddDate(0, -n, 0)
	}

	//fallback: reference date, not an error
	return day
}

// FormatDate renders a normalized date as YYYY-MM-DD, the form used in
// identity hashes and the store file.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func firstInt(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
