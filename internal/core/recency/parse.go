package recency

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"reviewtrust/internal/core/langhint"
)

var (
	jaRelative = regexp.MustCompile(`(\d+)\s*(分|時間|日|週間|か月|ヶ月|ケ月|年)前`)
	enRelative = regexp.MustCompile(`(?i)\b(\d+|an?)\s+(minute|hour|day|week|month|year)s?\s+ago\b`)
)

// maxAge bounds parsed spans; longer ones are treated as not understood
const maxAge = 100 * 365 * 24 * time.Hour

// ParseDateText converts a relative date label into an approximate timestamp before now.
// Days are fixed 24 hour spans, months count as 30 days and years as 365.
// ok is false when the label is not understood or the span exceeds 100 years
func ParseDateText(text string, now time.Time) (t time.Time, ok bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	if langhint.Detect(s).CJK() {
		if strings.Contains(s, "昨日") {
			return now.Add(-24 * time.Hour), true
		}
		if strings.Contains(s, "今日") || strings.Contains(s, "たった今") {
			return now, true
		}
		m := jaRelative.FindStringSubmatch(s)
		if m == nil {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return back(now, n, jaUnit(m[2]))
	}

	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "yesterday"):
		return now.Add(-24 * time.Hour), true
	case strings.Contains(lower, "today"), strings.Contains(lower, "just now"):
		return now, true
	}
	m := enRelative.FindStringSubmatch(lower)
	if m == nil {
		return time.Time{}, false
	}
	n := 1
	if m[1] != "a" && m[1] != "an" {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		n = v
	}
	return back(now, n, m[2])
}

func jaUnit(u string) string {
	switch u {
	case "分":
		return "minute"
	case "時間":
		return "hour"
	case "日":
		return "day"
	case "週間":
		return "week"
	case "年":
		return "year"
	}
	return "month"
}

func back(now time.Time, n int, unit string) (time.Time, bool) {
	var d time.Duration
	switch unit {
	case "minute":
		d = time.Minute
	case "hour":
		d = time.Hour
	case "day":
		d = 24 * time.Hour
	case "week":
		d = 7 * 24 * time.Hour
	case "month":
		d = 30 * 24 * time.Hour
	default:
		d = 365 * 24 * time.Hour
	}
	if n < 0 || int64(n) > int64(maxAge/d) {
		return time.Time{}, false
	}
	return now.Add(-time.Duration(n) * d), true
}

// AgeSpan returns the oldest and newest parsed ages among labels, in days, plus the count parsed
func AgeSpan(labels []string, now time.Time) (minDays, maxDays float64, parsed int) {
	for _, l := range labels {
		t, ok := ParseDateText(l, now)
		if !ok {
			continue
		}
		age := now.Sub(t).Hours() / 24
		if parsed == 0 || age < minDays {
			minDays = age
		}
		if parsed == 0 || age > maxDays {
			maxDays = age
		}
		parsed++
	}
	return minDays, maxDays, parsed
}
