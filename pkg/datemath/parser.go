package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+|a|an|one) (day|days|week|weeks|month|months)$`)

const (
	// maxInAmount bounds "in N units" so the result stays a four-digit year.
	maxInAmount = 10000
	maxYear     = 9999
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date expression to midnight of the resolved day.
// Absolute dates (YYYY-MM-DD or RFC3339) pass through; relative phrases
// are resolved against baseTime. Unknown input yields ErrUnrecognized.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if t, ok := p.parseAbsolute(relative); ok {
		return t, nil
	}

	switch relative {
	case "today", "tonight":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow", "the day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// "next friday", "this friday", "on friday" and a bare "friday" all
	// mean the next future occurrence.
	dayName := relative
	for _, prefix := range []string{"next ", "this ", "on "} {
		dayName = strings.TrimPrefix(dayName, prefix)
	}
	if _, ok := weekdays[dayName]; ok {
		return p.parseNextWeekday(dayName, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// ParseDate is Parse formatted as YYYY-MM-DD.
func (p *Parser) ParseDate(relative string, baseTime time.Time) (string, error) {
	t, err := p.Parse(relative, baseTime)
	if err != nil {
		return "", err
	}
	return t.Format(DateFormat), nil
}

// parseAbsolute accepts calendar dates and full timestamps, keeping only the date.
func (p *Parser) parseAbsolute(s string) (time.Time, bool) {
	if t, err := time.ParseInLocation(DateFormat, s, p.location); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, strings.ToUpper(s)); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location), true
	}
	return time.Time{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in a month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}

	amount := 1
	switch matches[1] {
	case "a", "an", "one":
	default:
		n, err := strconv.Atoi(matches[1])
		if err != nil || n > maxInAmount {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
		}
		amount = n
	}

	var t time.Time
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		t = baseTime.AddDate(0, 0, amount)
	case strings.HasPrefix(unit, "week"):
		t = baseTime.AddDate(0, 0, amount*7)
	default:
		t = baseTime.AddDate(0, amount, 0)
	}

	t = p.startOfDay(t)
	if t.Year() > maxYear {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}
	return t, nil
}

// parseNextWeekday returns the first occurrence of dayName strictly after baseTime.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday := weekdays[dayName]

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
