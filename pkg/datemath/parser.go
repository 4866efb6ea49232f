package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts guest-supplied date expressions — absolute or relative,
// Spanish or English — to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Madrid"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a date expression to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	// ISO dates pass through untouched.
	if t, err := time.ParseInLocation("2006-01-02", expr, p.location); err == nil {
		return t, nil
	}

	switch expr {
	case "today", "hoy":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "mañana", "manana":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow", "pasado mañana", "pasado manana":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	}

	// "in X days/weeks" / "en X días/semanas"
	if strings.HasPrefix(expr, "in ") || strings.HasPrefix(expr, "en ") {
		return p.parseInDuration(expr, baseTime)
	}

	// "next <weekday>" / "el próximo <weekday>"
	for _, prefix := range []string{"next ", "el próximo ", "el proximo ", "próximo ", "proximo ", "el "} {
		if strings.HasPrefix(expr, prefix) {
			return p.parseWeekday(strings.TrimPrefix(expr, prefix), baseTime)
		}
	}

	// Bare weekday names resolve to the next occurrence.
	if t, err := p.parseWeekday(expr, baseTime); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date expression: %q", expr)
}

// ParseTime converts a clock expression ("10:00", "10", "10am") to hour and
// minute. Defaults to 12:00 when the expression is unreadable.
func (p *Parser) ParseTime(expr string) (hour, minute int) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	expr = strings.TrimSuffix(expr, "h")

	pm := strings.HasSuffix(expr, "pm")
	expr = strings.TrimSuffix(strings.TrimSuffix(expr, "am"), "pm")
	expr = strings.TrimSpace(expr)

	parts := strings.SplitN(expr, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 12, 0
	}
	if pm && h < 12 {
		h += 12
	}
	m := 0
	if len(parts) == 2 {
		if v, err := strconv.Atoi(parts[1]); err == nil && v >= 0 && v < 60 {
			m = v
		}
	}
	return h, m
}

// At anchors a parsed day at the given clock time in the parser's timezone.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

var durationRe = regexp.MustCompile(`(?:in|en) (\d+) (day|days|día|días|dia|dias|week|weeks|semana|semanas)`)

func (p *Parser) parseInDuration(expr string, baseTime time.Time) (time.Time, error) {
	matches := durationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	if strings.HasPrefix(unit, "week") || strings.HasPrefix(unit, "semana") {
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	}
	return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"lunes":     time.Monday,
	"tuesday":   time.Tuesday,
	"martes":    time.Tuesday,
	"wednesday": time.Wednesday,
	"miércoles": time.Wednesday,
	"miercoles": time.Wednesday,
	"thursday":  time.Thursday,
	"jueves":    time.Thursday,
	"friday":    time.Friday,
	"viernes":   time.Friday,
	"saturday":  time.Saturday,
	"sábado":    time.Saturday,
	"sabado":    time.Saturday,
	"sunday":    time.Sunday,
	"domingo":   time.Sunday,
}

func (p *Parser) parseWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[strings.TrimSpace(dayName)]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

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
