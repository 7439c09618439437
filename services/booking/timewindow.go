package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fixora/utils"

	"go.uber.org/zap"
)

// slotPattern matches "hh:mm AM/PM - hh:mm AM/PM": 12-hour clock, optional
// leading zero on the hour, case-insensitive meridiem.
var slotPattern = regexp.MustCompile(`^\s*(\d{1,2}:\d{2}\s*(?i:AM|PM))\s*-\s*(\d{1,2}:\d{2}\s*(?i:AM|PM))\s*$`)

// convertTwelveHour parses a 12-hour clock string like "9:30 AM" into
// minutes since midnight.
func convertTwelveHour(raw string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	var meridiem string
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(s, "PM"):
		meridiem = "PM"
	default:
		return 0, fmt.Errorf("time %q has no AM/PM marker", raw)
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, meridiem))

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("time %q is not hh:mm", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time %q has invalid hour: %w", raw, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time %q has invalid minutes: %w", raw, err)
	}
	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("time %q hour out of 12-hour range", raw)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q minutes out of range", raw)
	}
	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}
	return hour*60 + minute, nil
}

// parseClockTime parses a schedule boundary, which vendors store either as
// 24-hour "HH:MM" or 12-hour "hh:mm AM/PM".
func parseClockTime(raw string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		return convertTwelveHour(raw)
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("time %q is not HH:MM", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time %q has invalid hour: %w", raw, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time %q has invalid minutes: %w", raw, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", raw)
	}
	return hour*60 + minute, nil
}

// withinWindow reports whether slotMinutes lies within [start, end], inclusive
// on both ends. A boundary that fails to parse makes the check pass: bad
// schedule data must not knock an otherwise available vendor out of the pool.
func withinWindow(start, end string, slotMinutes int) bool {
	logger := utils.GetLogger()
	startMin, err := parseClockTime(start)
	if err != nil {
		logger.Warn("working-hours window has malformed start, treating as within",
			zap.String("start", start), zap.Error(err))
		return true
	}
	endMin, err := parseClockTime(end)
	if err != nil {
		logger.Warn("working-hours window has malformed end, treating as within",
			zap.String("end", end), zap.Error(err))
		return true
	}
	return slotMinutes >= startMin && slotMinutes <= endMin
}
