package booking

import (
	"strings"
	"time"

	"fixora/models"
	"fixora/utils"

	"go.uber.org/zap"
)

// AvailabilityResult is the outcome of the availability resolver. Success is
// true iff at least one offering survived every filter.
type AvailabilityResult struct {
	Success            bool
	AvailableOfferings []models.VendorOffering
}

// resolveAvailability produces the subset of approved vendor offerings that
// are operationally available for the requested date and time slot.
//
// Policy: a directory failure fails CLOSED and reads as "no vendors
// available" rather than surfacing a system error to the booking flow.
func (s *DefaultEligibilityService) resolveAvailability(tmpl models.ServiceTemplate, date time.Time, slotStart string) AvailabilityResult {
	logger := utils.GetLogger()
	weekday := strings.ToLower(date.Weekday().String())

	offerings, err := s.VendorRepo.FindApprovedOfferings(tmpl.SubCategory)
	if err != nil {
		logger.Error("availability: offering directory query failed",
			zap.String("subCategory", tmpl.SubCategory), zap.Error(err))
		return AvailabilityResult{Success: false}
	}

	// The schedule window check uses the slot's start as its single
	// representative time; the slot's end is not part of the containment test.
	slotMinutes, slotErr := convertTwelveHour(slotStart)
	if slotErr != nil {
		logger.Warn("availability: unparsable slot start, skipping window checks",
			zap.String("slotStart", slotStart), zap.Error(slotErr))
	}

	var available []models.VendorOffering
	for _, o := range offerings {
		if !o.Availability.IsAvailable {
			continue
		}
		if day, ok := o.Availability.WorkingHours[weekday]; ok {
			if !day.IsAvailable {
				continue
			}
			if slotErr == nil && day.Start != "" && day.End != "" &&
				!withinWindow(day.Start, day.End, slotMinutes) {
				continue
			}
		}
		if onHoliday(o.Availability.Holidays, date) {
			continue
		}
		available = append(available, o)
	}

	return AvailabilityResult{
		Success:            len(available) > 0,
		AvailableOfferings: available,
	}
}

func onHoliday(holidays []models.Holiday, date time.Time) bool {
	for _, h := range holidays {
		if sameCalendarDay(h.Date, date) {
			return true
		}
	}
	return false
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
