package booking

import (
	"fmt"
	"time"

	"fixora/models"
)

// businessRuleOutcome is the combined verdict of the availability, lead-time
// and geo stages.
type businessRuleOutcome struct {
	IsValid        bool
	Errors         []models.FieldError
	EligibleVendor []models.EligibleVendor
}

// evaluateBusinessRules orchestrates the cross-field rules once every facet
// has validated. The geo stage consumes the availability stage's survivors
// and is skipped entirely when there are none.
func (s *DefaultEligibilityService) evaluateBusinessRules(tmpl models.ServiceTemplate, date time.Time, slot models.SlotRange, addr models.Address) businessRuleOutcome {
	var errs []models.FieldError

	avail := s.resolveAvailability(tmpl, date, slot.Start)
	if !avail.Success {
		errs = append(errs, models.FieldError{Field: "timeSlot", Message: MsgNoVendorsAvailable})
	}

	if tmpl.MinAdvanceBooking > 0 {
		if startMin, err := convertTwelveHour(slot.Start); err == nil {
			requested := date.Add(time.Duration(startMin) * time.Minute)
			earliest := s.clock().Now().Add(time.Duration(tmpl.MinAdvanceBooking) * time.Hour)
			if requested.Before(earliest) {
				errs = append(errs, models.FieldError{
					Field:   "timeSlot",
					Message: fmt.Sprintf("This service must be booked at least %d hours in advance", tmpl.MinAdvanceBooking),
				})
			}
		}
	}

	eligible := []models.EligibleVendor{}
	if avail.Success {
		geo := s.filterByServiceRadius(avail.AvailableOfferings, addr.Location)
		if !geo.IsEligible {
			errs = append(errs, models.FieldError{Field: "address", Message: MsgOutOfServiceArea})
		}
		eligible = geo.EligibilityResult
	}

	return businessRuleOutcome{
		IsValid:        len(errs) == 0,
		Errors:         errs,
		EligibleVendor: eligible,
	}
}
