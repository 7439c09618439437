package booking

import (
	"encoding/json"
	"strings"
	"time"

	"fixora/models"
	"fixora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dateLayouts are the accepted request date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ValidateBookingRequest validates the five request facets independently,
// then, only when all of them pass, asks the business-rule aggregator for the
// eligibility verdict. Every facet is always evaluated so the caller receives
// the complete error report in one round trip. An unexpected failure inside a
// facet is reported as a single generic field error, never propagated.
func (s *DefaultEligibilityService) ValidateBookingRequest(req models.BookingEligibilityRequest) (result models.ValidationResult) {
	logger := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("eligibility validation panicked", zap.Any("panic", r))
			result = models.ValidationResult{
				IsValid: false,
				Errors:  []models.FieldError{{Field: "general", Message: MsgSystemError}},
			}
		}
	}()

	var (
		errs         []models.FieldError
		systemFailed bool
	)

	tmpl, facetErrs, err := s.validateService(req.ServiceID)
	if err != nil {
		logger.Error("service facet failed unexpectedly", zap.Error(err))
		systemFailed = true
	}
	errs = append(errs, facetErrs...)

	date, facetErrs := s.validateDate(req.Date)
	errs = append(errs, facetErrs...)

	slot, facetErrs := validateTimeSlot(req.TimeSlot)
	errs = append(errs, facetErrs...)

	addr, facetErrs, err := s.validateAddress(req.Address)
	if err != nil {
		logger.Error("address facet failed unexpectedly", zap.Error(err))
		systemFailed = true
	}
	errs = append(errs, facetErrs...)

	user, facetErrs, err := s.validateUser(req.UserID)
	if err != nil {
		logger.Error("user facet failed unexpectedly", zap.Error(err))
		systemFailed = true
	}
	errs = append(errs, facetErrs...)

	if systemFailed {
		errs = append(errs, models.FieldError{Field: "general", Message: MsgSystemError})
	}
	if len(errs) > 0 {
		return models.ValidationResult{IsValid: false, Errors: errs}
	}

	outcome := s.evaluateBusinessRules(*tmpl, date, slot, *addr)
	if !outcome.IsValid {
		return models.ValidationResult{IsValid: false, Errors: outcome.Errors}
	}

	return models.ValidationResult{
		IsValid: true,
		Errors:  []models.FieldError{},
		Data: &models.EligibilityData{
			ServiceTemplate: *tmpl,
			Date:            date,
			TimeSlot:        slot,
			Address:         *addr,
			User:            *user,
			EligibleVendor:  outcome.EligibleVendor,
		},
	}
}

// validateService resolves the service template. A non-nil error means the
// catalog store itself failed; field errors cover malformed and unknown ids.
func (s *DefaultEligibilityService) validateService(id string) (*models.ServiceTemplate, []models.FieldError, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, []models.FieldError{{Field: "serviceId", Message: MsgServiceInvalid}}, nil
	}
	tmpl, err := s.CatalogRepo.FindActiveServiceByID(id)
	if err != nil {
		return nil, nil, err
	}
	if tmpl == nil {
		return nil, []models.FieldError{{Field: "serviceId", Message: MsgServiceNotFound}}, nil
	}
	return tmpl, nil, nil
}

// validateDate normalizes the requested date to midnight and enforces the
// booking window: not before today, not beyond today plus the configured
// number of calendar months.
func (s *DefaultEligibilityService) validateDate(raw string) (time.Time, []models.FieldError) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, []models.FieldError{{Field: "date", Message: MsgDateRequired}}
	}

	var parsed time.Time
	var ok bool
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			parsed, ok = t, true
			break
		}
	}
	if !ok {
		return time.Time{}, []models.FieldError{{Field: "date", Message: MsgDateInvalid}}
	}

	now := s.clock().Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())

	if date.Before(today) {
		return time.Time{}, []models.FieldError{{Field: "date", Message: MsgDatePast}}
	}
	if date.After(today.AddDate(0, s.advanceMonths(), 0)) {
		return time.Time{}, []models.FieldError{{Field: "date", Message: MsgDateTooFar}}
	}
	return date, nil
}

// validateTimeSlot checks the "hh:mm AM/PM - hh:mm AM/PM" shape and ordering.
// The boundaries are kept as their original strings; schedule checks convert
// to minutes where they need to.
func validateTimeSlot(raw string) (models.SlotRange, []models.FieldError) {
	if strings.TrimSpace(raw) == "" {
		return models.SlotRange{}, []models.FieldError{{Field: "timeSlot", Message: MsgTimeSlotRequired}}
	}
	m := slotPattern.FindStringSubmatch(raw)
	if m == nil {
		return models.SlotRange{}, []models.FieldError{{Field: "timeSlot", Message: MsgTimeSlotFormat}}
	}
	start, end := m[1], m[2]

	startMin, err := convertTwelveHour(start)
	if err != nil {
		return models.SlotRange{}, []models.FieldError{{Field: "timeSlot", Message: MsgTimeSlotFormat}}
	}
	endMin, err := convertTwelveHour(end)
	if err != nil {
		return models.SlotRange{}, []models.FieldError{{Field: "timeSlot", Message: MsgTimeSlotFormat}}
	}
	if startMin >= endMin {
		return models.SlotRange{}, []models.FieldError{{Field: "timeSlot", Message: MsgTimeSlotRange}}
	}
	return models.SlotRange{Start: start, End: end}, nil
}

// inlineAddress is the shape of an address supplied in the request body
// instead of a stored-address id.
type inlineAddress struct {
	FormattedAddress string           `json:"formattedAddress"`
	Location         *models.GeoPoint `json:"location"`
}

// validateAddress resolves the address union: a JSON string is a stored
// address id, anything else is an inline address object validated field by
// field.
func (s *DefaultEligibilityService) validateAddress(raw json.RawMessage) (*models.Address, []models.FieldError, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, []models.FieldError{{Field: "address", Message: MsgAddressRequired}}, nil
	}

	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		addr, err := s.CatalogRepo.FindAddressByID(id)
		if err != nil {
			return nil, nil, err
		}
		if addr == nil {
			return nil, []models.FieldError{{Field: "address", Message: MsgAddressNotFound}}, nil
		}
		return addr, nil, nil
	}

	var inline inlineAddress
	if err := json.Unmarshal(raw, &inline); err != nil {
		return nil, []models.FieldError{{Field: "address", Message: MsgAddressMalformed}}, nil
	}

	var errs []models.FieldError
	if inline.Location == nil {
		errs = append(errs, models.FieldError{Field: "address", Message: MsgAddressNoLocation})
	}
	if strings.TrimSpace(inline.FormattedAddress) == "" {
		errs = append(errs, models.FieldError{Field: "address", Message: MsgAddressNoFormatted})
	}
	if inline.Location != nil && !inline.Location.Valid() {
		errs = append(errs, models.FieldError{Field: "address", Message: MsgAddressBadCoords})
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	return &models.Address{
		FormattedAddress: inline.FormattedAddress,
		Location:         *inline.Location,
	}, nil, nil
}

// validateUser resolves the customer and checks verification preconditions,
// one error per unmet condition. Account active/blocked checks are
// deliberately not enforced here.
func (s *DefaultEligibilityService) validateUser(id string) (*models.User, []models.FieldError, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, []models.FieldError{{Field: "userId", Message: MsgUserNotFound}}, nil
	}

	var errs []models.FieldError
	if !user.MobileVerified {
		errs = append(errs, models.FieldError{Field: "userId", Message: MsgUserMobileUnverified})
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return user, nil, nil
}
