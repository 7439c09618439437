package booking

import (
	catalogRepo "fixora/database/repository/catalog"
	userRepo "fixora/database/repository/user"
	vendorRepo "fixora/database/repository/vendor"
	"fixora/models"
)

// EligibilityService resolves which vendors can serve a booking request.
type EligibilityService interface {
	ValidateBookingRequest(req models.BookingEligibilityRequest) models.ValidationResult
}

// DefaultEligibilityService implements EligibilityService. It is stateless and
// performs no writes, so a single instance is safe for concurrent requests.
type DefaultEligibilityService struct {
	CatalogRepo catalogRepo.CatalogRepository
	VendorRepo  vendorRepo.VendorRepository
	UserRepo    userRepo.UserRepository
	Clock       Clock

	// MaxAdvanceMonths is the booking horizon in calendar months; 0 means 1.
	MaxAdvanceMonths int
}

func (s *DefaultEligibilityService) clock() Clock {
	if s.Clock == nil {
		return SystemClock()
	}
	return s.Clock
}

func (s *DefaultEligibilityService) advanceMonths() int {
	if s.MaxAdvanceMonths <= 0 {
		return 1
	}
	return s.MaxAdvanceMonths
}
