package booking

import (
	"math"
	"time"

	"fixora/models"
)

const (
	testServiceID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	testUserID    = "user-1"
	testAddressID = "addr-1"
)

type fakeCatalogRepo struct {
	services  map[string]*models.ServiceTemplate
	addresses map[string]*models.Address
	err       error
}

func (f *fakeCatalogRepo) FindActiveServiceByID(id string) (*models.ServiceTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.services[id], nil
}

func (f *fakeCatalogRepo) FindAddressByID(id string) (*models.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.addresses[id], nil
}

type fakeVendorRepo struct {
	offerings []models.VendorOffering
	err       error
	calls     int
}

func (f *fakeVendorRepo) FindApprovedOfferings(childCategoryID string) ([]models.VendorOffering, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.offerings, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
	err   error
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// testNow is a Tuesday morning; weekday-dependent fixtures key off it.
var testNow = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }

// lngAtKm returns the longitude, on the equator, at the given distance in km
// from the origin. Haversine along the equator degenerates to R*dLon, so the
// resulting distance matches km up to float error.
func lngAtKm(km float64) float64 {
	const R = 6371
	return km / R * 180 / math.Pi
}

func openSchedule() models.OfferingAvailability {
	return models.OfferingAvailability{IsAvailable: true}
}

func testVendor(id string, radius *float64, lng float64) *models.Vendor {
	return &models.Vendor{
		ID:            id,
		IsAvailable:   true,
		IsBlocked:     false,
		ServiceRadius: radius,
		FCMToken:      "fcm-" + id,
		Address: models.VendorAddress{
			FormattedAddress: "registered address of " + id,
			Location:         models.GeoPoint{Type: "Point", Coordinates: []float64{lng, 0}},
		},
	}
}

func testOffering(id string, vendor *models.Vendor, avail models.OfferingAvailability) models.VendorOffering {
	return models.VendorOffering{
		ID:              id,
		VendorID:        vendor.ID,
		CategoryID:      "cat-home",
		ChildCategoryID: "subcat-cleaning",
		Status:          models.OfferingStatusApproved,
		IsActive:        true,
		Availability:    avail,
		Vendor:          vendor,
	}
}

func testTemplate() *models.ServiceTemplate {
	return &models.ServiceTemplate{
		ID:          testServiceID,
		Name:        "Deep Cleaning",
		Category:    "cat-home",
		SubCategory: "subcat-cleaning",
		IsActive:    true,
	}
}

func newTestService(cat *fakeCatalogRepo, vend *fakeVendorRepo, users *fakeUserRepo) *DefaultEligibilityService {
	return &DefaultEligibilityService{
		CatalogRepo: cat,
		VendorRepo:  vend,
		UserRepo:    users,
		Clock:       fixedClock{t: testNow},
	}
}
