package booking

import (
	"math"
	"sort"
	"sync"

	"fixora/models"
	"fixora/utils"

	"go.uber.org/zap"
)

// GeoEligibilityResult is the outcome of the service-radius filter.
type GeoEligibilityResult struct {
	EligibilityResult []models.EligibleVendor
	IsEligible        bool
}

// haversine returns the great-circle distance in km between two WGS84 points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// filterByServiceRadius retains vendors whose configured service radius covers
// the distance from the customer to the vendor's registered address. The
// boundary is inclusive. Vendors without a radius or without usable
// coordinates are skipped, not reported as errors.
//
// Policy: when the distance computation itself cannot run (unusable customer
// coordinates), the filter fails OPEN and reports eligible. The availability
// resolver makes the opposite choice on directory failure.
func (s *DefaultEligibilityService) filterByServiceRadius(offerings []models.VendorOffering, customer models.GeoPoint) GeoEligibilityResult {
	logger := utils.GetLogger()

	if !customer.Valid() {
		logger.Error("geo filter: customer coordinates unusable, failing open",
			zap.Float64s("coordinates", customer.Coordinates))
		return GeoEligibilityResult{EligibilityResult: []models.EligibleVendor{}, IsEligible: true}
	}

	resultsCh := make(chan models.EligibleVendor, len(offerings))
	var wg sync.WaitGroup

	for _, o := range offerings {
		wg.Add(1)
		go func(o models.VendorOffering) {
			defer wg.Done()
			v := o.Vendor
			if v == nil || v.ServiceRadius == nil || !v.Address.Location.Valid() {
				return
			}
			dist := haversine(customer.Lat(), customer.Lng(), v.Address.Location.Lat(), v.Address.Location.Lng())
			if dist <= *v.ServiceRadius {
				resultsCh <- models.EligibleVendor{
					VendorID:      v.ID,
					Distance:      dist,
					ServiceRadius: *v.ServiceRadius,
					FCMToken:      v.FCMToken,
				}
			}
		}(o)
	}

	wg.Wait()
	close(resultsCh)

	eligible := make([]models.EligibleVendor, 0, len(offerings))
	for e := range resultsCh {
		eligible = append(eligible, e)
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].Distance < eligible[j].Distance
	})

	return GeoEligibilityResult{
		EligibilityResult: eligible,
		IsEligible:        len(eligible) > 0,
	}
}
