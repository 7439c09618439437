package booking

import (
	"testing"

	"fixora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineZero(t *testing.T) {
	assert.Equal(t, 0.0, haversine(0, 0, 0, 0))
}

func TestHaversineKnownDistance(t *testing.T) {
	// Along the equator the formula degenerates to R*dLon.
	d := haversine(0, 0, 0, lngAtKm(100))
	assert.InDelta(t, 100, d, 0.01)
}

func TestFilterByServiceRadiusInclusiveBoundary(t *testing.T) {
	customer := models.GeoPoint{Type: "Point", Coordinates: []float64{0, 0}}
	lng := lngAtKm(10)
	dist := haversine(0, 0, 0, lng)

	svc := newTestService(&fakeCatalogRepo{}, &fakeVendorRepo{}, &fakeUserRepo{})

	// Radius exactly equal to the distance: included.
	atBoundary := testOffering("off-1", testVendor("v1", floatPtr(dist), lng), openSchedule())
	res := svc.filterByServiceRadius([]models.VendorOffering{atBoundary}, customer)
	require.True(t, res.IsEligible)
	require.Len(t, res.EligibilityResult, 1)
	assert.Equal(t, "v1", res.EligibilityResult[0].VendorID)
	assert.InDelta(t, dist, res.EligibilityResult[0].Distance, 1e-9)

	// A hair under the distance: excluded.
	justUnder := testOffering("off-2", testVendor("v2", floatPtr(dist-0.001), lng), openSchedule())
	res = svc.filterByServiceRadius([]models.VendorOffering{justUnder}, customer)
	assert.False(t, res.IsEligible)
	assert.Empty(t, res.EligibilityResult)
}

func TestFilterByServiceRadiusSkipsUnconfiguredVendors(t *testing.T) {
	customer := models.GeoPoint{Type: "Point", Coordinates: []float64{0, 0}}
	svc := newTestService(&fakeCatalogRepo{}, &fakeVendorRepo{}, &fakeUserRepo{})

	noRadius := testVendor("v-noradius", nil, lngAtKm(1))
	noCoords := testVendor("v-nocoords", floatPtr(50), 0)
	noCoords.Address.Location = models.GeoPoint{}
	noJoin := testOffering("off-nojoin", testVendor("v-unused", floatPtr(50), 0), openSchedule())
	noJoin.Vendor = nil
	inRange := testVendor("v-ok", floatPtr(5), lngAtKm(2))

	res := svc.filterByServiceRadius([]models.VendorOffering{
		testOffering("off-a", noRadius, openSchedule()),
		testOffering("off-b", noCoords, openSchedule()),
		noJoin,
		testOffering("off-c", inRange, openSchedule()),
	}, customer)

	require.True(t, res.IsEligible)
	require.Len(t, res.EligibilityResult, 1)
	assert.Equal(t, "v-ok", res.EligibilityResult[0].VendorID)
	assert.Equal(t, "fcm-v-ok", res.EligibilityResult[0].FCMToken)
	assert.Equal(t, 5.0, res.EligibilityResult[0].ServiceRadius)
}

func TestFilterByServiceRadiusSortsByDistance(t *testing.T) {
	customer := models.GeoPoint{Type: "Point", Coordinates: []float64{0, 0}}
	svc := newTestService(&fakeCatalogRepo{}, &fakeVendorRepo{}, &fakeUserRepo{})

	far := testOffering("off-far", testVendor("v-far", floatPtr(20), lngAtKm(8)), openSchedule())
	near := testOffering("off-near", testVendor("v-near", floatPtr(20), lngAtKm(2)), openSchedule())
	mid := testOffering("off-mid", testVendor("v-mid", floatPtr(20), lngAtKm(5)), openSchedule())

	res := svc.filterByServiceRadius([]models.VendorOffering{far, near, mid}, customer)
	require.Len(t, res.EligibilityResult, 3)
	assert.Equal(t, "v-near", res.EligibilityResult[0].VendorID)
	assert.Equal(t, "v-mid", res.EligibilityResult[1].VendorID)
	assert.Equal(t, "v-far", res.EligibilityResult[2].VendorID)
}

func TestFilterByServiceRadiusFailsOpenOnBadCustomerCoordinates(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{}, &fakeVendorRepo{}, &fakeUserRepo{})
	offering := testOffering("off-1", testVendor("v1", floatPtr(10), lngAtKm(3)), openSchedule())

	res := svc.filterByServiceRadius([]models.VendorOffering{offering}, models.GeoPoint{})
	assert.True(t, res.IsEligible)
	assert.Empty(t, res.EligibilityResult)
}

func TestFilterByServiceRadiusEmptyInput(t *testing.T) {
	customer := models.GeoPoint{Type: "Point", Coordinates: []float64{0, 0}}
	svc := newTestService(&fakeCatalogRepo{}, &fakeVendorRepo{}, &fakeUserRepo{})

	res := svc.filterByServiceRadius(nil, customer)
	assert.False(t, res.IsEligible)
	assert.Empty(t, res.EligibilityResult)
}
