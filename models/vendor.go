package models

import "time"

// Offering status values. Only approved offerings are considered for booking.
const (
	OfferingStatusPending   = "pending"
	OfferingStatusApproved  = "approved"
	OfferingStatusRejected  = "rejected"
	OfferingStatusSuspended = "suspended"
)

// DaySchedule is a vendor's working window for one weekday. Start and End are
// clock strings, either "HH:MM" (24h) or "hh:mm AM/PM" (12h). An empty window
// means the whole day is workable when IsAvailable is true.
type DaySchedule struct {
	Start       string `bson:"start,omitempty" json:"start,omitempty"`
	End         string `bson:"end,omitempty" json:"end,omitempty"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// Holiday marks a calendar day a vendor does not work.
type Holiday struct {
	Date   time.Time `bson:"date" json:"date"`
	Reason string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// OfferingAvailability carries the vendor's operational schedule for one offering.
// WorkingHours is keyed by lowercase weekday name ("sunday".."saturday").
type OfferingAvailability struct {
	IsAvailable  bool                   `bson:"isAvailable" json:"isAvailable"`
	WorkingHours map[string]DaySchedule `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	Holidays     []Holiday              `bson:"holidays,omitempty" json:"holidays,omitempty"`
}

// VendorAddress is the vendor's registered address; geo filtering measures
// distance from its location.
type VendorAddress struct {
	FormattedAddress string   `bson:"formattedAddress" json:"formattedAddress,omitempty"`
	Location         GeoPoint `bson:"location" json:"location"`
}

// Vendor is a service vendor account. ServiceRadius is the maximum distance in
// km the vendor is willing to travel; nil means unset, which keeps the vendor
// out of every geo result rather than raising an error.
type Vendor struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name,omitempty"`
	PhoneNumber   string        `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	IsAvailable   bool          `bson:"isAvailable" json:"isAvailable"`
	IsBlocked     bool          `bson:"isBlocked" json:"isBlocked"`
	ServiceRadius *float64      `bson:"serviceRadius,omitempty" json:"serviceRadius,omitempty"`
	Address       VendorAddress `bson:"address" json:"address"`
	FCMToken      string        `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// VendorOffering is a vendor's registration to perform a category of service.
// Vendor is populated by the directory's join and is nil outside query results.
type VendorOffering struct {
	ID              string               `bson:"id" json:"id"`
	VendorID        string               `bson:"vendorId" json:"vendorId"`
	CategoryID      string               `bson:"categoryId" json:"categoryId"`
	ChildCategoryID string               `bson:"childCategoryId" json:"childCategoryId"`
	Status          string               `bson:"status" json:"status"`
	IsActive        bool                 `bson:"isActive" json:"isActive"`
	IsDeleted       bool                 `bson:"isDeleted" json:"isDeleted"`
	Availability    OfferingAvailability `bson:"availability" json:"availability"`
	Vendor          *Vendor              `bson:"vendor,omitempty" json:"vendor,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt,omitzero"`
}
