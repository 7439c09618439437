package models

import "time"

// ServiceTemplate is a catalog entry a booking references. It is owned by the
// catalog subsystem and read-only to the booking engine.
type ServiceTemplate struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Category          string    `bson:"category" json:"category"`
	SubCategory       string    `bson:"subCategory" json:"subCategory"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice         float64   `bson:"basePrice,omitempty" json:"basePrice,omitempty"`
	MinAdvanceBooking int       `bson:"minAdvanceBooking,omitempty" json:"minAdvanceBooking,omitempty"` // hours
	IsActive          bool      `bson:"isActive" json:"isActive"`
	IsDeleted         bool      `bson:"isDeleted" json:"isDeleted"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
