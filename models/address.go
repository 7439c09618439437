package models

import "time"

// Address is a customer's stored address document.
type Address struct {
	ID               string    `bson:"id" json:"id,omitempty"`
	UserID           string    `bson:"userId" json:"userId,omitempty"`
	Label            string    `bson:"label,omitempty" json:"label,omitempty"`
	FormattedAddress string    `bson:"formattedAddress" json:"formattedAddress"`
	Location         GeoPoint  `bson:"location" json:"location"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
