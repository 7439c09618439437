package models

import "time"

// User is the minimal customer projection the booking engine needs.
type User struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name,omitempty"`
	PhoneNumber    string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	MobileVerified bool      `bson:"mobileVerified" json:"mobileVerified"`
	IsActive       bool      `bson:"isActive" json:"isActive"`
	IsBlocked      bool      `bson:"isBlocked" json:"isBlocked"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
