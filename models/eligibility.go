package models

import (
	"encoding/json"
	"time"
)

// BookingEligibilityRequest is the input contract for an eligibility check.
// Address is either a stored-address id (JSON string) or an inline address
// object; the validator resolves the union. Facet presence is checked by the
// validator itself so that the caller always receives the full error report.
type BookingEligibilityRequest struct {
	ServiceID string          `json:"serviceId"`
	Date      string          `json:"date"`
	TimeSlot  string          `json:"timeSlot"`
	Address   json.RawMessage `json:"address"`
	UserID    string          `json:"userId"`
}

// FieldError is a single validation failure tied to a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// EligibleVendor is one vendor that passed both availability and geo filters.
// Distance is km from the customer's address to the vendor's registered address.
type EligibleVendor struct {
	VendorID      string  `json:"vendorId"`
	Distance      float64 `json:"distance"`
	ServiceRadius float64 `json:"serviceRadius"`
	FCMToken      string  `json:"fcmToken,omitempty"`
}

// EligibilityData is the validated request payload handed to the downstream
// booking-assignment workflow.
type EligibilityData struct {
	ServiceTemplate ServiceTemplate  `json:"serviceTemplate"`
	Date            time.Time        `json:"normalizedDate"`
	TimeSlot        SlotRange        `json:"timeSlot"`
	Address         Address          `json:"address"`
	User            User             `json:"user"`
	EligibleVendor  []EligibleVendor `json:"eligibleVendor"`
}

// SlotRange keeps the validated slot boundaries as their original strings;
// minute conversion happens where the schedule checks need it.
type SlotRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ValidationResult is the aggregate outcome of an eligibility check. Data is
// populated only when Errors is empty.
type ValidationResult struct {
	IsValid bool             `json:"isValid"`
	Errors  []FieldError     `json:"errors"`
	Data    *EligibilityData `json:"data"`
}
