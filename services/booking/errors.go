package booking

// Messages reported as field-level validation errors. Callers receive the
// complete set in one response, never one at a time.
const (
	MsgSystemError = "Validation failed due to system error"

	MsgServiceInvalid  = "Invalid service id"
	MsgServiceNotFound = "Service not found or no longer offered"

	MsgDateRequired = "Date is required"
	MsgDateInvalid  = "Invalid date format"
	MsgDatePast     = "Booking date cannot be in the past"
	MsgDateTooFar   = "Booking date cannot be more than a month ahead"

	MsgTimeSlotRequired = "Time slot is required"
	MsgTimeSlotFormat   = "Time slot must be in the format 'hh:mm AM/PM - hh:mm AM/PM'"
	MsgTimeSlotRange    = "Time slot start must be before its end"

	MsgAddressRequired    = "Address is required"
	MsgAddressMalformed   = "Address must be a stored address id or an address object"
	MsgAddressNotFound    = "Address not found"
	MsgAddressNoLocation  = "Address location is required"
	MsgAddressNoFormatted = "Address formattedAddress is required"
	MsgAddressBadCoords   = "Invalid address coordinates"

	MsgUserNotFound         = "User not found"
	MsgUserMobileUnverified = "Mobile number is not verified"

	MsgNoVendorsAvailable = "No vendors are available for the selected date and time"
	MsgOutOfServiceArea   = "Service is not available in your area"
)
