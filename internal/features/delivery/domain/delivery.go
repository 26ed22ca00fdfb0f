package domain

import "time"

// DeliveryDateEstimate is one estimated delivery date for a lodgement,
// in the order the upstream returned it.
type DeliveryDateEstimate struct {
	// Date is the estimated calendar date of delivery (UTC midnight).
	Date time.Time `json:"date"`
	// WorkingDays is the number of working days until delivery.
	WorkingDays int `json:"working_days"`
	// TimedDeliveryAvailable reports whether a timed delivery can be booked.
	TimedDeliveryAvailable bool `json:"timed_delivery_available"`
}

// TimePeriod is a delivery window within a weekday, in 24-hour time.
type TimePeriod struct {
	// Start is the window start as "HH:MM[:SS]".
	Start string `json:"start"`
	// End is the window end as "HH:MM[:SS]".
	End string `json:"end"`
	// Duration is the upstream's label for the window length.
	Duration string `json:"duration"`
}

// TimeSlot groups the delivery windows available on one weekday.
type TimeSlot struct {
	// Weekday is the weekday name (e.g., Monday).
	Weekday string `json:"weekday"`
	// Periods are the windows in upstream order.
	Periods []TimePeriod `json:"periods"`
}

// DayCapability holds the delivery modes available on one weekday.
type DayCapability struct {
	// Weekday is the weekday name, mapped from the upstream day code.
	Weekday string `json:"weekday"`
	// StandardDeliveryEnabled reports whether standard delivery runs.
	StandardDeliveryEnabled bool `json:"standard_delivery_enabled"`
	// TimedDeliveryEnabled reports whether timed delivery runs.
	TimedDeliveryEnabled bool `json:"timed_delivery_enabled"`
}

// PostcodeCapability holds per-weekday delivery capabilities for a postcode.
type PostcodeCapability struct {
	// Postcode is the four-digit postcode.
	Postcode int `json:"postcode"`
	// LastModified is when the capability record last changed (UTC).
	LastModified time.Time `json:"last_modified"`
	// Days always holds exactly seven entries, Monday through Sunday.
	Days []DayCapability `json:"days"`
}
