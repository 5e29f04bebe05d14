// Package offset implements the frequency offsets used to shift a temporal index.
//
// An Offset is a multiple of a calendar or clock unit. Specs follow the short
// aliases common to time series tooling:
//
//	D      calendar day (24 hours)
//	B      business day (Monday to Friday)
//	W      week (7 days)
//	H, h   hour
//	T, min minute
//	S, s   second
//	L, ms  millisecond
//
// A spec is an optional signed multiplier followed by a unit:
//
//	off, err := offset.Parse("5B")   // five business days
//	next := off.Apply(date)
//
// Business-day arithmetic rolls weekend anchors onto the adjacent business day
// before counting, so advancing a Saturday by one business day lands on Monday.
//
// # Date ranges
//
// DateRange produces evenly spaced labels for building a temporal index:
//
//	days := offset.DateRange(start, 30, offset.BusinessDays(1))
package offset
