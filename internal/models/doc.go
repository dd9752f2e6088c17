// Package models defines the bill state that the session owns and persists.
//
// Two shapes of bill exist, one per product variant:
//   - Bill: itemized purchases per person, a delivery/service/discount
//     configuration and an optional payment QR image.
//   - FlatBill: one purchase amount per person and a before/after total pair.
//
// Both serialize to the JSON documents stored under a fixed key, and both
// reduce each person to a single pre-discount food total for allocation.
// Mutating methods never fail on bad numbers; amounts that cannot be parsed
// are coerced to zero when decoding (see money.Amount).
package models
