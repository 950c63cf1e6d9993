// Package tariff holds the static rate tables used to quote delivery orders: base fares and
// distance rates per fulfillment mode, weight, size and service-level brackets, and the fixed
// per-stop, monitoring, insurance and platform fees.
//
// Key business rules:
//   - Quotes are always priced against the Drone fulfillment mode
//   - Multi-stop orders may only use the 0-1/1-3 kg weights and small/medium sizes
//   - Service level fees may be negative (scheduled delivery is a discount)
package tariff
