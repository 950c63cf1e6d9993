// Package services provides domain services that work across the draft, tariff and task
// models of the order wizard.
//
// The package includes:
//   - PriceCalculator: the pure draft to itemized quote mapping
//   - SubmissionAssembler: the confirmed draft to order-creation payload mapping
//
// Key business rules:
//   - Quotes are priced against the drone rate table and a fixed placeholder distance
//   - The submitted price is the quoted total unless legacy flat pricing is configured
//   - Multi-stop submissions take their primary item from the first stop
package services
