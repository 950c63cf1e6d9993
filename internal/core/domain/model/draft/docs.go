// Package draft provides the in-progress order assembled by the task creation wizard.
//
// The package includes:
//   - Draft: the immutable order value of one wizard session (task type, route, contacts,
//     single item, stops, schedule, payment and service selections)
//   - Stops: the ordered stop list of a multi-stop order with add, remove and merge-update
//   - Stop, Item: package descriptions with their weight and size brackets
//   - Edit: composable draft changes applied atomically by Apply
//
// Key business rules:
//   - A new stop defaults to 1-3 kg, small, one item, no insurance
//   - Removing or updating a stop at an index outside the list is a caller error
//   - Stops keep a durable identifier; their index is only their display position
//   - Every edit returns a new Draft; earlier snapshots never change
package draft
