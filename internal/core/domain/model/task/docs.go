// Package task provides the submitted delivery task: the aggregate produced when a user
// confirms a draft and read back by the tracking view.
//
// The package includes:
//   - Submission: The assembled payload of a confirmed draft, including its price
//   - Task: The aggregate root carrying identity, submission, ETA and status
//   - Status: The tracking state of a task
//
// Key business rules:
//   - A task always has a selected task type and a non-negative price
//   - New tasks start Pending with a fixed 15 minute ETA
package task
