// Package wizard is the step state machine of the order wizard. It decides whether the
// current draft is complete enough to move on, and tracks the step of one session.
//
// Key business rules:
//   - Steps move strictly by one, forwards only when CanAdvance holds
//   - Going back from the first step exits the wizard
//   - The confirm step is left only through a successful submission, after which the
//     wizard is confirmed and immutable
//   - Oversized multi-stop packages produce warnings, never blocking errors
package wizard
