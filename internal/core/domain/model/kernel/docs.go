// Package kernel provides the domain primitives shared by every model package of the
// task creation service.
//
// The package includes:
//   - UUID: identifier value object for drafts, stops and submitted tasks
//   - TaskType: the send / errand / multi-stop selection made on the first wizard step
package kernel
