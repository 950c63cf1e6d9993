// Package session holds the live state of one wizard run: the draft and the wizard step.
// Sessions exist only while the user is in the wizard; they are discarded on exit,
// on submission, or when left idle.
package session
