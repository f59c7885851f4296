// Package calc holds the front-end independent calculator state.
//
// A [Session] owns the edit buffer, the last valid result, the current
// validation message and the table listing range. The desktop window, the
// terminal UI and the tests all drive the same two operations through it:
// [Session.Submit] and [Session.Entries].
package calc
