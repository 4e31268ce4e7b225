// Package terminal owns the terminal device for the dashboard.
//
// Features:
//   - Backend interface as the single device boundary, tcell implementation
//   - Session lifecycle: init, size query, clear, hidden cursor, guaranteed restore on Close
//   - Resize detection once per frame via Session.Update
//   - Whole-frame commit of a []Cell buffer, stale frames dropped after a resize race
//   - Key, resize and error events normalized from the backend
//
// Drawing never touches the device directly; callers compose into a cell buffer
// (see package tui) and hand it to Session.Commit.
package terminal
