// Package editor implements the edit session at the heart of the image editor.
//
// An edit session ties together three pieces:
//   - Frame: an RGBA raster snapshot (width, height, 4 bytes per pixel).
//   - Filter: a function that rewrites a pixel buffer in place.
//   - History: a past/future pair of stacks holding Frame snapshots.
//
// # Source of Truth
//
// A Session does not keep its own copy of the working raster. The Renderer
// it is created with (a canvas or other display surface) is the authoritative
// "what the user currently sees". Every operation reads from and writes to
// the Renderer. Writes made to the Renderer by anyone else are not recorded
// in history.
//
// # State Machine
//
//	Empty --Load--> Ready --Load/ApplyFilter/Undo/Redo--> Ready
//	Empty|Ready --Close--> Closed
//
// ApplyFilter, Undo, Redo and Snapshot fail with ErrNoFrameLoaded while the
// session is Empty. Undo and Redo on an empty stack are not errors: they
// report false and leave the display untouched.
//
// # History Semantics
//
// A boundary is recorded just before each edit, so the past stack holds
// pre-edit snapshots only. Undo restores the snapshot taken before the last
// edit. A following Redo moves that same snapshot back onto the past stack
// and redisplays it; it does not bring back the filtered result, which was
// never stored.
//
// The history capacity (DefaultHistoryCap unless configured) is checked
// against the future stack right before that stack is cleared, so the past
// stack grows without bound. WithEnforcedCap switches to trimming the oldest
// past entry instead.
//
// # Concurrency
//
// A Session is meant to be driven from one goroutine at a time (an event
// loop or request loop). It has no internal locking.
//
// # Logging
//
// The package logs state transitions through a log/slog logger that is
// silent until SetLogger is called.
package editor
