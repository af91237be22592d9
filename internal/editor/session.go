package editor

import (
	"fmt"
	"log/slog"
)

// Renderer is the display surface a Session edits.
//
// The Renderer holds the authoritative current raster. Pixels must return a
// frame the caller owns, and SetPixels must replace the display contents in
// one step without retaining f.
type Renderer interface {
	Resize(width, height int) error
	Pixels() (*Frame, error)
	SetPixels(f *Frame) error
}

// State is the lifecycle state of a Session.
type State int

const (
	// StateEmpty means no frame has been loaded yet.
	StateEmpty State = iota
	// StateReady means a frame is loaded and displayed.
	StateReady
	// StateClosed means the session has been torn down.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type sessionOptions struct {
	historyCap  int
	enforcedCap bool
}

// Option configures a Session.
type Option func(*sessionOptions)

// WithHistoryCap sets the history capacity. Values <= 0 select
// DefaultHistoryCap.
func WithHistoryCap(n int) Option {
	return func(o *sessionOptions) { o.historyCap = n }
}

// WithEnforcedCap makes the history discard its oldest boundary once it
// holds more than the capacity.
func WithEnforcedCap() Option {
	return func(o *sessionOptions) { o.enforcedCap = true }
}

// Session is the edit session state machine. See the package documentation
// for its semantics.
type Session struct {
	renderer Renderer
	history  *History
	state    State

	// Geometry of the last frame written to the renderer, used to decide
	// whether a restored frame needs a resize first.
	width  int
	height int
}

// NewSession creates an Empty session editing r.
//
// Returns ErrSurfaceUnavailable if r is nil.
func NewSession(r Renderer, opts ...Option) (*Session, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil renderer", ErrSurfaceUnavailable)
	}
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}
	h := NewHistory(o.historyCap)
	if o.enforcedCap {
		h.WithPastLimit()
	}
	return &Session{renderer: r, history: h}, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

func (s *Session) requireReady() error {
	switch s.state {
	case StateReady:
		return nil
	case StateClosed:
		return ErrSessionClosed
	default:
		return ErrNoFrameLoaded
	}
}

// Load displays f and records it as a history boundary.
//
// The renderer is resized to f's dimensions first. Load may be called any
// number of times; each call replaces the display and records a new
// boundary, which discards pending redo state.
func (s *Session) Load(f *Frame) error {
	if s.state == StateClosed {
		return ErrSessionClosed
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if err := s.renderer.Resize(f.Width, f.Height); err != nil {
		return fmt.Errorf("failed to resize surface to %dx%d: %w", f.Width, f.Height, err)
	}
	if err := s.renderer.SetPixels(f); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	s.width, s.height = f.Width, f.Height
	s.history.RecordBoundary(f.Clone())

	prev := s.state
	s.state = StateReady
	Logger().Debug("frame loaded",
		slog.Int("width", f.Width),
		slog.Int("height", f.Height),
		slog.String("from", prev.String()),
		slog.Int("undo_depth", s.history.PastLen()))
	return nil
}

// ApplyFilter runs fn over the current display contents.
//
// The current pixels are recorded as a boundary before fn runs on a working
// copy, and the result is written back in a single SetPixels call.
func (s *Session) ApplyFilter(fn Filter) error {
	if err := s.requireReady(); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: nil filter", ErrUnknownFilter)
	}

	cur, err := s.renderer.Pixels()
	if err != nil {
		return fmt.Errorf("failed to read surface: %w", err)
	}
	if err := cur.Validate(); err != nil {
		return fmt.Errorf("surface returned bad frame: %w", err)
	}

	s.history.RecordBoundary(cur)

	work := cur.Clone()
	fn(work.Pix)

	if err := s.renderer.SetPixels(work); err != nil {
		return fmt.Errorf("failed to write filtered frame: %w", err)
	}
	s.width, s.height = work.Width, work.Height

	Logger().Debug("filter applied",
		slog.Int("undo_depth", s.history.PastLen()),
		slog.Int("redo_depth", s.history.FutureLen()))
	return nil
}

// Undo restores the most recent boundary.
//
// It reports false, with no error and no display change, when there is
// nothing left to undo.
func (s *Session) Undo() (bool, error) {
	if err := s.requireReady(); err != nil {
		return false, err
	}
	f, ok := s.history.Undo()
	if !ok {
		return false, nil
	}
	if err := s.display(f); err != nil {
		return false, err
	}
	Logger().Debug("undo",
		slog.Int("undo_depth", s.history.PastLen()),
		slog.Int("redo_depth", s.history.FutureLen()))
	return true, nil
}

// Redo redisplays the most recently undone boundary.
//
// Because boundaries are pre-edit snapshots, this shows the same frame the
// matching Undo showed; the filtered result is not restored. It reports
// false when there is nothing to redo.
func (s *Session) Redo() (bool, error) {
	if err := s.requireReady(); err != nil {
		return false, err
	}
	f, ok := s.history.Redo()
	if !ok {
		return false, nil
	}
	if err := s.display(f); err != nil {
		return false, err
	}
	Logger().Debug("redo",
		slog.Int("undo_depth", s.history.PastLen()),
		slog.Int("redo_depth", s.history.FutureLen()))
	return true, nil
}

// display writes a history frame to the renderer, resizing first when the
// frame's size differs from what is on screen.
func (s *Session) display(f *Frame) error {
	if f.Width != s.width || f.Height != s.height {
		if err := s.renderer.Resize(f.Width, f.Height); err != nil {
			return fmt.Errorf("failed to resize surface to %dx%d: %w", f.Width, f.Height, err)
		}
	}
	if err := s.renderer.SetPixels(f); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	s.width, s.height = f.Width, f.Height
	return nil
}

// Snapshot returns a copy of what the renderer currently displays.
func (s *Session) Snapshot() (*Frame, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}
	f, err := s.renderer.Pixels()
	if err != nil {
		return nil, fmt.Errorf("failed to read surface: %w", err)
	}
	return f, nil
}

// Status describes a session for reporting to clients.
type Status struct {
	State      string `json:"state"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	UndoDepth  int    `json:"undo_depth"`
	RedoDepth  int    `json:"redo_depth"`
	HistoryCap int    `json:"history_cap"`
}

// Status returns the session's state and history depths.
func (s *Session) Status() Status {
	return Status{
		State:      s.state.String(),
		Width:      s.width,
		Height:     s.height,
		UndoDepth:  s.history.PastLen(),
		RedoDepth:  s.history.FutureLen(),
		HistoryCap: s.history.Cap(),
	}
}

// Close drops all history and moves the session to StateClosed.
// Calling Close more than once is harmless.
func (s *Session) Close() {
	if s.state == StateClosed {
		return
	}
	s.history.Clear()
	s.state = StateClosed
	s.width, s.height = 0, 0
	Logger().Debug("session closed")
}
