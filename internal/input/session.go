package input

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tinyrange/pawinput/internal/logging"
	"github.com/tinyrange/pawinput/internal/window"
)

// Session owns the platform backend for the life of the companion. Open it
// once at startup and Close it at shutdown.
type Session struct {
	backend window.Backend
	log     zerolog.Logger

	Keys   *Detector
	Cursor *Mapper

	closeOnce sync.Once
	closeErr  error
}

// Open captures the desktop geometry and wires the detector and mapper to
// backend. The session takes ownership of backend.
func Open(backend window.Backend, cfg TargetConfig, log zerolog.Logger) (*Session, error) {
	w, h, err := backend.DesktopSize()
	if err != nil {
		return nil, fmt.Errorf("desktop size: %w", err)
	}
	desktop := Size{Width: w, Height: h}

	log.Debug().
		Int("desktop_width", w).
		Int("desktop_height", h).
		Int("target_width", cfg.Width).
		Int("target_height", cfg.Height).
		Bool("letterbox", cfg.Letterbox).
		Bool("left_handed", cfg.LeftHanded).
		Msg("input session opened")

	return &Session{
		backend: backend,
		log:     log,
		Keys:    NewDetector(DefaultTable(), backend),
		Cursor:  NewMapper(backend, desktop, cfg, logging.Subsystem(log, "cursor")),
	}, nil
}

func (s *Session) IsPressed(code int) bool {
	return s.Keys.IsPressed(code)
}

// Update recomputes the paw position for this frame.
func (s *Session) Update() Position {
	return s.Cursor.Update()
}

func (s *Session) Position() Position {
	return s.Cursor.Position()
}

// SetTarget replaces the target configuration, e.g. after a config reload.
func (s *Session) SetTarget(cfg TargetConfig) {
	s.Cursor.SetTarget(cfg)
	s.log.Info().
		Int("target_width", cfg.Width).
		Int("target_height", cfg.Height).
		Bool("letterbox", cfg.Letterbox).
		Msg("target updated")
}

// FocusedWindow exposes the backend query for diagnostics.
func (s *Session) FocusedWindow() (window.Info, error) {
	return s.backend.FocusedWindow()
}

// Close releases the backend. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.backend.Close()
		s.log.Debug().Msg("input session closed")
	})
	return s.closeErr
}
