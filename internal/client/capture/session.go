// Package capture drives a single audio capture from an input device to a
// finished blob on disk.
package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/filex"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrDeviceUnavailable = errors.New("audio device unavailable")
	ErrAlreadyRecording  = errors.New("a capture is already in progress")
)

// Stream is an open capture. Chunks is closed once the stream has been
// stopped and all buffered data delivered.
type Stream interface {
	Chunks() <-chan []byte
	Pause() error
	Resume() error
	Stop() error
}

// Device hands out exclusive capture streams.
type Device interface {
	Open(ctx context.Context) (Stream, error)
}

// State is a snapshot of a Session.
type State struct {
	IsRecording bool
	IsPaused    bool
	Duration    int
	ContentType models.ContentType
	Finished    bool
	FilePath    string
	Size        int
}

// Idle reports whether a new capture may start.
func (s State) Idle() bool {
	return !s.IsRecording && !s.Finished
}

const tickInterval = time.Second

var newTicker = func(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Session is a capture state machine:
// idle -> recording <-> paused -> finished -> idle (via Reset).
type Session struct {
	mu     sync.Mutex
	device Device
	dir    string
	log    logging.Logger

	state     State
	starting  bool
	stream    Stream
	collected chan []byte
	tickQuit  chan struct{}
}

// NewSession returns an idle session writing finished blobs into dir.
func NewSession(device Device, dir string, log logging.Logger) *Session {
	return &Session{device: device, dir: dir, log: log.With("module", "capture")}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start opens the device and begins a capture. The device is opened
// without holding the lock, so State stays responsive while it starts; a
// second Start in the meantime fails with ErrAlreadyRecording.
func (s *Session) Start(ctx context.Context, contentType models.ContentType) error {
	s.mu.Lock()
	if !s.state.Idle() || s.starting {
		s.mu.Unlock()
		return ErrAlreadyRecording
	}
	s.starting = true
	s.mu.Unlock()

	stream, err := s.device.Open(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.starting = false

	if err != nil {
		s.log.Warn(ctx, "device open failed", "error", err)
		if errors.Is(err, ErrDeviceUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	s.stream = stream
	s.collected = make(chan []byte, 1)
	go collect(stream.Chunks(), s.collected)

	s.state = State{IsRecording: true, ContentType: contentType}
	s.startTicker()

	s.log.Info(ctx, "capture started", "content_type", contentType)
	return nil
}

// Pause suspends the stream and the timer together. If the stream refuses
// to pause, neither is paused.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsRecording || s.state.IsPaused {
		return nil
	}
	if err := s.stream.Pause(); err != nil {
		return fmt.Errorf("pause stream: %w", err)
	}
	s.stopTicker()
	s.state.IsPaused = true
	return nil
}

func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsPaused {
		return nil
	}
	if err := s.stream.Resume(); err != nil {
		return fmt.Errorf("resume stream: %w", err)
	}
	s.state.IsPaused = false
	s.startTicker()
	return nil
}

// Stop finalizes the capture into a single blob on disk and releases the
// device. The session moves to the finished state.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsRecording {
		return nil
	}

	s.stopTicker()
	data, err := s.release()
	if err != nil {
		s.log.Warn(context.Background(), "device release failed", "error", err)
	}

	s.state.IsRecording = false
	s.state.IsPaused = false

	path, err := s.writeBlob(data)
	if err != nil {
		s.state = State{}
		return err
	}

	s.state.Finished = true
	s.state.FilePath = path
	s.state.Size = len(data)

	s.log.Info(context.Background(), "capture finished", "path", path, "bytes", len(data), "duration", s.state.Duration)
	return nil
}

func (s *Session) writeBlob(data []byte) (string, error) {
	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, uuid.NewString()+".wav")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write capture: %w", err)
	}
	return path, nil
}

// Reset releases any held device, deletes the finished blob and returns the
// session to idle. It is safe in every state.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTicker()
	if s.stream != nil {
		if _, err := s.release(); err != nil {
			s.log.Warn(context.Background(), "device release failed", "error", err)
		}
	}

	path := s.state.FilePath
	s.state = State{}

	return filex.RemoveIfExists(path)
}

// Detach hands a finished capture over to the caller and returns the
// session to idle without deleting the blob. ok is false unless the
// session was finished.
func (s *Session) Detach() (st State, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Finished {
		return State{}, false
	}
	st = s.state
	s.state = State{}
	return st, true
}

// release stops the stream and waits for the collector to hand over what
// it gathered. Must be called with mu held.
func (s *Session) release() ([]byte, error) {
	err := s.stream.Stop()
	data := <-s.collected
	s.stream = nil
	s.collected = nil
	return data, err
}

func collect(chunks <-chan []byte, out chan<- []byte) {
	var blob []byte
	for c := range chunks {
		blob = append(blob, c...)
	}
	out <- blob
}

// startTicker must be called with mu held.
func (s *Session) startTicker() {
	quit := make(chan struct{})
	s.tickQuit = quit
	c, stop := newTicker(tickInterval)
	go s.runTicker(c, stop, quit)
}

// stopTicker must be called with mu held. The ticker goroutine notices the
// closed quit channel the next time it takes the lock, so no tick can land
// after this returns.
func (s *Session) stopTicker() {
	if s.tickQuit != nil {
		close(s.tickQuit)
		s.tickQuit = nil
	}
}

func (s *Session) runTicker(c <-chan time.Time, stop func(), quit <-chan struct{}) {
	defer stop()
	for {
		select {
		case <-quit:
			return
		case <-c:
			s.mu.Lock()
			select {
			case <-quit:
				s.mu.Unlock()
				return
			default:
			}
			if s.state.IsRecording && !s.state.IsPaused {
				s.state.Duration++
			}
			s.mu.Unlock()
		}
	}
}
