//go:build linux

package capture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// startupGrace is how long Open waits for arecord to fail before treating
// the device as granted.
var startupGrace = 300 * time.Millisecond

// SystemDevice records through ALSA's arecord as 16-bit stereo 44.1kHz WAV.
type SystemDevice struct {
	// Name is the ALSA PCM name, "default" when empty.
	Name string
}

func NewSystemDevice(name string) *SystemDevice {
	return &SystemDevice{Name: name}
}

func (d *SystemDevice) Open(ctx context.Context) (Stream, error) {
	bin, err := exec.LookPath("arecord")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	name := d.Name
	if name == "" {
		name = "default"
	}

	cmd := exec.Command(bin, "-q", "-D", name, "-f", "cd", "-t", "wav")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	s := &arecordStream{
		cmd:    cmd,
		chunks: make(chan []byte, 16),
		exited: make(chan struct{}),
	}
	go s.pump(stdout)

	select {
	case <-s.exited:
		return nil, fmt.Errorf("%w: arecord exited: %s", ErrDeviceUnavailable, bytes.TrimSpace(stderr.Bytes()))
	case <-ctx.Done():
		_ = s.Stop()
		return nil, ctx.Err()
	case <-time.After(startupGrace):
		return s, nil
	}
}

type arecordStream struct {
	cmd      *exec.Cmd
	chunks   chan []byte
	exited   chan struct{}
	stopOnce sync.Once
}

func (s *arecordStream) Chunks() <-chan []byte {
	return s.chunks
}

func (s *arecordStream) pump(r io.Reader) {
	defer close(s.exited)
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			s.chunks <- chunk
		}
		if err != nil {
			break
		}
	}
	close(s.chunks)
	_ = s.cmd.Wait()
}

func (s *arecordStream) signal(sig unix.Signal) error {
	select {
	case <-s.exited:
		return fmt.Errorf("arecord is not running")
	default:
	}
	return unix.Kill(s.cmd.Process.Pid, sig)
}

func (s *arecordStream) Pause() error {
	return s.signal(unix.SIGSTOP)
}

func (s *arecordStream) Resume() error {
	return s.signal(unix.SIGCONT)
}

// Stop asks arecord to finish the file and waits for it to exit.
func (s *arecordStream) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		_ = s.signal(unix.SIGCONT)
		if e := s.signal(unix.SIGINT); e != nil {
			<-s.exited
			return
		}
		select {
		case <-s.exited:
		case <-time.After(5 * time.Second):
			err = s.cmd.Process.Kill()
			<-s.exited
		}
	})
	return err
}
