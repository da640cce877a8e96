// Package terminal implements the user-facing output sink.
package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/wandler/internal/ui/output"
	"go.trai.ch/wandler/internal/ui/style"
)

// Sink implements ports.OutputSink on a pair of terminal streams.
// Info, Success and Warn go to stdout, Error goes to stderr.
type Sink struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	err    *termenv.Output
}

// New creates a Sink writing to stdout and stderr with the profile chosen by profileFn.
// Nil writers default to the process streams.
func New(stdout, stderr io.Writer, profileFn func() termenv.Profile) *Sink {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	s := &Sink{stdout: stdout, stderr: stderr}
	s.SetProfile(profileFn)
	return s
}

// SetProfile re-creates the outputs with a new color profile.
func (s *Sink) SetProfile(profileFn func() termenv.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out = output.NewWithProfile(s.stdout, profileFn)
	s.err = output.NewWithProfile(s.stderr, profileFn)
}

// SetOutput replaces the destination streams, keeping the current profile.
func (s *Sink) SetOutput(stdout, stderr io.Writer) {
	s.mu.Lock()
	profile := s.out.Profile
	s.mu.Unlock()

	if stdout != nil {
		s.stdout = stdout
	}
	if stderr != nil {
		s.stderr = stderr
	}
	s.SetProfile(func() termenv.Profile { return profile })
}

// Info prints text unstyled.
func (s *Sink) Info(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(s.out, s.out.String(text))
}

// Success prints text in green.
func (s *Sink) Success(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(s.out, s.out.String(text).Foreground(s.out.Color(string(style.Green))))
}

// Warn prints text in yellow.
func (s *Sink) Warn(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(s.out, s.out.String(text).Foreground(s.out.Color(string(style.Yellow))))
}

// Error prints text in red on stderr, bold when emphasis is set.
func (s *Sink) Error(text string, emphasis bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	styled := s.err.String(text).Foreground(s.err.Color(string(style.Red)))
	if emphasis {
		styled = styled.Bold()
	}
	s.write(s.err, styled)
}

func (s *Sink) write(out *termenv.Output, styled termenv.Style) {
	_, _ = out.WriteString(styled.String() + "\n")
}
