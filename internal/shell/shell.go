// Package shell attaches a rendered survey to its host exactly once: either
// the mount element of an HTML page or the controlling terminal.
package shell

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-surveyform/internal/logger"
)

// DefaultMountID is the element id looked up in host pages.
const DefaultMountID = "root"

var (
	// ErrMountPointMissing means the host has nowhere to attach the form.
	ErrMountPointMissing = errors.New("shell: mount point not found")
	// ErrAmbiguousMountPoint means more than one element carries the mount id.
	ErrAmbiguousMountPoint = errors.New("shell: mount point is ambiguous")
	// ErrAlreadyMounted is returned for a second mount of the same shell or
	// of a page that already holds a mounted form.
	ErrAlreadyMounted = errors.New("shell: already mounted")
)

// Target is a host the survey can be attached to.
type Target interface {
	Name() string
	Mount(ctx context.Context) error
}

// Shell guards a process-wide single mount.
type Shell struct {
	mu      sync.Mutex
	mounted bool
}

// New returns an unmounted shell.
func New() *Shell {
	return &Shell{}
}

// Mount attaches target. Only the first call proceeds, later calls return
// ErrAlreadyMounted even when the first mount failed, since a failed mount is
// fatal for the process.
func (s *Shell) Mount(ctx context.Context, target Target) error {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return ErrAlreadyMounted
	}
	s.mounted = true
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Debug(ctx, "mounting survey", "target", target.Name())
	if err := target.Mount(ctx); err != nil {
		return err
	}
	logger.Debug(ctx, "survey mounted", "target", target.Name())
	return nil
}

// Mounted reports whether Mount was called.
func (s *Shell) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}
