package shell

import (
	"context"
	"fmt"

	"golang.org/x/term"
)

// FileDescriptor is satisfied by *os.File.
type FileDescriptor interface {
	Fd() uintptr
}

// Terminal mounts an interactive session on the controlling terminal.
type Terminal struct {
	In  FileDescriptor
	Out FileDescriptor
	Run func(ctx context.Context) error

	// IsTerminal defaults to term.IsTerminal.
	IsTerminal func(fd int) bool
}

var _ Target = Terminal{}

// Name implements Target.
func (Terminal) Name() string { return "terminal" }

// Mount requires both ends to be a terminal before running the session.
func (t Terminal) Mount(ctx context.Context) error {
	if t.Run == nil {
		return fmt.Errorf("shell: terminal mount requires a session")
	}
	isTerminal := t.IsTerminal
	if isTerminal == nil {
		isTerminal = term.IsTerminal
	}
	for _, end := range []struct {
		name string
		fd   FileDescriptor
	}{{"stdin", t.In}, {"stdout", t.Out}} {
		if end.fd == nil || !isTerminal(int(end.fd.Fd())) {
			return fmt.Errorf("%w: %s is not a terminal", ErrMountPointMissing, end.name)
		}
	}
	return t.Run(ctx)
}
