// Package task runs demo commands whose duration drives HUD visibility.
// Commands execute in a PTY so they behave as they would interactively;
// completion arrives as a Bubble Tea message.
package task

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"
)

// Status indicates the state of a task run.
type Status string

const (
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Result describes a finished task run.
type Result struct {
	Name     string
	Status   Status
	Output   string
	Err      error
	Started  time.Time
	Finished time.Time
}

// Duration returns how long the run took.
func (r Result) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// DoneMsg is delivered to the program when a task run finishes.
type DoneMsg struct {
	Result Result
}

// Runner spawns a command and reports its result as a message. Swappable so
// tests can run without a PTY.
type Runner interface {
	Run(ctx context.Context, name, command string) tea.Cmd
}

// PTYRunner implements Runner using github.com/creack/pty.
type PTYRunner struct {
	Shell string
	Size  pty.Winsize
}

var _ Runner = (*PTYRunner)(nil)

// NewPTYRunner creates a runner that executes commands through /bin/sh -c.
func NewPTYRunner() *PTYRunner {
	return &PTYRunner{
		Shell: "/bin/sh",
		Size:  pty.Winsize{Rows: 24, Cols: 80},
	}
}

// Run implements Runner. The returned command blocks until the child exits,
// which is fine: Bubble Tea runs it off the program goroutine and hands the
// DoneMsg back to Update.
func (r *PTYRunner) Run(ctx context.Context, name, command string) tea.Cmd {
	return func() tea.Msg {
		started := time.Now()
		cmd := exec.CommandContext(ctx, r.Shell, "-c", command)

		f, err := pty.StartWithSize(cmd, &r.Size)
		if err != nil {
			return DoneMsg{Result: Result{
				Name:     name,
				Status:   StatusError,
				Err:      err,
				Started:  started,
				Finished: time.Now(),
			}}
		}

		var buf bytes.Buffer
		// The PTY returns EIO once the child closes its side; that is the
		// normal end of output, not a failure.
		_, _ = io.Copy(&buf, f)
		_ = f.Close()

		res := Result{
			Name:     name,
			Status:   StatusDone,
			Output:   buf.String(),
			Started:  started,
			Finished: time.Now(),
		}
		if err := cmd.Wait(); err != nil {
			res.Status = StatusError
			res.Err = err
		}
		return DoneMsg{Result: res}
	}
}
