package ui

import (
	"context"
	"errors"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Notifier forwards controller state changes into a running program. It is
// safe to call before the program starts; notifications are dropped until then.
type Notifier struct {
	program atomic.Pointer[tea.Program]
	pending atomic.Bool
}

// NewNotifier returns an unattached Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify schedules a snapshot refresh. It never blocks, so it may be called
// from inside Update. Bursts collapse into one message; the refresh reads the
// latest state anyway.
func (n *Notifier) Notify() {
	if n == nil {
		return
	}
	p := n.program.Load()
	if p == nil || !n.pending.CompareAndSwap(false, true) {
		return
	}
	go func() {
		n.pending.Store(false)
		p.Send(stateChangedMsg{})
	}()
}

func (n *Notifier) attach(p *tea.Program) {
	if n != nil {
		n.program.Store(p)
	}
}

func (n *Notifier) detach() {
	if n != nil {
		n.program.Store(nil)
	}
}

// Run starts the TUI and blocks until the user quits or the context ends.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !opts.NoAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(New(opts), programOpts...)
	opts.Notifier.attach(p)
	defer opts.Notifier.detach()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
