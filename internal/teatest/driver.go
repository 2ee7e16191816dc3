// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and the returned Cmds are run to completion
// on the test goroutine's behalf, so model tests need no tea.Program.
// Timer Cmds (stopwatch ticks, cursor blinks) do not return within
// cmdTimeout and are dropped.
package teatest

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how far a chain of Cmds is followed.
const MaxDrainDepth = 100

// Message factories return in microseconds; tea.Tick waits for its interval.
const cmdTimeout = 10 * time.Millisecond

var cmdSliceType = reflect.TypeOf([]tea.Cmd(nil))

// Driver holds the current model and feeds it messages.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been drained. The runtime normally
	// swallows tea.QuitMsg, so the model is not expected to react to it.
	Quitting bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

// DrainInit runs the model's Init command.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains what it returns. Messages
// sent after quitting are ignored.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	if r == ' ' {
		d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}})
		return
	}
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil {
		return
	}

	// tea.Batch and tea.Sequence both yield a slice of Cmds; the sequence
	// type is unexported. Running them in order serves both.
	if sub, ok := cmdSlice(msg); ok {
		for _, c := range sub {
			d.drainCmd(c, depth+1)
		}
		return
	}

	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

func cmdSlice(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || !v.Type().ConvertibleTo(cmdSliceType) {
		return nil, false
	}
	return v.Convert(cmdSliceType).Interface().([]tea.Cmd), true
}

// execCmdWithTimeout returns nil when cmd has not produced a message within
// cmdTimeout. The goroutine is left to finish on its own.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
