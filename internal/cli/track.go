package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

type trackKeys struct {
	Pause  key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func defaultTrackKeys() trackKeys {
	return trackKeys{
		Pause:  key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
		Save:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "stop & log")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "discard")),
	}
}

// trackModel runs a stopwatch until the user saves or discards the session.
type trackModel struct {
	stopwatch stopwatch.Model
	keys      trackKeys
	label     string
	started   time.Time

	saved     bool
	cancelled bool
	elapsed   time.Duration
}

func newTrackModel(label string, started time.Time) trackModel {
	return trackModel{
		stopwatch: stopwatch.NewWithInterval(time.Second),
		keys:      defaultTrackKeys(),
		label:     label,
		started:   started,
	}
}

func (m trackModel) Init() tea.Cmd {
	return m.stopwatch.Init()
}

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Save):
			m.saved = true
			m.elapsed = m.stopwatch.Elapsed()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			return m, m.stopwatch.Toggle()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

func (m trackModel) View() string {
	state := formatter.StyleGreen.Render("● tracking")
	if !m.stopwatch.Running() {
		state = formatter.StyleYellow.Render("○ paused")
	}

	help := []string{
		m.keys.Pause.Help().Key + " " + m.keys.Pause.Help().Desc,
		m.keys.Save.Help().Key + " " + m.keys.Save.Help().Desc,
		m.keys.Cancel.Help().Key + " " + m.keys.Cancel.Help().Desc,
	}

	return fmt.Sprintf("\n  %s  %s\n\n  %s\n\n  %s\n",
		state,
		formatter.Bold(m.label),
		formatter.StyleHeader.Render(m.stopwatch.View()),
		formatter.Dim(strings.Join(help, " · ")),
	)
}

// trackedMinutes rounds a stopwatch reading to whole minutes.
func trackedMinutes(d time.Duration) int {
	return int(d.Round(time.Minute) / time.Minute)
}

// timesheet turns a saved session into an entry that starts when tracking
// started and lasts the running time, pauses excluded. Sessions under half a
// minute yield nil.
func (m trackModel) timesheet(projectID int64, taskID *int64, description string) *domain.Timesheet {
	minutes := trackedMinutes(m.elapsed)
	if !m.saved || minutes == 0 {
		return nil
	}
	end := m.started.Add(m.elapsed)
	return &domain.Timesheet{
		ProjectID:       projectID,
		TaskID:          taskID,
		Description:     description,
		StartTime:       m.started,
		EndTime:         &end,
		DurationMinutes: minutes,
	}
}
