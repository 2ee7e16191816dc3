package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// runForm is swapped in tests; huh needs a terminal.
var runForm = func(f *huh.Form) error { return f.Run() }

func bidbookHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// leadInput is the raw text collected by the lead intake form.
type leadInput struct {
	Client    string
	Project   string
	BudgetMin string
	BudgetMax string
	Deadline  string
	Notes     string
}

func leadForm(in *leadInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Client").Value(&in.Client).Validate(validateRequired),
			huh.NewInput().Title("Project name").Value(&in.Project),
			huh.NewInput().Title("Budget from").Placeholder("blank for open").Value(&in.BudgetMin).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Budget to").Placeholder("blank for open").Value(&in.BudgetMax).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Deadline").Placeholder("2026-06-30").Value(&in.Deadline).Validate(validateOptionalDate),
			huh.NewText().Title("Notes").Value(&in.Notes),
		),
	).WithTheme(bidbookHuhTheme()).WithShowHelp(false)
}

func (in leadInput) lead() (*domain.Lead, error) {
	l := &domain.Lead{
		ClientName:  strings.TrimSpace(in.Client),
		ProjectName: strings.TrimSpace(in.Project),
		Deadline:    strings.TrimSpace(in.Deadline),
		Notes:       strings.TrimSpace(in.Notes),
	}
	var err error
	if l.BudgetMin, err = budgetValue(in.BudgetMin); err != nil {
		return nil, err
	}
	if l.BudgetMax, err = budgetValue(in.BudgetMax); err != nil {
		return nil, err
	}
	return l, nil
}

func budgetValue(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: budget %q is not a whole number", domain.ErrInvalidInput, raw)
	}
	return &n, nil
}

// confirm asks before a destructive action. It skips the question when yes
// is set or nobody is at the terminal to answer.
func confirm(app *App, yes bool, title string) (bool, error) {
	if yes || !app.interactive() {
		return true, nil
	}
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(bidbookHuhTheme()).WithShowHelp(false)
	if err := runForm(form); err != nil {
		return false, err
	}
	return ok, nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
