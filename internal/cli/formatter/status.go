package formatter

import (
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type pill struct {
	style lipgloss.Style
	glyph string
	label string
}

func (p pill) render() string {
	return p.style.Render(p.glyph + " " + p.label)
}

func unknownPill(s string) string {
	return StyleDim.Render(s)
}

var leadPills = map[domain.LeadStatus]pill{
	domain.LeadNew:         {StyleBlue, "○", "Lead"},
	domain.LeadQualified:   {StylePurple, "◐", "Qualified"},
	domain.LeadNegotiating: {StyleYellow, "◑", "Negotiating"},
	domain.LeadWon:         {StyleGreen, "●", "Won"},
	domain.LeadLost:        {StyleDim, "✖", "Lost"},
}

var projectPills = map[domain.ProjectStatus]pill{
	domain.ProjectActive:    {StyleGreen, "●", "Active"},
	domain.ProjectPaused:    {StyleYellow, "○", "Paused"},
	domain.ProjectCompleted: {StyleDim, "✔", "Completed"},
}

var taskPills = map[domain.TaskStatus]pill{
	domain.TaskTodo:  {StyleBlue, "○", "Todo"},
	domain.TaskDoing: {StyleGreen, "●", "Doing"},
	domain.TaskDone:  {StyleDim, "✔", "Done"},
}

var quotePills = map[domain.QuoteStatus]pill{
	domain.QuoteDraft:    {StyleDim, "○", "Draft"},
	domain.QuoteSent:     {StyleYellow, "➜", "Sent"},
	domain.QuoteAccepted: {StyleGreen, "✔", "Accepted"},
	domain.QuoteRejected: {StyleRed, "✖", "Rejected"},
}

func LeadStatusPill(s domain.LeadStatus) string {
	if p, ok := leadPills[s]; ok {
		return p.render()
	}
	return unknownPill(string(s))
}

func ProjectStatusPill(s domain.ProjectStatus) string {
	if p, ok := projectPills[s]; ok {
		return p.render()
	}
	return unknownPill(string(s))
}

func TaskStatusPill(s domain.TaskStatus) string {
	if p, ok := taskPills[s]; ok {
		return p.render()
	}
	return unknownPill(string(s))
}

func QuoteStatusPill(s domain.QuoteStatus) string {
	if p, ok := quotePills[s]; ok {
		return p.render()
	}
	return unknownPill(string(s))
}

// ComplexityBadge colors S, M and L from calm to hot.
func ComplexityBadge(c domain.Complexity) string {
	switch c {
	case domain.ComplexitySmall:
		return StyleGreen.Render("S")
	case domain.ComplexityLarge:
		return StyleRed.Render("L")
	default:
		return StyleYellow.Render("M")
	}
}
