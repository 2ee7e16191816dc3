package domain

import (
	"fmt"
	"strings"
)

type LeadStatus string

const (
	LeadNew         LeadStatus = "lead"
	LeadQualified   LeadStatus = "qualified"
	LeadNegotiating LeadStatus = "negotiating"
	LeadWon         LeadStatus = "won"
	LeadLost        LeadStatus = "lost"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
)

type TaskStatus string

const (
	TaskTodo  TaskStatus = "todo"
	TaskDoing TaskStatus = "doing"
	TaskDone  TaskStatus = "done"
)

type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

// transitions maps a state to the states reachable from it in one update.
// Re-applying the current state is always allowed and not listed.
type transitions[S ~string] map[S][]S

func (t transitions[S]) allows(from, to S) bool {
	if from == to {
		return true
	}
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (t transitions[S]) check(kind string, from, to S) error {
	if !t.allows(from, to) {
		return fmt.Errorf("%w: %s cannot move from %q to %q", ErrInvalidTransition, kind, from, to)
	}
	return nil
}

var leadTransitions = transitions[LeadStatus]{
	LeadNew:         {LeadQualified, LeadLost},
	LeadQualified:   {LeadNew, LeadNegotiating, LeadWon, LeadLost},
	LeadNegotiating: {LeadQualified, LeadWon, LeadLost},
	LeadLost:        {LeadNew},
}

var projectTransitions = transitions[ProjectStatus]{
	ProjectActive:    {ProjectPaused, ProjectCompleted},
	ProjectPaused:    {ProjectActive, ProjectCompleted},
	ProjectCompleted: {ProjectActive},
}

var taskTransitions = transitions[TaskStatus]{
	TaskTodo:  {TaskDoing, TaskDone},
	TaskDoing: {TaskTodo, TaskDone},
	TaskDone:  {TaskTodo, TaskDoing},
}

var quoteTransitions = transitions[QuoteStatus]{
	QuoteDraft:    {QuoteSent},
	QuoteSent:     {QuoteDraft, QuoteAccepted, QuoteRejected},
	QuoteRejected: {QuoteDraft},
}

func parseStatus[S ~string](kind, raw string, valid []S) (S, error) {
	v := S(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range valid {
		if s == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown %s status %q", ErrInvalidStatus, kind, raw)
}

// ParseLeadStatus accepts a lead status in any letter case.
func ParseLeadStatus(s string) (LeadStatus, error) {
	return parseStatus("lead", s, []LeadStatus{LeadNew, LeadQualified, LeadNegotiating, LeadWon, LeadLost})
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	return parseStatus("project", s, []ProjectStatus{ProjectActive, ProjectPaused, ProjectCompleted})
}

func ParseTaskStatus(s string) (TaskStatus, error) {
	return parseStatus("task", s, []TaskStatus{TaskTodo, TaskDoing, TaskDone})
}

func ParseQuoteStatus(s string) (QuoteStatus, error) {
	return parseStatus("quote", s, []QuoteStatus{QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected})
}

// CanTransition reports whether a lead may move from s to next.
func (s LeadStatus) CanTransition(next LeadStatus) error {
	return leadTransitions.check("lead", s, next)
}

func (s ProjectStatus) CanTransition(next ProjectStatus) error {
	return projectTransitions.check("project", s, next)
}

func (s TaskStatus) CanTransition(next TaskStatus) error {
	return taskTransitions.check("task", s, next)
}

func (s QuoteStatus) CanTransition(next QuoteStatus) error {
	return quoteTransitions.check("quote", s, next)
}

// UnmarshalText validates statuses as they are decoded from request payloads.
func (s *LeadStatus) UnmarshalText(b []byte) error {
	v, err := ParseLeadStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *ProjectStatus) UnmarshalText(b []byte) error {
	v, err := ParseProjectStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *TaskStatus) UnmarshalText(b []byte) error {
	v, err := ParseTaskStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *QuoteStatus) UnmarshalText(b []byte) error {
	v, err := ParseQuoteStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
