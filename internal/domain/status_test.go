package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadStatus_CaseInsensitive(t *testing.T) {
	s, err := ParseLeadStatus("  Qualified ")
	require.NoError(t, err)
	assert.Equal(t, LeadQualified, s)
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := ParseLeadStatus("hot")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseProjectStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseTaskStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseQuoteStatus("paid")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestLeadTransitions(t *testing.T) {
	cases := []struct {
		from, to LeadStatus
		ok       bool
	}{
		{LeadNew, LeadQualified, true},
		{LeadNew, LeadWon, false},
		{LeadQualified, LeadNegotiating, true},
		{LeadNegotiating, LeadWon, true},
		{LeadLost, LeadNew, true},
		{LeadWon, LeadLost, false},
		{LeadWon, LeadWon, true},
	}
	for _, tc := range cases {
		err := tc.from.CanTransition(tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestQuoteTransitions_AcceptedIsFinal(t *testing.T) {
	for _, next := range []QuoteStatus{QuoteDraft, QuoteSent, QuoteRejected} {
		assert.ErrorIs(t, QuoteAccepted.CanTransition(next), ErrInvalidTransition)
	}
	assert.NoError(t, QuoteDraft.CanTransition(QuoteSent))
	assert.ErrorIs(t, QuoteDraft.CanTransition(QuoteAccepted), ErrInvalidTransition)
}

func TestTaskTransitions_Reopen(t *testing.T) {
	assert.NoError(t, TaskDone.CanTransition(TaskTodo))
	assert.NoError(t, ProjectCompleted.CanTransition(ProjectActive))
}

func TestStatus_UnmarshalRejectsUnknown(t *testing.T) {
	var p struct {
		Status ProjectStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"PAUSED"}`), &p))
	assert.Equal(t, ProjectPaused, p.Status)

	err := json.Unmarshal([]byte(`{"status":"frozen"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
