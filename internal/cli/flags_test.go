package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("name", "", "")
	fs.String("budget", "", "")
	fs.String("hours", "", "")
	fs.String("in-scope", "", "")
	fs.String("end", "", "")
	fs.String("status", "", "")
	fs.Int64("task", 0, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestOptHelpers_UnsetFlagsStayUnset(t *testing.T) {
	fs := newFlagSet(t)

	assert.False(t, optString(fs, "name").Set)
	b, err := optInt64(fs, "budget")
	require.NoError(t, err)
	assert.False(t, b.Set)
	h, err := optFloat(fs, "hours")
	require.NoError(t, err)
	assert.False(t, h.Set)
	s, err := optStatus(fs, "status", domain.ParseTaskStatus)
	require.NoError(t, err)
	assert.False(t, s.Set)
	assert.Nil(t, int64Flag(fs, "task"))
}

func TestOptHelpers_Values(t *testing.T) {
	fs := newFlagSet(t, "--name=", "--budget", "1200", "--hours", "2.5",
		"--in-scope", "false", "--status", "DONE", "--task", "4")

	assert.Equal(t, domain.Some(""), optString(fs, "name"), "an explicit empty string is still set")

	b, err := optInt64(fs, "budget")
	require.NoError(t, err)
	assert.Equal(t, domain.Some(int64(1200)), b)

	h, err := optFloat(fs, "hours")
	require.NoError(t, err)
	assert.Equal(t, domain.Some(2.5), h)

	in, err := optBool(fs, "in-scope")
	require.NoError(t, err)
	assert.Equal(t, domain.Some(false), in)

	s, err := optStatus(fs, "status", domain.ParseTaskStatus)
	require.NoError(t, err)
	assert.Equal(t, domain.Some(domain.TaskDone), s)

	require.NotNil(t, int64Flag(fs, "task"))
	assert.Equal(t, int64(4), *int64Flag(fs, "task"))
}

func TestOptHelpers_None(t *testing.T) {
	fs := newFlagSet(t, "--budget", "none", "--end", "NONE")

	b, err := optInt64(fs, "budget")
	require.NoError(t, err)
	assert.True(t, b.Set)
	assert.True(t, b.Null)

	e, err := optTime(fs, "end")
	require.NoError(t, err)
	assert.True(t, e.Null)
}

func TestOptHelpers_Invalid(t *testing.T) {
	fs := newFlagSet(t, "--budget", "lots", "--hours", "x", "--in-scope", "maybe", "--end", "soon", "--status", "blocked")

	_, err := optInt64(fs, "budget")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = optFloat(fs, "hours")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = optBool(fs, "in-scope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = optTime(fs, "end")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = optStatus(fs, "status", domain.ParseTaskStatus)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestParseTimeFlag(t *testing.T) {
	got, err := parseTimeFlag("2026-03-02 09:30")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local)))

	got, err = parseTimeFlag("2026-03-02T09:30:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)))

	_, err = parseTimeFlag("tomorrow")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"0", "-1", "abc"} {
		_, err := parseID(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestLeadInput(t *testing.T) {
	l, err := leadInput{Client: " Acme ", BudgetMin: "100", BudgetMax: ""}.lead()
	require.NoError(t, err)
	assert.Equal(t, "Acme", l.ClientName)
	require.NotNil(t, l.BudgetMin)
	assert.Equal(t, int64(100), *l.BudgetMin)
	assert.Nil(t, l.BudgetMax)

	_, err = leadInput{Client: "Acme", BudgetMax: "a lot"}.lead()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFormValidators(t *testing.T) {
	assert.Error(t, validateRequired("  "))
	assert.NoError(t, validateNonNegativeInt(""))
	assert.Error(t, validateNonNegativeInt("-3"))
	assert.NoError(t, validateOptionalDate("2026-06-30"))
	assert.Error(t, validateOptionalDate("30/06/2026"))
}
