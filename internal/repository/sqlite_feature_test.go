package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featureTestSetup(t *testing.T) (*SQLiteFeatureRepo, int64) {
	t.Helper()
	database := testutil.NewTestDB(t)
	lead := testutil.NewTestLead("Acme")
	require.NoError(t, NewSQLiteLeadRepo(database).Create(context.Background(), lead))
	return NewSQLiteFeatureRepo(database), lead.ID
}

func TestFeatureRepo_CreateAndList(t *testing.T) {
	repo, leadID := featureTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestFeature(leadID, "Checkout",
		testutil.WithHours(10), testutil.WithComplexity(domain.ComplexityLarge))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestFeature(leadID, "Blog", testutil.OutOfScope())))

	features, err := repo.ListByLead(ctx, leadID)
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "Checkout", features[0].Name)
	assert.Equal(t, 10.0, features[0].HoursEst)
	assert.Equal(t, domain.ComplexityLarge, features[0].Complexity)
	assert.True(t, features[0].InScope)
	assert.False(t, features[1].InScope, "list does not filter by scope")
}

func TestFeatureRepo_ReadsLegacyRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	lead := testutil.NewTestLead("Acme")
	require.NoError(t, NewSQLiteLeadRepo(database).Create(ctx, lead))

	_, err := database.ExecContext(ctx,
		`INSERT INTO features (lead_id, name, hours, complexity, created_at) VALUES (?, 'Login', 3.5, 'l', ?)`,
		lead.ID, nowUTC())
	require.NoError(t, err)
	_, err = database.ExecContext(ctx,
		`INSERT INTO features (lead_id, hours_est, in_scope, created_at) VALUES (?, 'lots', 0, ?)`,
		lead.ID, nowUTC())
	require.NoError(t, err)

	features, err := NewSQLiteFeatureRepo(database).ListByLead(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, features, 2)

	assert.Equal(t, "Login", features[0].Name)
	assert.Equal(t, 3.5, features[0].HoursEst)
	assert.Equal(t, domain.ComplexityLarge, features[0].Complexity)
	assert.True(t, features[0].InScope)

	assert.Equal(t, domain.UnnamedFeature, features[1].Name)
	assert.Zero(t, features[1].HoursEst)
	assert.Equal(t, domain.ComplexityMedium, features[1].Complexity)
	assert.False(t, features[1].InScope)
}

func TestFeatureRepo_Update(t *testing.T) {
	repo, leadID := featureTestSetup(t)
	ctx := context.Background()

	f := testutil.NewTestFeature(leadID, "Search", testutil.WithHours(4))
	require.NoError(t, repo.Create(ctx, f))

	n, err := repo.Update(ctx, f.ID, domain.FeaturePatch{InScope: domain.Some(false)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.False(t, got.InScope)
	assert.Equal(t, 4.0, got.HoursEst)
	assert.Equal(t, "Search", got.Name)
}

func TestFeatureRepo_DeleteByLead(t *testing.T) {
	repo, leadID := featureTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestFeature(leadID, "A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestFeature(leadID, "B")))

	n, err := repo.DeleteByLead(ctx, leadID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	features, err := repo.ListByLead(ctx, leadID)
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestFeatureRepo_CreateForMissingLead(t *testing.T) {
	repo, _ := featureTestSetup(t)
	err := repo.Create(context.Background(), testutil.NewTestFeature(999, "Orphan"))
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}
