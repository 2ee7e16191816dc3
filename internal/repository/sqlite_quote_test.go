package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteTestSetup(t *testing.T) (*sql.DB, int64) {
	t.Helper()
	database := testutil.NewTestDB(t)
	lead := testutil.NewTestLead("Acme")
	require.NoError(t, NewSQLiteLeadRepo(database).Create(context.Background(), lead))
	return database, lead.ID
}

func TestQuoteRepo_CreateAndGet(t *testing.T) {
	database, leadID := quoteTestSetup(t)
	repo := NewSQLiteQuoteRepo(database)
	ctx := context.Background()

	q := testutil.NewTestQuote(leadID, "Quote-2025-06-15")
	q.TotalHours = 10
	q.TotalPrice = 12000
	require.NoError(t, repo.Create(ctx, q))

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quote-2025-06-15", got.Title)
	assert.Equal(t, int64(12000), got.TotalPrice)
	assert.Equal(t, 10.0, got.TotalHours)
	assert.Equal(t, domain.QuoteDraft, got.Status)

	list, err := repo.ListByLead(ctx, leadID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestQuoteRepo_Update_BumpsUpdatedAt(t *testing.T) {
	database, leadID := quoteTestSetup(t)
	repo := NewSQLiteQuoteRepo(database)
	ctx := context.Background()

	q := testutil.NewTestQuote(leadID, "Q")
	q.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	q.UpdatedAt = q.CreatedAt
	require.NoError(t, repo.Create(ctx, q))

	n, err := repo.Update(ctx, q.ID, domain.QuotePatch{Status: domain.Some(domain.QuoteSent)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteSent, got.Status)
	assert.True(t, got.UpdatedAt.After(q.UpdatedAt))
	assert.True(t, got.CreatedAt.Equal(q.CreatedAt), "created_at never changes")
}

func TestQuoteRepo_Update_EmptyPatchLeavesUpdatedAt(t *testing.T) {
	database, leadID := quoteTestSetup(t)
	repo := NewSQLiteQuoteRepo(database)
	ctx := context.Background()

	q := testutil.NewTestQuote(leadID, "Q")
	q.UpdatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, repo.Create(ctx, q))

	n, err := repo.Update(ctx, q.ID, domain.QuotePatch{})
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.Equal(q.UpdatedAt))
}

func TestQuoteItemRepo_ListCarriesFeatureFields(t *testing.T) {
	database, leadID := quoteTestSetup(t)
	ctx := context.Background()

	f := testutil.NewTestFeature(leadID, "Checkout", testutil.WithHours(6))
	require.NoError(t, NewSQLiteFeatureRepo(database).Create(ctx, f))

	q := testutil.NewTestQuote(leadID, "Q")
	require.NoError(t, NewSQLiteQuoteRepo(database).Create(ctx, q))

	items := NewSQLiteQuoteItemRepo(database)
	require.NoError(t, items.Create(ctx, testutil.NewTestQuoteItem(q.ID, "Checkout", &f.ID)))
	require.NoError(t, items.Create(ctx, testutil.NewTestQuoteItem(q.ID, "Extra", nil)))

	list, err := items.ListByQuote(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NotNil(t, list[0].FeatureName)
	assert.Equal(t, "Checkout", *list[0].FeatureName)
	require.NotNil(t, list[0].FeatureHours)
	assert.Equal(t, 6.0, *list[0].FeatureHours)

	assert.Nil(t, list[1].FeatureID)
	assert.Nil(t, list[1].FeatureName)
}
