package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
	"github.com/alexanderramin/bidbook/internal/testutil"
	"github.com/stretchr/testify/require"
)

type services struct {
	db         *sql.DB
	leads      LeadService
	features   FeatureService
	quotes     QuoteService
	projects   ProjectService
	tasks      ProjectTaskService
	timesheets TimesheetService
}

func newServices(t *testing.T) *services {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newServicesWithUoW(database, testutil.NewTestUoW(database))
}

func newServicesWithUoW(database *sql.DB, uow db.UnitOfWork) *services {
	featureRepo := repository.NewSQLiteFeatureRepo(database)
	taskRepo := repository.NewSQLiteProjectTaskRepo(database)
	sheetRepo := repository.NewSQLiteTimesheetRepo(database)
	return &services{
		db:       database,
		leads:    NewLeadService(repository.NewSQLiteLeadRepo(database), uow),
		features: NewFeatureService(featureRepo),
		quotes: NewQuoteService(repository.NewSQLiteQuoteRepo(database),
			repository.NewSQLiteQuoteItemRepo(database), featureRepo, uow),
		projects:   NewProjectService(repository.NewSQLiteProjectRepo(database), taskRepo, sheetRepo, uow),
		tasks:      NewProjectTaskService(taskRepo, uow),
		timesheets: NewTimesheetService(sheetRepo, uow),
	}
}

func (s *services) lead(t *testing.T, client string, opts ...testutil.LeadOption) *domain.Lead {
	t.Helper()
	l := testutil.NewTestLead(client, opts...)
	require.NoError(t, s.leads.Create(context.Background(), l))
	return l
}

func (s *services) feature(t *testing.T, leadID int64, name string, opts ...testutil.FeatureOption) *domain.Feature {
	t.Helper()
	f := testutil.NewTestFeature(leadID, name, opts...)
	require.NoError(t, s.features.Create(context.Background(), f))
	return f
}

func (s *services) project(t *testing.T, name string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name, opts...)
	require.NoError(t, s.projects.Create(context.Background(), p))
	return p
}
