package gateway

import (
	"database/sql"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/repository"
	"github.com/alexanderramin/bidbook/internal/service"
)

// NewServices wires the SQLite repositories and services over one database.
func NewServices(database *sql.DB) Services {
	uow := db.NewSQLiteUnitOfWork(database)

	leads := repository.NewSQLiteLeadRepo(database)
	features := repository.NewSQLiteFeatureRepo(database)
	quotes := repository.NewSQLiteQuoteRepo(database)
	items := repository.NewSQLiteQuoteItemRepo(database)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteProjectTaskRepo(database)
	timesheets := repository.NewSQLiteTimesheetRepo(database)

	return Services{
		Schema:       service.NewSchemaService(database),
		Users:        service.NewUserService(repository.NewSQLiteUserRepo(database)),
		Todos:        service.NewTodoService(repository.NewSQLiteTaskRepo(database)),
		Leads:        service.NewLeadService(leads, uow),
		Features:     service.NewFeatureService(features),
		Quotes:       service.NewQuoteService(quotes, items, features, uow),
		Projects:     service.NewProjectService(projects, tasks, timesheets, uow),
		ProjectTasks: service.NewProjectTaskService(tasks, uow),
		Timesheets:   service.NewTimesheetService(timesheets, uow),
	}
}
