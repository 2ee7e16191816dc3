package formatter

import (
	"fmt"

	"github.com/alexanderramin/bidbook/internal/domain"
)

func FormatProjectList(projects []*domain.ProjectView) string {
	headers := []string{"ID", "NAME", "CLIENT", "RATE", "STATUS"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		client := Dim("--")
		if p.ClientName != nil {
			client = *p.ClientName
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", p.ID),
			Bold(p.Name),
			client,
			Money(p.HourlyRate) + Dim("/h"),
			ProjectStatusPill(p.Status),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectSummary renders task progress, logged time and the billable
// amount for one project.
func FormatProjectSummary(p *domain.ProjectView, s *domain.ProjectSummary) string {
	done := s.TaskCounts[domain.TaskDone]

	pairs := [][2]string{
		{"Status", ProjectStatusPill(p.Status)},
	}
	if p.ClientName != nil {
		pairs = append(pairs, [2]string{"Client", *p.ClientName})
	}
	pairs = append(pairs,
		[2]string{"Progress", TaskProgress(done, s.TotalTasks, 20)},
		[2]string{"Tasks", fmt.Sprintf("%d todo · %d doing · %d done",
			s.TaskCounts[domain.TaskTodo], s.TaskCounts[domain.TaskDoing], done)},
		[2]string{"Logged", FormatMinutes(s.LoggedMinutes)},
		[2]string{"Rate", Money(s.HourlyRate) + Dim("/h")},
		[2]string{"Billable", Bold(Money(s.BillableAmount))},
	)
	return RenderBox(p.Name, RenderFields(pairs))
}

func FormatTaskList(tasks []*domain.ProjectTask) string {
	headers := []string{"ID", "TITLE", "STATUS", "COMPLETED"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		completed := Dim("--")
		if t.CompletedAt != nil {
			completed = HumanDate(*t.CompletedAt)
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", t.ID),
			t.Title,
			TaskStatusPill(t.Status),
			completed,
		})
	}
	return RenderBox("Tasks", RenderTable(headers, rows))
}

func FormatTimesheetList(entries []*domain.TimesheetView) string {
	headers := []string{"ID", "DATE", "TASK", "DURATION", "DESCRIPTION"}
	rows := make([][]string, 0, len(entries))
	total := 0
	for _, e := range entries {
		task := Dim("--")
		if e.TaskTitle != nil {
			task = *e.TaskTitle
		}
		total += e.DurationMinutes
		rows = append(rows, []string{
			fmt.Sprintf("#%d", e.ID),
			HumanDate(e.StartTime),
			task,
			FormatMinutes(e.DurationMinutes),
			OrDash(e.Description),
		})
	}
	content := RenderTable(headers, rows) + "\n" + Dim("Total ") + Bold(FormatMinutes(total))
	return RenderBox("Timesheets", content)
}

func FormatUserList(users []*domain.User) string {
	headers := []string{"ID", "NAME", "EMAIL"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{fmt.Sprintf("#%d", u.ID), u.Name, u.Email})
	}
	return RenderBox("Users", RenderTable(headers, rows))
}

func FormatTodoList(tasks []*domain.Task) string {
	headers := []string{"ID", "TITLE", "STATUS"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{fmt.Sprintf("#%d", t.ID), t.Title, t.Status})
	}
	return RenderBox("Todo", RenderTable(headers, rows))
}
